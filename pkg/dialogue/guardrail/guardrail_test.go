package guardrail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsPersonalInfo(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"email", "my email is a@b.com", true},
		{"email embedded", "reach me at jane.doe+test@example.co.uk please", true},
		{"plain chat", "hello there", false},
		{"phone international", "call me on +44 7911 123456", true},
		{"phone plain", "07911123456 is my number", true},
		{"short digit run is not a phone", "minimum order is 500", false},
		{"postcode", "I'm at TN24 8DH", true},
		{"street address", "send it to 12 Mill Lane", true},
		{"street word alone", "the road to the shop", false},
		{"order cue with long digits", "my order 123456 hasn't arrived", true},
		{"order cue without identifier", "where is my order", false},
		{"invoice reference", "invoice INV-20391 is wrong", true},
		{"hash reference with cue", "my return #AB12345 was refused", true},
		{"tracking code with cue", "tracking says 1Z999AA10123456784", true},
		{"mixed alnum run with cue", "account ref X9K2LM41PQ7 locked", true},
		{"stock chat stays clean", "stock code for polar bear plush 20cm", false},
		{"sku question stays clean", "sku for teddy", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsPersonalInfo(tt.in), "input %q", tt.in)
		})
	}
}
