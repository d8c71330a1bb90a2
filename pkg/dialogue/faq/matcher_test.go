package faq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keelie-chatbot-be/pkg/textkit"
)

func TestMatch(t *testing.T) {
	m := NewMatcher(DefaultEntries("Keel Toys"))

	tests := []struct {
		name     string
		in       string
		contains string
	}{
		{"exact question", "who are keel toys", "soft toy company"},
		{"close paraphrase", "who are keel toys?", "soft toy company"},
		{"opening hours", "what are your opening hours", "Monday to Friday"},
		{"hours variant", "what are the opening hours", "Monday to Friday"},
		{"safety", "are your toys safe for children", "safety standards"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answer, ok := m.Match(textkit.Normalize(tt.in))
			require.True(t, ok, "expected a match for %q", tt.in)
			assert.Contains(t, answer, tt.contains)
		})
	}
}

func TestMatchBelowThreshold(t *testing.T) {
	m := NewMatcher(DefaultEntries("Keel Toys"))
	for _, in := range []string{
		"completely unrelated question about finance",
		"zzzz",
		"",
	} {
		_, ok := m.Match(textkit.Normalize(in))
		assert.False(t, ok, "unexpected match for %q", in)
	}
}
