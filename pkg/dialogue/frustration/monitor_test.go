package frustration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"keelie-chatbot-be/pkg/textkit"
)

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestDetectKeywordsAndPunctuation(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	m := NewMonitor(fixedClock(now))

	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{"complaint word", "this is wrong", true},
		{"useless", "you are useless", true},
		{"stacked question marks", "where is it??", true},
		{"stacked exclamations", "answer me!!", true},
		{"shouting", "I WANT AN ANSWER NOW", true},
		{"short shout ignored", "NO WAY", false},
		{"calm question", "what is the minimum order", false},
		{"greeting never counts", "hello!!", false},
		{"goodbye never counts", "bye!!", false},
		{"too short", "no", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			norm := textkit.Normalize(tt.raw)
			got := m.Detect(tt.raw, norm, "", time.Time{})
			assert.Equal(t, tt.want, got, "input %q", tt.raw)
		})
	}
}

func TestDetectRepeatWithinWindow(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	m := NewMonitor(fixedClock(base.Add(20 * time.Second)))

	last := textkit.Normalize("sku for the polar bear plush")
	norm := textkit.Normalize("sku for the polar bear plush")
	assert.True(t, m.Detect("sku for the polar bear plush", norm, last, base))

	// same repeat outside the window
	late := NewMonitor(fixedClock(base.Add(2 * time.Minute)))
	assert.False(t, late.Detect("sku for the polar bear plush", norm, last, base))

	// different message inside the window
	other := textkit.Normalize("what is the minimum order")
	assert.False(t, m.Detect("what is the minimum order", other, last, base))
}

func TestIsPositive(t *testing.T) {
	assert.True(t, IsPositive(textkit.Normalize("thanks, that's great")))
	assert.True(t, IsPositive(textkit.Normalize("thx")))
	assert.True(t, IsPositive(textkit.Normalize("perfect")))
	assert.True(t, IsPositive(textkit.Normalize("ok, what's the minimum order")))
	assert.True(t, IsPositive(textkit.Normalize("okay")))
	assert.False(t, IsPositive(textkit.Normalize("this is wrong")))
	assert.False(t, IsPositive(textkit.Normalize("booking a stand"))) // no substring hits
	assert.False(t, IsPositive(textkit.Normalize("")))
}
