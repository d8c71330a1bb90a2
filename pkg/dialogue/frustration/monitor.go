// Package frustration watches the conversation for signals that the user is
// getting nowhere: complaint keywords, stacked punctuation, shouting, or
// near-identical repeats in quick succession. Two strikes hand the chat to a
// human.
package frustration

import (
	"strings"
	"time"
	"unicode"

	"keelie-chatbot-be/pkg/dialogue/topic"
	"keelie-chatbot-be/pkg/textkit"
)

const (
	// StrikeLimit is the strike count at which the bot escalates.
	StrikeLimit = 2

	repeatWindow    = 40 * time.Second
	repeatThreshold = 0.92

	shoutMinLetters = 8
	shoutUpperRatio = 0.85
)

var frustrationWords = []string{
	"wrong", "useless", "terrible", "awful", "annoying", "annoyed",
	"ridiculous", "rubbish", "stupid", "pointless", "stop", "frustrated",
	"frustrating", "angry", "waste of time", "not helping", "doesnt work",
	"doesn t work", "not working",
}

var positiveWords = []string{
	"thanks", "thank", "cheers", "great", "perfect", "ok", "okay",
	"brilliant", "awesome", "lovely", "helpful", "wonderful",
}

// Monitor evaluates one message at a time. The clock is injected so the
// repeat window is testable.
type Monitor struct {
	now func() time.Time
}

func NewMonitor(now func() time.Time) *Monitor {
	if now == nil {
		now = time.Now
	}
	return &Monitor{now: now}
}

// Detect reports whether this turn counts as a frustration strike. raw is the
// message as typed, normalized its normalized form; lastNormalized and lastAt
// describe the previous turn (zero values when there was none). Greetings,
// goodbyes, and very short messages never count.
func (m *Monitor) Detect(raw, normalized, lastNormalized string, lastAt time.Time) bool {
	if len(normalized) <= 3 {
		return false
	}
	if topic.IsGreeting(normalized) || topic.IsGoodbye(normalized) {
		return false
	}

	repaired := textkit.RepairText(normalized)
	for _, w := range frustrationWords {
		if strings.Contains(repaired, w) {
			return true
		}
	}

	if strings.Contains(raw, "??") || strings.Contains(raw, "!!") {
		return true
	}
	if isShouting(raw) {
		return true
	}

	if lastNormalized != "" && !lastAt.IsZero() &&
		m.now().Sub(lastAt) <= repeatWindow &&
		textkit.Ratio(normalized, lastNormalized) >= repeatThreshold {
		return true
	}
	return false
}

// IsPositive reports whether the message carries an appreciative token. The
// orchestrator resets the strike count when a positive message gets a real
// answer.
func IsPositive(normalized string) bool {
	for _, tok := range textkit.RepairTokens(normalized) {
		for _, w := range positiveWords {
			if tok == w {
				return true
			}
		}
	}
	return false
}

// isShouting requires a message long enough to read as intent, then a high
// share of uppercase among its letters.
func isShouting(raw string) bool {
	letters, upper := 0, 0
	for _, r := range raw {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	if letters < shoutMinLetters {
		return false
	}
	return float64(upper)/float64(letters) >= shoutUpperRatio
}
