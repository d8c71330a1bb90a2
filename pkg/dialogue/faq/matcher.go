// Package faq answers a short fixed table of canonical questions by
// whole-string similarity. No token repair here, only whole-string fuzziness.
package faq

import (
	"keelie-chatbot-be/pkg/textkit"
)

// Threshold is the minimum whole-string similarity for a match.
const Threshold = 0.55

// Entry pairs one canonical question with its answer. Questions are stored
// pre-normalized.
type Entry struct {
	Question string
	Answer   string
}

// Matcher holds the table in declaration order; on equal scores the earlier
// entry wins.
type Matcher struct {
	entries []Entry
}

func NewMatcher(entries []Entry) *Matcher {
	normalized := make([]Entry, len(entries))
	for i, e := range entries {
		normalized[i] = Entry{Question: textkit.Normalize(e.Question), Answer: e.Answer}
	}
	return &Matcher{entries: normalized}
}

// Match returns the best answer when its similarity reaches the threshold.
func (m *Matcher) Match(normalized string) (string, bool) {
	best := -1.0
	bestIdx := -1
	for i, e := range m.entries {
		score := textkit.Ratio(normalized, e.Question)
		if score > best {
			best = score
			bestIdx = i
		}
	}
	if bestIdx < 0 || best < Threshold {
		return "", false
	}
	return m.entries[bestIdx].Answer, true
}

// DefaultEntries is the shipped FAQ table.
func DefaultEntries(companyName string) []Entry {
	return []Entry{
		{
			Question: "who are keel toys",
			Answer: companyName + " is a UK-based soft toy company, designing plush toys and gifts for over 75 years. " +
				"We supply retailers worldwide and are known for ranges like Keeleco® and the Signature Cuddle Collection.",
		},
		{
			Question: "what are your opening hours",
			Answer: "Our customer service team is available **Monday to Friday, 9am to 5pm (UK time)**. " +
				"This chat is available any time for stock codes, minimum order values, and general questions.",
		},
		{
			Question: "are your toys safe for children",
			Answer: "Yes. All our toys are tested to the relevant safety standards (including EN71 in Europe) and are " +
				"suitable from birth unless the label says otherwise. Check each product's label for age guidance.",
		},
	}
}
