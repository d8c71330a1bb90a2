// Package intent is the fallback classifier: a small table of weighted
// keyword intents consulted only after every topic detector and the stock
// paths have passed on the message.
package intent

import (
	"fmt"
	"strings"

	"keelie-chatbot-be/pkg/dialogue/reply"
	"keelie-chatbot-be/pkg/textkit"
)

// Keyword is one weighted trigger phrase. Phrases are matched as substrings
// of the repaired normalized text.
type Keyword struct {
	Phrase string
	Weight int
}

// Intent is one named fallback category. Score is the keyword-weight sum
// multiplied by Priority; the highest strictly positive score wins.
type Intent struct {
	Name      string
	Priority  int
	Keywords  []Keyword
	Responses []string
}

// Scorer evaluates intents in registration order. Ties go to the
// first-registered intent. The reply selector is injected for deterministic
// tests.
type Scorer struct {
	intents []Intent
	sel     reply.Selector
}

func NewScorer(intents []Intent, sel reply.Selector) *Scorer {
	return &Scorer{intents: intents, sel: sel}
}

func (s *Scorer) score(repaired string, in Intent) int {
	sum := 0
	for _, kw := range in.Keywords {
		if strings.Contains(repaired, kw.Phrase) {
			sum += kw.Weight
		}
	}
	return sum * in.Priority
}

// Match returns the winning intent's reply, or false when nothing scores
// above zero.
func (s *Scorer) Match(normalized string) (string, bool) {
	repaired := textkit.RepairText(normalized)
	bestScore := 0
	bestIdx := -1
	for i, in := range s.intents {
		if sc := s.score(repaired, in); sc > bestScore {
			bestScore = sc
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		return "", false
	}
	return reply.Pick(s.sel, s.intents[bestIdx].Responses), true
}

// MatchName is Match plus the winning intent's name, for logging.
func (s *Scorer) MatchName(normalized string) (name, response string, ok bool) {
	repaired := textkit.RepairText(normalized)
	bestScore := 0
	bestIdx := -1
	for i, in := range s.intents {
		if sc := s.score(repaired, in); sc > bestScore {
			bestScore = sc
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		return "", "", false
	}
	in := s.intents[bestIdx]
	return in.Name, reply.Pick(s.sel, in.Responses), true
}

// DefaultIntents is the shipped fallback table. Registration order matters
// for tie-breaks.
func DefaultIntents(texts *reply.Texts) []Intent {
	return []Intent{
		{
			Name:     "customer_service",
			Priority: 6,
			Keywords: []Keyword{
				{Phrase: "speak to someone", Weight: 3},
				{Phrase: "speak to a human", Weight: 3},
				{Phrase: "customer service", Weight: 3},
				{Phrase: "human", Weight: 2},
				{Phrase: "agent", Weight: 2},
				{Phrase: "complaint", Weight: 2},
				{Phrase: "contact", Weight: 1},
			},
			Responses: []string{
				fmt.Sprintf("Of course — our customer service team can take it from here:\n%s", texts.SupportURL),
			},
		},
		{
			Name:     "invoice_copy",
			Priority: 6,
			Keywords: []Keyword{
				{Phrase: "copy of my invoice", Weight: 4},
				{Phrase: "invoice", Weight: 3},
				{Phrase: "receipt", Weight: 2},
				{Phrase: "billing", Weight: 2},
			},
			Responses: []string{
				fmt.Sprintf("I can't access invoices from this chat. For a copy of an invoice or receipt, please contact our customer service team (have your order details ready, but don't post them here):\n%s", texts.SupportURL),
			},
		},
		{
			Name:     "delivery_time",
			Priority: 5,
			Keywords: []Keyword{
				{Phrase: "how long", Weight: 3},
				{Phrase: "delivery time", Weight: 3},
				{Phrase: "shipping", Weight: 2},
				{Phrase: "lead time", Weight: 2},
				{Phrase: "when", Weight: 1},
			},
			Responses: []string{texts.DeliveryGuidance()},
		},
		{
			Name:     "greeting",
			Priority: 1,
			Keywords: []Keyword{
				{Phrase: "hello", Weight: 2},
				{Phrase: "hi there", Weight: 2},
				{Phrase: "good morning", Weight: 2},
			},
			Responses: []string{texts.Greeting()},
		},
		{
			Name:     "goodbye",
			Priority: 1,
			Keywords: []Keyword{
				{Phrase: "goodbye", Weight: 2},
				{Phrase: "bye", Weight: 2},
				{Phrase: "that s all", Weight: 1},
			},
			Responses: []string{texts.Farewell()},
		},
	}
}
