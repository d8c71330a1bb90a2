package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keelie-chatbot-be/pkg/dialogue/reply"
	"keelie-chatbot-be/pkg/textkit"
)

func testScorer() *Scorer {
	texts := reply.NewTexts("Keel Toys", "Keelie", "https://www.keeltoys.com/contact", 500, 250)
	return NewScorer(DefaultIntents(texts), reply.FixedSelector(0))
}

func TestMatchPicksHighestWeightedIntent(t *testing.T) {
	s := testScorer()

	name, resp, ok := s.MatchName(textkit.Normalize("I need to speak to someone about a complaint"))
	require.True(t, ok)
	assert.Equal(t, "customer_service", name)
	assert.Contains(t, resp, "keeltoys.com/contact")

	name, resp, ok = s.MatchName(textkit.Normalize("can I get a copy of my invoice"))
	require.True(t, ok)
	assert.Equal(t, "invoice_copy", name)
	assert.Contains(t, resp, "invoice")

	name, _, ok = s.MatchName(textkit.Normalize("how long does shipping take"))
	require.True(t, ok)
	assert.Equal(t, "delivery_time", name)
}

func TestMatchTypoTolerantViaRepair(t *testing.T) {
	s := testScorer()
	name, _, ok := s.MatchName(textkit.Normalize("need a copy of my invoce"))
	require.True(t, ok)
	assert.Equal(t, "invoice_copy", name)
}

func TestMatchNothingScores(t *testing.T) {
	s := testScorer()
	_, ok := s.Match(textkit.Normalize("the weather is nice today"))
	assert.False(t, ok)

	_, ok = s.Match("")
	assert.False(t, ok)
}

func TestTieGoesToFirstRegistered(t *testing.T) {
	texts := reply.NewTexts("Keel Toys", "Keelie", "https://example.test", 500, 250)
	intents := []Intent{
		{Name: "first", Priority: 2, Keywords: []Keyword{{Phrase: "widget", Weight: 3}}, Responses: []string{"first wins"}},
		{Name: "second", Priority: 3, Keywords: []Keyword{{Phrase: "widget", Weight: 2}}, Responses: []string{"second wins"}},
	}
	_ = texts
	s := NewScorer(intents, reply.FixedSelector(0))
	name, resp, ok := s.MatchName("widget")
	require.True(t, ok)
	assert.Equal(t, "first", name)
	assert.Equal(t, "first wins", resp)
}
