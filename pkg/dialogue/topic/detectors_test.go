package topic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keelie-chatbot-be/pkg/dialogue/reply"
	"keelie-chatbot-be/pkg/textkit"
)

func testTexts() *reply.Texts {
	return reply.NewTexts("Keel Toys", "Keelie", "https://www.keeltoys.com/contact", 500, 250)
}

func TestSetOrderIsCanonical(t *testing.T) {
	set := NewSet(testTexts(), DefaultCollections())
	var names []string
	for _, d := range set.Detectors() {
		names = append(names, d.Name())
	}
	assert.Equal(t, []string{
		"collection", "delivery", "minimum_order", "production_location",
		"how_its_made", "sustainability", "help", "greeting", "goodbye",
	}, names)
}

func TestSetMatch(t *testing.T) {
	set := NewSet(testTexts(), DefaultCollections())

	tests := []struct {
		name     string
		in       string
		topic    string
		contains string
	}{
		{"delivery question", "when will my delivery arrive", "delivery", "order confirmation email"},
		{"delivery typo", "wheres my delivry", "delivery", "order confirmation email"},
		{"minimum order", "what is the minimum order", "minimum_order", "£500"},
		{"minimum order typo", "whats your minimun order", "minimum_order", "£250"},
		{"min spend", "do you have a min spend", "minimum_order", "£500"},
		{"production", "where are your toys made", "production_location", "95%"},
		{"how its made", "how do you make your toys", "how_its_made", "Cut & sew"},
		{"how eco is made", "how is keeleco made from recycled bottles", "collection", "Keeleco"},
		{"eco overview", "are your toys sustainable", "sustainability", "recycled polyester"},
		{"eco typo", "tell me about sustainble toys", "sustainability", "recycled polyester"},
		{"collection specific", "tell me about keeleco dinosaurs", "collection", "Dinosaurs"},
		{"collection generic beats sub", "what is keeleco", "collection", "plastic bottles"},
		{"company question", "who are keel toys", "collection", "75 years"},
		{"help", "help", "help", "Stock codes"},
		{"help typo", "hellp me", "help", "Stock codes"},
		{"greeting", "hello", "greeting", "Keelie"},
		{"greeting stretched", "hiiii", "greeting", "Keelie"},
		{"greeting with trailing", "good morning to you", "greeting", "Keelie"},
		{"goodbye", "bye", "goodbye", "lovely day"},
		{"goodbye phrase", "ok see you later", "goodbye", "lovely day"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			norm := textkit.Normalize(tt.in)
			topic, resp, ok := set.Match(norm)
			require.True(t, ok, "expected a topic for %q", tt.in)
			assert.Equal(t, tt.topic, topic)
			assert.Contains(t, resp, tt.contains)
		})
	}
}

func TestSetMatchMisses(t *testing.T) {
	set := NewSet(testTexts(), DefaultCollections())
	for _, in := range []string{
		"stock code for polar bear",
		"sku for teddy",
		"random nonsense about weather",
		"",
	} {
		_, _, ok := set.Match(textkit.Normalize(in))
		assert.False(t, ok, "unexpected topic for %q", in)
	}
}

func TestDetectorPriorityOverGreeting(t *testing.T) {
	set := NewSet(testTexts(), DefaultCollections())
	topic, _, ok := set.Match("hi what is the minimum order")
	require.True(t, ok)
	assert.Equal(t, "minimum_order", topic)
}

func TestCollectionLongestKeyWins(t *testing.T) {
	table := DefaultCollections()
	f, ok := table.Match("do you still do keeleco adoptable world")
	require.True(t, ok)
	assert.Equal(t, "keeleco adoptable world", f.Key)
}

func TestCollectionOverviewListsAllRanges(t *testing.T) {
	table := DefaultCollections()
	out := table.Overview()
	for _, want := range []string{"Keeleco®", "Signature Cuddle", "Keel Toys"} {
		assert.True(t, strings.Contains(out, want), "overview missing %q", want)
	}
}

func TestIsGreetingAndGoodbye(t *testing.T) {
	assert.True(t, IsGreeting("hello"))
	assert.True(t, IsGreeting("hiiii"))
	assert.True(t, IsGreeting("good afternoon"))
	assert.False(t, IsGreeting("the highest shelf"))
	assert.False(t, IsGreeting(""))

	assert.True(t, IsGoodbye("bye"))
	assert.True(t, IsGoodbye("see you soon"))
	assert.False(t, IsGoodbye("buy this toy"))
}
