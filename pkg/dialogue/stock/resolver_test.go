package stock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keelie-chatbot-be/pkg/catalog"
	"keelie-chatbot-be/pkg/dialogue/reply"
	"keelie-chatbot-be/pkg/store"
	"keelie-chatbot-be/pkg/textkit"
)

var testRows = []catalog.Row{
	{ProductName: "Polar Bear Plush 20cm", StockCode: "PB1001"},
	{ProductName: "Polar Bear Plush 30cm", StockCode: "PB1002"},
	{ProductName: "Panda Bear Plush 25cm", StockCode: "PD1001"},
	{ProductName: "Giraffe Standing 35cm", StockCode: "GR1001"},
}

func testResolver() *Resolver {
	return NewResolver(reply.NewTexts("Keel Toys", "Keelie", "https://www.keeltoys.com/contact", 500, 250))
}

func TestExtractCode(t *testing.T) {
	tests := []struct {
		in   string
		code string
		ok   bool
	}{
		{"what is PB1001", "PB1001", true},
		{"look up pb-1001 please", "PB-1001", true},
		{"polar bear plush 20cm", "", false},
		{"no codes here", "", false},
	}
	for _, tt := range tests {
		code, ok := ExtractCode(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		assert.Equal(t, tt.code, code, "input %q", tt.in)
	}
}

func TestIsRequest(t *testing.T) {
	assert.True(t, IsRequest(textkit.Normalize("stock code for polar bear plush 20cm")))
	assert.True(t, IsRequest(textkit.Normalize("sku for teddy")))
	assert.True(t, IsRequest(textkit.Normalize("whats the stcok code for the giraffe")))
	assert.False(t, IsRequest(textkit.Normalize("what is the minimum order")))
}

func TestNormalizeQuery(t *testing.T) {
	assert.Equal(t, "polar bear plush 20cm",
		NormalizeQuery(textkit.Normalize("what is the stock code for polar bear plush 20cm")))
	assert.Equal(t, "teddy", NormalizeQuery(textkit.Normalize("sku for teddy please")))
}

func TestResolveDirectHit(t *testing.T) {
	r := testResolver()
	sess := store.NewSession("s1")
	out := r.Resolve("polar bear plush 20cm", testRows, sess)
	assert.Contains(t, out, "PB1001")
	assert.False(t, sess.AwaitingChoice())
}

func TestResolveOpensDisambiguation(t *testing.T) {
	r := testResolver()
	sess := store.NewSession("s1")
	out := r.Resolve("polar bear", testRows, sess)

	require.True(t, sess.AwaitingChoice())
	require.Len(t, sess.PendingCandidates, 3)
	assert.Equal(t, "PB1001", sess.PendingCandidates[0].StockCode)
	assert.Equal(t, "PB1002", sess.PendingCandidates[1].StockCode)
	assert.Equal(t, "PD1001", sess.PendingCandidates[2].StockCode)
	assert.Contains(t, out, "1.")
	assert.Contains(t, out, "Polar Bear Plush 20cm")
}

func TestResolveNoConfidentMatch(t *testing.T) {
	r := testResolver()
	sess := store.NewSession("s1")
	out := r.Resolve("teddy", testRows, sess)
	assert.Contains(t, out, "not sure which product")
	assert.False(t, sess.AwaitingChoice())
}

func TestResolveEmptyCatalog(t *testing.T) {
	r := testResolver()
	sess := store.NewSession("s1")
	out := r.Resolve("teddy", nil, sess)
	assert.Contains(t, out, "can't access stock codes")
	assert.Contains(t, out, "keeltoys.com/contact")
	assert.False(t, sess.AwaitingChoice())
}

func TestChooseByDigit(t *testing.T) {
	r := testResolver()
	sess := store.NewSession("s1")
	r.Resolve("polar bear", testRows, sess)
	require.True(t, sess.AwaitingChoice())

	out := r.Choose(textkit.Normalize("2"), sess)
	assert.Contains(t, out, "PB1002")
	assert.False(t, sess.AwaitingChoice())
}

func TestChooseByName(t *testing.T) {
	r := testResolver()
	sess := store.NewSession("s1")
	r.Resolve("polar bear", testRows, sess)

	out := r.Choose(textkit.Normalize("the polar bear plush 30cm"), sess)
	assert.Contains(t, out, "PB1002")
	assert.False(t, sess.AwaitingChoice())
}

func TestChooseRepresentsOnNoMatch(t *testing.T) {
	r := testResolver()
	sess := store.NewSession("s1")
	first := r.Resolve("polar bear", testRows, sess)

	out := r.Choose(textkit.Normalize("something else entirely"), sess)
	assert.Equal(t, first, out)
	assert.True(t, sess.AwaitingChoice())
	assert.Len(t, sess.PendingCandidates, 3)
}

func TestIsCancel(t *testing.T) {
	assert.True(t, IsCancel(textkit.Normalize("never mind")))
	assert.True(t, IsCancel(textkit.Normalize("cancel that")))
	assert.False(t, IsCancel(textkit.Normalize("the second one")))
}

func TestLookupCode(t *testing.T) {
	r := testResolver()
	assert.Contains(t, r.LookupCode("pb1001", testRows), "Polar Bear Plush 20cm")
	assert.Contains(t, r.LookupCode("ZZ9999", testRows), "couldn't find")
	assert.Contains(t, r.LookupCode("PB1001", nil), "can't access stock codes")
}