package topic

import (
	"fmt"
	"sort"
	"strings"
)

// CollectionFact describes one product range. Keys are matched longest-first
// against normalized text so "keeleco dinosaurs" wins over "keeleco".
type CollectionFact struct {
	Key   string
	Title string
	Facts []string
}

// CollectionTable is an ordered, read-only set of collection facts.
type CollectionTable struct {
	facts []CollectionFact
	// keys sorted by descending length, index into facts
	byLength []int
}

func NewCollectionTable(facts []CollectionFact) *CollectionTable {
	t := &CollectionTable{facts: facts}
	t.byLength = make([]int, len(facts))
	for i := range facts {
		t.byLength[i] = i
	}
	sort.SliceStable(t.byLength, func(a, b int) bool {
		return len(facts[t.byLength[a]].Key) > len(facts[t.byLength[b]].Key)
	})
	return t
}

// Match returns the first fact whose key occurs in the normalized text,
// checking longer keys first.
func (t *CollectionTable) Match(normalized string) (CollectionFact, bool) {
	for _, idx := range t.byLength {
		if strings.Contains(normalized, t.facts[idx].Key) {
			return t.facts[idx], true
		}
	}
	return CollectionFact{}, false
}

// Render formats a fact block for display.
func (t *CollectionTable) Render(f CollectionFact) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n", f.Title)
	for _, fact := range f.Facts {
		fmt.Fprintf(&b, "• %s\n", fact)
	}
	b.WriteString("\nIf you tell me a product name or size, I can help find the stock code.")
	return b.String()
}

// Overview lists every range in declaration order.
func (t *CollectionTable) Overview() string {
	var b strings.Builder
	b.WriteString("Here are some ranges you can ask about:\n")
	for _, f := range t.facts {
		fmt.Fprintf(&b, "• %s\n", f.Title)
	}
	b.WriteString("\nIf you tell me which range (and the product name or size), I can help further.")
	return b.String()
}

// DefaultCollections is the range table shipped with the widget.
func DefaultCollections() *CollectionTable {
	return NewCollectionTable([]CollectionFact{
		{
			Key:   "keeleco dinosaurs",
			Title: "Keeleco® Dinosaurs",
			Facts: []string{
				"A dinosaur range within Keeleco®, made from **100% recycled polyester**.",
				"Sizes typically run from 18cm to 43cm.",
			},
		},
		{
			Key:   "keeleco adoptable world",
			Title: "Keeleco® Adoptable World",
			Facts: []string{
				"Adoptable animal characters in the Keeleco® eco range.",
				"Each comes with FSC-card hangtags attached with cotton.",
			},
		},
		{
			Key:   "keeleco",
			Title: "Keeleco®",
			Facts: []string{
				"Our eco-focused soft toy range made from **100% recycled polyester**.",
				"The outer plush and stuffing both come from recycled plastic bottles.",
			},
		},
		{
			Key:   "keel eco",
			Title: "Keeleco®",
			Facts: []string{
				"Our eco-focused soft toy range made from **100% recycled polyester**.",
				"The outer plush and stuffing both come from recycled plastic bottles.",
			},
		},
		{
			Key:   "signature cuddle",
			Title: "Signature Cuddle Collection",
			Facts: []string{
				"Super-soft classic animals designed for gifting.",
			},
		},
		{
			Key:   "keel toys",
			Title: "Keel Toys",
			Facts: []string{
				"A UK-based soft toy company, designing plush toys and gifts for over 75 years.",
				"We supply retailers worldwide, with ranges like Keeleco® and the Signature Cuddle Collection.",
				"Tell me what you're looking for (product name / range / size) and I'll try to help.",
			},
		},
	})
}
