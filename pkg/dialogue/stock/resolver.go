// Package stock resolves free text against the product catalog: direct code
// lookups, fuzzy name matching, and the single multi-turn disambiguation the
// bot supports. It owns the only cross-turn state in the pipeline.
package stock

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"keelie-chatbot-be/pkg/catalog"
	"keelie-chatbot-be/pkg/dialogue/reply"
	"keelie-chatbot-be/pkg/store"
	"keelie-chatbot-be/pkg/textkit"
)

const (
	// HighThreshold answers directly with the top match.
	HighThreshold = 0.75
	// MedThreshold opens a numbered disambiguation instead.
	MedThreshold = 0.55
	// ChoiceThreshold accepts a fuzzy name while a choice is pending.
	ChoiceThreshold = 0.60
	// MaxCandidates caps the disambiguation list.
	MaxCandidates = 3
)

var (
	// Explicit stock-code shape, matched against the uppercased raw text.
	codeRe = regexp.MustCompile(`\b[A-Z]{1,5}-?\d{2,6}\b`)

	choiceDigitRe = regexp.MustCompile(`\b([1-3])\b`)

	stopwordRe = regexp.MustCompile(`\b(of|for|a|an|the|to|me|my)\b`)
)

// requestPhrases mark a message as a stock-code request. Checked against
// repaired normalized text.
var requestPhrases = []string{
	"stock code", "stockcode", "stock number", "item code", "product code",
	"code for", "sku", "what is the code", "whats the code",
}

// junkPhrases are stripped from a request before fuzzy matching so only the
// product description remains.
var junkPhrases = []string{
	"what is the stock code", "whats the stock code", "what is the code",
	"whats the code", "can you tell me", "could you tell me", "do you know",
	"stock code", "stockcode", "stock number", "item code", "product code",
	"code", "sku", "please", "what is", "whats", "i need", "i want",
	"looking for", "find", "tell me",
}

var cancelPhrases = []string{
	"cancel", "never mind", "nevermind", "forget it", "no thanks",
	"neither", "none of those", "none of these", "start over",
}

// Resolver performs catalog lookups and renders replies through the shared
// text table.
type Resolver struct {
	texts *reply.Texts
}

func NewResolver(texts *reply.Texts) *Resolver {
	return &Resolver{texts: texts}
}

// ExtractCode pulls an explicit stock-code shape out of the raw message.
func ExtractCode(raw string) (string, bool) {
	m := codeRe.FindString(strings.ToUpper(raw))
	if m == "" {
		return "", false
	}
	return m, true
}

// IsRequest reports whether the message asks for a stock code by name.
func IsRequest(normalized string) bool {
	repaired := textkit.RepairText(normalized)
	for _, p := range requestPhrases {
		if strings.Contains(repaired, p) {
			return true
		}
	}
	return false
}

// IsCancel reports an explicit abandon of a pending choice.
func IsCancel(normalized string) bool {
	repaired := textkit.RepairText(normalized)
	for _, p := range cancelPhrases {
		if strings.Contains(repaired, p) {
			return true
		}
	}
	return false
}

// NormalizeQuery strips request phrasing and filler stopwords, leaving the
// product description to match against the catalog.
func NormalizeQuery(normalized string) string {
	q := textkit.RepairText(normalized)
	for _, junk := range junkPhrases {
		q = strings.ReplaceAll(q, junk, " ")
	}
	q = stopwordRe.ReplaceAllString(q, " ")
	return strings.Join(strings.Fields(q), " ")
}

// LookupCode answers an explicit code against the catalog. First exact match
// wins; codes are compared case-insensitively.
func (r *Resolver) LookupCode(code string, rows []catalog.Row) string {
	if len(rows) == 0 {
		return r.texts.StockUnavailable()
	}
	want := strings.ToUpper(code)
	for _, row := range rows {
		if strings.ToUpper(row.StockCode) == want {
			return r.texts.ProductForCode(want, row.ProductName)
		}
	}
	return r.texts.CodeNotFound(want)
}

type scoredRow struct {
	row   catalog.Row
	score float64
}

// Resolve runs the fuzzy name lookup for query (already through
// NormalizeQuery) and mutates the session per the outcome: a direct answer or
// a miss leaves it Idle, a middling match stores up to three candidates and
// asks the user to choose.
func (r *Resolver) Resolve(query string, rows []catalog.Row, sess *store.Session) string {
	sess.ClearPending()
	if len(rows) == 0 {
		return r.texts.StockUnavailable()
	}
	if query == "" {
		return r.texts.StockNotSure()
	}

	scored := make([]scoredRow, 0, len(rows))
	for _, row := range rows {
		scored = append(scored, scoredRow{
			row:   row,
			score: textkit.Ratio(query, textkit.Normalize(row.ProductName)),
		})
	}
	// stable keeps catalog order on ties, first-seen wins
	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].score > scored[b].score
	})

	top := scored[0]
	switch {
	case top.score >= HighThreshold:
		return r.texts.StockCodeReply(top.row.ProductName, top.row.StockCode)
	case top.score >= MedThreshold:
		n := MaxCandidates
		if len(scored) < n {
			n = len(scored)
		}
		candidates := make([]catalog.Row, n)
		for i := 0; i < n; i++ {
			candidates[i] = scored[i].row
		}
		sess.SetPending(query, candidates)
		return r.texts.ChoicePrompt(candidates)
	default:
		return r.texts.StockNotSure()
	}
}

// Choose handles the turn after a disambiguation prompt: a digit 1-3 picks
// directly, otherwise a fuzzy name restricted to the stored candidates. When
// neither works the same list is shown again and the pending state stays.
func (r *Resolver) Choose(normalized string, sess *store.Session) string {
	candidates := sess.PendingCandidates
	if len(candidates) == 0 {
		sess.ClearPending()
		return r.texts.StockNotSure()
	}

	if m := choiceDigitRe.FindStringSubmatch(normalized); m != nil {
		idx, _ := strconv.Atoi(m[1])
		if idx >= 1 && idx <= len(candidates) {
			chosen := candidates[idx-1]
			sess.ClearPending()
			return r.texts.StockCodeReply(chosen.ProductName, chosen.StockCode)
		}
	}

	query := NormalizeQuery(normalized)
	if query != "" {
		best := -1.0
		bestIdx := -1
		for i, c := range candidates {
			score := textkit.Ratio(query, textkit.Normalize(c.ProductName))
			if score > best {
				best = score
				bestIdx = i
			}
		}
		if bestIdx >= 0 && best >= ChoiceThreshold {
			chosen := candidates[bestIdx]
			sess.ClearPending()
			return r.texts.StockCodeReply(chosen.ProductName, chosen.StockCode)
		}
	}

	return r.texts.ChoicePrompt(candidates)
}
