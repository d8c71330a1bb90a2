package textkit

import (
	"regexp"
	"strings"
)

var (
	// Keep letters, digits, whitespace, '&' and '-'; everything else becomes a space.
	nonWordRe    = regexp.MustCompile(`[^a-z0-9\s&-]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// corrections maps misspellings that show up constantly in widget transcripts
// to the token the user meant. Tokens not in the table pass through unchanged.
var corrections = map[string]string{
	"stcok":      "stock",
	"sotck":      "stock",
	"stok":       "stock",
	"prodcut":    "product",
	"porduct":    "product",
	"producto":   "product",
	"delivry":    "delivery",
	"delievery":  "delivery",
	"delviery":   "delivery",
	"trackin":    "tracking",
	"ordr":       "order",
	"oder":       "order",
	"minimun":    "minimum",
	"miniumum":   "minimum",
	"minumum":    "minimum",
	"adress":     "address",
	"recieve":    "receive",
	"recyled":    "recycled",
	"sustainble": "sustainable",
	"keelco":     "keeleco",
	"kelleco":    "keeleco",
	"invoce":     "invoice",
	"refundd":    "refund",
	"helo":       "hello",
	"thx":        "thanks",
	"thanx":      "thanks",
	"pls":        "please",
	"plz":        "please",
}

// Normalize lowercases the input, replaces every character outside
// letters/digits/whitespace/&/- with a space, collapses whitespace runs and
// trims. Normalize(Normalize(x)) == Normalize(x).
func Normalize(text string) string {
	t := strings.ToLower(text)
	t = nonWordRe.ReplaceAllString(t, " ")
	t = whitespaceRe.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}

// Tokenize splits normalized text on whitespace.
func Tokenize(text string) []string {
	n := Normalize(text)
	if n == "" {
		return nil
	}
	return strings.Fields(n)
}

// collapseStretch caps every run of the same rune at two, so emphasis
// stretching ("helloooo" -> "helloo") shrinks to something the repair table
// can recognise.
func collapseStretch(token string) string {
	var b strings.Builder
	b.Grow(len(token))
	var prev rune
	run := 0
	for _, r := range token {
		if r == prev {
			run++
		} else {
			prev, run = r, 1
		}
		if run <= 2 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// RepairToken collapses emphasis stretching ("helloooo" -> "helloo" -> table
// hit or passthrough) and applies the misspelling table. Stretch collapse runs
// first so "stcokkk" still lands on "stcok" before the lookup.
func RepairToken(token string) string {
	t := collapseStretch(token)
	if fixed, ok := corrections[t]; ok {
		return fixed
	}
	// A double letter left over from stretching may hide a known word
	// ("hellooo" -> "helloo" -> "hello").
	if len(t) > 1 && t[len(t)-1] == t[len(t)-2] {
		if fixed, ok := corrections[t[:len(t)-1]]; ok {
			return fixed
		}
		if _, ok := corrections[t]; !ok {
			single := t[:len(t)-1]
			if single == "hello" || single == "hi" || single == "hey" || single == "bye" {
				return single
			}
		}
	}
	return t
}

// RepairTokens tokenizes text and repairs each token.
func RepairTokens(text string) []string {
	toks := Tokenize(text)
	for i, t := range toks {
		toks[i] = RepairToken(t)
	}
	return toks
}

// RepairText is RepairTokens joined back into a single string, handy for
// substring-based detectors that still want typo tolerance.
func RepairText(text string) string {
	return strings.Join(RepairTokens(text), " ")
}
