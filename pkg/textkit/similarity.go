package textkit

// Ratio returns a whole-string similarity score in [0,1] computed from the
// longest common subsequence of a and b: 2*lcs/(len(a)+len(b)). It is
// symmetric and Ratio(x, x) == 1. Convention for empty input: both sides
// empty counts as identical (1); exactly one empty side scores 0. The stock
// resolver never feeds an empty catalog name through here, it answers the
// degraded "can't access stock codes" path first.
func Ratio(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	lcs := lcsLength(a, b)
	return 2 * float64(lcs) / float64(len(a)+len(b))
}

// lcsLength is the classic two-row DP over bytes. Inputs are normalized
// lowercase text, so byte-wise comparison is fine.
func lcsLength(a, b string) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for j := 1; j <= len(b); j++ {
		for i := 1; i <= len(a); i++ {
			if a[i-1] == b[j-1] {
				curr[i] = prev[i-1] + 1
			} else if prev[i] >= curr[i-1] {
				curr[i] = prev[i]
			} else {
				curr[i] = curr[i-1]
			}
		}
		prev, curr = curr, prev
		for i := range curr {
			curr[i] = 0
		}
	}
	return prev[len(a)]
}

// EditDistance returns the Levenshtein distance between a and b
// (single-character insert/delete/substitute, unit cost).
func EditDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if len(a) > len(b) {
		a, b = b, a
	}
	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}
	for j := 1; j <= len(b); j++ {
		curr[0] = j
		for i := 1; i <= len(a); i++ {
			if a[i-1] == b[j-1] {
				curr[i] = prev[i-1]
			} else {
				curr[i] = 1 + min3(prev[i-1], prev[i], curr[i-1])
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(a)]
}

func min3(a, b, c int) int {
	if a <= b && a <= c {
		return a
	}
	if b <= c {
		return b
	}
	return c
}

// TokenClose reports whether token is a plausible rendering of keyword.
// Exact matches are always close. Short keywords carry high relative typo
// risk, so the allowance scales with keyword length: up to 3 characters one
// edit, anything longer two edits.
func TokenClose(keyword, token string) bool {
	if keyword == token {
		return true
	}
	limit := 2
	if len(keyword) <= 3 {
		limit = 1
	}
	return EditDistance(keyword, token) <= limit
}

// ScoreConceptTokens repairs and tokenizes text, then scores it against a
// concept: +2 for every mustTokens entry present (TokenClose against any
// token), +1 for every anyOfTokens entry present. This is the typo-tolerant
// backbone shared by several topic detectors.
func ScoreConceptTokens(text string, mustTokens, anyOfTokens []string) int {
	toks := RepairTokens(text)
	score := 0
	for _, want := range mustTokens {
		if containsClose(toks, want) {
			score += 2
		}
	}
	for _, want := range anyOfTokens {
		if containsClose(toks, want) {
			score++
		}
	}
	return score
}

func containsClose(tokens []string, keyword string) bool {
	for _, t := range tokens {
		if TokenClose(keyword, t) {
			return true
		}
	}
	return false
}
