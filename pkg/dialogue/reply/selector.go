package reply

import "math/rand"

// Selector picks an index in [0, n). The choice function is injected wherever
// a reply is drawn from a list so tests can pin the outcome.
type Selector func(n int) int

// RandomSelector returns the production selector backed by the given source.
func RandomSelector(r *rand.Rand) Selector {
	return func(n int) int {
		if n <= 1 {
			return 0
		}
		return r.Intn(n)
	}
}

// FixedSelector always returns idx (clamped), for deterministic tests.
func FixedSelector(idx int) Selector {
	return func(n int) int {
		if n <= 0 {
			return 0
		}
		if idx >= n {
			return n - 1
		}
		return idx
	}
}

// Pick returns one element of responses using the selector. A single-element
// list never consults the selector.
func Pick(sel Selector, responses []string) string {
	if len(responses) == 0 {
		return ""
	}
	if len(responses) == 1 {
		return responses[0]
	}
	return responses[sel(len(responses))]
}
