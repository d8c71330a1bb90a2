package textkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatioIdentityAndSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"polar bear plush 20cm", "polar bear plush 20cm"},
		{"teddy", "tedy"},
		{"keeleco dinosaur", "dinosaur"},
		{"abc", "xyz"},
	}
	for _, p := range pairs {
		assert.Equal(t, 1.0, Ratio(p[0], p[0]))
		assert.Equal(t, Ratio(p[0], p[1]), Ratio(p[1], p[0]))
	}
}

func TestRatioEmptyConvention(t *testing.T) {
	assert.Equal(t, 1.0, Ratio("", ""))
	assert.Equal(t, 0.0, Ratio("", "teddy"))
	assert.Equal(t, 0.0, Ratio("teddy", ""))
}

func TestRatioBounds(t *testing.T) {
	r := Ratio("polar bear plush", "polar bare plush 20cm")
	assert.Greater(t, r, 0.0)
	assert.LessOrEqual(t, r, 1.0)
	assert.Equal(t, 0.0, Ratio("aaa", "bbb"))
}

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"kitten", "sitting", 3},
		{"stock", "stcok", 2},
		{"", "abc", 3},
		{"abc", "", 3},
		{"same", "same", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EditDistance(tt.a, tt.b), "%q vs %q", tt.a, tt.b)
	}
}

func TestTokenClose(t *testing.T) {
	// exact always close
	assert.True(t, TokenClose("sku", "sku"))
	// short keywords allow a single edit
	assert.True(t, TokenClose("sku", "sk"))
	assert.False(t, TokenClose("sku", "s"))
	// longer keywords allow two edits
	assert.True(t, TokenClose("delivery", "delivry"))
	assert.True(t, TokenClose("tracking", "trackin"))
	assert.False(t, TokenClose("tracking", "trampoline"))
}

func TestScoreConceptTokens(t *testing.T) {
	score := ScoreConceptTokens("stcok code for teddy", []string{"stock", "code"}, []string{"sku", "teddy"})
	// both must tokens hit (+2 each) and "teddy" hits (+1)
	assert.GreaterOrEqual(t, score, 5)

	assert.Equal(t, 0, ScoreConceptTokens("", []string{"stock"}, nil))
}
