package websocket

import (
	"math/rand"
	"time"
)

// DelayStrategy paces the widget's "thinking" and "typing" indicators. It is
// purely cosmetic and lives outside the decision pipeline; tests use NoDelay.
type DelayStrategy interface {
	ThinkingPause()
	TypingPause(replyLength int)
}

type randomDelay struct {
	r *rand.Rand
}

// NewRandomDelay mimics a human agent: a short think, then a typing pause
// that grows with the reply length.
func NewRandomDelay(seed int64) DelayStrategy {
	return &randomDelay{r: rand.New(rand.NewSource(seed))}
}

func (d *randomDelay) ThinkingPause() {
	time.Sleep(time.Duration(300+d.r.Intn(500)) * time.Millisecond)
}

func (d *randomDelay) TypingPause(replyLength int) {
	base := 400 + replyLength*3
	if base > 2200 {
		base = 2200
	}
	time.Sleep(time.Duration(base+d.r.Intn(300)) * time.Millisecond)
}

type noDelay struct{}

// NoDelay skips all pauses.
func NoDelay() DelayStrategy { return noDelay{} }

func (noDelay) ThinkingPause()  {}
func (noDelay) TypingPause(int) {}
