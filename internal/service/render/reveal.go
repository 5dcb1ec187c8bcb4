package render

import (
	"context"
	"time"
)

// Reveal yields growing prefixes of a text, one rune at a time.
type Reveal struct {
	runes []rune
	pos   int
}

func NewReveal(text string) *Reveal {
	return &Reveal{runes: []rune(text)}
}

// Next returns the next prefix and false once the full text was returned.
func (r *Reveal) Next() (string, bool) {
	if r.pos >= len(r.runes) {
		return string(r.runes), false
	}
	r.pos++
	return string(r.runes[:r.pos]), true
}

func (r *Reveal) Done() bool {
	return r.pos >= len(r.runes)
}

func (r *Reveal) Full() string {
	return string(r.runes)
}

// Play calls fn with every prefix, one per tick. A zero speed reveals the
// whole text at once. Cancelling ctx stops the reveal after showing the full
// text.
func Play(ctx context.Context, text string, speed time.Duration, fn func(prefix string)) error {
	r := NewReveal(text)
	if speed <= 0 || r.Done() {
		fn(r.Full())
		return nil
	}

	ticker := time.NewTicker(speed)
	defer ticker.Stop()

	for {
		prefix, more := r.Next()
		fn(prefix)
		if !more || r.Done() {
			return nil
		}

		select {
		case <-ctx.Done():
			fn(r.Full())
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
