package speech

import (
	"context"
	"sync"

	"github.com/sandevgo/causette/internal/core"
	"github.com/sandevgo/causette/pkg/log"
)

// Engine pairs a backend with the voice it speaks with.
type Engine struct {
	Backend core.VoiceBackend
	Voice   core.Voice
}

// Controller plays one utterance at a time. A new utterance preempts the
// current one.
type Controller struct {
	engines  []Engine
	maxChunk int

	// op serializes Speak and Stop
	op sync.Mutex

	mu       sync.Mutex
	speaking bool
	cancel   context.CancelFunc
	done     chan struct{}
	listener func(speaking bool)
}

// NewController tries engines in order and speaks with the first available.
func NewController(maxChunk int, engines ...Engine) *Controller {
	return &Controller{
		engines:  engines,
		maxChunk: maxChunk,
	}
}

func (c *Controller) OnStateChange(fn func(speaking bool)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listener = fn
}

func (c *Controller) IsSpeaking() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.speaking
}

// Available reports the engine Speak would use.
func (c *Controller) Available() (string, bool) {
	e, ok := c.pick()
	if !ok {
		return "", false
	}
	return e.Backend.Name(), true
}

func (c *Controller) pick() (Engine, bool) {
	for _, e := range c.engines {
		if e.Backend != nil && e.Backend.Available() {
			return e, true
		}
	}
	return Engine{}, false
}

// Speak cancels any utterance in progress and starts speaking text. The
// returned channel is closed once the last chunk has finished, or on stop.
func (c *Controller) Speak(ctx context.Context, text string) <-chan struct{} {
	c.op.Lock()
	defer c.op.Unlock()

	c.stop()

	done := make(chan struct{})
	logger := log.FromCtx(ctx)

	engine, ok := c.pick()
	if !ok {
		logger.Warn().Err(core.ErrNoVoice).Msg("speech skipped")
		close(done)
		return done
	}

	chunks := SplitChunks(text, c.maxChunk)
	if len(chunks) == 0 {
		close(done)
		return done
	}

	runCtx, cancel := context.WithCancel(ctx)

	c.mu.Lock()
	c.speaking = true
	c.cancel = cancel
	c.done = done
	listener := c.listener
	c.mu.Unlock()

	if listener != nil {
		listener(true)
	}

	logger.Debug().Str("engine", engine.Backend.Name()).Int("chunks", len(chunks)).Msg("speaking")
	go c.run(runCtx, engine, chunks, done)

	return done
}

func (c *Controller) run(ctx context.Context, engine Engine, chunks []string, done chan struct{}) {
	logger := log.FromCtx(ctx)

	defer func() {
		c.mu.Lock()
		c.speaking = false
		c.cancel = nil
		c.done = nil
		listener := c.listener
		c.mu.Unlock()

		if listener != nil {
			listener(false)
		}
		close(done)
	}()

	for i, chunk := range chunks {
		if ctx.Err() != nil {
			return
		}
		if err := engine.Backend.Speak(ctx, chunk, engine.Voice); err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Warn().Err(err).Int("chunk", i).Str("engine", engine.Backend.Name()).Msg("chunk failed, skipping")
		}
	}
}

// Stop cancels current and queued speech and waits until playback is over.
func (c *Controller) Stop() {
	c.op.Lock()
	defer c.op.Unlock()
	c.stop()
}

func (c *Controller) stop() {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}
