package cli

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/sandevgo/causette/internal/core"
	"github.com/sandevgo/causette/internal/service/render"
	"github.com/sandevgo/causette/internal/service/ui"
)

// LinePresenter prints the conversation as plain scrolling lines.
type LinePresenter struct {
	mu    sync.Mutex
	out   io.Writer
	speed time.Duration
	// muted drops user messages once the prompt already shows what was typed.
	muted bool
}

func NewLinePresenter(out io.Writer, speed time.Duration) *LinePresenter {
	return &LinePresenter{out: out, speed: speed}
}

// MuteUserEcho stops printing user messages. History replayed before the
// call is still shown in full.
func (p *LinePresenter) MuteUserEcho() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = true
}

func (p *LinePresenter) AppendMessage(msg core.Message) {
	p.mu.Lock()
	skip := p.muted && msg.Sender == core.SenderUser
	p.mu.Unlock()
	if skip {
		return
	}
	p.show(render.FromMessage(msg))
}

func (p *LinePresenter) ClearInput() {}

func (p *LinePresenter) ShowTyping() {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, ui.StatusStyle.Render("…"))
}

// ReplaceTyping types the reply out at the configured speed.
func (p *LinePresenter) ReplaceTyping(ctx context.Context, reply core.Normalized) error {
	block := render.FromResponse(reply)

	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintln(p.out, ui.BotLabelStyle.Render(ui.BotLabel+" ›"))
	fmt.Fprint(p.out, "  ")

	written := 0
	err := render.Play(ctx, block.Text, p.speed, func(prefix string) {
		delta := string([]rune(prefix)[written:])
		written = utf8.RuneCountInString(prefix)
		fmt.Fprint(p.out, delta)
	})
	fmt.Fprintln(p.out)
	if block.Image != "" {
		fmt.Fprintln(p.out, ui.MediaStyle.Render("🖼  "+block.Image))
	}
	fmt.Fprintln(p.out)
	return err
}

func (p *LinePresenter) SetMode(mode core.Mode) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if mode == core.ModeResearch {
		fmt.Fprintln(p.out, ui.ResearchStyle.Render(ui.ResearchLabel))
	}
}

func (p *LinePresenter) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, ui.StatusStyle.Render("— historique effacé —"))
}

func (p *LinePresenter) show(b render.Block) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, ui.Bubble(b, b.Text, 0))
	fmt.Fprintln(p.out)
}
