package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/causette/internal/core"
)

type appendMsg core.Message
type clearInputMsg struct{}
type typingMsg struct{}
type modeMsg core.Mode
type resetMsg struct{}

type replyMsg struct {
	reply core.Normalized
	done  chan struct{}
}

// Presenter forwards session events into the running program.
type Presenter struct {
	mu      sync.RWMutex
	program *tea.Program
}

func NewPresenter() *Presenter {
	return &Presenter{}
}

func (p *Presenter) attach(program *tea.Program) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.program = program
}

func (p *Presenter) send(msg tea.Msg) bool {
	p.mu.RLock()
	program := p.program
	p.mu.RUnlock()

	if program == nil {
		return false
	}
	program.Send(msg)
	return true
}

func (p *Presenter) AppendMessage(msg core.Message) {
	p.send(appendMsg(msg))
}

func (p *Presenter) ClearInput() {
	p.send(clearInputMsg{})
}

func (p *Presenter) ShowTyping() {
	p.send(typingMsg{})
}

// ReplaceTyping blocks until the model has finished revealing the reply.
func (p *Presenter) ReplaceTyping(ctx context.Context, reply core.Normalized) error {
	done := make(chan struct{})
	if !p.send(replyMsg{reply: reply, done: done}) {
		return nil
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Presenter) SetMode(mode core.Mode) {
	p.send(modeMsg(mode))
}

func (p *Presenter) Reset() {
	p.send(resetMsg{})
}
