package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/causette/internal/core"
	"github.com/sandevgo/causette/internal/service/render"
	"github.com/sandevgo/causette/internal/service/session"
	"github.com/sandevgo/causette/internal/service/ui"
	"github.com/sandevgo/causette/pkg/log"
)

const helpLine = "entrée envoyer · ctrl+s lire · ctrl+x stop · ctrl+e quitter recherche · ctrl+y copier · ctrl+l effacer · esc sortir"

// Chat is the session surface the model drives.
type Chat interface {
	Start(ctx context.Context) error
	Submit(ctx context.Context, input string) (session.Outcome, error)
	ExitResearch(ctx context.Context) error
	Clear(ctx context.Context) error
	LastBotMessage() (core.Message, bool)
}

// Speaker reads replies aloud.
type Speaker interface {
	Speak(ctx context.Context, text string) <-chan struct{}
	Stop()
	OnStateChange(fn func(speaking bool))
}

type revealTickMsg struct{}
type speakingMsg bool
type statusMsg string
type errMsg error

type submitDoneMsg struct {
	outcome session.Outcome
	err     error
}

// reveal is the reply being typed out.
type reveal struct {
	block render.Block
	iter  *render.Reveal
	shown string
	done  chan struct{}
}

type model struct {
	ctx     context.Context
	chat    Chat
	speaker Speaker
	speed   time.Duration

	input    textinput.Model
	spinner  spinner.Model
	viewport viewport.Model

	blocks   []render.Block
	typing   bool
	pending  *reveal
	mode     core.Mode
	speaking bool
	status   string
	err      error
	width    int
	height   int
	ready    bool
}

func newModel(ctx context.Context, chat Chat, speaker Speaker, speed time.Duration) model {
	input := textinput.New()
	input.Placeholder = "Écrivez votre message…"
	input.CharLimit = 1000
	input.Width = 60
	input.Focus()

	return model{
		ctx:     ctx,
		chat:    chat,
		speaker: speaker,
		speed:   speed,
		input:   input,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		mode:    core.ModeNormal,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.start())
}

func (m model) start() tea.Cmd {
	return func() tea.Msg {
		if err := m.chat.Start(m.ctx); err != nil {
			return errMsg(err)
		}
		return nil
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 4
		vh := msg.Height - 5
		if vh < 3 {
			vh = 3
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, vh)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = vh
		}
		m.refresh()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			return m, m.submit(text)
		case "ctrl+l":
			return m, m.clear()
		case "ctrl+s":
			return m, m.speak()
		case "ctrl+x":
			return m, m.stopSpeaking()
		case "ctrl+e":
			return m, m.exitResearch()
		case "ctrl+y":
			return m, m.copyLast()
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case appendMsg:
		m.blocks = append(m.blocks, render.FromMessage(core.Message(msg)))
		m.refresh()
		return m, nil

	case clearInputMsg:
		m.input.Reset()
		return m, nil

	case typingMsg:
		m.typing = true
		m.refresh()
		return m, m.spinner.Tick

	case replyMsg:
		m.typing = false
		block := render.FromResponse(msg.reply)
		m.pending = &reveal{block: block, iter: render.NewReveal(block.Text), done: msg.done}
		if m.speed <= 0 {
			m.finishReveal()
			return m, nil
		}
		return m, m.tick()

	case revealTickMsg:
		if m.pending == nil {
			return m, nil
		}
		shown, more := m.pending.iter.Next()
		m.pending.shown = shown
		if !more || m.pending.iter.Done() {
			m.finishReveal()
			return m, nil
		}
		m.refresh()
		return m, m.tick()

	case modeMsg:
		m.mode = core.Mode(msg)
		return m, nil

	case resetMsg:
		m.blocks = nil
		m.typing = false
		m.refresh()
		return m, nil

	case speakingMsg:
		m.speaking = bool(msg)
		return m, nil

	case statusMsg:
		m.status = string(msg)
		return m, nil

	case submitDoneMsg:
		m.status = ""
		if msg.outcome.StorageErr != nil {
			m.status = "⚠ historique non sauvegardé"
		}
		switch {
		case errors.Is(msg.err, core.ErrBusy):
			m.status = "réponse en attente…"
		case msg.err != nil && !errors.Is(msg.err, context.Canceled):
			m.status = msg.err.Error()
		}
		return m, nil

	case errMsg:
		m.err = msg
		return m, nil

	case spinner.TickMsg:
		if !m.typing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.refresh()
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) finishReveal() {
	p := m.pending
	m.pending = nil
	m.blocks = append(m.blocks, p.block)
	close(p.done)
	m.refresh()
}

func (m model) tick() tea.Cmd {
	return tea.Tick(m.speed, func(time.Time) tea.Msg {
		return revealTickMsg{}
	})
}

func (m model) submit(text string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.chat.Submit(m.ctx, text)
		return submitDoneMsg{outcome: out, err: err}
	}
}

func (m model) clear() tea.Cmd {
	return func() tea.Msg {
		if err := m.chat.Clear(m.ctx); err != nil {
			return actionFailed(err)
		}
		return statusMsg("historique effacé")
	}
}

func (m model) exitResearch() tea.Cmd {
	return func() tea.Msg {
		if err := m.chat.ExitResearch(m.ctx); err != nil {
			return actionFailed(err)
		}
		return nil
	}
}

func actionFailed(err error) tea.Msg {
	if errors.Is(err, core.ErrBusy) {
		return statusMsg("réponse en attente…")
	}
	return statusMsg(err.Error())
}

func (m model) speak() tea.Cmd {
	return func() tea.Msg {
		last, ok := m.chat.LastBotMessage()
		if !ok {
			return nil
		}
		m.speaker.Speak(m.ctx, last.Text)
		return nil
	}
}

func (m model) stopSpeaking() tea.Cmd {
	return func() tea.Msg {
		m.speaker.Stop()
		return nil
	}
}

func (m model) copyLast() tea.Cmd {
	return func() tea.Msg {
		last, ok := m.chat.LastBotMessage()
		if !ok {
			return nil
		}
		if err := clipboard.WriteAll(last.Text); err != nil {
			log.FromCtx(m.ctx).Warn().Err(err).Msg("clipboard unavailable")
			return statusMsg("presse-papiers indisponible")
		}
		return statusMsg("copié ✓")
	}
}

func (m *model) refresh() {
	if !m.ready {
		return
	}

	parts := make([]string, 0, len(m.blocks)+1)
	for _, b := range m.blocks {
		parts = append(parts, ui.Bubble(b, b.Text, m.width))
	}
	if m.pending != nil {
		parts = append(parts, ui.Bubble(m.pending.block, m.pending.shown, m.width))
	}
	if m.typing {
		parts = append(parts, ui.BotLabelStyle.Render(ui.BotLabel+" ›")+"\n  "+m.spinner.View())
	}

	m.viewport.SetContent(strings.Join(parts, "\n\n"))
	m.viewport.GotoBottom()
}

func (m model) View() string {
	if m.err != nil {
		return ui.ErrorStyle.Render("Erreur : "+m.err.Error()) + "\n\n(ctrl+c pour quitter)\n"
	}
	if !m.ready {
		return "…"
	}

	header := ui.TitleStyle.UnsetMarginBottom().Render(core.CausetteName)
	if m.mode == core.ModeResearch {
		header += "  " + ui.ResearchStyle.Render(ui.ResearchLabel)
	}
	if m.speaking {
		header += "  🔊"
	}

	footer := ui.StatusStyle.Render(helpLine)
	if m.status != "" {
		footer = ui.StatusStyle.Render(m.status)
	}

	return header + "\n" + m.viewport.View() + "\n" + m.input.View() + "\n" + footer
}
