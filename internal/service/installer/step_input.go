package installer

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// InputStep collects a free text value, prefilled with the current one
type InputStep struct {
	title    string
	input    textinput.Model
	optional bool
	apply    func(*InstallState, string)
}

func NewInputStep(title, value string, optional bool, apply func(*InstallState, string)) Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 50
	ti.SetValue(value)
	if optional {
		ti.Placeholder = "laisser vide pour ignorer"
	}
	return &InputStep{title: title, input: ti, optional: optional, apply: apply}
}

func (s *InputStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *InputStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		val := strings.TrimSpace(s.input.Value())
		if val != "" || s.optional {
			s.apply(state, val)
			return nil, nil
		}
	}
	return s, cmd
}

func (s *InputStep) View(state *InstallState) string {
	return s.title + " :\n\n" + s.input.View() + "\n\n" + hintStyle.Render("(entrée pour valider)") + "\n"
}
