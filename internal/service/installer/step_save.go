package installer

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// SaveEnvStep writes the collected configuration to the .env file
type SaveEnvStep struct {
	force bool
	err   error
	path  string
	saved bool
}

func NewSaveEnvStep(force bool) Step {
	return &SaveEnvStep{force: force}
}

func (s *SaveEnvStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *SaveEnvStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if s.saved {
		return nil, nil
	}
	if s.err != nil {
		return s, tea.Quit
	}

	// Perform save synchronously (fast operation)
	path, err := WriteEnv(state, s.force)
	if err != nil {
		s.err = err
		return s, tea.Quit
	}

	s.path = path
	s.saved = true
	return nil, nil // Signal completion
}

func (s *SaveEnvStep) View(state *InstallState) string {
	if s.err != nil {
		return errorStyle.Render(fmt.Sprintf("Erreur : %v", s.err)) + "\n"
	}
	if s.saved {
		return fmt.Sprintf("Configuration enregistrée dans %s\n", s.path)
	}
	return "Enregistrement…\n"
}
