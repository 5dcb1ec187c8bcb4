package installer

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sandevgo/causette/internal/config"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	itemStyle  = lipgloss.NewStyle().PaddingLeft(2)
	selStyle   = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("5"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Step represents a single step in the setup wizard
type Step interface {
	Init() tea.Cmd
	Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd)
	View(state *InstallState) string
}

func getSteps(state *InstallState, force bool) []Step {
	return []Step{
		NewInputStep("Adresse du serveur de chat", state.App.Endpoint, false, func(s *InstallState, v string) {
			s.App.Endpoint = v
		}),
		NewChoiceStep("Stockage de l'historique", []string{config.StorageSQLite, config.StorageMemory}, func(s *InstallState, v string) {
			s.App.Storage = v
		}),
		NewChoiceStep("Langue de la synthèse vocale", []string{"fr-FR", "en-US"}, func(s *InstallState, v string) {
			s.Speech.Lang = v
		}),
		NewInputStep("Service vocal distant (optionnel)", state.Speech.VoiceURL, true, func(s *InstallState, v string) {
			s.Speech.VoiceURL = v
		}),
		NewSaveEnvStep(force),
	}
}

type errMsg error
type nextMsg struct{}

// model is the main Bubble Tea model that orchestrates the steps
type model struct {
	steps       []Step
	currentStep int
	state       *InstallState
	quitting    bool
	err         error
	width       int
	height      int
}

func initialModel(state *InstallState, force bool) model {
	return model{
		steps:       getSteps(state, force),
		currentStep: 0,
		state:       state,
	}
}

func (m model) Init() tea.Cmd {
	if len(m.steps) > 0 && m.steps[0] != nil {
		return m.steps[0].Init()
	}
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, tea.Quit
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case errMsg:
		m.err = msg
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
	}

	if m.currentStep >= len(m.steps) {
		return m, tea.Quit
	}

	nextStep, cmd := m.steps[m.currentStep].Update(msg, m.state, m.width, m.height)

	if nextStep == nil {
		// Step indicated completion, move to next
		m.currentStep++
		if m.currentStep >= len(m.steps) {
			return m, tea.Quit
		}
		return m, m.steps[m.currentStep].Init()
	}

	if nextStep != m.steps[m.currentStep] {
		m.steps[m.currentStep] = nextStep
	}

	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return "Configuration annulée.\n"
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Erreur : %v", m.err)) + "\n\n(ctrl+c pour quitter)\n"
	}

	if m.currentStep >= len(m.steps) {
		return "Configuration terminée !\n"
	}

	return titleStyle.Render("Configuration de Causette 🐈") + "\n\n" + m.steps[m.currentStep].View(m.state)
}

// RunWizard starts the TUI and returns the saved state
func RunWizard(state *InstallState, force bool) (*InstallState, error) {
	p := tea.NewProgram(initialModel(state, force))
	m, err := p.Run()
	if err != nil {
		return nil, err
	}

	finalModel := m.(model)
	if finalModel.quitting {
		return nil, fmt.Errorf("causette setup interrupted")
	}
	for _, step := range finalModel.steps {
		if s, ok := step.(*SaveEnvStep); ok && s.err != nil {
			return nil, s.err
		}
	}

	return finalModel.state, nil
}
