package ui

import "github.com/charmbracelet/lipgloss"

var (
	// TitleStyle ANSI 6 (Cyan) reads well on dark and light terminals
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).MarginBottom(1)

	// UsageStyle ANSI 2 (Green) for arguments and usage lines
	UsageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	// DescStyle ANSI 8 (Bright Black) keeps descriptions in the background
	DescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// FlagStyle ANSI 3 (Yellow) for flags
	FlagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// Chat surface
var (
	UserLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
	BotLabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	BubbleStyle    = lipgloss.NewStyle().PaddingLeft(2)
	MediaStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true).PaddingLeft(2)
	ResearchStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("3")).Padding(0, 1)
	StatusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	ErrorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

const (
	UserLabel     = "Vous"
	BotLabel      = "Assistant"
	ResearchLabel = "🔍 Mode recherche"
)
