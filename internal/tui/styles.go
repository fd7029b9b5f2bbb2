package tui

import "github.com/charmbracelet/lipgloss"

var (
	// TitleStyle renders the heading above the phase list.
	TitleStyle = lipgloss.NewStyle().Bold(true)

	spinnerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	doneMarkStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorMarkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	faintStyle     = lipgloss.NewStyle().Faint(true)
)
