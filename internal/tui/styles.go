package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle       = lipgloss.NewStyle().Bold(true)
	helpStyle        = lipgloss.NewStyle().Faint(true)
	compromisedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)
