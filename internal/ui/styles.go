package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	HeaderStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	MutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	FailureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	WarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// SetColor enables or disables styling. Disabling also honours the
// NO_COLOR convention when enabled is true.
func SetColor(enabled bool) {
	if !enabled || termenv.EnvNoColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
