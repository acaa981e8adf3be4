package report

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	colorSuccess = lipgloss.Color("34")  // Green
	colorError   = lipgloss.Color("196") // Red
	colorMuted   = lipgloss.Color("240") // Dark gray
)

// Styles for report rendering.
var (
	headerStyle = lipgloss.NewStyle().Bold(true)

	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)

	errorStyle = lipgloss.NewStyle().Foreground(colorError)

	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)
)
