package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#a3e635"))

	displayStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(1, 4).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#6b7280"))

	runningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#10b981"))
	pausedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b"))
	completeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ef4444"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
)
