package preview

import "github.com/charmbracelet/lipgloss"

var mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280")).Italic(true)
