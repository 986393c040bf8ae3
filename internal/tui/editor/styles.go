package editor

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("99")
	successColor = lipgloss.Color("42")
	errorColor   = lipgloss.Color("196")
	mutedColor   = lipgloss.Color("245")
	accentColor  = lipgloss.Color("212")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			PaddingLeft(1)

	paneStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)

	activePaneStyle = paneStyle.
			BorderForeground(primaryColor)

	paneTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	sidebarItemStyle = lipgloss.NewStyle().
				PaddingLeft(1)

	sidebarSelectedStyle = lipgloss.NewStyle().
				Foreground(accentColor).
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderLeft(true).
				BorderForeground(primaryColor)

	copiedStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	noticeStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	markupStyle = lipgloss.NewStyle().
			Foreground(mutedColor)
)
