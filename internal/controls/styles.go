package controls

import "github.com/charmbracelet/lipgloss"

var (
	accentColor  = lipgloss.Color("212")
	primaryColor = lipgloss.Color("99")
	mutedColor   = lipgloss.Color("245")

	labelStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	focusedLabelStyle = lipgloss.NewStyle().
				Foreground(accentColor).
				Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	selectedOptionStyle = lipgloss.NewStyle().
				Foreground(accentColor).
				Bold(true)

	tileStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(mutedColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(mutedColor)

	selectedTileStyle = tileStyle.
				Foreground(accentColor).
				BorderForeground(primaryColor).
				Bold(true)

	itemHeaderStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	fieldNameStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	activeFieldNameStyle = lipgloss.NewStyle().
				Foreground(accentColor)

	fieldStyle = lipgloss.NewStyle().
			MarginBottom(1)
)
