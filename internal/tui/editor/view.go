package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current model state.
func (m Model) View() string {
	header := titleStyle.Render("canvasgen • " + m.session.Active().DisplayName())
	if m.session.Copied() {
		header += "  " + copiedStyle.Render("¡Copiado!")
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderSidebar(),
		m.renderForm(),
		lipgloss.JoinVertical(lipgloss.Left, m.renderPreview(), m.renderMarkup()),
	)

	footer := m.help.View(m.keys)
	if m.notice != "" {
		footer = noticeStyle.Render(m.notice) + "\n" + footer
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) renderSidebar() string {
	items := make([]string, len(m.kinds))
	for i, k := range m.kinds {
		if i == m.cursor {
			items[i] = sidebarSelectedStyle.Render(k.DisplayName())
		} else {
			items[i] = sidebarItemStyle.Render(k.DisplayName())
		}
	}
	content := paneTitleStyle.Render("Componentes") + "\n" + strings.Join(items, "\n")
	return m.pane(focusSidebar).Width(sidebarWidth).Render(content)
}

func (m Model) renderForm() string {
	content := paneTitleStyle.Render("Propiedades") + "\n" + m.formView.View()
	return m.pane(focusForm).Width(formWidth + 2).Render(content)
}

func (m Model) renderPreview() string {
	content := paneTitleStyle.Render("Vista previa") + "\n" + m.rendered
	return paneStyle.Width(m.preview.Width() + 2).Render(content)
}

func (m Model) renderMarkup() string {
	content := paneTitleStyle.Render("HTML") + "\n" + m.markup.View()
	return paneStyle.Width(m.markup.Width + 2).Render(content)
}

func (m Model) pane(area focusArea) lipgloss.Style {
	if m.focus == area {
		return activePaneStyle
	}
	return paneStyle
}
