package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/canvasgen/internal/controls"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case controls.ChangeMsg:
		m.notice = ""
		if err := m.session.SetProperty(msg.Kind, msg.Key, msg.Value); err != nil {
			m.reject(err, map[string]any{"kind": msg.Kind.String(), "key": msg.Key})
		}
		m.refresh()
		return m, nil

	case controls.UpdateItemMsg:
		m.notice = ""
		if err := m.session.UpdateListItem(msg.Kind, msg.ListKey, msg.Index, msg.Field, msg.Value); err != nil {
			m.reject(err, map[string]any{"kind": msg.Kind.String(), "key": msg.ListKey, "index": msg.Index})
		}
		m.refresh()
		return m, nil

	case controls.AddItemMsg:
		m.notice = ""
		if err := m.session.AddListItem(msg.Kind, msg.ListKey); err != nil {
			m.reject(err, map[string]any{"kind": msg.Kind.String(), "key": msg.ListKey})
			return m, nil
		}
		m.form.SyncLists(m.session.Bag())
		m.refresh()
		return m, nil

	case controls.RemoveItemMsg:
		m.notice = ""
		if err := m.session.RemoveListItem(msg.Kind, msg.ListKey, msg.Index); err != nil {
			m.reject(err, map[string]any{"kind": msg.Kind.String(), "key": msg.ListKey, "index": msg.Index})
			return m, nil
		}
		m.form.SyncLists(m.session.Bag())
		m.refresh()
		return m, nil

	case copyAckExpiredMsg:
		return m, nil
	}

	// Debounce ticks and cursor blinks belong to the controls.
	cmd := m.form.Update(msg)
	m.refreshForm()
	return m, cmd
}

// handleKeyPress handles keys that apply everywhere, then dispatches by
// focus.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Copy):
		if m.session.CopyGeneratedHTML() {
			return m, copyAckExpiryCmd(m.session.AckDuration())
		}
		return m, nil
	case key.Matches(msg, m.keys.ScrollUp):
		m.markup.ViewUp()
		return m, nil
	case key.Matches(msg, m.keys.ScrollDown):
		m.markup.ViewDown()
		return m, nil
	}

	if m.focus == focusForm {
		return m.handleFormKeys(msg)
	}
	return m.handleSidebarKeys(msg)
}

func (m Model) handleSidebarKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.selectKind()
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.kinds)-1 {
			m.cursor++
			m.selectKind()
		}
		return m, nil
	case key.Matches(msg, m.keys.Select), key.Matches(msg, m.keys.Next):
		m.focus = focusForm
		cmd := m.form.Activate()
		m.refreshForm()
		return m, cmd
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	return m, nil
}

func (m Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) {
		m.focus = focusSidebar
		m.form.Deactivate()
		m.refreshForm()
		return m, nil
	}
	cmd := m.form.Update(msg)
	m.refreshForm()
	return m, cmd
}
