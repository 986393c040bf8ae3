// Package editor is the interactive component editor: a sidebar of
// component kinds, the property form of the active kind, a terminal
// preview and the raw markup, all bound to a session.Session.
package editor

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/canvasgen/internal/canvas"
	"github.com/alexisbeaulieu97/canvasgen/internal/controls"
	"github.com/alexisbeaulieu97/canvasgen/internal/logger"
	"github.com/alexisbeaulieu97/canvasgen/internal/preview"
	"github.com/alexisbeaulieu97/canvasgen/internal/session"
)

const (
	defaultWidth  = 120
	defaultHeight = 36
	sidebarWidth  = 22
	formWidth     = 50
)

// Options configures the editor model.
type Options struct {
	// Debounce is the quiet period of text controls.
	Debounce time.Duration
	Logger   *logger.Logger
}

// Model is the Bubbletea state of the editor.
type Model struct {
	session  *session.Session
	log      *logger.Logger
	debounce time.Duration

	kinds  []canvas.Kind
	cursor int
	focus  focusArea

	form     *controls.Form
	formView viewport.Model
	preview  *preview.Renderer
	rendered string
	markup   viewport.Model

	keys   keyMap
	help   help.Model
	notice string

	width  int
	height int
}

// NewModel creates an editor over s, starting on the session's active kind.
func NewModel(s *session.Session, opts Options) Model {
	m := Model{
		session:  s,
		log:      opts.Logger,
		debounce: opts.Debounce,
		kinds:    canvas.Kinds(),
		preview:  preview.New(0),
		keys:     defaultKeyMap(),
		help:     help.New(),
		formView: viewport.New(formWidth, 10),
		markup:   viewport.New(40, 10),
	}
	for i, k := range m.kinds {
		if k == s.Active() {
			m.cursor = i
		}
	}
	m.rebuildForm()
	m.resize(defaultWidth, defaultHeight)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Active returns the kind being edited.
func (m Model) Active() canvas.Kind {
	return m.session.Active()
}

// Form returns the form of the active kind.
func (m Model) Form() *controls.Form {
	return m.form
}

// Notice returns the last rejected edit, if any.
func (m Model) Notice() string {
	return m.notice
}

// selectKind makes the kind under the cursor active and rebuilds the form.
// The previous form is dropped together with any pending debounced edit.
func (m *Model) selectKind() {
	k := m.kinds[m.cursor]
	if k == m.session.Active() {
		return
	}
	if err := m.session.SelectType(k); err != nil {
		m.reject(err, map[string]any{"kind": k.String()})
		return
	}
	m.rebuildForm()
	m.refresh()
}

func (m *Model) rebuildForm() {
	active := m.session.Active()
	m.form = controls.NewForm(canvas.SchemaFor(active), m.session.Bag(), m.debounce)
	if m.focus == focusForm {
		m.form.Activate()
	}
	m.refreshForm()
}

// refresh re-renders everything derived from the generated HTML.
func (m *Model) refresh() {
	html := m.session.HTML()
	out, err := m.preview.Render(html)
	if err != nil {
		m.log.DebugErr(err, "preview render failed")
		out = ""
	}
	m.rendered = out
	m.markup.SetContent(markupStyle.Width(m.markup.Width).Render(html))
	m.refreshForm()
}

// refreshForm redraws the form and keeps the focused control in view.
func (m *Model) refreshForm() {
	m.formView.SetContent(m.form.View())
	offset := m.form.FocusOffset()
	if offset < m.formView.YOffset || offset >= m.formView.YOffset+m.formView.Height-2 {
		m.formView.SetYOffset(offset)
	}
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width

	bodyHeight := max(height-4, 6)
	m.formView.Width = formWidth
	m.formView.Height = bodyHeight - 2

	rightWidth := max(width-sidebarWidth-formWidth-10, 20)
	m.preview.SetWidth(rightWidth)
	m.markup.Width = rightWidth
	m.markup.Height = max(bodyHeight/2-3, 3)
	m.refresh()
}

func (m *Model) reject(err error, fields map[string]any) {
	m.notice = err.Error()
	fields["error"] = err.Error()
	m.log.WithFields(fields).Warn("edit rejected")
}
