// Package controls implements the edit controls of the editor as small
// bubbletea sub-models. Controls never touch the property store: they emit
// change requests as messages and the editor applies them.
package controls

import (
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/canvasgen/internal/canvas"
	"github.com/alexisbeaulieu97/canvasgen/internal/props"
)

// Control is one field of the property form.
type Control interface {
	Key() string
	Label() string
	Focus() tea.Cmd
	Blur()
	Focused() bool
	// Update handles a message. Key messages are only delivered to the
	// focused control; everything else is broadcast.
	Update(msg tea.Msg) tea.Cmd
	View() string
	// Sync replaces the control's local state with the upstream value
	// from bag and drops any pending debounced change.
	Sync(bag props.Bag)
}

// ChangeMsg requests that Key of Kind be set to Value.
type ChangeMsg struct {
	Kind  canvas.Kind
	Key   string
	Value any
}

// UpdateItemMsg requests that Field of item Index in ListKey be set.
type UpdateItemMsg struct {
	Kind    canvas.Kind
	ListKey string
	Index   int
	Field   string
	Value   string
}

// AddItemMsg requests a new template item at the end of ListKey.
type AddItemMsg struct {
	Kind    canvas.Kind
	ListKey string
}

// RemoveItemMsg requests removal of item Index from ListKey.
type RemoveItemMsg struct {
	Kind    canvas.Kind
	ListKey string
	Index   int
}

var lastID atomic.Int64

func nextID() int {
	return int(lastID.Add(1))
}

// base carries the identity shared by every control.
type base struct {
	kind    canvas.Kind
	key     string
	label   string
	focused bool
}

func (b *base) Key() string   { return b.key }
func (b *base) Label() string { return b.label }
func (b *base) Focused() bool { return b.focused }

func (b *base) change(value any) tea.Cmd {
	msg := ChangeMsg{Kind: b.kind, Key: b.key, Value: value}
	return func() tea.Msg { return msg }
}
