package controls

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/canvasgen/internal/canvas"
	"github.com/alexisbeaulieu97/canvasgen/internal/props"
)

// ItemList edits an ordered list of sub-items. Field edits propagate
// immediately; ctrl+n appends a template item and ctrl+d removes the item
// under the cursor.
type ItemList struct {
	base
	fields []string
	items  []props.Item
	inputs [][]textinput.Model
	item   int
	field  int
}

// NewItemList creates a list editor for the given per-item fields.
func NewItemList(kind canvas.Kind, key, label string, fields []string) *ItemList {
	return &ItemList{
		base:   base{kind: kind, key: key, label: label},
		fields: append([]string(nil), fields...),
	}
}

// Len returns the number of items.
func (l *ItemList) Len() int {
	return len(l.items)
}

// Cursor returns the item and field index under the cursor.
func (l *ItemList) Cursor() (item, field int) {
	return l.item, l.field
}

func (l *ItemList) Focus() tea.Cmd {
	l.focused = true
	return l.focusCurrent()
}

func (l *ItemList) Blur() {
	l.focused = false
	l.blurCurrent()
}

func (l *ItemList) Sync(bag props.Bag) {
	l.items = props.CloneItems(bag.Items(l.key))
	l.inputs = make([][]textinput.Model, len(l.items))
	for i, item := range l.items {
		row := make([]textinput.Model, len(l.fields))
		for j, field := range l.fields {
			in := textinput.New()
			in.Prompt = ""
			in.Width = 34
			in.SetValue(item.Get(field, ""))
			row[j] = in
		}
		l.inputs[i] = row
	}
	l.item = clamp(l.item, 0, len(l.items)-1)
	l.field = clamp(l.field, 0, len(l.fields)-1)
	if l.focused {
		l.focusCurrent()
	}
}

func (l *ItemList) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if !l.hasCurrent() {
			return nil
		}
		var cmd tea.Cmd
		l.inputs[l.item][l.field], cmd = l.inputs[l.item][l.field].Update(msg)
		return cmd
	}

	switch key.String() {
	case "ctrl+n":
		return l.emit(AddItemMsg{Kind: l.kind, ListKey: l.key})
	case "ctrl+d":
		if !l.hasCurrent() {
			return nil
		}
		return l.emit(RemoveItemMsg{Kind: l.kind, ListKey: l.key, Index: l.item})
	case "up":
		return l.step(-1)
	case "down":
		return l.step(1)
	}

	if !l.hasCurrent() {
		return nil
	}
	in := &l.inputs[l.item][l.field]
	before := in.Value()
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	if in.Value() == before {
		return cmd
	}
	field := l.fields[l.field]
	l.items[l.item] = l.items[l.item].With(field, in.Value())
	return tea.Batch(cmd, l.emit(UpdateItemMsg{
		Kind:    l.kind,
		ListKey: l.key,
		Index:   l.item,
		Field:   field,
		Value:   in.Value(),
	}))
}

// step moves the cursor through every (item, field) pair in reading order.
func (l *ItemList) step(delta int) tea.Cmd {
	if !l.hasCurrent() {
		return nil
	}
	pos := l.item*len(l.fields) + l.field + delta
	total := len(l.items) * len(l.fields)
	if pos < 0 || pos >= total {
		return nil
	}
	l.blurCurrent()
	l.item, l.field = pos/len(l.fields), pos%len(l.fields)
	return l.focusCurrent()
}

func (l *ItemList) hasCurrent() bool {
	return len(l.items) > 0 && len(l.fields) > 0 &&
		l.item >= 0 && l.item < len(l.inputs) &&
		l.field >= 0 && l.field < len(l.fields)
}

func (l *ItemList) focusCurrent() tea.Cmd {
	if !l.hasCurrent() {
		return nil
	}
	return l.inputs[l.item][l.field].Focus()
}

func (l *ItemList) blurCurrent() {
	if l.hasCurrent() {
		l.inputs[l.item][l.field].Blur()
	}
}

func (l *ItemList) emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func (l *ItemList) View() string {
	var b strings.Builder
	if len(l.items) == 0 {
		b.WriteString(mutedStyle.Render("(sin elementos)"))
		b.WriteString("\n")
	}
	for i := range l.items {
		b.WriteString(itemHeaderStyle.Render(fmt.Sprintf("#%d", i+1)))
		b.WriteString("\n")
		for j, field := range l.fields {
			name := fieldNameStyle.Render(canvas.Label(field) + ":")
			if l.focused && i == l.item && j == l.field {
				name = activeFieldNameStyle.Render(canvas.Label(field) + ":")
			}
			b.WriteString("  " + name + " " + l.inputs[i][j].View() + "\n")
		}
	}
	b.WriteString(mutedStyle.Render("ctrl+n añadir · ctrl+d eliminar"))
	return b.String()
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
