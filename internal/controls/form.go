package controls

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/canvasgen/internal/canvas"
	"github.com/alexisbeaulieu97/canvasgen/internal/props"
)

// Form is the ordered set of controls for one component kind.
type Form struct {
	kind     canvas.Kind
	controls []Control
	focus    int
	active   bool
}

// NewForm builds one control per schema field and syncs them from bag.
// Debounced controls wait delay after the last keystroke.
func NewForm(schema canvas.Schema, bag props.Bag, delay time.Duration) *Form {
	f := &Form{kind: schema.Kind}
	for _, field := range schema.Fields {
		f.controls = append(f.controls, newControl(schema.Kind, field, delay))
	}
	f.Sync(bag)
	return f
}

func newControl(kind canvas.Kind, field canvas.Field, delay time.Duration) Control {
	switch field.Control {
	case canvas.ControlTextArea:
		return NewTextArea(kind, field.Key, field.Label, delay)
	case canvas.ControlNumber:
		return NewNumber(kind, field.Key, field.Label, delay)
	case canvas.ControlColor:
		return NewColor(kind, field.Key, field.Label)
	case canvas.ControlChoice:
		return NewChoice(kind, field.Key, field.Label, field.Options)
	case canvas.ControlToggle:
		return NewToggle(kind, field.Key, field.Label)
	case canvas.ControlThickness:
		return NewThicknessPicker(kind, field.Key, field.Label)
	case canvas.ControlRadius:
		return NewRadiusPicker(kind, field.Key, field.Label)
	case canvas.ControlList:
		return NewItemList(kind, field.Key, field.Label, field.ItemFields)
	default:
		return NewText(kind, field.Key, field.Label, delay)
	}
}

// Kind returns the kind the form edits.
func (f *Form) Kind() canvas.Kind {
	return f.kind
}

// Controls returns the controls in form order.
func (f *Form) Controls() []Control {
	return f.controls
}

// Control looks a control up by property key.
func (f *Form) Control(key string) (Control, bool) {
	for _, c := range f.controls {
		if c.Key() == key {
			return c, true
		}
	}
	return nil, false
}

// Focused returns the control holding focus within the form.
func (f *Form) Focused() Control {
	if f.focus < 0 || f.focus >= len(f.controls) {
		return nil
	}
	return f.controls[f.focus]
}

// Sync resets every control from bag, dropping pending debounced edits.
func (f *Form) Sync(bag props.Bag) {
	for _, c := range f.controls {
		c.Sync(bag)
	}
}

// SyncLists resets only the list controls. Used after item add/remove so
// drafts in other controls survive.
func (f *Form) SyncLists(bag props.Bag) {
	for _, c := range f.controls {
		if l, ok := c.(*ItemList); ok {
			l.Sync(bag)
		}
	}
}

// Activate gives keyboard focus to the form.
func (f *Form) Activate() tea.Cmd {
	f.active = true
	if c := f.Focused(); c != nil {
		return c.Focus()
	}
	return nil
}

// Deactivate removes keyboard focus from the form.
func (f *Form) Deactivate() {
	f.active = false
	if c := f.Focused(); c != nil {
		c.Blur()
	}
}

// Update routes key messages to the focused control (tab and shift+tab
// move focus) and broadcasts everything else.
func (f *Form) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		if !f.active {
			return nil
		}
		switch key.String() {
		case "tab":
			return f.move(1)
		case "shift+tab":
			return f.move(-1)
		}
		if c := f.Focused(); c != nil {
			return c.Update(msg)
		}
		return nil
	}

	cmds := make([]tea.Cmd, 0, len(f.controls))
	for _, c := range f.controls {
		cmds = append(cmds, c.Update(msg))
	}
	return tea.Batch(cmds...)
}

func (f *Form) move(delta int) tea.Cmd {
	if len(f.controls) == 0 {
		return nil
	}
	if c := f.Focused(); c != nil {
		c.Blur()
	}
	n := len(f.controls)
	f.focus = ((f.focus+delta)%n + n) % n
	return f.controls[f.focus].Focus()
}

// View renders every control under its label.
func (f *Form) View() string {
	return strings.Join(f.blocks(), "\n")
}

// FocusOffset returns the line of View at which the focused control starts.
func (f *Form) FocusOffset() int {
	offset := 0
	for i, block := range f.blocks() {
		if i == f.focus {
			break
		}
		offset += lipgloss.Height(block)
	}
	return offset
}

func (f *Form) blocks() []string {
	blocks := make([]string, 0, len(f.controls))
	for i, c := range f.controls {
		label := labelStyle.Render(c.Label())
		if f.active && i == f.focus {
			label = focusedLabelStyle.Render("› " + c.Label())
		}
		blocks = append(blocks, fieldStyle.Render(label+"\n"+c.View()))
	}
	return blocks
}
