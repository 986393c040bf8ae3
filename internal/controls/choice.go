package controls

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/canvasgen/internal/canvas"
	"github.com/alexisbeaulieu97/canvasgen/internal/props"
	"github.com/alexisbeaulieu97/canvasgen/internal/style"
)

// Choice selects one of a fixed list of options with left/right. Each move
// propagates immediately. The border thickness and radius pickers are
// choices over the style vocabulary rendered as tiles.
type Choice struct {
	base
	options  []string
	selected int
	tiles    bool
}

// NewChoice creates an enumerated choice control.
func NewChoice(kind canvas.Kind, key, label string, options []string) *Choice {
	return &Choice{
		base:    base{kind: kind, key: key, label: label},
		options: append([]string(nil), options...),
	}
}

// NewThicknessPicker offers every border thickness name.
func NewThicknessPicker(kind canvas.Kind, key, label string) *Choice {
	c := NewChoice(kind, key, label, style.ThicknessNames())
	c.tiles = true
	return c
}

// NewRadiusPicker offers every border radius name.
func NewRadiusPicker(kind canvas.Kind, key, label string) *Choice {
	c := NewChoice(kind, key, label, style.RadiusNames())
	c.tiles = true
	return c
}

// Selected returns the currently selected option, or "" when the upstream
// value is not one of the options.
func (c *Choice) Selected() string {
	if c.selected < 0 || c.selected >= len(c.options) {
		return ""
	}
	return c.options[c.selected]
}

func (c *Choice) Focus() tea.Cmd {
	c.focused = true
	return nil
}

func (c *Choice) Blur() {
	c.focused = false
}

func (c *Choice) Sync(bag props.Bag) {
	c.selected = indexOf(c.options, bag.String(c.key, ""))
}

func (c *Choice) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok || len(c.options) == 0 {
		return nil
	}
	switch key.String() {
	case "left", "h":
		c.move(-1)
	case "right", "l", " ":
		c.move(1)
	default:
		return nil
	}
	return c.change(c.Selected())
}

func (c *Choice) move(delta int) {
	if c.selected < 0 {
		c.selected = 0
		return
	}
	n := len(c.options)
	c.selected = ((c.selected+delta)%n + n) % n
}

func (c *Choice) View() string {
	if !c.tiles {
		if c.selected < 0 {
			return mutedStyle.Render("‹ ? ›")
		}
		return selectedOptionStyle.Render("‹ " + c.Selected() + " ›")
	}
	parts := make([]string, len(c.options))
	for i, opt := range c.options {
		if i == c.selected {
			parts[i] = selectedTileStyle.Render(opt)
		} else {
			parts[i] = tileStyle.Render(opt)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// Toggle flips a boolean with space or enter and propagates immediately.
type Toggle struct {
	base
	value bool
}

// NewToggle creates a boolean control.
func NewToggle(kind canvas.Kind, key, label string) *Toggle {
	return &Toggle{base: base{kind: kind, key: key, label: label}}
}

// Value returns the current state.
func (t *Toggle) Value() bool {
	return t.value
}

func (t *Toggle) Focus() tea.Cmd {
	t.focused = true
	return nil
}

func (t *Toggle) Blur() {
	t.focused = false
}

func (t *Toggle) Sync(bag props.Bag) {
	t.value = bag.Bool(t.key, false)
}

func (t *Toggle) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case " ", "enter", "x":
		t.value = !t.value
		return t.change(t.value)
	}
	return nil
}

func (t *Toggle) View() string {
	if t.value {
		return selectedOptionStyle.Render("[x]")
	}
	return "[ ]"
}

func indexOf(values []string, v string) int {
	for i, candidate := range values {
		if candidate == v {
			return i
		}
	}
	return -1
}
