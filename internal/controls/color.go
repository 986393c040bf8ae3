package controls

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/canvasgen/internal/canvas"
	"github.com/alexisbeaulieu97/canvasgen/internal/props"
)

// Color edits a hex color. Every edit that forms a valid color propagates
// immediately; partial input such as "#4f4" mid-typing is held locally.
type Color struct {
	base
	input    textinput.Model
	upstream string
}

// NewColor creates a color control.
func NewColor(kind canvas.Kind, key, label string) *Color {
	input := textinput.New()
	input.Prompt = ""
	input.Width = 9
	input.CharLimit = 9
	input.Placeholder = "#rrggbb"
	return &Color{base: base{kind: kind, key: key, label: label}, input: input}
}

// ParseColor normalises a hex color to lower-case "#rrggbb". Three-digit
// shorthand is expanded.
func ParseColor(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 {
		return "", false
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return "", false
	}
	return c.Hex(), true
}

func (c *Color) Focus() tea.Cmd {
	c.focused = true
	return c.input.Focus()
}

func (c *Color) Blur() {
	c.focused = false
	c.input.Blur()
	c.input.SetValue(c.upstream)
}

func (c *Color) Sync(bag props.Bag) {
	c.upstream = bag.String(c.key, "")
	c.input.SetValue(c.upstream)
}

func (c *Color) Update(msg tea.Msg) tea.Cmd {
	before := c.input.Value()
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	if c.input.Value() == before {
		return cmd
	}
	hex, ok := ParseColor(c.input.Value())
	if !ok || hex == c.upstream {
		return cmd
	}
	c.upstream = hex
	return tea.Batch(cmd, c.change(hex))
}

func (c *Color) View() string {
	return swatch(c.upstream) + " " + c.input.View()
}

// swatch renders a small block filled with hex, labelled in a readable
// contrasting color.
func swatch(hex string) string {
	col, err := colorful.Hex(hex)
	if err != nil {
		return mutedStyle.Render("[  ]")
	}
	fg := "#000000"
	if l, _, _ := col.Lab(); l < 0.6 {
		fg = "#ffffff"
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(col.Hex())).
		Foreground(lipgloss.Color(fg)).
		Render("    ")
}
