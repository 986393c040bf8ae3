package controls

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/canvasgen/internal/canvas"
	"github.com/alexisbeaulieu97/canvasgen/internal/props"
	"github.com/alexisbeaulieu97/canvasgen/internal/style"
)

// debounceMsg fires after a quiet period. Only the tick carrying the
// control's latest sequence number is honoured.
type debounceMsg struct {
	id  int
	seq int
}

// debouncer tracks the draft sequence of a debounced control.
type debouncer struct {
	id    int
	seq   int
	delay time.Duration
}

func newDebouncer(delay time.Duration) debouncer {
	return debouncer{id: nextID(), delay: delay}
}

// bump invalidates pending ticks and schedules a new one.
func (d *debouncer) bump() tea.Cmd {
	d.seq++
	msg := debounceMsg{id: d.id, seq: d.seq}
	return tea.Tick(d.delay, func(time.Time) tea.Msg { return msg })
}

// cancel invalidates pending ticks without scheduling another.
func (d *debouncer) cancel() {
	d.seq++
}

func (d *debouncer) current(msg debounceMsg) bool {
	return msg.id == d.id && msg.seq == d.seq
}

// Text is a single-line input that propagates after the user stops typing.
// In number mode the draft is parsed as a float; unparsable input is 0.
type Text struct {
	base
	input    textinput.Model
	debounce debouncer
	number   bool
	upstream any
}

// NewText creates a debounced string control.
func NewText(kind canvas.Kind, key, label string, delay time.Duration) *Text {
	return newText(kind, key, label, delay, false)
}

// NewNumber creates a debounced numeric control.
func NewNumber(kind canvas.Kind, key, label string, delay time.Duration) *Text {
	return newText(kind, key, label, delay, true)
}

func newText(kind canvas.Kind, key, label string, delay time.Duration, number bool) *Text {
	input := textinput.New()
	input.Prompt = ""
	input.Width = 40
	if number {
		input.Width = 12
	}
	return &Text{
		base:     base{kind: kind, key: key, label: label},
		input:    input,
		debounce: newDebouncer(delay),
		number:   number,
	}
}

// Value returns the typed interpretation of the current draft.
func (t *Text) Value() any {
	if !t.number {
		return t.input.Value()
	}
	return parseNumber(t.input.Value())
}

// Draft returns the raw text being edited.
func (t *Text) Draft() string {
	return t.input.Value()
}

func (t *Text) Focus() tea.Cmd {
	t.focused = true
	return t.input.Focus()
}

func (t *Text) Blur() {
	t.focused = false
	t.input.Blur()
}

func (t *Text) Sync(bag props.Bag) {
	if t.number {
		v := bag.Number(t.key, 0)
		t.upstream = v
		t.input.SetValue(style.Number(v))
	} else {
		v := bag.String(t.key, "")
		t.upstream = v
		t.input.SetValue(v)
	}
	t.debounce.cancel()
}

func (t *Text) Update(msg tea.Msg) tea.Cmd {
	if tick, ok := msg.(debounceMsg); ok {
		if !t.debounce.current(tick) {
			return nil
		}
		value := t.Value()
		if value == t.upstream {
			return nil
		}
		t.upstream = value
		return t.change(value)
	}

	before := t.input.Value()
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	if t.input.Value() == before {
		return cmd
	}
	return tea.Batch(cmd, t.debounce.bump())
}

func (t *Text) View() string {
	return t.input.View()
}

// parseNumber reads a draft as a finite number; anything else is 0.
func parseNumber(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v == 0 {
		return 0
	}
	return v
}

// TextArea is the multi-line variant of Text.
type TextArea struct {
	base
	area     textarea.Model
	debounce debouncer
	upstream string
}

// NewTextArea creates a debounced multi-line control.
func NewTextArea(kind canvas.Kind, key, label string, delay time.Duration) *TextArea {
	area := textarea.New()
	area.ShowLineNumbers = false
	area.Prompt = ""
	area.SetWidth(40)
	area.SetHeight(3)
	return &TextArea{
		base:     base{kind: kind, key: key, label: label},
		area:     area,
		debounce: newDebouncer(delay),
	}
}

// Draft returns the text being edited.
func (t *TextArea) Draft() string {
	return t.area.Value()
}

func (t *TextArea) Focus() tea.Cmd {
	t.focused = true
	return t.area.Focus()
}

func (t *TextArea) Blur() {
	t.focused = false
	t.area.Blur()
}

func (t *TextArea) Sync(bag props.Bag) {
	t.upstream = bag.String(t.key, "")
	t.area.SetValue(t.upstream)
	t.debounce.cancel()
}

func (t *TextArea) Update(msg tea.Msg) tea.Cmd {
	if tick, ok := msg.(debounceMsg); ok {
		if !t.debounce.current(tick) || t.area.Value() == t.upstream {
			return nil
		}
		t.upstream = t.area.Value()
		return t.change(t.upstream)
	}

	before := t.area.Value()
	var cmd tea.Cmd
	t.area, cmd = t.area.Update(msg)
	if t.area.Value() == before {
		return cmd
	}
	return tea.Batch(cmd, t.debounce.bump())
}

func (t *TextArea) View() string {
	return t.area.View()
}
