package controls

import (
	"math"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/canvasgen/internal/canvas"
	"github.com/alexisbeaulieu97/canvasgen/internal/props"
)

// collect runs cmd and returns the messages that arrive promptly. Timers
// such as cursor blinks and debounce ticks are left to expire unseen.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, collect(c)...)
			}
			return out
		}
		return []tea.Msg{msg}
	case <-time.After(50 * time.Millisecond):
		return nil
	}
}

func changes(cmd tea.Cmd) []ChangeMsg {
	var out []ChangeMsg
	for _, msg := range collect(cmd) {
		if c, ok := msg.(ChangeMsg); ok {
			out = append(out, c)
		}
	}
	return out
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func TestTextPropagatesOnlyLatestTick(t *testing.T) {
	t.Parallel()

	c := NewText(canvas.Buttons, "text", "Texto", time.Hour)
	c.Sync(props.Bag{"text": "Hi"})
	c.Focus()

	require.NotNil(t, c.Update(runes("!")))
	require.NotNil(t, c.Update(runes("?")))
	assert.Equal(t, "Hi!?", c.Draft())

	stale := debounceMsg{id: c.debounce.id, seq: c.debounce.seq - 1}
	assert.Nil(t, c.Update(stale))

	latest := debounceMsg{id: c.debounce.id, seq: c.debounce.seq}
	got := changes(c.Update(latest))
	require.Len(t, got, 1)
	assert.Equal(t, ChangeMsg{Kind: canvas.Buttons, Key: "text", Value: "Hi!?"}, got[0])

	assert.Nil(t, c.Update(latest), "same value is not propagated twice")
}

func TestTextIgnoresTicksOfOtherControls(t *testing.T) {
	t.Parallel()

	a := NewText(canvas.Buttons, "text", "", time.Hour)
	b := NewText(canvas.Buttons, "link", "", time.Hour)
	a.Sync(props.Bag{"text": ""})
	b.Sync(props.Bag{"link": ""})
	a.Focus()
	a.Update(runes("x"))

	assert.Nil(t, b.Update(debounceMsg{id: a.debounce.id, seq: a.debounce.seq}))
	assert.NotEqual(t, a.debounce.id, b.debounce.id)
}

func TestTextSyncCancelsPendingTick(t *testing.T) {
	t.Parallel()

	c := NewText(canvas.Alerts, "message", "", time.Hour)
	c.Sync(props.Bag{"message": "hola"})
	c.Focus()
	c.Update(runes("!"))
	pending := debounceMsg{id: c.debounce.id, seq: c.debounce.seq}

	c.Sync(props.Bag{"message": "adiós"})
	assert.Equal(t, "adiós", c.Draft())
	assert.Nil(t, c.Update(pending))
}

func TestTextRevertedDraftDoesNotPropagate(t *testing.T) {
	t.Parallel()

	c := NewText(canvas.Badges, "text", "", time.Hour)
	c.Sync(props.Bag{"text": "ab"})
	c.Focus()
	c.Update(runes("c"))
	c.Update(keyOf(tea.KeyBackspace))
	assert.Equal(t, "ab", c.Draft())

	assert.Nil(t, c.Update(debounceMsg{id: c.debounce.id, seq: c.debounce.seq}))
}

func TestNumberParsesDraft(t *testing.T) {
	t.Parallel()

	c := NewNumber(canvas.Progress, "percentage", "", time.Hour)
	c.Sync(props.Bag{"percentage": 75.0})
	assert.Equal(t, "75", c.Draft())
	assert.Equal(t, 75.0, c.Value())
	c.Focus()

	c.Update(runes(".5"))
	got := changes(c.Update(debounceMsg{id: c.debounce.id, seq: c.debounce.seq}))
	require.Len(t, got, 1)
	assert.Equal(t, 75.5, got[0].Value)

	c.Update(runes("x"))
	got = changes(c.Update(debounceMsg{id: c.debounce.id, seq: c.debounce.seq}))
	require.Len(t, got, 1)
	assert.Equal(t, 0.0, got[0].Value)
}

func TestParseNumberOnlyAcceptsFiniteValues(t *testing.T) {
	t.Parallel()

	cases := map[string]float64{
		"12.5":  12.5,
		" 40 ":  40,
		"NaN":   0,
		"nan":   0,
		"Inf":   0,
		"-Inf":  0,
		"1e999": 0,
		"abc":   0,
		"-0":    0,
	}
	for raw, want := range cases {
		got := parseNumber(raw)
		assert.Equal(t, want, got, raw)
		assert.False(t, math.Signbit(got) && got == 0, "%s yields negative zero", raw)
	}
}

func TestTextAreaDebounces(t *testing.T) {
	t.Parallel()

	c := NewTextArea(canvas.Collapse, "content", "", time.Hour)
	c.Sync(props.Bag{"content": ""})
	c.Focus()
	c.Update(runes("uno"))
	first := c.debounce.seq
	c.Update(runes("!"))

	assert.Nil(t, c.Update(debounceMsg{id: c.debounce.id, seq: first}))
	got := changes(c.Update(debounceMsg{id: c.debounce.id, seq: c.debounce.seq}))
	require.Len(t, got, 1)
	assert.Equal(t, "uno!", got[0].Value)
}

func TestParseColor(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		want string
		ok   bool
	}{
		"#4F46E5": {"#4f46e5", true},
		"4f46e5":  {"#4f46e5", true},
		"#fff":    {"#ffffff", true},
		"#4f4":    {"#44ff44", true},
		"#4f46":   {"", false},
		"#zzzzzz": {"", false},
		"":        {"", false},
		"red":     {"", false},
	}
	for in, tc := range cases {
		got, ok := ParseColor(in)
		assert.Equal(t, tc.ok, ok, in)
		assert.Equal(t, tc.want, got, in)
	}
}

func TestColorPropagatesValidColorsImmediately(t *testing.T) {
	t.Parallel()

	c := NewColor(canvas.Badges, "bgColor", "")
	c.Sync(props.Bag{"bgColor": "#22c55e"})
	c.Focus()

	for i := 0; i < 7; i++ {
		c.Update(keyOf(tea.KeyBackspace))
	}
	assert.Empty(t, changes(c.Update(runes("#00"))))

	got := changes(c.Update(runes("0")))
	require.Len(t, got, 1)
	assert.Equal(t, ChangeMsg{Kind: canvas.Badges, Key: "bgColor", Value: "#000000"}, got[0])

	assert.Empty(t, changes(c.Update(runes("0"))), "four digits is not a color")
	assert.Empty(t, changes(c.Update(runes("00"))), "same color as the shorthand")
	assert.Equal(t, "#000000", c.input.Value())
}

func TestColorBlurRestoresUpstream(t *testing.T) {
	t.Parallel()

	c := NewColor(canvas.Badges, "textColor", "")
	c.Sync(props.Bag{"textColor": "#ffffff"})
	c.Focus()
	c.Update(keyOf(tea.KeyBackspace))
	c.Blur()
	assert.Equal(t, "#ffffff", c.input.Value())
}

func TestChoiceCycles(t *testing.T) {
	t.Parallel()

	c := NewChoice(canvas.Buttons, "size", "", []string{"small", "medium", "large"})
	c.Sync(props.Bag{"size": "medium"})
	c.Focus()

	got := changes(c.Update(keyOf(tea.KeyRight)))
	require.Len(t, got, 1)
	assert.Equal(t, "large", got[0].Value)

	got = changes(c.Update(keyOf(tea.KeyRight)))
	require.Len(t, got, 1)
	assert.Equal(t, "small", got[0].Value)

	got = changes(c.Update(keyOf(tea.KeyLeft)))
	require.Len(t, got, 1)
	assert.Equal(t, "large", got[0].Value)

	assert.Nil(t, c.Update(runes("q")))
	assert.Contains(t, c.View(), "large")
}

func TestChoiceUnknownUpstream(t *testing.T) {
	t.Parallel()

	c := NewChoice(canvas.NavBar, "alignment", "", []string{"left", "center", "right"})
	c.Sync(props.Bag{"alignment": "justify"})
	assert.Equal(t, "", c.Selected())

	got := changes(c.Update(keyOf(tea.KeyRight)))
	require.Len(t, got, 1)
	assert.Equal(t, "left", got[0].Value)
}

func TestPickersMarkExactlyOneSelected(t *testing.T) {
	t.Parallel()

	thickness := NewThicknessPicker(canvas.Card, "borderThickness", "")
	thickness.Sync(props.Bag{"borderThickness": "thin"})
	assert.Equal(t, "thin", thickness.Selected())
	assert.Equal(t, []string{"none", "thin", "medium", "thick"}, thickness.options)

	radius := NewRadiusPicker(canvas.Card, "borderRadius", "")
	radius.Sync(props.Bag{"borderRadius": "full"})
	got := changes(radius.Update(keyOf(tea.KeyRight)))
	require.Len(t, got, 1)
	assert.Equal(t, "none", got[0].Value)
	assert.Equal(t, "none", radius.Selected())
}

func TestToggle(t *testing.T) {
	t.Parallel()

	c := NewToggle(canvas.ListGroup, "flush", "")
	c.Sync(props.Bag{"flush": false})
	assert.Contains(t, c.View(), "[ ]")

	got := changes(c.Update(runes(" ")))
	require.Len(t, got, 1)
	assert.Equal(t, ChangeMsg{Kind: canvas.ListGroup, Key: "flush", Value: true}, got[0])
	assert.True(t, c.Value())

	got = changes(c.Update(keyOf(tea.KeyEnter)))
	require.Len(t, got, 1)
	assert.Equal(t, false, got[0].Value)
}

func newLinkList(t *testing.T) *ItemList {
	t.Helper()
	l := NewItemList(canvas.NavBar, "items", "Items", []string{"text", "link"})
	l.Sync(props.Bag{"items": []props.Item{
		{"text": "Uno", "link": "/1"},
		{"text": "Dos", "link": "/2"},
	}})
	l.Focus()
	return l
}

func TestItemListEditsEmitUpdate(t *testing.T) {
	t.Parallel()

	l := newLinkList(t)
	l.Update(keyOf(tea.KeyDown))
	l.Update(keyOf(tea.KeyDown))
	item, field := l.Cursor()
	assert.Equal(t, 1, item)
	assert.Equal(t, 0, field)

	var got []UpdateItemMsg
	for _, msg := range collect(l.Update(runes("!"))) {
		if u, ok := msg.(UpdateItemMsg); ok {
			got = append(got, u)
		}
	}
	require.Len(t, got, 1)
	assert.Equal(t, UpdateItemMsg{Kind: canvas.NavBar, ListKey: "items", Index: 1, Field: "text", Value: "Dos!"}, got[0])
}

func TestItemListCursorStaysInRange(t *testing.T) {
	t.Parallel()

	l := newLinkList(t)
	l.Update(keyOf(tea.KeyUp))
	item, field := l.Cursor()
	assert.Equal(t, 0, item)
	assert.Equal(t, 0, field)

	for i := 0; i < 10; i++ {
		l.Update(keyOf(tea.KeyDown))
	}
	item, field = l.Cursor()
	assert.Equal(t, 1, item)
	assert.Equal(t, 1, field)
}

func TestItemListAddAndRemove(t *testing.T) {
	t.Parallel()

	l := newLinkList(t)
	msgs := collect(l.Update(keyOf(tea.KeyCtrlN)))
	require.Len(t, msgs, 1)
	assert.Equal(t, AddItemMsg{Kind: canvas.NavBar, ListKey: "items"}, msgs[0])

	l.Update(keyOf(tea.KeyDown))
	l.Update(keyOf(tea.KeyDown))
	msgs = collect(l.Update(keyOf(tea.KeyCtrlD)))
	require.Len(t, msgs, 1)
	assert.Equal(t, RemoveItemMsg{Kind: canvas.NavBar, ListKey: "items", Index: 1}, msgs[0])

	l.Sync(props.Bag{"items": []props.Item{{"text": "Uno", "link": "/1"}}})
	assert.Equal(t, 1, l.Len())
	item, _ := l.Cursor()
	assert.Equal(t, 0, item)
}

func TestItemListEmpty(t *testing.T) {
	t.Parallel()

	l := NewItemList(canvas.Pagination, "pages", "Pages", []string{"text", "link"})
	l.Sync(props.Bag{"pages": []props.Item{}})
	l.Focus()

	assert.Nil(t, l.Update(keyOf(tea.KeyCtrlD)))
	assert.Nil(t, l.Update(runes("x")))
	assert.Contains(t, l.View(), "sin elementos")

	msgs := collect(l.Update(keyOf(tea.KeyCtrlN)))
	require.Len(t, msgs, 1)
	assert.IsType(t, AddItemMsg{}, msgs[0])
}
