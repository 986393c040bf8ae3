// Package preview approximates a generated HTML fragment in the terminal.
// The fragment is parsed with x/net/html and its text runs are styled from
// the inline color, background-color and font-weight declarations. Layout
// is reduced to blocks and inline runs; scripts are never shown.
package preview

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const defaultWidth = 60

// Renderer turns fragments into styled terminal text.
type Renderer struct {
	width int
}

// New creates a renderer wrapping output at width columns. A non-positive
// width selects a default.
func New(width int) *Renderer {
	r := &Renderer{}
	r.SetWidth(width)
	return r
}

// SetWidth changes the wrap width.
func (r *Renderer) SetWidth(width int) {
	if width <= 0 {
		width = defaultWidth
	}
	r.width = width
}

// Width returns the wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// Render parses fragment and returns its terminal rendition.
func (r *Renderer) Render(fragment string) (string, error) {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), context)
	if err != nil {
		return "", fmt.Errorf("parse fragment: %w", err)
	}

	w := &writer{width: r.width}
	for _, n := range nodes {
		w.node(n, run{}, false)
	}
	w.flush()
	return strings.Join(w.lines, "\n"), nil
}

// run is the inherited text style at a point in the tree.
type run struct {
	fg        string
	bg        string
	bold      bool
	underline bool
}

func (r run) style() lipgloss.Style {
	s := lipgloss.NewStyle().Bold(r.bold).Underline(r.underline)
	if r.fg != "" {
		s = s.Foreground(lipgloss.Color(r.fg))
	}
	if r.bg != "" {
		s = s.Background(lipgloss.Color(r.bg))
	}
	return s
}

type writer struct {
	width int
	lines []string
	line  strings.Builder
}

var blockElements = map[atom.Atom]bool{
	atom.Div: true, atom.P: true, atom.Details: true, atom.Summary: true,
	atom.Nav: true, atom.Ul: true, atom.Ol: true, atom.Li: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true,
	atom.H5: true, atom.H6: true, atom.Section: true, atom.Header: true,
	atom.Footer: true,
}

var boldElements = map[atom.Atom]bool{
	atom.B: true, atom.Strong: true, atom.Summary: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true,
	atom.H5: true, atom.H6: true,
}

// node renders n. Children of a flex row are laid out inline even when
// they are blocks themselves, and so are their descendants unless an
// inline-block starts a new formatting context.
func (w *writer) node(n *html.Node, inherited run, inRow bool) {
	switch n.Type {
	case html.TextNode:
		w.text(n.Data, inherited)
		return
	case html.ElementNode:
	default:
		w.children(n, inherited, inRow)
		return
	}

	switch n.DataAtom {
	case atom.Script, atom.Style, atom.Template:
		return
	case atom.Br:
		w.flush()
		return
	case atom.Img:
		w.inline(mutedStyle.Render("[imagen"+altSuffix(n)+"]"), inherited)
		return
	}

	decl := parseStyle(attr(n, "style"))
	current := inherited
	if c, ok := cssColor(decl["color"]); ok {
		current.fg = c
	}
	if c, ok := cssColor(decl["background-color"]); ok {
		current.bg = c
	}
	if boldElements[n.DataAtom] || isBold(decl["font-weight"]) {
		current.bold = true
	}
	if n.DataAtom == atom.A {
		current.underline = true
	}

	if pct, ok := barPercent(n, decl); ok {
		w.flush()
		w.bar(pct, current.bg, trackColor(n.Parent))
		w.children(n, current, false)
		w.flush()
		return
	}

	display := decl["display"]
	block := !inRow && isBlock(n.DataAtom, display)
	if block {
		w.flush()
	}
	if n.DataAtom == atom.Li && block && listStyle(n.Parent) != "none" {
		w.inline("•", current)
	}
	row := display == "flex" && decl["flex-direction"] != "column"
	w.children(n, current, row || (inRow && display != "inline-block"))
	if block {
		w.flush()
	}
}

func (w *writer) children(n *html.Node, r run, inRow bool) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.node(c, r, inRow)
	}
}

func isBlock(a atom.Atom, display string) bool {
	switch display {
	case "block", "flex", "list-item":
		return true
	case "inline", "inline-block", "inline-flex":
		return false
	}
	return blockElements[a]
}

func listStyle(parent *html.Node) string {
	if parent == nil {
		return ""
	}
	decl := parseStyle(attr(parent, "style"))
	if v, ok := decl["list-style"]; ok {
		return v
	}
	return decl["list-style-type"]
}

// text collapses whitespace the way a browser does for normal flow.
func (w *writer) text(data string, r run) {
	words := strings.Fields(data)
	if len(words) == 0 {
		return
	}
	w.inline(strings.Join(words, " "), r)
}

// inline appends a styled run, separated from the previous run on the
// line by a single space.
func (w *writer) inline(s string, r run) {
	if w.line.Len() > 0 {
		w.line.WriteString(" ")
	}
	w.line.WriteString(r.style().Render(s))
}

func (w *writer) flush() {
	if w.line.Len() == 0 {
		return
	}
	wrapped := lipgloss.NewStyle().Width(w.width).Render(w.line.String())
	for _, l := range strings.Split(wrapped, "\n") {
		w.lines = append(w.lines, strings.TrimRight(l, " "))
	}
	w.line.Reset()
}

// bar draws a progress bar filling pct of the width.
func (w *writer) bar(pct float64, fill, track string) {
	opts := []progress.Option{progress.WithoutPercentage(), progress.WithWidth(w.width)}
	if fill != "" {
		opts = append(opts, progress.WithSolidFill(fill))
	}
	b := progress.New(opts...)
	if track != "" {
		b.EmptyColor = track
	}
	w.lines = append(w.lines, b.ViewAs(pct/100))
}

// barPercent recognises a filled bar: an element in normal flow sized to a
// percentage of a full-width track.
func barPercent(n *html.Node, decl map[string]string) (float64, bool) {
	width, ok := strings.CutSuffix(decl["width"], "%")
	if !ok || decl["position"] == "absolute" || n.Parent == nil || n.Parent.Type != html.ElementNode {
		return 0, false
	}
	if parseStyle(attr(n.Parent, "style"))["width"] != "100%" {
		return 0, false
	}
	if _, hasBg := decl["background-color"]; !hasBg {
		return 0, false
	}
	pct, err := strconv.ParseFloat(width, 64)
	if err != nil {
		return 0, false
	}
	return min(max(pct, 0), 100), true
}

func trackColor(parent *html.Node) string {
	if parent == nil {
		return ""
	}
	c, _ := cssColor(parseStyle(attr(parent, "style"))["background-color"])
	return c
}

// parseStyle splits an inline style attribute into lower-cased property
// names and trimmed values.
func parseStyle(s string) map[string]string {
	decl := make(map[string]string)
	for _, part := range strings.Split(s, ";") {
		name, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		decl[name] = strings.TrimSpace(value)
	}
	return decl
}

// cssColor accepts the hex forms the generators emit and normalises them.
func cssColor(v string) (string, bool) {
	if !strings.HasPrefix(v, "#") {
		return "", false
	}
	c, err := colorful.Hex(v)
	if err != nil {
		return "", false
	}
	return c.Hex(), true
}

func isBold(weight string) bool {
	switch weight {
	case "bold", "bolder", "600", "700", "800", "900":
		return true
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func altSuffix(n *html.Node) string {
	if alt := attr(n, "alt"); alt != "" {
		return ": " + alt
	}
	return ""
}
