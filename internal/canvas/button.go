package canvas

import (
	"strings"

	"github.com/alexisbeaulieu97/canvasgen/internal/props"
	"github.com/alexisbeaulieu97/canvasgen/internal/style"
)

type buttonProps struct {
	text        string
	link        string
	size        string
	bgColor     string
	textColor   string
	borderColor string
	border      border
}

func decodeButton(bag props.Bag) buttonProps {
	return buttonProps{
		text:        bag.String("text", "Botón de Acción"),
		link:        bag.String("link", "#"),
		size:        bag.String("size", "medium"),
		bgColor:     bag.String("bgColor", "#4f46e5"),
		textColor:   bag.String("textColor", "#ffffff"),
		borderColor: bag.String("borderColor", "#4f46e5"),
		border:      resolveBorder(bag, style.ThicknessMedium, style.RadiusMedium, "2px", "0.375rem"),
	}
}

func buttonMetrics(size string) (padding, fontSize string) {
	switch size {
	case "small":
		return "0.5rem 0.75rem", "0.875rem"
	case "large":
		return "1rem 1.5rem", "1.125rem"
	default:
		return "0.75rem 1rem", "1rem"
	}
}

func (p buttonProps) render(enc encoder) string {
	padding, fontSize := buttonMetrics(p.size)
	btn := style.Decl(
		"display", "inline-block",
		"padding", padding,
		"background-color", p.bgColor,
		"color", p.textColor,
		"text-decoration", "none",
		"border", style.Border(p.border.width, p.borderColor),
		"border-radius", p.border.radius,
		"font-weight", "600",
		"font-size", fontSize,
		"line-height", "1.25",
		"text-align", "center",
		"cursor", "pointer",
		"white-space", "nowrap",
		"font-family", fontFamily,
	)
	return `<a href="` + enc.url(p.link) + `" target="_blank" style="` + enc.style(btn) + `">` + enc.text(p.text) + `</a>`
}

type buttonGroupProps struct {
	buttons     []props.Item
	bgColor     string
	textColor   string
	borderColor string
	border      border
}

var defaultGroupButtons = []props.Item{
	{"text": "Botón 1", "link": "#"},
	{"text": "Botón 2", "link": "#"},
}

func decodeButtonGroup(bag props.Bag) buttonGroupProps {
	return buttonGroupProps{
		buttons:     itemsOr(bag, "buttons", defaultGroupButtons),
		bgColor:     bag.String("bgColor", "#4f46e5"),
		textColor:   bag.String("textColor", "#ffffff"),
		borderColor: bag.String("borderColor", "#4f46e5"),
		border:      resolveBorder(bag, style.ThicknessMedium, style.RadiusMedium, "2px", "0.375rem"),
	}
}

// groupCornerRadius rounds only the outer corners of the group: the first
// button's left side and the last button's right side.
func groupCornerRadius(index, count int, radius string) string {
	switch {
	case count == 1:
		return radius
	case index == 0:
		return radius + " 0 0 " + radius
	case index == count-1:
		return "0 " + radius + " " + radius + " 0"
	default:
		return "0"
	}
}

// render suppresses the left border of every button after the first so
// adjacent borders do not double up.
func (p buttonGroupProps) render(enc encoder) string {
	group := style.Decl(
		"display", "flex",
		"font-family", fontFamily,
		"margin-bottom", "1rem",
	)

	var b strings.Builder
	b.WriteString(`<div style="` + enc.style(group) + `">`)
	for i, btn := range p.buttons {
		leftWidth := "0"
		if i == 0 {
			leftWidth = p.border.width
		}
		item := style.Decl(
			"flex", "1",
			"padding", "0.75rem 1rem",
			"background-color", p.bgColor,
			"color", p.textColor,
			"text-decoration", "none",
			"border", style.Border(p.border.width, p.borderColor),
			"border-left-width", leftWidth,
			"border-radius", groupCornerRadius(i, len(p.buttons), p.border.radius),
			"font-weight", "600",
			"font-size", "1rem",
			"line-height", "1.25",
			"text-align", "center",
			"cursor", "pointer",
			"white-space", "nowrap",
		)
		b.WriteString(`<a href="` + enc.url(btn.Get("link", "")) + `" target="_blank" style="` + enc.style(item) + `">`)
		b.WriteString(enc.text(btn.Get("text", "")))
		b.WriteString(`</a>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}
