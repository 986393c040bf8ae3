package canvas

import (
	"strings"

	"github.com/alexisbeaulieu97/canvasgen/internal/props"
	"github.com/alexisbeaulieu97/canvasgen/internal/style"
)

type listGroupProps struct {
	items       []props.Item
	flush       bool
	bgColor     string
	textColor   string
	borderColor string
	border      border
}

func decodeListGroup(bag props.Bag) listGroupProps {
	return listGroupProps{
		items:       itemsOr(bag, "items", nil),
		flush:       bag.Bool("flush", false),
		bgColor:     bag.String("bgColor", "#ffffff"),
		textColor:   bag.String("textColor", "#374151"),
		borderColor: bag.String("borderColor", "#e5e7eb"),
		border:      resolveBorder(bag, style.ThicknessThin, style.RadiusMedium, "1px", "0.5rem"),
	}
}

// render drops the outer frame and the item separators when the group is
// flush.
func (p listGroupProps) render(enc encoder) string {
	edge := style.Border(p.border.width, p.borderColor)
	frame, radius := edge, p.border.radius
	if p.flush {
		frame, radius = "none", "0"
	}
	container := style.Decl(
		"border", frame,
		"border-radius", radius,
		"overflow", "hidden",
		"margin-bottom", "1rem",
		"font-family", fontFamily,
		"background-color", p.bgColor,
	)

	var b strings.Builder
	b.WriteString(`<div style="` + enc.style(container) + `">`)
	for i, item := range p.items {
		entry := style.Decl(
			"display", "block",
			"padding", "0.75rem 1.25rem",
			"color", p.textColor,
			"text-decoration", "none",
		).SetIf(!p.flush && i < len(p.items)-1, "border-bottom", edge)
		b.WriteString(`<a href="` + enc.url(item.Get("link", "")) + `" target="_blank" style="` + enc.style(entry) + `">`)
		b.WriteString(enc.text(item.Get("text", "")))
		b.WriteString(`</a>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}

type breadcrumbsProps struct {
	items          []props.Item
	textColor      string
	linkColor      string
	separatorColor string
	border         border
}

func decodeBreadcrumbs(bag props.Bag) breadcrumbsProps {
	return breadcrumbsProps{
		items:          itemsOr(bag, "items", nil),
		textColor:      bag.String("textColor", "#4b5563"),
		linkColor:      bag.String("linkColor", "#3b82f6"),
		separatorColor: bag.String("separatorColor", "#d1d5db"),
		border:         resolveBorder(bag, style.ThicknessNone, style.RadiusNone, "0px", "0rem"),
	}
}

// render links every crumb but the last, which is the current page and
// carries no trailing separator.
func (p breadcrumbsProps) render(enc encoder) string {
	nav := style.Decl(
		"font-family", fontFamily,
		"margin-bottom", "1rem",
		"border", style.Border(p.border.width, p.separatorColor),
		"border-radius", p.border.radius,
		"padding", "0.5rem 1rem",
		"background-color", "#f8fafc",
	)
	current := style.Decl("color", p.textColor, "font-weight", "500")
	link := style.Decl("color", p.linkColor, "text-decoration", "none", "font-weight", "500")
	separator := style.Decl("color", p.separatorColor)

	var b strings.Builder
	b.WriteString(`<nav aria-label="breadcrumb" style="` + enc.style(nav) + `">`)
	b.WriteString(`<ol style="display: flex; list-style: none; padding: 0; margin: 0; align-items: center; gap: 0.5rem;">`)
	for i, item := range p.items {
		b.WriteString(`<li style="display: flex; align-items: center; gap: 0.5rem;">`)
		if i == len(p.items)-1 {
			b.WriteString(`<span style="` + enc.style(current) + `">` + enc.text(item.Get("text", "")) + `</span>`)
		} else {
			b.WriteString(`<a href="` + enc.url(item.Get("link", "")) + `" target="_blank" style="` + enc.style(link) + `">` + enc.text(item.Get("text", "")) + `</a>`)
			b.WriteString(`<span style="` + enc.style(separator) + `">/</span>`)
		}
		b.WriteString(`</li>`)
	}
	b.WriteString(`</ol></nav>`)
	return b.String()
}
