package canvas

import (
	"strings"

	"github.com/alexisbeaulieu97/canvasgen/internal/props"
	"github.com/alexisbeaulieu97/canvasgen/internal/style"
)

type navBarProps struct {
	brand     string
	items     []props.Item
	alignment string
	bgColor   string
	textColor string
	linkColor string
	border    border
}

func decodeNavBar(bag props.Bag) navBarProps {
	return navBarProps{
		brand:     bag.String("brand", "Mi Curso"),
		items:     itemsOr(bag, "items", nil),
		alignment: bag.String("alignment", "left"),
		bgColor:   bag.String("bgColor", "#1f2937"),
		textColor: bag.String("textColor", "#ffffff"),
		linkColor: bag.String("linkColor", "#93c5fd"),
		border:    resolveBorder(bag, style.ThicknessNone, style.RadiusNone, "0px", "0rem"),
	}
}

func (p navBarProps) render(enc encoder) string {
	nav := style.Decl(
		"background-color", p.bgColor,
		"padding", "0.75rem 1.5rem",
		"display", "flex",
		"align-items", "center",
		"justify-content", "space-between",
		"font-family", fontFamily,
		"margin-bottom", "1rem",
		"border", style.Border(p.border.width, p.bgColor),
		"border-radius", p.border.radius,
	)
	brand := style.Decl(
		"color", p.textColor,
		"font-weight", "700",
		"font-size", "1.25rem",
		"text-decoration", "none",
	)
	menu := style.Decl(
		"display", "flex",
		"list-style", "none",
		"margin", "0",
		"padding", "0",
		"gap", "1.5rem",
	)
	switch p.alignment {
	case "right":
		menu.Set("margin-left", "auto")
	case "center":
		menu.Set("margin", "0 auto")
	}
	link := style.Decl(
		"color", p.linkColor,
		"text-decoration", "none",
		"font-weight", "500",
	)

	var b strings.Builder
	b.WriteString(`<nav style="` + enc.style(nav) + `">`)
	b.WriteString(`<a href="#" style="` + enc.style(brand) + `">` + enc.text(p.brand) + `</a>`)
	b.WriteString(`<ul style="` + enc.style(menu) + `">`)
	for _, item := range p.items {
		b.WriteString(`<li><a href="` + enc.url(item.Get("link", "")) + `" target="_blank" style="` + enc.style(link) + `">`)
		b.WriteString(enc.text(item.Get("text", "")))
		b.WriteString(`</a></li>`)
	}
	b.WriteString(`</ul></nav>`)
	return b.String()
}

type paginationProps struct {
	pages           []props.Item
	current         int
	bgColor         string
	textColor       string
	linkColor       string
	activeBgColor   string
	activeTextColor string
	borderColor     string
	border          border
}

func decodePagination(bag props.Bag) paginationProps {
	return paginationProps{
		pages:           itemsOr(bag, "pages", nil),
		current:         int(bag.Number("currentPageIndex", 0)),
		bgColor:         bag.String("bgColor", "#ffffff"),
		textColor:       bag.String("textColor", "#6b7280"),
		linkColor:       bag.String("linkColor", "#3b82f6"),
		activeBgColor:   bag.String("activeBgColor", "#3b82f6"),
		activeTextColor: bag.String("activeTextColor", "#ffffff"),
		borderColor:     bag.String("borderColor", "#e5e7eb"),
		border:          resolveBorder(bag, style.ThicknessThin, style.RadiusMedium, "1px", "0.25rem"),
	}
}

// pageLink returns the link of page i, or "#" when i is out of range.
func (p paginationProps) pageLink(i int) string {
	if i < 0 || i >= len(p.pages) {
		return "#"
	}
	return p.pages[i].Get("link", "#")
}

// render marks the page at the current index with aria-current. Previous
// and next arrows point at the neighbouring pages, clamped to the ends.
func (p paginationProps) render(enc encoder) string {
	base := func() *style.Declarations {
		return style.Decl(
			"display", "block",
			"padding", "0.5rem 1rem",
			"text-decoration", "none",
			"border", style.Border(p.border.width, p.borderColor),
			"border-radius", p.border.radius,
			"font-weight", "500",
		)
	}
	arrow := base().Set("background-color", p.bgColor).Set("color", p.textColor)
	list := style.Decl(
		"display", "flex",
		"list-style", "none",
		"padding", "0",
		"margin", "0 auto 1rem auto",
		"justify-content", "center",
		"font-family", fontFamily,
		"gap", "0.25rem",
	)

	prev := p.pageLink(max(0, p.current-1))
	next := p.pageLink(min(len(p.pages)-1, p.current+1))

	var b strings.Builder
	b.WriteString(`<nav aria-label="Navegación de Páginas" style="margin-bottom: 1rem;">`)
	b.WriteString(`<ul style="` + enc.style(list) + `">`)
	b.WriteString(`<li><a href="` + enc.url(prev) + `" style="` + enc.style(arrow) + `">&laquo;</a></li>`)
	for i, page := range p.pages {
		link := base()
		current := ""
		if i == p.current {
			link.Set("background-color", p.activeBgColor).
				Set("color", p.activeTextColor).
				Set("border-color", p.activeBgColor)
			current = ` aria-current="page"`
		} else {
			link.Set("background-color", p.bgColor).Set("color", p.linkColor)
		}
		b.WriteString(`<li><a href="` + enc.url(page.Get("link", "#")) + `"` + current + ` style="` + enc.style(link) + `">`)
		b.WriteString(enc.text(page.Get("text", "")))
		b.WriteString(`</a></li>`)
	}
	b.WriteString(`<li><a href="` + enc.url(next) + `" style="` + enc.style(arrow) + `">&raquo;</a></li>`)
	b.WriteString(`</ul></nav>`)
	return b.String()
}
