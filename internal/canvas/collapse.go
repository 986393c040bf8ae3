package canvas

import (
	"strings"

	"github.com/alexisbeaulieu97/canvasgen/internal/props"
	"github.com/alexisbeaulieu97/canvasgen/internal/style"
)

const collapseToggleScript = `this.querySelector('summary span span').style.transform = this.open ? 'rotate(90deg)' : 'rotate(0deg)'`

type collapseProps struct {
	title       string
	content     string
	linkColor   string
	bgColor     string
	textColor   string
	borderColor string
	border      border
}

func decodeCollapse(bag props.Bag) collapseProps {
	return collapseProps{
		title:       bag.String("title", "Mostrar/Ocultar Contenido"),
		content:     bag.String("content", "Este es el contenido que se colapsa."),
		linkColor:   bag.String("linkColor", "#3b82f6"),
		bgColor:     bag.String("bgColor", "#f8fafc"),
		textColor:   bag.String("textColor", "#334155"),
		borderColor: bag.String("borderColor", "#e2e8f0"),
		border:      resolveBorder(bag, style.ThicknessMedium, style.RadiusMedium, "2px", "0.5rem"),
	}
}

// render emits a link-styled summary whose arrow rotates when the panel
// opens.
func (p collapseProps) render(enc encoder) string {
	wrapper := style.Decl(
		"margin-bottom", "1rem",
		"font-family", fontFamily,
		"display", "block",
	)
	summary := style.Decl(
		"display", "inline-block",
		"padding", "0.5rem 0",
		"color", p.linkColor,
		"text-decoration", "none",
		"cursor", "pointer",
		"list-style", "none",
		"font-weight", "600",
	)
	panel := style.Decl(
		"background-color", p.bgColor,
		"padding", "1rem",
		"border", style.Border(p.border.width, p.borderColor),
		"border-radius", p.border.radius,
		"margin-top", "0.5rem",
		"color", p.textColor,
	)

	var b strings.Builder
	b.WriteString(`<details style="` + enc.style(wrapper) + `" ontoggle="` + collapseToggleScript + `">`)
	b.WriteString(`<summary style="` + enc.style(summary) + `">`)
	b.WriteString(`<span>` + enc.text(p.title) + ` <span style="font-size: 1rem; margin-left: 0.5rem; vertical-align: middle; display: inline-block; transition: transform 0.2s;">&#9654;</span></span>`)
	b.WriteString(`</summary>`)
	b.WriteString(`<div style="` + enc.style(panel) + `"><p style="margin: 0;">` + enc.text(p.content) + `</p></div>`)
	b.WriteString(`</details>`)
	return b.String()
}

type dropdownProps struct {
	title            string
	items            []props.Item
	bgColor          string
	textColor        string
	borderColor      string
	contentBgColor   string
	contentTextColor string
	border           border
}

func decodeDropdown(bag props.Bag) dropdownProps {
	return dropdownProps{
		title:            bag.String("title", "Menú Desplegable"),
		items:            itemsOr(bag, "items", nil),
		bgColor:          bag.String("bgColor", "#4f46e5"),
		textColor:        bag.String("textColor", "#ffffff"),
		borderColor:      bag.String("borderColor", "#e2e8f0"),
		contentBgColor:   bag.String("contentBgColor", "#ffffff"),
		contentTextColor: bag.String("contentTextColor", "#374151"),
		border:           resolveBorder(bag, style.ThicknessThin, style.RadiusMedium, "1px", "0.5rem"),
	}
}

func (p dropdownProps) render(enc encoder) string {
	wrapper := style.Decl(
		"position", "relative",
		"display", "inline-block",
		"font-family", fontFamily,
		"margin-bottom", "1rem",
	)
	edge := style.Border(p.border.width, p.borderColor)
	summary := style.Decl(
		"background-color", p.bgColor,
		"color", p.textColor,
		"padding", "0.75rem 1rem",
		"font-size", "1rem",
		"border", edge,
		"border-radius", p.border.radius,
		"cursor", "pointer",
		"display", "flex",
		"justify-content", "space-between",
		"align-items", "center",
		"list-style", "none",
	)
	menu := style.Decl(
		"position", "absolute",
		"top", "calc(100% + 5px)",
		"left", "0",
		"background-color", p.contentBgColor,
		"min-width", "160px",
		"box-shadow", "0px 8px 16px 0px rgba(0,0,0,0.1)",
		"z-index", "10",
		"border", edge,
		"border-radius", p.border.radius,
		"overflow", "hidden",
		"padding", "0.5rem 0",
	)
	entry := style.Decl(
		"color", p.contentTextColor,
		"padding", "0.5rem 1rem",
		"text-decoration", "none",
		"display", "block",
	)

	var b strings.Builder
	b.WriteString(`<details style="` + enc.style(wrapper) + `">`)
	b.WriteString(`<summary style="` + enc.style(summary) + `">`)
	b.WriteString(`<span>` + enc.text(p.title) + `</span>`)
	b.WriteString(`<span style="margin-left: 0.5rem; display: inline-block; transition: transform 0.2s;">&#9660;</span>`)
	b.WriteString(`</summary>`)
	b.WriteString(`<div style="` + enc.style(menu) + `">`)
	for _, item := range p.items {
		b.WriteString(`<a href="` + enc.url(item.Get("link", "")) + `" target="_blank" style="` + enc.style(entry) + `">`)
		b.WriteString(enc.text(item.Get("text", "")))
		b.WriteString(`</a>`)
	}
	b.WriteString(`</div></details>`)
	return b.String()
}
