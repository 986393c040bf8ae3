package canvas

import (
	"strings"

	"github.com/alexisbeaulieu97/canvasgen/internal/props"
	"github.com/alexisbeaulieu97/canvasgen/internal/style"
)

type accordionProps struct {
	items          []props.Item
	bgColor        string
	titleColor     string
	textColor      string
	borderColor    string
	contentBgColor string
	border         border
}

func decodeAccordion(bag props.Bag) accordionProps {
	return accordionProps{
		items:          itemsOr(bag, "accordions", nil),
		bgColor:        bag.String("bgColor", "#e2e8f0"),
		titleColor:     bag.String("titleColor", "#1f2937"),
		textColor:      bag.String("textColor", "#1f2937"),
		borderColor:    bag.String("borderColor", "#e2e8f0"),
		contentBgColor: bag.String("contentBgColor", "#f1f5f9"),
		border:         resolveBorder(bag, style.ThicknessMedium, style.RadiusMedium, "2px", "0.5rem"),
	}
}

// render stacks one <details> per item inside a single bordered box. Every
// summary but the last carries a bottom separator; the outer border closes
// the last one.
func (p accordionProps) render(enc encoder) string {
	outer := style.Decl(
		"font-family", fontFamily,
		"margin-bottom", "1rem",
		"border", style.Border(p.border.width, p.borderColor),
		"border-radius", p.border.radius,
		"overflow", "hidden",
	)
	content := style.Decl(
		"padding", "1rem 1.25rem",
		"background-color", p.contentBgColor,
		"color", p.textColor,
	)

	var b strings.Builder
	b.WriteString(`<div style="` + enc.style(outer) + `">`)
	for i, item := range p.items {
		separator := "none"
		if i < len(p.items)-1 {
			separator = style.Border(p.border.width, p.borderColor)
		}
		summary := style.Decl(
			"background-color", p.bgColor,
			"padding", "1rem 1.25rem",
			"cursor", "pointer",
			"display", "flex",
			"justify-content", "space-between",
			"align-items", "center",
			"font-weight", "600",
			"color", p.titleColor,
			"border-bottom", separator,
			"list-style", "none",
		)
		b.WriteString(`<details style="display: block; border: none;">`)
		b.WriteString(`<summary style="` + enc.style(summary) + `">`)
		b.WriteString(`<span>` + enc.text(item.Get("title", "")) + `</span>`)
		b.WriteString(`<span style="font-size: 1.2rem; margin-left: 0.5rem;">&#9660;</span>`)
		b.WriteString(`</summary>`)
		b.WriteString(`<div style="` + enc.style(content) + `">`)
		b.WriteString(`<p style="margin: 0;">` + enc.text(item.Get("content", "")) + `</p>`)
		b.WriteString(`</div></details>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}
