package canvas

import (
	"github.com/alexisbeaulieu97/canvasgen/internal/props"
	"github.com/alexisbeaulieu97/canvasgen/internal/style"
)

type badgeProps struct {
	text      string
	bgColor   string
	textColor string
	border    border
}

func decodeBadge(bag props.Bag) badgeProps {
	return badgeProps{
		text:      bag.String("text", "Nuevo"),
		bgColor:   bag.String("bgColor", "#22c55e"),
		textColor: bag.String("textColor", "#ffffff"),
		border:    resolveBorder(bag, style.ThicknessNone, style.RadiusFull, "0px", "9999px"),
	}
}

func (p badgeProps) render(enc encoder) string {
	pill := style.Decl(
		"display", "inline-block",
		"padding", "0.25em 0.6em",
		"font-size", "75%",
		"font-weight", "700",
		"line-height", "1",
		"text-align", "center",
		"white-space", "nowrap",
		"vertical-align", "baseline",
		"border-radius", p.border.radius,
		"background-color", p.bgColor,
		"color", p.textColor,
		"font-family", fontFamily,
		"margin-right", "0.5rem",
		"border", style.Border(p.border.width, p.bgColor),
	)
	return `<span style="` + enc.style(pill) + `">` + enc.text(p.text) + `</span>`
}
