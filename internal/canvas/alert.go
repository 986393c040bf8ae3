package canvas

import (
	"github.com/alexisbeaulieu97/canvasgen/internal/props"
	"github.com/alexisbeaulieu97/canvasgen/internal/style"
)

type alertProps struct {
	message     string
	bgColor     string
	textColor   string
	borderColor string
	border      border
}

func decodeAlert(bag props.Bag) alertProps {
	return alertProps{
		message:     bag.String("message", "Este es un mensaje de alerta."),
		bgColor:     bag.String("bgColor", "#3b82f6"),
		textColor:   bag.String("textColor", "#ffffff"),
		borderColor: bag.String("borderColor", "#3b82f6"),
		border:      resolveBorder(bag, style.ThicknessMedium, style.RadiusMedium, "2px", "0.5rem"),
	}
}

// render draws the left edge at four times the resolved thickness to form
// the accent bar.
func (p alertProps) render(enc encoder) string {
	side := style.Border(p.border.width, p.borderColor)
	box := style.Decl(
		"background-color", p.bgColor,
		"color", p.textColor,
		"padding", "1rem",
		"border-radius", p.border.radius,
		"border-top", side,
		"border-right", side,
		"border-bottom", side,
		"border-left", style.Border(style.ScalePixels(p.border.width, 4), p.borderColor),
		"margin-bottom", "1rem",
		"font-family", fontFamily,
	)
	return `<div style="` + enc.style(box) + `">` +
		`<p style="margin: 0; font-weight: 500;">` + enc.text(p.message) + `</p>` +
		`</div>`
}
