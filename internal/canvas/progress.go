package canvas

import (
	"github.com/alexisbeaulieu97/canvasgen/internal/props"
	"github.com/alexisbeaulieu97/canvasgen/internal/style"
)

type progressProps struct {
	percentage       float64
	showText         bool
	bgColor          string
	containerBgColor string
	textColor        string
	border           border
}

func decodeProgress(bag props.Bag) progressProps {
	return progressProps{
		percentage:       style.Clamp(bag.Number("percentage", 50), 0, 100),
		showText:         bag.Bool("showText", true),
		bgColor:          bag.String("bgColor", "#3b82f6"),
		containerBgColor: bag.String("containerBgColor", "#e5e7eb"),
		textColor:        bag.String("textColor", "#ffffff"),
		border:           resolveBorder(bag, style.ThicknessNone, style.RadiusMedium, "0px", "0.5rem"),
	}
}

// render draws the track and a bar sized to the clamped percentage. The
// optional label repeats the clamped value.
func (p progressProps) render(enc encoder) string {
	pct := style.Number(p.percentage)
	track := style.Decl(
		"width", "100%",
		"background-color", p.containerBgColor,
		"border-radius", p.border.radius,
		"overflow", "hidden",
		"height", "1.5rem",
		"margin-bottom", "1rem",
		"font-family", fontFamily,
		"border", style.Border(p.border.width, p.containerBgColor),
	)
	bar := style.Decl(
		"width", pct+"%",
		"background-color", p.bgColor,
		"height", "100%",
		"display", "flex",
		"align-items", "center",
		"justify-content", "center",
		"font-weight", "bold",
		"font-size", "0.875rem",
		"transition", "width 0.3s ease-in-out",
	)

	out := `<div style="` + enc.style(track) + `"><div style="` + enc.style(bar) + `">`
	if p.showText {
		label := style.Decl("color", p.textColor, "padding", "0 0.5rem")
		out += `<span style="` + enc.style(label) + `">` + pct + `%</span>`
	}
	return out + `</div></div>`
}
