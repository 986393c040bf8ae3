package canvas

import (
	"strings"

	"github.com/alexisbeaulieu97/canvasgen/internal/props"
	"github.com/alexisbeaulieu97/canvasgen/internal/style"
)

type heroBannerProps struct {
	title           string
	subtitle        string
	buttonText      string
	buttonLink      string
	imageSrc        string
	overlayColor    string
	overlayOpacity  float64
	titleColor      string
	textColor       string
	buttonBgColor   string
	buttonTextColor string
	border          border
}

func decodeHeroBanner(bag props.Bag) heroBannerProps {
	return heroBannerProps{
		title:           bag.String("title", "Bienvenido a mi Curso"),
		subtitle:        bag.String("subtitle", "Prepárate para aprender y crecer."),
		buttonText:      bag.String("buttonText", "Empezar Aquí"),
		buttonLink:      bag.String("buttonLink", "#"),
		imageSrc:        bag.String("imageSrc", placeholderBannerImage),
		overlayColor:    bag.String("overlayColor", "#000000"),
		overlayOpacity:  style.Clamp(bag.Number("overlayOpacity", 0.5), 0, 1),
		titleColor:      bag.String("titleColor", "#ffffff"),
		textColor:       bag.String("textColor", "#e5e7eb"),
		buttonBgColor:   bag.String("buttonBgColor", "#4f46e5"),
		buttonTextColor: bag.String("buttonTextColor", "#ffffff"),
		border:          resolveBorder(bag, style.ThicknessNone, style.RadiusNone, "0px", "0rem"),
	}
}

// render layers a tinted overlay between the background image and the
// centred content.
func (p heroBannerProps) render(enc encoder) string {
	banner := style.Decl(
		"position", "relative",
		"width", "100%",
		"min-height", "300px",
		"background-image", "url('"+enc.cssURL(p.imageSrc)+"')",
		"background-size", "cover",
		"background-position", "center",
		"display", "flex",
		"align-items", "center",
		"justify-content", "center",
		"text-align", "center",
		"font-family", fontFamily,
		"margin-bottom", "1rem",
		"overflow", "hidden",
		"border", style.Border(p.border.width, p.overlayColor),
		"border-radius", p.border.radius,
	)
	overlay := style.Decl(
		"position", "absolute",
		"top", "0",
		"left", "0",
		"width", "100%",
		"height", "100%",
		"background-color", p.overlayColor,
		"opacity", style.Number(p.overlayOpacity),
		"z-index", "1",
	)
	title := style.Decl(
		"font-size", "2.5rem",
		"font-weight", "800",
		"margin", "0 0 0.5rem",
		"line-height", "1.2",
		"color", p.titleColor,
	)
	subtitle := style.Decl(
		"font-size", "1.25rem",
		"margin", "0 0 1.5rem",
		"line-height", "1.5",
		"color", p.textColor,
	)
	button := style.Decl(
		"display", "inline-block",
		"padding", "0.75rem 1.5rem",
		"background-color", p.buttonBgColor,
		"color", p.buttonTextColor,
		"text-decoration", "none",
		"border-radius", "0.375rem",
		"font-weight", "600",
		"font-size", "1rem",
		"border", "none",
		"cursor", "pointer",
	)

	var b strings.Builder
	b.WriteString(`<div style="` + enc.style(banner) + `">`)
	b.WriteString(`<div style="` + enc.style(overlay) + `"></div>`)
	b.WriteString(`<div style="position: relative; z-index: 2; padding: 2rem; max-width: 800px;">`)
	b.WriteString(`<h2 style="` + enc.style(title) + `">` + enc.text(p.title) + `</h2>`)
	b.WriteString(`<p style="` + enc.style(subtitle) + `">` + enc.text(p.subtitle) + `</p>`)
	b.WriteString(`<a href="` + enc.url(p.buttonLink) + `" target="_blank" style="` + enc.style(button) + `">` + enc.text(p.buttonText) + `</a>`)
	b.WriteString(`</div></div>`)
	return b.String()
}
