package canvas

import (
	"strings"

	"github.com/alexisbeaulieu97/canvasgen/internal/props"
	"github.com/alexisbeaulieu97/canvasgen/internal/style"
)

const cardShadow = "0 4px 6px -1px rgba(0, 0, 0, 0.1), 0 2px 4px -2px rgba(0, 0, 0, 0.1)"

type cardProps struct {
	title       string
	text        string
	imageSrc    string
	link        string
	linkText    string
	bgColor     string
	titleColor  string
	textColor   string
	linkColor   string
	borderColor string
	border      border
}

func decodeCard(bag props.Bag) cardProps {
	return cardProps{
		title:       bag.String("title", "Título de la Tarjeta"),
		text:        bag.String("text", "Contenido de ejemplo para la tarjeta."),
		imageSrc:    bag.String("imageSrc", placeholderCardImage),
		link:        bag.String("link", "#"),
		linkText:    bag.String("linkText", "Leer más"),
		bgColor:     bag.String("bgColor", "#ffffff"),
		titleColor:  bag.String("titleColor", "#1f2937"),
		textColor:   bag.String("textColor", "#374151"),
		linkColor:   bag.String("linkColor", "#3b82f6"),
		borderColor: bag.String("borderColor", "#e2e8f0"),
		border:      resolveBorder(bag, style.ThicknessMedium, style.RadiusMedium, "2px", "0.5rem"),
	}
}

// render draws a single card. Inside a collection the container's gap does
// the spacing, so the bottom margin is dropped.
func (p cardProps) render(enc encoder, inCollection bool) string {
	card := style.Decl(
		"border", style.Border(p.border.width, p.borderColor),
		"border-radius", p.border.radius,
		"overflow", "hidden",
		"max-width", "320px",
		"box-shadow", cardShadow,
	).SetIf(!inCollection, "margin-bottom", "1rem").
		Set("font-family", fontFamily).
		Set("display", "inline-block").
		Set("vertical-align", "top").
		Set("background-color", p.bgColor)
	title := style.Decl(
		"font-size", "1.25rem",
		"font-weight", "700",
		"margin-top", "0",
		"margin-bottom", "0.5rem",
		"color", p.titleColor,
	)
	body := style.Decl(
		"font-size", "1rem",
		"line-height", "1.5",
		"color", p.textColor,
		"margin-top", "0",
		"margin-bottom", "1rem",
	)
	link := style.Decl(
		"color", p.linkColor,
		"text-decoration", "none",
		"font-weight", "600",
	)

	var b strings.Builder
	b.WriteString(`<div style="` + enc.style(card) + `">`)
	if p.imageSrc != "" {
		b.WriteString(`<img src="` + enc.url(p.imageSrc) + `" alt="Imagen de la tarjeta" style="width: 100%; height: auto; display: block;">`)
	}
	b.WriteString(`<div style="padding: 1.25rem;">`)
	b.WriteString(`<h3 style="` + enc.style(title) + `">` + enc.text(p.title) + `</h3>`)
	b.WriteString(`<p style="` + enc.style(body) + `">` + enc.text(p.text) + `</p>`)
	b.WriteString(`<a href="` + enc.url(p.link) + `" target="_blank" style="` + enc.style(link) + `">` + enc.text(p.linkText) + `</a>`)
	b.WriteString(`</div></div>`)
	return b.String()
}

type cardCollectionProps struct {
	cards  []props.Item
	shared props.Bag
}

func decodeCardCollection(bag props.Bag) cardCollectionProps {
	shared := bag.Clone()
	delete(shared, "cards")
	return cardCollectionProps{
		cards:  itemsOr(bag, "cards", nil),
		shared: shared,
	}
}

// render lays the cards out in a wrapping row. Each card starts from the
// collection's shared colors and border, overridden by its own fields.
func (p cardCollectionProps) render(enc encoder) string {
	container := style.Decl(
		"display", "flex",
		"flex-wrap", "wrap",
		"gap", "1rem",
		"justify-content", "center",
		"font-family", fontFamily,
		"margin-bottom", "1rem",
	)

	var b strings.Builder
	b.WriteString(`<div style="` + enc.style(container) + `">`)
	for _, item := range p.cards {
		overlay := make(props.Bag, len(item))
		for k, v := range item {
			overlay[k] = v
		}
		b.WriteString(decodeCard(p.shared.Merge(overlay)).render(enc, true))
	}
	b.WriteString(`</div>`)
	return b.String()
}
