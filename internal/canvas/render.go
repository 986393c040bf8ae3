// Package canvas generates self-contained HTML fragments with inline
// styles for the supported UI component kinds. Generators are pure: the
// same property bag always yields the same fragment, and missing keys are
// filled from each generator's literal defaults.
package canvas

import (
	"github.com/alexisbeaulieu97/canvasgen/internal/props"
	"github.com/alexisbeaulieu97/canvasgen/internal/style"
)

const fontFamily = "Inter, sans-serif"

// Render produces the fragment for k from bag, interpolating values
// verbatim.
func Render(k Kind, bag props.Bag) string {
	return RenderWith(k, bag, Options{})
}

// RenderWith produces the fragment for k using the supplied options.
// Undefined kinds render as an empty string.
func RenderWith(k Kind, bag props.Bag, opts Options) string {
	enc := newEncoder(opts)
	switch k {
	case Accordion:
		return decodeAccordion(bag).render(enc)
	case Alerts:
		return decodeAlert(bag).render(enc)
	case Buttons:
		return decodeButton(bag).render(enc)
	case ButtonGroup:
		return decodeButtonGroup(bag).render(enc)
	case Card:
		return decodeCard(bag).render(enc, false)
	case CardCollection:
		return decodeCardCollection(bag).render(enc)
	case Collapse:
		return decodeCollapse(bag).render(enc)
	case Dropdowns:
		return decodeDropdown(bag).render(enc)
	case ListGroup:
		return decodeListGroup(bag).render(enc)
	case NavBar:
		return decodeNavBar(bag).render(enc)
	case HeroBanners:
		return decodeHeroBanner(bag).render(enc)
	case Pagination:
		return decodePagination(bag).render(enc)
	case Progress:
		return decodeProgress(bag).render(enc)
	case Breadcrumbs:
		return decodeBreadcrumbs(bag).render(enc)
	case Badges:
		return decodeBadge(bag).render(enc)
	default:
		return ""
	}
}

// itemsOr returns the list at key, or def when the key is absent. A
// present but empty list stays empty.
func itemsOr(bag props.Bag, key string, def []props.Item) []props.Item {
	if !bag.Has(key) {
		return def
	}
	return bag.Items(key)
}

// border resolves the symbolic border keys shared by most kinds.
type border struct {
	width  string
	radius string
}

func resolveBorder(bag props.Bag, defThickness, defRadius, fallbackWidth, fallbackRadius string) border {
	return border{
		width:  style.Thickness(bag.String("borderThickness", defThickness), fallbackWidth),
		radius: style.Radius(bag.String("borderRadius", defRadius), fallbackRadius),
	}
}
