package canvas

import (
	"fmt"
	"strings"
	"unicode"
)

// Kind identifies one of the fixed component types the generator supports.
type Kind int

const (
	Accordion Kind = iota
	Alerts
	Buttons
	ButtonGroup
	Card
	CardCollection
	Collapse
	Dropdowns
	ListGroup
	NavBar
	HeroBanners
	Pagination
	Progress
	Breadcrumbs
	Badges
)

var kindNames = [...]string{
	Accordion:      "Accordion",
	Alerts:         "Alerts",
	Buttons:        "Buttons",
	ButtonGroup:    "ButtonGroup",
	Card:           "Card",
	CardCollection: "CardCollection",
	Collapse:       "Collapse",
	Dropdowns:      "Dropdowns",
	ListGroup:      "ListGroup",
	NavBar:         "NavBar",
	HeroBanners:    "HeroBanners",
	Pagination:     "Pagination",
	Progress:       "Progress",
	Breadcrumbs:    "Breadcrumbs",
	Badges:         "Badges",
}

// Kinds returns every kind in selector order.
func Kinds() []Kind {
	kinds := make([]Kind, len(kindNames))
	for i := range kindNames {
		kinds[i] = Kind(i)
	}
	return kinds
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k >= 0 && int(k) < len(kindNames)
}

// String returns the identifier form, e.g. "ButtonGroup".
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// DisplayName space-splits the identifier: "ButtonGroup" -> "Button Group".
func (k Kind) DisplayName() string {
	return splitWords(k.String())
}

// ParseKind resolves an identifier case-insensitively. Display names with
// spaces are accepted too.
func ParseKind(name string) (Kind, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(name), " ", "")
	for i, candidate := range kindNames {
		if strings.EqualFold(candidate, normalized) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown component type %q", name)
}

// splitWords inserts a space before every upper-case rune except the first.
func splitWords(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
