// Package style holds the symbolic border vocabulary shared by every
// component generator and a small builder for inline CSS declarations.
package style

// Thickness names, ordered from thinnest to thickest.
const (
	ThicknessNone   = "none"
	ThicknessThin   = "thin"
	ThicknessMedium = "medium"
	ThicknessThick  = "thick"
)

// Radius names, ordered from square to pill.
const (
	RadiusNone   = "none"
	RadiusSmall  = "small"
	RadiusMedium = "medium"
	RadiusLarge  = "large"
	RadiusFull   = "full"
)

var thicknessOrder = []string{ThicknessNone, ThicknessThin, ThicknessMedium, ThicknessThick}

var thicknessValues = map[string]string{
	ThicknessNone:   "0px",
	ThicknessThin:   "1px",
	ThicknessMedium: "2px",
	ThicknessThick:  "4px",
}

var radiusOrder = []string{RadiusNone, RadiusSmall, RadiusMedium, RadiusLarge, RadiusFull}

var radiusValues = map[string]string{
	RadiusNone:   "0rem",
	RadiusSmall:  "0.25rem",
	RadiusMedium: "0.5rem",
	RadiusLarge:  "1rem",
	RadiusFull:   "9999px",
}

// Thickness resolves a symbolic border thickness to a CSS length. Unknown
// names yield fallback; each generator passes its own.
func Thickness(name, fallback string) string {
	if v, ok := thicknessValues[name]; ok {
		return v
	}
	return fallback
}

// Radius resolves a symbolic corner radius to a CSS length. Unknown names
// yield fallback.
func Radius(name, fallback string) string {
	if v, ok := radiusValues[name]; ok {
		return v
	}
	return fallback
}

// ThicknessNames returns the thickness vocabulary in display order.
func ThicknessNames() []string {
	return append([]string(nil), thicknessOrder...)
}

// RadiusNames returns the radius vocabulary in display order.
func RadiusNames() []string {
	return append([]string(nil), radiusOrder...)
}

// IsThickness reports whether name belongs to the thickness vocabulary.
func IsThickness(name string) bool {
	_, ok := thicknessValues[name]
	return ok
}

// IsRadius reports whether name belongs to the radius vocabulary.
func IsRadius(name string) bool {
	_, ok := radiusValues[name]
	return ok
}
