package style

import (
	"math"
	"strconv"
	"strings"
)

type declaration struct {
	property string
	value    string
}

// Declarations is an ordered list of CSS declarations destined for an
// inline style attribute. Order is preserved so output is deterministic.
type Declarations struct {
	items []declaration
}

// Decl starts a declaration list from alternating property/value pairs.
// A trailing property without a value is ignored.
func Decl(pairs ...string) *Declarations {
	d := &Declarations{items: make([]declaration, 0, len(pairs)/2)}
	for i := 0; i+1 < len(pairs); i += 2 {
		d.Set(pairs[i], pairs[i+1])
	}
	return d
}

// Set appends a declaration. Repeated properties are kept, later ones win
// in the browser cascade just like in a hand-written style attribute.
func (d *Declarations) Set(property, value string) *Declarations {
	d.items = append(d.items, declaration{property: property, value: value})
	return d
}

// SetIf appends the declaration only when cond holds.
func (d *Declarations) SetIf(cond bool, property, value string) *Declarations {
	if cond {
		d.Set(property, value)
	}
	return d
}

// Without returns a copy with every declaration of property removed.
func (d *Declarations) Without(property string) *Declarations {
	out := &Declarations{items: make([]declaration, 0, len(d.items))}
	for _, item := range d.items {
		if item.property != property {
			out.items = append(out.items, item)
		}
	}
	return out
}

// Len returns the number of declarations.
func (d *Declarations) Len() int {
	return len(d.items)
}

// String renders "prop: value; prop: value;".
func (d *Declarations) String() string {
	if d == nil || len(d.items) == 0 {
		return ""
	}
	var b strings.Builder
	for i, item := range d.items {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(item.property)
		b.WriteString(": ")
		b.WriteString(item.value)
		b.WriteByte(';')
	}
	return b.String()
}

// Border renders the "width solid color" shorthand.
func Border(width, color string) string {
	return width + " solid " + color
}

// ScalePixels multiplies a pixel length such as "2px" by factor. Lengths
// that do not start with an integer are treated as zero.
func ScalePixels(length string, factor int) string {
	end := 0
	for end < len(length) && length[end] >= '0' && length[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(length[:end])
	if err != nil {
		n = 0
	}
	return strconv.Itoa(n*factor) + "px"
}

// Number formats a float without trailing zeros, e.g. 75 -> "75", 0.5 -> "0.5".
func Number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Clamp bounds v to [lo, hi]. NaN maps to lo and -0 to 0.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	if v == 0 {
		v = 0
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
