// Package props models the editable property bag of a component: a flat
// map of strings, numbers, booleans and ordered sub-item lists.
package props

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Type is the value type of a property.
type Type int

const (
	TypeString Type = iota
	TypeNumber
	TypeBool
	TypeList
)

func (t Type) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeNumber:
		return "number"
	case TypeBool:
		return "bool"
	case TypeList:
		return "list"
	default:
		return "unknown"
	}
}

// TypeOf reports the property type of v. Only string, float64, bool and
// []Item are valid bag values.
func TypeOf(v any) (Type, bool) {
	switch v.(type) {
	case string:
		return TypeString, true
	case float64:
		return TypeNumber, true
	case bool:
		return TypeBool, true
	case []Item:
		return TypeList, true
	default:
		return 0, false
	}
}

// Item is one entry of a repeatable list, e.g. an accordion panel or a nav link.
type Item map[string]string

// Get returns the field value, or def when the field is absent.
func (it Item) Get(field, def string) string {
	if v, ok := it[field]; ok {
		return v
	}
	return def
}

// Clone returns an independent copy of the item.
func (it Item) Clone() Item {
	out := make(Item, len(it))
	for k, v := range it {
		out[k] = v
	}
	return out
}

// With returns a copy of the item with field set to value.
func (it Item) With(field, value string) Item {
	out := it.Clone()
	out[field] = value
	return out
}

// Bag is the property bag of a single component kind.
type Bag map[string]any

// String returns the string at key, or def when absent or not a string.
func (b Bag) String(key, def string) string {
	if v, ok := b[key].(string); ok {
		return v
	}
	return def
}

// Number returns the number at key, or def when absent or not numeric.
func (b Bag) Number(key string, def float64) float64 {
	switch v := b[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return def
	}
}

// Bool returns the boolean at key, or def when absent or not a boolean.
func (b Bag) Bool(key string, def bool) bool {
	if v, ok := b[key].(bool); ok {
		return v
	}
	return def
}

// Items returns the list at key, or nil when absent.
func (b Bag) Items(key string) []Item {
	if v, ok := b[key].([]Item); ok {
		return v
	}
	return nil
}

// Has reports whether key is present.
func (b Bag) Has(key string) bool {
	_, ok := b[key]
	return ok
}

// Keys returns the bag keys in sorted order.
func (b Bag) Keys() []string {
	keys := make([]string, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a deep copy; lists and their items are copied too.
func (b Bag) Clone() Bag {
	out := make(Bag, len(b))
	for k, v := range b {
		if items, ok := v.([]Item); ok {
			out[k] = CloneItems(items)
			continue
		}
		out[k] = v
	}
	return out
}

// With returns a copy of the bag with key replaced by value. The receiver
// is left untouched.
func (b Bag) With(key string, value any) Bag {
	out := b.Clone()
	out[key] = value
	return out
}

// Merge returns a copy of b overlaid with every key of overlay.
func (b Bag) Merge(overlay Bag) Bag {
	out := b.Clone()
	for k, v := range overlay.Clone() {
		out[k] = v
	}
	return out
}

// CloneItems copies a list and each item in it.
func CloneItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}

// ParseValue converts the textual form of a value to the given type, as
// typed on the command line.
func ParseValue(t Type, raw string) (any, error) {
	switch t {
	case TypeString:
		return raw, nil
	case TypeNumber:
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("parse number %q: %w", raw, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("parse number %q: not a finite number", raw)
		}
		if v == 0 {
			v = 0
		}
		return v, nil
	case TypeBool:
		v, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("parse bool %q: %w", raw, err)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("%s values cannot be parsed from text", t)
	}
}
