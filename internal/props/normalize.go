package props

import (
	"fmt"
)

// Normalize converts a generically decoded document (YAML or JSON) into a
// Bag. Integers become float64 and sequences of mappings become []Item.
func Normalize(raw map[string]any) (Bag, error) {
	bag := make(Bag, len(raw))
	for key, value := range raw {
		v, err := normalizeValue(value)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", key, err)
		}
		bag[key] = v
	}
	return bag, nil
}

func normalizeValue(value any) (any, error) {
	switch v := value.(type) {
	case string, bool, float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case float32:
		return float64(v), nil
	case []Item:
		return CloneItems(v), nil
	case []any:
		items := make([]Item, 0, len(v))
		for i, entry := range v {
			item, err := normalizeItem(entry)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			items = append(items, item)
		}
		return items, nil
	case nil:
		return nil, fmt.Errorf("value is empty")
	default:
		return nil, fmt.Errorf("unsupported value of type %T", value)
	}
}

func normalizeItem(entry any) (Item, error) {
	fields, ok := entry.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected a mapping, got %T", entry)
	}
	item := make(Item, len(fields))
	for field, value := range fields {
		switch v := value.(type) {
		case string:
			item[field] = v
		case nil:
			item[field] = ""
		case map[string]any, []any:
			return nil, fmt.Errorf("field %q: nested values are not supported", field)
		default:
			item[field] = fmt.Sprint(v)
		}
	}
	return item, nil
}
