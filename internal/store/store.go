// Package store holds one property bag per component kind for the lifetime
// of an editing session.
package store

import (
	"fmt"
	"sync"

	"github.com/alexisbeaulieu97/canvasgen/internal/canvas"
	"github.com/alexisbeaulieu97/canvasgen/internal/props"
	apperrors "github.com/alexisbeaulieu97/canvasgen/pkg/errors"
)

// Store maps each kind to its current bag. Writes never mutate a bag in
// place: the touched bag is replaced by an updated copy.
type Store struct {
	mu   sync.RWMutex
	bags map[canvas.Kind]props.Bag
}

// New seeds a store with the schema defaults of every kind.
func New() *Store {
	s := &Store{bags: make(map[canvas.Kind]props.Bag, len(canvas.Kinds()))}
	for _, k := range canvas.Kinds() {
		s.bags[k] = canvas.SchemaFor(k).Defaults()
	}
	return s
}

// Bag returns a copy of the current bag of k.
func (s *Store) Bag(k canvas.Kind) props.Bag {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.bags[k].Clone()
}

// Overlay replaces every key of values in k's bag after validating each one.
// Nothing is written when any key is rejected.
func (s *Store) Overlay(k canvas.Kind, values props.Bag) error {
	if err := checkKind(k); err != nil {
		return err
	}
	schema := canvas.SchemaFor(k)
	for _, key := range values.Keys() {
		if err := checkValue(schema, key, values[key]); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.bags[k] = s.bags[k].Merge(values)
	return nil
}

// Set replaces a single key of k's bag.
func (s *Store) Set(k canvas.Kind, key string, value any) error {
	return s.Overlay(k, props.Bag{key: value})
}

// AppendItem appends the schema's template item to the list at listKey and
// returns the new length.
func (s *Store) AppendItem(k canvas.Kind, listKey string) (int, error) {
	if err := checkKind(k); err != nil {
		return 0, err
	}
	template := canvas.SchemaFor(k).NewItem(listKey)
	if template == nil {
		return 0, notAList(k, listKey)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := append(props.CloneItems(s.bags[k].Items(listKey)), template)
	s.bags[k] = s.bags[k].With(listKey, items)
	return len(items), nil
}

// RemoveItem drops the item at index from the list at listKey.
func (s *Store) RemoveItem(k canvas.Kind, listKey string, index int) error {
	if err := checkList(k, listKey); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.bags[k].Items(listKey)
	if index < 0 || index >= len(current) {
		return outOfRange(k, listKey, index, len(current))
	}
	items := make([]props.Item, 0, len(current)-1)
	for i, it := range current {
		if i != index {
			items = append(items, it.Clone())
		}
	}
	s.bags[k] = s.bags[k].With(listKey, items)
	return nil
}

// UpdateItem sets field of the item at index in the list at listKey.
// Fields outside the list's item schema are rejected.
func (s *Store) UpdateItem(k canvas.Kind, listKey string, index int, field, value string) error {
	if err := checkList(k, listKey); err != nil {
		return err
	}
	f, _ := canvas.SchemaFor(k).Field(listKey)
	if !contains(f.ItemFields, field) {
		return apperrors.NewPropertyError(k.String(), listKey, fmt.Sprintf("unknown item field %q", field), nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.bags[k].Items(listKey)
	if index < 0 || index >= len(current) {
		return outOfRange(k, listKey, index, len(current))
	}
	items := props.CloneItems(current)
	items[index] = items[index].With(field, value)
	s.bags[k] = s.bags[k].With(listKey, items)
	return nil
}

func checkKind(k canvas.Kind) error {
	if !k.Valid() {
		return apperrors.NewPropertyError(k.String(), "", "undefined component", nil)
	}
	return nil
}

func checkList(k canvas.Kind, listKey string) error {
	if err := checkKind(k); err != nil {
		return err
	}
	f, ok := canvas.SchemaFor(k).Field(listKey)
	if !ok || f.Control != canvas.ControlList {
		return notAList(k, listKey)
	}
	return nil
}

func checkValue(schema canvas.Schema, key string, value any) error {
	kind := schema.Kind.String()
	f, ok := schema.Field(key)
	if !ok {
		return apperrors.NewPropertyError(kind, key, "unknown property", nil)
	}
	got, ok := props.TypeOf(value)
	if !ok {
		return apperrors.NewPropertyError(kind, key, fmt.Sprintf("unsupported value type %T", value), nil)
	}
	if got != f.Type() {
		return apperrors.NewPropertyError(kind, key, fmt.Sprintf("expected %s, got %s", f.Type(), got), nil)
	}
	return nil
}

func notAList(k canvas.Kind, key string) error {
	return apperrors.NewPropertyError(k.String(), key, "not a list property", nil)
}

func outOfRange(k canvas.Kind, key string, index, length int) error {
	return apperrors.NewPropertyError(k.String(), key, fmt.Sprintf("index %d out of range [0,%d)", index, length), nil)
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
