package define

import (
	"fmt"
	"iter"

	"github.com/samber/lo"
)

// OrderedMap is an OID-keyed collection that keeps document order.
// Order is a permutation of the keys of Items.
type OrderedMap[T any] struct {
	Items map[string]T `json:"items"`
	Order []string     `json:"order"`
}

// NewOrderedMap creates an empty ordered map.
func NewOrderedMap[T any]() OrderedMap[T] {
	return OrderedMap[T]{Items: make(map[string]T), Order: []string{}}
}

// Set stores item under id. An id that was already stored keeps its
// position and gets the new item.
func (m *OrderedMap[T]) Set(id string, item T) {
	if m.Items == nil {
		m.Items = make(map[string]T)
	}

	if _, ok := m.Items[id]; !ok {
		m.Order = append(m.Order, id)
	}

	m.Items[id] = item
}

// Get returns the item stored under id.
func (m OrderedMap[T]) Get(id string) (T, bool) {
	item, ok := m.Items[id]
	return item, ok
}

// Len returns the number of items.
func (m OrderedMap[T]) Len() int {
	return len(m.Order)
}

// Values returns the items in document order.
func (m OrderedMap[T]) Values() []T {
	return lo.Map(m.Order, func(id string, _ int) T {
		return m.Items[id]
	})
}

// All iterates over id/item pairs in document order.
func (m OrderedMap[T]) All() iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		for _, id := range m.Order {
			if !yield(id, m.Items[id]) {
				return
			}
		}
	}
}

// Validate checks that Order lists every key of Items exactly once.
func (m OrderedMap[T]) Validate() error {
	if dups := lo.FindDuplicates(m.Order); len(dups) > 0 {
		return fmt.Errorf("duplicate ids in order: %v", dups)
	}

	missing, unknown := lo.Difference(lo.Keys(m.Items), m.Order)
	if len(missing) > 0 {
		return fmt.Errorf("ids missing from order: %v", missing)
	}

	if len(unknown) > 0 {
		return fmt.Errorf("ids in order without an item: %v", unknown)
	}

	return nil
}
