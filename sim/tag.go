package sim

import (
	"iter"

	"github.com/kamstrup/intmap"
)

// Tags is a marker component store. A marker's only semantic content is
// presence or absence, so the store is a set of entity identities rather
// than a mapping to a unit value.
type Tags struct {
	index    *intmap.Map[EntityID, struct{}]
	entities []EntityID
}

// NewTags creates an empty tag store.
func NewTags() *Tags {
	return &Tags{
		index: intmap.New[EntityID, struct{}](64),
	}
}

// Add marks the entity. Adding twice is a no-op.
func (t *Tags) Add(id EntityID) {
	if _, ok := t.index.Get(id); ok {
		return
	}
	t.index.Put(id, struct{}{})
	t.entities = append(t.entities, id)
}

// Has reports whether the entity carries this tag.
func (t *Tags) Has(id EntityID) bool {
	_, ok := t.index.Get(id)
	return ok
}

// Len returns the number of tagged entities.
func (t *Tags) Len() int {
	return len(t.entities)
}

// All iterates tagged entities in insertion order.
func (t *Tags) All() iter.Seq[EntityID] {
	return func(yield func(EntityID) bool) {
		for _, id := range t.entities {
			if !yield(id) {
				return
			}
		}
	}
}
