package sim

import (
	"iter"

	"github.com/kamstrup/intmap"
)

// Store maps entity identities to component values of a single fixed type.
// Values live in a dense slice; an int-keyed index maps each entity to its
// slot. Iteration follows insertion order, which keeps join order stable
// within a tick even when values are mutated through held pointers.
type Store[T any] struct {
	index    *intmap.Map[EntityID, int]
	entities []EntityID
	values   []T
}

// NewStore creates an empty component store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		index: intmap.New[EntityID, int](64),
	}
}

// Insert associates value with entity, overwriting any prior value. It never
// fails for a valid entity.
func (s *Store[T]) Insert(id EntityID, value T) {
	if slot, ok := s.index.Get(id); ok {
		s.values[slot] = value
		return
	}
	s.index.Put(id, len(s.values))
	s.entities = append(s.entities, id)
	s.values = append(s.values, value)
}

// Get returns a pointer to the entity's component value. Absence is a valid
// "entity lacks this component" state, not an error.
func (s *Store[T]) Get(id EntityID) (*T, bool) {
	slot, ok := s.index.Get(id)
	if !ok {
		return nil, false
	}
	return &s.values[slot], true
}

// Has reports whether the entity has an entry in this store.
func (s *Store[T]) Has(id EntityID) bool {
	_, ok := s.index.Get(id)
	return ok
}

// Len returns the number of entities present in this store.
func (s *Store[T]) Len() int {
	return len(s.entities)
}

// All iterates every (entity, component) pair in insertion order. Filters
// restrict the sequence to entities matching all of them.
func (s *Store[T]) All(filters ...Filter) iter.Seq2[EntityID, *T] {
	return func(yield func(EntityID, *T) bool) {
		for slot, id := range s.entities {
			if !matchAll(id, filters) {
				continue
			}
			if !yield(id, &s.values[slot]) {
				return
			}
		}
	}
}
