package sim

import "iter"

// Filter restricts a join to entities matching a membership condition.
// Use With and Without to express "must carry" and "must not carry" a tag.
type Filter interface {
	matches(id EntityID) bool
}

type withTag struct{ tags *Tags }

func (f withTag) matches(id EntityID) bool { return f.tags.Has(id) }

// With keeps only entities carrying the tag.
func With(tags *Tags) Filter {
	return withTag{tags: tags}
}

type withoutTag struct{ tags *Tags }

func (f withoutTag) matches(id EntityID) bool { return !f.tags.Has(id) }

// Without keeps only entities that do not carry the tag. This is the
// negation filter used to partition entities by marker presence.
func Without(tags *Tags) Filter {
	return withoutTag{tags: tags}
}

func matchAll(id EntityID, filters []Filter) bool {
	for _, f := range filters {
		if !f.matches(id) {
			return false
		}
	}
	return true
}

// J2 is the row type yielded by Join2.
type J2[A, B any] struct {
	A *A
	B *B
}

// Join2 yields every entity present in both stores, with pointers to its
// component values. The sequence is lazy, follows the first store's
// insertion order, and is empty when no entity matches.
func Join2[A, B any](a *Store[A], b *Store[B], filters ...Filter) iter.Seq2[EntityID, J2[A, B]] {
	return func(yield func(EntityID, J2[A, B]) bool) {
		for id, av := range a.All(filters...) {
			bv, ok := b.Get(id)
			if !ok {
				continue
			}
			if !yield(id, J2[A, B]{A: av, B: bv}) {
				return
			}
		}
	}
}

// J3 is the row type yielded by Join3.
type J3[A, B, C any] struct {
	A *A
	B *B
	C *C
}

// Join3 yields every entity present in all three stores.
func Join3[A, B, C any](a *Store[A], b *Store[B], c *Store[C], filters ...Filter) iter.Seq2[EntityID, J3[A, B, C]] {
	return func(yield func(EntityID, J3[A, B, C]) bool) {
		for id, av := range a.All(filters...) {
			bv, ok := b.Get(id)
			if !ok {
				continue
			}
			cv, ok := c.Get(id)
			if !ok {
				continue
			}
			if !yield(id, J3[A, B, C]{A: av, B: bv, C: cv}) {
				return
			}
		}
	}
}
