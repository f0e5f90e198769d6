package sim

import "iter"

// Renderables yields a (position, image) pair for every entity carrying
// both. The host's render pass consumes this once per tick after the
// collision system runs. The core makes no promise about draw order among
// entities, and a failed draw must not abort the tick: the host should log
// and continue with the next entity.
func (w *World) Renderables() iter.Seq2[EntityID, J2[Position, Image]] {
	return Join2(w.Positions, w.Images)
}
