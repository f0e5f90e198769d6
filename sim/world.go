package sim

// World owns the component stores. The component set is closed and known at
// build time, so every type gets its own explicitly declared container
// instead of a runtime type registry. An entity "has" a component iff the
// matching store holds an entry for it.
type World struct {
	registry *Registry

	Positions    *Store[Position]
	Boxes        *Store[CollisionBox]
	Images       *Store[Image]
	Controllable *Tags

	// Input is written by the host's input source before systems run and
	// read by the movement system, once per tick.
	Input *Singleton[Direction]
}

// NewWorld creates a world with empty stores and a neutral input state.
func NewWorld() *World {
	return &World{
		registry:     NewRegistry(),
		Positions:    NewStore[Position](),
		Boxes:        NewStore[CollisionBox](),
		Images:       NewStore[Image](),
		Controllable: NewTags(),
		Input:        NewSingleton(Direction{}),
	}
}

// NewEntity issues a fresh entity identity. The entity has no components
// until stores are populated for it.
func (w *World) NewEntity() EntityID {
	return w.registry.New()
}
