package sim

// Position is an entity's 2D location.
type Position struct {
	X, Y float32
}

// CollisionBox is an axis-aligned rectangle used for overlap testing.
// Whenever an entity's Position changes, the box origin must be brought back
// in sync within the same step; the movement system does this for every
// entity it moves. Width and height are fixed at creation.
type CollisionBox struct {
	X, Y   float32
	Width  float32
	Height float32
}

// ImageHandle is an opaque, shareable reference to renderable image data.
// Many entities may hold the identical handle; the core never mutates it and
// never copies the underlying pixels.
type ImageHandle interface {
	Size() (width, height float32)
}

// Image attaches a renderable image to an entity.
type Image struct {
	Handle ImageHandle
}

// Direction is the shared input state: which directional controls are
// currently held. The flags are independent, not mutually exclusive, so a
// diagonal is simply two flags at once. Contradictory input (up and down
// together) is valid and cancels out numerically.
type Direction struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
}
