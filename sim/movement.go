package sim

// DefaultStep is the per-tick movement magnitude in world units.
const DefaultStep float32 = 10

// MovementSystem advances every controllable entity by Step along each held
// direction, then re-syncs the entity's collision box origin to the new
// position. Entities without the Controllable tag are never visited,
// whatever the input state says.
type MovementSystem struct {
	// Step is the distance applied per held direction each tick. Multiple
	// held directions compose additively, so diagonals move faster; that is
	// intentional. Zero means DefaultStep.
	Step float32
}

// Execute applies the current input direction to all controllable entities
// that have both a position and a collision box. No matching entities is a
// no-op.
func (m *MovementSystem) Execute(frame *Frame) {
	step := m.Step
	if step == 0 {
		step = DefaultStep
	}

	w := frame.World
	dir := *w.Input.Get()

	for _, row := range Join2(w.Positions, w.Boxes, With(w.Controllable)) {
		pos, box := row.A, row.B

		if dir.Up {
			pos.Y -= step
		}
		if dir.Down {
			pos.Y += step
		}
		if dir.Left {
			pos.X -= step
		}
		if dir.Right {
			pos.X += step
		}

		// A moved entity's box origin must follow within the same tick.
		box.X = pos.X
		box.Y = pos.Y
	}
}
