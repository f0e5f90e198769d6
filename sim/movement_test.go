package sim_test

import (
	"testing"

	"github.com/fudance/shipsim/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tick(w *sim.World, systems ...sim.System) {
	frame := &sim.Frame{DeltaTime: 1.0 / 60.0, World: w}
	for _, s := range systems {
		s.Execute(frame)
	}
}

func TestMovementAppliesStepPerDirection(t *testing.T) {
	w := sim.NewWorld()
	id := spawnShip(w, 100, 100, 40, true)

	w.Input.Set(sim.Direction{Right: true})
	tick(w, &sim.MovementSystem{})

	pos, _ := w.Positions.Get(id)
	assert.Equal(t, sim.Position{X: 110, Y: 100}, *pos)
}

func TestMovementAdditiveDiagonal(t *testing.T) {
	w := sim.NewWorld()
	id := spawnShip(w, 100, 100, 40, true)

	w.Input.Set(sim.Direction{Up: true, Left: true})
	tick(w, &sim.MovementSystem{Step: 10})

	pos, _ := w.Positions.Get(id)
	assert.Equal(t, sim.Position{X: 90, Y: 90}, *pos)
}

func TestMovementContradictoryInputCancelsOut(t *testing.T) {
	w := sim.NewWorld()
	id := spawnShip(w, 100, 100, 40, true)

	w.Input.Set(sim.Direction{Up: true, Down: true})
	tick(w, &sim.MovementSystem{})

	pos, _ := w.Positions.Get(id)
	assert.Equal(t, sim.Position{X: 100, Y: 100}, *pos)
}

func TestMovementNeverTouchesUntaggedEntities(t *testing.T) {
	w := sim.NewWorld()
	id := spawnShip(w, 100, 100, 40, false)

	w.Input.Set(sim.Direction{Up: true, Down: true, Left: true, Right: true})
	tick(w, &sim.MovementSystem{})

	pos, _ := w.Positions.Get(id)
	box, _ := w.Boxes.Get(id)
	assert.Equal(t, sim.Position{X: 100, Y: 100}, *pos)
	assert.Equal(t, sim.CollisionBox{X: 100, Y: 100, Width: 40, Height: 40}, *box)
}

func TestMovementSyncsBoxOriginToPosition(t *testing.T) {
	w := sim.NewWorld()
	id := spawnShip(w, 75, 100, 40, true)

	w.Input.Set(sim.Direction{Down: true, Right: true})
	tick(w, &sim.MovementSystem{})
	w.Input.Set(sim.Direction{Left: true})
	tick(w, &sim.MovementSystem{})

	pos, _ := w.Positions.Get(id)
	box, _ := w.Boxes.Get(id)
	assert.Equal(t, pos.X, box.X)
	assert.Equal(t, pos.Y, box.Y)
	// Width and height stay fixed.
	assert.Equal(t, float32(40), box.Width)
	assert.Equal(t, float32(40), box.Height)
}

func TestMovementSkipsEntitiesWithoutBox(t *testing.T) {
	w := sim.NewWorld()
	id := w.NewEntity()
	w.Positions.Insert(id, sim.Position{X: 5, Y: 5})
	w.Controllable.Add(id)

	w.Input.Set(sim.Direction{Right: true})
	tick(w, &sim.MovementSystem{})

	// Position and box must never diverge, so an entity without a box is
	// not moved at all.
	pos, _ := w.Positions.Get(id)
	assert.Equal(t, sim.Position{X: 5, Y: 5}, *pos)
}

func TestMovementNoMatchingEntitiesIsNoOp(t *testing.T) {
	w := sim.NewWorld()
	w.Input.Set(sim.Direction{Right: true})

	require.NotPanics(t, func() {
		tick(w, &sim.MovementSystem{})
	})
}

func TestMovementCustomStep(t *testing.T) {
	w := sim.NewWorld()
	id := spawnShip(w, 0, 0, 10, true)

	w.Input.Set(sim.Direction{Down: true})
	tick(w, &sim.MovementSystem{Step: 2.5})

	pos, _ := w.Positions.Get(id)
	assert.Equal(t, float32(2.5), pos.Y)
}
