package sim_test

import (
	"testing"

	"github.com/fudance/shipsim/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlaps(t *testing.T) {
	a := sim.CollisionBox{X: 0, Y: 0, Width: 50, Height: 50}
	b := sim.CollisionBox{X: 25, Y: 25, Width: 50, Height: 50}
	c := sim.CollisionBox{X: 100, Y: 100, Width: 50, Height: 50}

	assert.True(t, sim.Overlaps(a, b))
	assert.True(t, sim.Overlaps(b, a))
	assert.False(t, sim.Overlaps(a, c))
	assert.False(t, sim.Overlaps(c, a))
}

func TestOverlapsTouchingEdgesDoNotCollide(t *testing.T) {
	a := sim.CollisionBox{X: 0, Y: 0, Width: 50, Height: 50}
	b := sim.CollisionBox{X: 50, Y: 0, Width: 50, Height: 50}

	assert.False(t, sim.Overlaps(a, b))
}

func TestCollisionReportsControlledAgainstUncontrolled(t *testing.T) {
	w := sim.NewWorld()
	player := spawnShip(w, 0, 0, 50, true)
	obstacle := spawnShip(w, 25, 25, 50, false)
	spawnShip(w, 500, 500, 50, false)

	reporter := &recordingReporter{}
	tick(w, &sim.CollisionSystem{Reporter: reporter})

	require.Len(t, reporter.pairs, 1)
	assert.Equal(t, sim.Pair{Controlled: player, Uncontrolled: obstacle}, reporter.pairs[0])
}

func TestCollisionControlledSideNeedsNoPosition(t *testing.T) {
	w := sim.NewWorld()

	// The controlled partition is keyed on box and tag alone; the box
	// carries its own origin.
	player := w.NewEntity()
	w.Boxes.Insert(player, sim.CollisionBox{X: 0, Y: 0, Width: 50, Height: 50})
	w.Controllable.Add(player)

	obstacle := spawnShip(w, 25, 25, 50, false)

	reporter := &recordingReporter{}
	tick(w, &sim.CollisionSystem{Reporter: reporter})

	require.Len(t, reporter.pairs, 1)
	assert.Equal(t, sim.Pair{Controlled: player, Uncontrolled: obstacle}, reporter.pairs[0])
}

func TestCollisionIgnoresControlledAgainstControlled(t *testing.T) {
	w := sim.NewWorld()
	spawnShip(w, 0, 0, 50, true)
	spawnShip(w, 10, 10, 50, true)

	reporter := &recordingReporter{}
	tick(w, &sim.CollisionSystem{Reporter: reporter})

	assert.Empty(t, reporter.pairs)
}

func TestCollisionIgnoresUncontrolledAgainstUncontrolled(t *testing.T) {
	w := sim.NewWorld()
	spawnShip(w, 0, 0, 50, false)
	spawnShip(w, 10, 10, 50, false)

	reporter := &recordingReporter{}
	tick(w, &sim.CollisionSystem{Reporter: reporter})

	assert.Empty(t, reporter.pairs)
}

func TestCollisionRefiresEveryTickWhileOverlapHolds(t *testing.T) {
	w := sim.NewWorld()
	spawnShip(w, 0, 0, 50, true)
	spawnShip(w, 25, 25, 50, false)

	reporter := &recordingReporter{}
	system := &sim.CollisionSystem{Reporter: reporter}
	tick(w, system)
	tick(w, system)

	assert.Len(t, reporter.pairs, 2)
	assert.Equal(t, reporter.pairs[0], reporter.pairs[1])
}

func TestCollisionReportsEveryOverlappingPair(t *testing.T) {
	w := sim.NewWorld()
	p1 := spawnShip(w, 0, 0, 50, true)
	p2 := spawnShip(w, 10, 10, 50, true)
	o1 := spawnShip(w, 25, 25, 50, false)
	o2 := spawnShip(w, 40, 40, 50, false)

	reporter := &recordingReporter{}
	tick(w, &sim.CollisionSystem{Reporter: reporter})

	assert.ElementsMatch(t, []sim.Pair{
		{Controlled: p1, Uncontrolled: o1},
		{Controlled: p1, Uncontrolled: o2},
		{Controlled: p2, Uncontrolled: o1},
		{Controlled: p2, Uncontrolled: o2},
	}, reporter.pairs)
}

func TestCollisionNilReporterIsSafe(t *testing.T) {
	w := sim.NewWorld()
	spawnShip(w, 0, 0, 50, true)
	spawnShip(w, 25, 25, 50, false)

	require.NotPanics(t, func() {
		tick(w, &sim.CollisionSystem{})
	})
}

func TestCollisionMutatesNothing(t *testing.T) {
	w := sim.NewWorld()
	player := spawnShip(w, 0, 0, 50, true)
	obstacle := spawnShip(w, 25, 25, 50, false)

	tick(w, &sim.CollisionSystem{Reporter: &recordingReporter{}})

	pbox, _ := w.Boxes.Get(player)
	obox, _ := w.Boxes.Get(obstacle)
	assert.Equal(t, sim.CollisionBox{X: 0, Y: 0, Width: 50, Height: 50}, *pbox)
	assert.Equal(t, sim.CollisionBox{X: 25, Y: 25, Width: 50, Height: 50}, *obox)
	assert.Equal(t, 2, w.Positions.Len())
}
