package sim_test

import "github.com/fudance/shipsim/sim"

// fakeImage is a stand-in image handle for tests.
type fakeImage struct {
	w, h float32
}

func (f *fakeImage) Size() (float32, float32) {
	return f.w, f.h
}

// spawnShip creates an entity with a position and a box whose origin matches,
// optionally tagged controllable.
func spawnShip(w *sim.World, x, y, size float32, controllable bool) sim.EntityID {
	id := w.NewEntity()
	w.Positions.Insert(id, sim.Position{X: x, Y: y})
	w.Boxes.Insert(id, sim.CollisionBox{X: x, Y: y, Width: size, Height: size})
	if controllable {
		w.Controllable.Add(id)
	}
	return id
}

// recordingReporter collects every reported pair.
type recordingReporter struct {
	pairs []sim.Pair
}

func (r *recordingReporter) Report(pair sim.Pair) {
	r.pairs = append(r.pairs, pair)
}
