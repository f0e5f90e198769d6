package game

import "github.com/fudance/shipsim/sim"

// SpawnShip creates a ship entity at (x, y) with a collision box sized from
// its image and the origin in sync with the position. Controllable ships get
// the marker tag and respond to input.
func SpawnShip(w *sim.World, handle sim.ImageHandle, x, y float32, controllable bool) sim.EntityID {
	width, height := handle.Size()

	id := w.NewEntity()
	w.Positions.Insert(id, sim.Position{X: x, Y: y})
	w.Boxes.Insert(id, sim.CollisionBox{X: x, Y: y, Width: width, Height: height})
	w.Images.Insert(id, sim.Image{Handle: handle})
	if controllable {
		w.Controllable.Add(id)
	}
	return id
}
