package sim_test

import (
	"fmt"

	"github.com/fudance/shipsim/sim"
)

// Example shows one full tick: input sync, movement, then collision
// detection, in explicit order.
func Example() {
	w := sim.NewWorld()

	player := w.NewEntity()
	w.Positions.Insert(player, sim.Position{X: 75, Y: 100})
	w.Boxes.Insert(player, sim.CollisionBox{X: 75, Y: 100, Width: 40, Height: 40})
	w.Controllable.Add(player)

	static := w.NewEntity()
	w.Positions.Insert(static, sim.Position{X: 100, Y: 100})
	w.Boxes.Insert(static, sim.CollisionBox{X: 100, Y: 100, Width: 40, Height: 40})

	pipeline := sim.NewPipeline(w)
	pipeline.Register(&sim.MovementSystem{})
	pipeline.Register(&sim.CollisionSystem{
		Reporter: sim.ReporterFunc(func(pair sim.Pair) {
			fmt.Printf("collision: entity %d hit entity %d\n", pair.Controlled, pair.Uncontrolled)
		}),
	})

	w.Input.Set(sim.Direction{Right: true})
	pipeline.Once(1.0 / 60.0)

	pos, _ := w.Positions.Get(player)
	fmt.Printf("player at (%.0f, %.0f)\n", pos.X, pos.Y)

	// Output:
	// collision: entity 1 hit entity 2
	// player at (85, 100)
}

// ExampleJoin2 demonstrates querying entities present in several stores at
// once, with a tag filter.
func ExampleJoin2() {
	w := sim.NewWorld()

	for i := 0; i < 3; i++ {
		id := w.NewEntity()
		w.Positions.Insert(id, sim.Position{X: float32(i * 10)})
		w.Boxes.Insert(id, sim.CollisionBox{X: float32(i * 10), Width: 5, Height: 5})
		if i%2 == 0 {
			w.Controllable.Add(id)
		}
	}

	for id, row := range sim.Join2(w.Positions, w.Boxes, sim.With(w.Controllable)) {
		fmt.Printf("entity %d at x=%.0f\n", id, row.A.X)
	}

	// Output:
	// entity 1 at x=0
	// entity 3 at x=20
}
