package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/fudance/shipsim/sim"
)

// KeyState reports whether a key is currently held. It exists so the key
// mapping can be tested without a window; the live value is
// ebiten.IsKeyPressed.
type KeyState func(key ebiten.Key) bool

// ReadDirection maps the held arrow keys to the shared input state. Holding
// several keys sets several flags; the core treats them independently.
func ReadDirection(pressed KeyState) sim.Direction {
	return sim.Direction{
		Up:    pressed(ebiten.KeyArrowUp),
		Down:  pressed(ebiten.KeyArrowDown),
		Left:  pressed(ebiten.KeyArrowLeft),
		Right: pressed(ebiten.KeyArrowRight),
	}
}
