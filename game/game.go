// Package game hosts the simulation core inside an Ebiten frame loop: it
// syncs the input state, runs the system pipeline once per tick, and draws
// every (position, image) pair the core exposes.
package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/fudance/shipsim/sim"
)

// Overlay is an optional debug overlay drawn on top of the scene, bracketing
// each tick with its own frame.
type Overlay interface {
	BeginFrame()
	EndFrame()
	Draw(screen *ebiten.Image)
	Layout(outsideWidth, outsideHeight int)
}

// Game implements ebiten.Game. Per tick, in fixed order: input sync, then
// the pipeline (movement, collision), then Ebiten calls Draw for the render
// pass.
type Game struct {
	World    *sim.World
	Pipeline *sim.Pipeline
	Log      logrus.FieldLogger

	// Pressed reports key state; nil means ebiten.IsKeyPressed.
	Pressed KeyState

	// Overlay is drawn after the scene when set.
	Overlay Overlay
}

// New creates a game host over the given world and pipeline.
func New(world *sim.World, pipeline *sim.Pipeline, log logrus.FieldLogger) *Game {
	return &Game{
		World:    world,
		Pipeline: pipeline,
		Log:      log,
	}
}

func (g *Game) pressed() KeyState {
	if g.Pressed != nil {
		return g.Pressed
	}
	return ebiten.IsKeyPressed
}

// Update advances the simulation by one tick.
func (g *Game) Update() error {
	pressed := g.pressed()

	if pressed(ebiten.KeyEscape) || pressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if g.Overlay != nil {
		g.Overlay.BeginFrame()
	}

	// Input is written strictly before any system reads it.
	g.World.Input.Set(ReadDirection(pressed))
	g.Pipeline.Once(1.0 / 60.0)

	if g.Overlay != nil {
		g.Overlay.EndFrame()
	}

	return nil
}

// Draw renders every entity that has both a position and an image. A single
// undrawable entity is logged and skipped; it never aborts the pass.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	for id, item := range g.World.Renderables() {
		sprite, ok := item.B.Handle.(*Sprite)
		if !ok {
			if g.Log != nil {
				g.Log.WithField("entity", id).Warn("image handle is not drawable, skipping")
			}
			continue
		}

		opts := &ebiten.DrawImageOptions{}
		opts.GeoM.Translate(float64(item.A.X), float64(item.A.Y))
		screen.DrawImage(sprite.EbitenImage(), opts)
	}

	if g.Overlay != nil {
		g.Overlay.Draw(screen)
	}
}

// Layout reports the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.Overlay != nil {
		g.Overlay.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
