package main

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/fudance/shipsim/asset"
	"github.com/fudance/shipsim/game"
	"github.com/fudance/shipsim/sim"
	"github.com/fudance/shipsim/sim/debugui"
	debugui_ebiten "github.com/fudance/shipsim/sim/debugui/ebiten"
)

var log = logrus.New()

func main() {
	cfg, err := game.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if cfg.LogJSON {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("parse log level %q: %v", cfg.LogLevel, err)
	}
	log.SetLevel(level)

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(cfg.WindowTitle)

	world := sim.NewWorld()

	cache := asset.NewCache(game.ImageLoader(cfg.AssetDir))
	ship, err := cache.Acquire(cfg.ShipImage)
	if err != nil {
		log.Fatalf("load ship image: %v", err)
	}

	// Two ships sharing one image: the player and a static obstacle.
	player := game.SpawnShip(world, ship, 75, 100, true)
	obstacle := game.SpawnShip(world, ship, 275, 100, false)
	log.WithFields(logrus.Fields{
		"player":   player,
		"obstacle": obstacle,
	}).Info("world populated")

	pipeline := sim.NewPipeline(world)
	pipeline.Register(&sim.MovementSystem{Step: cfg.Step})
	pipeline.Register(&sim.CollisionSystem{Reporter: game.NewLogReporter(log)})

	g := game.New(world, pipeline, log)

	if cfg.DebugUI {
		backend := ebitenbackend.NewEbitenBackend()
		backend.CreateWindow(cfg.WindowTitle, cfg.WindowWidth, cfg.WindowHeight)
		imgui.CurrentIO().SetIniFilename("")

		g.Overlay = &debugui_ebiten.ImguiBackend{EbitenBackend: backend}
		pipeline.Register(debugui.NewInspectorSystem(pipeline, 120))
	}

	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("run: %v", err)
	}
}
