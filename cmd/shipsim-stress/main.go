package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/fudance/shipsim/sim"
)

// worldExtent is the square field entities are scattered over.
const worldExtent = 10000.0

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 10000, "The number of entities to create.")
	controlledCount := flag.Int("controlled", 100, "How many of the entities are player-controlled.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	if *controlledCount > *entityCount {
		log.Fatalf("controlled (%d) cannot exceed entities (%d)", *controlledCount, *entityCount)
	}

	log.Println("Starting simulation stress test...")

	// 1. Build the world
	world := sim.NewWorld()

	log.Printf("Populating world with %d entities (%d controlled)...\n", *entityCount, *controlledCount)
	for i := 0; i < *entityCount; i++ {
		x := float32(rand.Float64() * worldExtent)
		y := float32(rand.Float64() * worldExtent)

		id := world.NewEntity()
		world.Positions.Insert(id, sim.Position{X: x, Y: y})
		world.Boxes.Insert(id, sim.CollisionBox{X: x, Y: y, Width: 20, Height: 20})
		if i < *controlledCount {
			world.Controllable.Add(id)
		}
	}
	log.Println("Population complete.")

	// 2. Build the pipeline
	var collisions int64
	pipeline := sim.NewPipeline(world)
	pipeline.Register(&sim.MovementSystem{})
	pipeline.Register(&sim.CollisionSystem{
		Reporter: sim.ReporterFunc(func(sim.Pair) { collisions++ }),
	})

	// Rotate through held directions so movement has work to do every tick.
	directions := []sim.Direction{
		{Right: true},
		{Right: true, Down: true},
		{Down: true},
		{Left: true, Down: true},
		{Left: true},
		{Left: true, Up: true},
		{Up: true},
		{Right: true, Up: true},
	}

	report := &Report{
		Duration:       *duration,
		Entities:       *entityCount,
		Controlled:     *controlledCount,
		GCPauseMetrics: *gcPauseMetrics,
		TickTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	// 3. Run the tick loop
	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalTicks int64
	lastTickTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastTickTime)
			lastTickTime = time.Now()

			world.Input.Set(directions[totalTicks%int64(len(directions))])

			tickStart := time.Now()
			pipeline.Once(float64(deltaTime) / float64(time.Second))
			tickDuration := time.Since(tickStart)

			report.TickTime.Samples = append(report.TickTime.Samples, tickDuration)
			totalTicks++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalTicks = totalTicks
	report.Collisions = collisions
	report.TickTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	// 4. Generate report to console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
