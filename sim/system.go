package sim

import (
	"context"
	"reflect"
	"time"
)

// Frame carries per-tick context to systems.
type Frame struct {
	DeltaTime float64
	World     *World
}

// System is a behavior run once per tick over the world's stores.
type System interface {
	Execute(frame *Frame)
}

// PipelineStats provides statistics about pipeline execution.
type PipelineStats struct {
	SystemCount int
	TotalTicks  int64
	Systems     []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Pipeline runs systems sequentially, once per tick, in registration order.
// Ordering is a correctness requirement in this core, so there is no
// dependency resolution and no parallelism: the order you register is the
// order that runs.
type Pipeline struct {
	world       *World
	systems     []System
	systemStats []*systemStatsInternal
}

// NewPipeline creates a pipeline over the given world.
func NewPipeline(world *World) *Pipeline {
	return &Pipeline{
		world:   world,
		systems: make([]System, 0),
	}
}

// Register appends a system to the end of the run order.
func (p *Pipeline) Register(system System) {
	p.systems = append(p.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	p.systemStats = append(p.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Once executes all registered systems once with the given delta time.
func (p *Pipeline) Once(dt float64) {
	frame := &Frame{DeltaTime: dt, World: p.world}

	for i, system := range p.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := p.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}
}

// Run executes all systems repeatedly at the given interval until the
// context is cancelled. Hosts with their own frame loop call Once instead.
func (p *Pipeline) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			p.Once(dt)
		}
	}
}

// GetStats returns statistics about system execution.
func (p *Pipeline) GetStats() *PipelineStats {
	stats := &PipelineStats{
		SystemCount: len(p.systems),
		Systems:     make([]SystemStats, len(p.systemStats)),
	}

	var totalTicks int64
	for i, internal := range p.systemStats {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		if internal.executionCount > totalTicks {
			totalTicks = internal.executionCount
		}
	}

	stats.TotalTicks = totalTicks
	return stats
}
