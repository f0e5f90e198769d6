// Package debugui provides an immediate-mode Dear ImGui inspector for the
// simulation world: store membership, input state and pipeline timing,
// rendered as an overlay by the host.
package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/fudance/shipsim/sim"
)

// InspectorSystem renders the inspector window each tick. Register it after
// the simulation systems so the displayed state is this tick's result. The
// host must bracket the tick with the ImGui backend's BeginFrame/EndFrame.
type InspectorSystem struct {
	// Pipeline supplies per-system timing stats. Optional.
	Pipeline *sim.Pipeline

	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

// NewInspectorSystem creates an inspector keeping historyFrames of frame
// time samples for the plot. Values below 1 are clamped to 1.
func NewInspectorSystem(pipeline *sim.Pipeline, historyFrames int) *InspectorSystem {
	if historyFrames < 1 {
		historyFrames = 1
	}
	return &InspectorSystem{
		Pipeline:      pipeline,
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

// Execute renders the inspector window for the current frame.
func (s *InspectorSystem) Execute(frame *sim.Frame) {
	if !imgui.BeginV("World Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	s.frameHistory[s.frameIndex] = float32(frame.DeltaTime) * 1000.0
	s.frameIndex = (s.frameIndex + 1) % s.historyFrames

	w := frame.World

	imgui.Text(fmt.Sprintf("Positions: %d", w.Positions.Len()))
	imgui.Text(fmt.Sprintf("Collision Boxes: %d", w.Boxes.Len()))
	imgui.Text(fmt.Sprintf("Images: %d", w.Images.Len()))
	imgui.Text(fmt.Sprintf("Controllable: %d", w.Controllable.Len()))

	imgui.Separator()
	dir := w.Input.Get()
	imgui.Text(fmt.Sprintf("Input: up=%t down=%t left=%t right=%t",
		dir.Up, dir.Down, dir.Left, dir.Right))

	var avgFrameTime float32
	for _, ft := range s.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(s.historyFrames)

	imgui.Separator()
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms", avgFrameTime))
	imgui.PlotLinesFloatPtr("##frametime", &s.frameHistory[0], int32(len(s.frameHistory)))

	if s.Pipeline != nil {
		s.renderSystemTable(s.Pipeline.GetStats())
	}

	if imgui.TreeNodeStr("Controllable Entities") {
		for id := range w.Controllable.All() {
			if pos, ok := w.Positions.Get(id); ok {
				imgui.BulletText(fmt.Sprintf("entity %d at (%.1f, %.1f)", id, pos.X, pos.Y))
			} else {
				imgui.BulletText(fmt.Sprintf("entity %d (no position)", id))
			}
		}
		imgui.TreePop()
	}

	imgui.End()
}

func (s *InspectorSystem) renderSystemTable(stats *sim.PipelineStats) {
	if !imgui.TreeNodeStr("Pipeline") {
		return
	}

	imgui.Text(fmt.Sprintf("Ticks: %d", stats.TotalTicks))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("PipelineTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("System")
		imgui.TableSetupColumn("Avg (ms)")
		imgui.TableSetupColumn("Min (ms)")
		imgui.TableSetupColumn("Max (ms)")
		imgui.TableHeadersRow()

		for _, sys := range stats.Systems {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(sys.Name)
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.3f", ms(sys.AvgDuration)))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.3f", ms(sys.MinDuration)))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.3f", ms(sys.MaxDuration)))
		}

		imgui.EndTable()
	}

	imgui.TreePop()
}

func ms(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000.0
}
