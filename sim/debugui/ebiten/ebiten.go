// Package ebiten bridges the Dear ImGui inspector overlay into an Ebiten
// game loop.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend. The host calls
// BeginFrame before running the pipeline, EndFrame after, and Draw from its
// render pass.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// Layout forwards the window size to the backend.
func (b *ImguiBackend) Layout(outsideWidth, outsideHeight int) {
	b.EbitenBackend.Layout(outsideWidth, outsideHeight)
}
