// Package debugui draws a Dear ImGui overlay on top of an ebiten-hosted
// scene: frame timings, scheduler statistics and a live scene inspector.
package debugui

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/backdrop/ecs"
	"github.com/plus3/backdrop/scene"
)

// Overlay wraps the ebiten Dear ImGui backend. Widgets are issued from the
// animator's overlay hook, so Tick and Render must run between BeginFrame
// and EndFrame.
type Overlay struct {
	*ebitenbackend.EbitenBackend

	timer     *FrameTimer
	perf      *PerformanceStats
	inspector *SceneInspector
}

// NewOverlay creates the ImGui backend and its ebiten window.
func NewOverlay(title string, width, height int) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return &Overlay{
		EbitenBackend: backend,
		timer:         NewFrameTimer(),
		perf:          NewPerformanceStats(120),
	}
}

// Attach hooks the overlay into a's render pass.
func (o *Overlay) Attach(a *scene.Animator) {
	o.inspector = NewSceneInspector(a)
	a.AddOverlay(func() {
		o.perf.Record(o.timer.GetDeltaTime())
		stats := a.Stats()
		o.perf.Render(a.Storage(), map[string]*ecs.SchedulerStats{
			"Update": stats.Update,
			"Render": stats.Render,
		})
		o.inspector.Render()
	})
}

// WantsPointer reports whether ImGui is consuming the mouse, in which case
// the host should not forward pointer moves to the scene.
func (o *Overlay) WantsPointer() bool {
	return imgui.CurrentIO().WantCaptureMouse()
}
