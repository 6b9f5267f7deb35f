package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/backdrop/scene"
)

// SceneInspector shows the live state of an Animator: clock, camera,
// pointer and the per-shape transforms.
type SceneInspector struct {
	animator   *scene.Animator
	showShapes bool
	showOrbs   bool
}

func NewSceneInspector(a *scene.Animator) *SceneInspector {
	return &SceneInspector{animator: a, showShapes: true}
}

func (si *SceneInspector) Render() {
	if !imgui.BeginV("Scene", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	a := si.animator
	clock := a.Clock()
	cam := a.Camera()
	ptr := a.Pointer()
	vp := a.Viewport()

	imgui.Text(fmt.Sprintf("State: %s", a.State()))
	imgui.Text(fmt.Sprintf("Elapsed: %.2fs (%d ticks, last %.1f ms)", clock.Elapsed, clock.Ticks, clock.Delta*1000))
	imgui.Text(fmt.Sprintf("Viewport: %dx%d (aspect %.3f)", vp.Width, vp.Height, cam.Aspect))
	imgui.Text(fmt.Sprintf("Camera: (%.3f, %.3f, %.3f)", cam.Position.X(), cam.Position.Y(), cam.Position.Z()))
	imgui.Text(fmt.Sprintf("Pointer: (%.3f, %.3f)", ptr.X, ptr.Y))
	imgui.Text(fmt.Sprintf("Live sprites: %d", a.Surface().Live()))

	imgui.Separator()
	imgui.Checkbox("Shapes", &si.showShapes)
	imgui.SameLine()
	imgui.Checkbox("Orbs", &si.showOrbs)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if si.showShapes && imgui.BeginTableV("ShapeTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("#")
		imgui.TableSetupColumn("Kind")
		imgui.TableSetupColumn("Position")
		imgui.TableSetupColumn("Hue")
		imgui.TableHeadersRow()

		for _, s := range a.Shapes() {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", s.Index))
			imgui.TableNextColumn()
			imgui.Text(s.Kind.String())
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.2f, %.2f, %.2f", s.Position.X(), s.Position.Y(), s.Position.Z()))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.3f", s.Hue))
		}
		imgui.EndTable()
	}

	if si.showOrbs && imgui.BeginTableV("OrbTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("#")
		imgui.TableSetupColumn("Position")
		imgui.TableSetupColumn("Scale")
		imgui.TableHeadersRow()

		for i, o := range a.Orbs() {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", i))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.2f, %.2f, %.2f", o.Position.X(), o.Position.Y(), o.Position.Z()))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.3f", o.Scale))
		}
		imgui.EndTable()
	}

	imgui.End()
}
