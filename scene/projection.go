package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	origin = mgl32.Vec3{0, 0, 0}
	up     = mgl32.Vec3{0, 1, 0}
)

// projector maps world space to surface pixels for one frame.
type projector struct {
	viewProj mgl32.Mat4
	width    float32
	height   float32
	focal    float32
	near     float32
}

func newProjector(camera *Camera, viewport Viewport) projector {
	fov := mgl32.DegToRad(camera.FOV)
	proj := mgl32.Perspective(fov, float32(camera.Aspect), camera.Near, camera.Far)
	view := mgl32.LookAtV(camera.Position, origin, up)
	return projector{
		viewProj: proj.Mul4(view),
		width:    float32(viewport.Width),
		height:   float32(viewport.Height),
		focal:    float32(1 / math.Tan(float64(fov)/2)),
		near:     camera.Near,
	}
}

// project returns the pixel position and view depth of a world point. ok is
// false for points behind the near plane.
func (p *projector) project(world mgl32.Vec3) (x, y, depth float32, ok bool) {
	clip := p.viewProj.Mul4x1(world.Vec4(1))
	if clip[3] < p.near {
		return 0, 0, 0, false
	}
	ndcX := clip[0] / clip[3]
	ndcY := clip[1] / clip[3]
	return (ndcX + 1) / 2 * p.width, (1 - ndcY) / 2 * p.height, clip[3], true
}

// pointSize returns the pixel size of an attenuated point sprite of world
// size s at the given depth. Points never shrink below one pixel.
func (p *projector) pointSize(s, depth float32) float32 {
	return max(1, s*(p.height/2)/depth)
}

// sphereDiameter returns the pixel diameter of a sphere of world radius r at the given depth.
func (p *projector) sphereDiameter(r, depth float32) float32 {
	return 2 * r * p.focal * (p.height / 2) / depth
}
