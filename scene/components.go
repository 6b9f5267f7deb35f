package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/backdrop/surface"
)

// ParticleGroup is a cloud of points that drift with constant per-point
// velocity and bounce off the faces of a cube of half-width ParticleBoundary.
// Positions and Velocities always have Count elements.
type ParticleGroup struct {
	Tier       int
	Count      int
	Size       float32
	Speed      float32
	Color      color.NRGBA
	Positions  []mgl32.Vec3
	Velocities []mgl32.Vec3
	Rotation   mgl32.Vec3
	Sprite     surface.Handle
}

// MaxVelocity returns the largest per-axis speed any point in the group can have.
func (p *ParticleGroup) MaxVelocity() float32 {
	return p.Speed / 2
}

// Shape is a wireframe polyhedron floating around a fixed anchor.
type Shape struct {
	Index         int
	Kind          ShapeKind
	Radius        float32
	Anchor        mgl32.Vec3
	RotationSpeed mgl32.Vec3
	FloatSpeed    float64
	FloatRange    float64

	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Hue      float64
}

// Orb is a small glowing sphere circling its anchor.
type Orb struct {
	Anchor   mgl32.Vec3
	Phase    float64
	Speed    float64
	Color    color.NRGBA
	Emissive color.NRGBA

	Position mgl32.Vec3
	Scale    float64
	Sprite   surface.Handle
}

// OrbScale returns the pulse scale of an orb with the given speed and phase at time t.
func OrbScale(speed, phase, t float64) float64 {
	return 1 + OrbPulse*sin(3*(speed*t+phase))
}

// GalaxyPoint is one star of the spiral. Points never move relative to the galaxy.
type GalaxyPoint struct {
	Position mgl32.Vec3
	Radius   float32
	Color    color.NRGBA
}

// Galaxy is a spiral point cloud rotated as one rigid body.
type Galaxy struct {
	Points   []GalaxyPoint
	Center   mgl32.Vec3
	Rotation mgl32.Vec3
	Sprite   surface.Handle
}

// Clock holds the time input of the current frame.
type Clock struct {
	Elapsed float64
	Delta   float64
	Ticks   int64
}

// Pointer is the latest pointer sample, normalized to [-1,1] on both axes
// with +Y pointing up.
type Pointer struct {
	X, Y float64
}

// NormalizePointer maps raw viewport pixels to a Pointer, clamping positions
// outside the viewport.
func NormalizePointer(px, py float64, width, height int) Pointer {
	if width <= 0 || height <= 0 {
		return Pointer{}
	}
	return Pointer{
		X: clampUnit(px/float64(width)*2 - 1),
		Y: clampUnit(-(py/float64(height)*2 - 1)),
	}
}

func (p Pointer) clamped() Pointer {
	return Pointer{X: clampUnit(p.X), Y: clampUnit(p.Y)}
}

// Camera is a perspective camera that always looks at the origin.
type Camera struct {
	Position mgl32.Vec3
	FOV      float32
	Near     float32
	Far      float32
	Aspect   float64
}

// Viewport is the pixel size of the drawing surface.
type Viewport struct {
	Width, Height int
}

// Valid reports whether both dimensions are positive.
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}

// Aspect returns width over height.
func (v Viewport) Aspect() float64 {
	return float64(v.Width) / float64(v.Height)
}

// Lights describes the fixed lighting rig.
type Lights struct {
	Ambient          color.NRGBA
	AmbientIntensity float64
	Point            color.NRGBA
	PointIntensity   float64
	PointRange       float64
	PointPosition    mgl32.Vec3
}

// DefaultLights returns the ambient plus point light rig used by every scene.
func DefaultLights() Lights {
	return Lights{
		Ambient:          surface.Hex(AmbientColor),
		AmbientIntensity: AmbientIntensity,
		Point:            surface.Hex(PointLightColor),
		PointIntensity:   PointIntensity,
		PointRange:       PointLightRange,
		PointPosition:    mgl32.Vec3{PointLightX, PointLightY, PointLightZ},
	}
}

// At returns the per-channel light factor reaching a point at pos.
func (l Lights) At(pos mgl32.Vec3) [3]float64 {
	falloff := 0.0
	if l.PointRange > 0 {
		d := float64(pos.Sub(l.PointPosition).Len())
		falloff = max(0, 1-d/l.PointRange)
	}
	ch := func(ambient, point uint8) float64 {
		return float64(ambient)/0xff*l.AmbientIntensity + float64(point)/0xff*l.PointIntensity*falloff
	}
	return [3]float64{
		ch(l.Ambient.R, l.Point.R),
		ch(l.Ambient.G, l.Point.G),
		ch(l.Ambient.B, l.Point.B),
	}
}
