package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

func sin(x float64) float64 { return math.Sin(x) }

func cos(x float64) float64 { return math.Cos(x) }

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

// frames converts elapsed seconds into reference frames.
func frames(elapsed float64) float64 {
	return elapsed * ReferenceFPS
}

// modelMatrix composes translation with an XYZ Euler rotation and a uniform scale.
func modelMatrix(pos, rot mgl32.Vec3, scale float32) mgl32.Mat4 {
	m := mgl32.Translate3D(pos[0], pos[1], pos[2])
	m = m.Mul4(mgl32.HomogRotate3DX(rot[0]))
	m = m.Mul4(mgl32.HomogRotate3DY(rot[1]))
	m = m.Mul4(mgl32.HomogRotate3DZ(rot[2]))
	if scale != 1 {
		m = m.Mul4(mgl32.Scale3D(scale, scale, scale))
	}
	return m
}
