package scene

import "math"

// Animation rates below are expressed per reference frame and scaled by
// ReferenceFPS so that motion depends on elapsed time, not on frame rate.
const ReferenceFPS = 60.0

// Particles
const (
	ParticleBoundary    = 10.0
	ParticleSpawnExtent = 20.0
	ParticleOpacity     = 0.8
	ParticleSpinY       = 0.001
	ParticleSpinX       = 0.0005
)

// ParticleTier configures one particle group.
type ParticleTier struct {
	Count int
	Size  float32
	Speed float32
	Color uint32
}

var ParticleTiers = [...]ParticleTier{
	{Count: 200, Size: 0.02, Speed: 0.01, Color: 0x4fc3f7},
	{Count: 100, Size: 0.04, Speed: 0.005, Color: 0x64b5f6},
	{Count: 50, Size: 0.06, Speed: 0.008, Color: 0x42a5f5},
}

// Shapes
const (
	ShapeCount          = 8
	ShapeSpawnExtent    = 15.0
	ShapeMaxSpin        = 0.02
	ShapeFloatSpeedMin  = 0.005
	ShapeFloatSpeedSpan = 0.01
	ShapeFloatRangeMin  = 1.0
	ShapeFloatRangeSpan = 2.0
	ShapePointerDrift   = 0.5
	ShapeHueRate        = 0.1
	ShapeHueStep        = 0.1
	ShapeSaturation     = 0.7
	ShapeLightness      = 0.6
	ShapeOpacity        = 0.4
	ShapeLineWidth      = 1.0
)

// Orbs
const (
	OrbCount          = 12
	OrbSpawnExtent    = 12.0
	OrbRadius         = 0.1
	OrbSpeedMin       = 0.01
	OrbSpeedSpan      = 0.02
	OrbOrbitRadius    = 2.0
	OrbBobHeight      = 0.5
	OrbPulse          = 0.3
	OrbOpacity        = 0.6
	OrbSaturation     = 0.8
	OrbLightness      = 0.5
	OrbGlowSaturation = 0.5
	OrbGlowLightness  = 0.1
)

// Sprite texture sizes in pixels. Sprites are scaled to their projected size when drawn.
const (
	OrbSpriteDiameter   = 64
	PointSpriteDiameter = 16
)

// Galaxy
const (
	GalaxyPointCount = 300
	GalaxyRadius     = 8.0
	GalaxyBranches   = 3
	GalaxySpin       = 0.5
	GalaxyJitter     = 0.3
	GalaxyJitterPow  = 3
	GalaxyDepth      = -5.0
	GalaxyPointSize  = 0.03
	GalaxyOpacity    = 0.8
	GalaxyHue        = 0.6
	GalaxyHueSpread  = 0.1
	GalaxySaturation = 0.8
	GalaxySpinY      = 0.002
	GalaxyWobble     = 0.1
	GalaxyWobbleRate = 0.3
)

// Camera
const (
	CameraFOV       = 75.0
	CameraNear      = 0.1
	CameraFar       = 1000.0
	CameraDistance  = 8.0
	CameraSmoothing = 0.02
	CameraTravel    = 2.0
)

// Lights
const (
	AmbientColor     = 0x4fc3f7
	AmbientIntensity = 0.6
	PointLightColor  = 0x64b5f6
	PointIntensity   = 1.0
	PointLightRange  = 100.0
	PointLightX      = 10.0
	PointLightY      = 10.0
	PointLightZ      = 10.0
)

const twoPi = 2 * math.Pi
