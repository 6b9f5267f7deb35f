package scene

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/backdrop/ecs"
	"github.com/plus3/backdrop/surface"
)

// builder populates a scene's arenas. Every random draw goes through rng so
// a fixed seed reproduces the same scene.
type builder struct {
	rng     *rand.Rand
	surface surface.Surface

	// handles lists every sprite allocated so far, in allocation order.
	handles []surface.Handle
}

func (b *builder) sprite(diameter int) (surface.Handle, error) {
	h, err := b.surface.NewSprite(diameter)
	if err != nil {
		return 0, err
	}
	b.handles = append(b.handles, h)
	return h, nil
}

// centered returns a uniform value in [-extent/2, extent/2).
func (b *builder) centered(extent float64) float32 {
	return float32((b.rng.Float64() - 0.5) * extent)
}

func (b *builder) centeredVec(extent float64) mgl32.Vec3 {
	return mgl32.Vec3{b.centered(extent), b.centered(extent), b.centered(extent)}
}

func (b *builder) particleGroups(arena *ecs.Arena[ParticleGroup]) error {
	for tier, cfg := range ParticleTiers {
		h, err := b.sprite(PointSpriteDiameter)
		if err != nil {
			return fmt.Errorf("particle tier %d sprite: %w", tier, err)
		}

		group := ParticleGroup{
			Tier:       tier,
			Count:      cfg.Count,
			Size:       cfg.Size,
			Speed:      cfg.Speed,
			Color:      surface.WithAlpha(surface.Hex(cfg.Color), ParticleOpacity),
			Positions:  make([]mgl32.Vec3, cfg.Count),
			Velocities: make([]mgl32.Vec3, cfg.Count),
			Sprite:     h,
		}
		for i := range cfg.Count {
			group.Positions[i] = b.centeredVec(ParticleSpawnExtent)
			group.Velocities[i] = b.centeredVec(float64(cfg.Speed))
		}
		arena.Spawn(group)
	}
	return nil
}

func (b *builder) shapes(arena *ecs.Arena[Shape]) {
	for i := range ShapeCount {
		kind := ShapeKind(b.rng.IntN(int(shapeKindCount)))
		anchor := b.centeredVec(ShapeSpawnExtent)
		arena.Spawn(Shape{
			Index:         i,
			Kind:          kind,
			Radius:        kind.Radius(),
			Anchor:        anchor,
			RotationSpeed: b.centeredVec(ShapeMaxSpin),
			FloatSpeed:    b.rng.Float64()*ShapeFloatSpeedSpan + ShapeFloatSpeedMin,
			FloatRange:    b.rng.Float64()*ShapeFloatRangeSpan + ShapeFloatRangeMin,
			Position:      anchor,
			Hue:           math.Mod(float64(i)*ShapeHueStep, 1),
		})
	}
}

func (b *builder) orbs(arena *ecs.Arena[Orb]) error {
	for i := range OrbCount {
		h, err := b.sprite(OrbSpriteDiameter)
		if err != nil {
			return fmt.Errorf("orb %d sprite: %w", i, err)
		}
		anchor := b.centeredVec(OrbSpawnExtent)
		orb := Orb{
			Anchor:   anchor,
			Position: anchor,
			Color:    surface.WithAlpha(surface.HSL(b.rng.Float64(), OrbSaturation, OrbLightness), OrbOpacity),
			Emissive: surface.HSL(b.rng.Float64(), OrbGlowSaturation, OrbGlowLightness),
			Phase:    b.rng.Float64() * twoPi,
			Speed:    b.rng.Float64()*OrbSpeedSpan + OrbSpeedMin,
			Sprite:   h,
		}
		orb.Scale = OrbScale(orb.Speed, orb.Phase, 0)
		arena.Spawn(orb)
	}
	return nil
}

// jitter returns a value in (-GalaxyJitter, GalaxyJitter) biased towards zero.
func (b *builder) jitter() float32 {
	v := math.Pow(b.rng.Float64(), GalaxyJitterPow) * GalaxyJitter
	if b.rng.Float64() < 0.5 {
		v = -v
	}
	return float32(v)
}

func (b *builder) galaxy(arena *ecs.Arena[Galaxy]) error {
	h, err := b.sprite(PointSpriteDiameter)
	if err != nil {
		return fmt.Errorf("galaxy sprite: %w", err)
	}

	points := make([]GalaxyPoint, GalaxyPointCount)
	for i := range points {
		radius := b.rng.Float64() * GalaxyRadius
		angle := float64(i%GalaxyBranches)*(twoPi/GalaxyBranches) + radius*GalaxySpin

		jx, jy, jz := b.jitter(), b.jitter(), b.jitter()
		points[i] = GalaxyPoint{
			Position: mgl32.Vec3{
				float32(cos(angle)*radius) + jx,
				jy,
				float32(sin(angle)*radius) + jz,
			},
			Radius: float32(radius),
			Color: surface.WithAlpha(
				surface.HSL(GalaxyHue+GalaxyHueSpread*radius/GalaxyRadius, GalaxySaturation, b.rng.Float64()*0.5+0.5),
				GalaxyOpacity,
			),
		}
	}

	arena.Spawn(Galaxy{
		Points: points,
		Center: mgl32.Vec3{0, 0, GalaxyDepth},
		Sprite: h,
	})
	return nil
}
