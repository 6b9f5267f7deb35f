package scene

import (
	"math"

	"github.com/plus3/backdrop/ecs"
)

// ParticleSystem integrates particle velocities and bounces points off the
// boundary cube. A point outside the cube has the offending velocity
// component negated; it is not pushed back inside, so it may sit up to one
// step beyond the boundary.
type ParticleSystem struct {
	Groups ecs.Query[ParticleGroup]
}

func (s *ParticleSystem) Execute(frame *ecs.UpdateFrame) {
	f := frames(frame.Elapsed)
	for _, group := range s.Groups.Iter() {
		rate := float64(group.Tier + 1)
		group.Rotation[0] = float32(ParticleSpinX * rate * f)
		group.Rotation[1] = float32(ParticleSpinY * rate * f)

		for i := range group.Positions {
			p := &group.Positions[i]
			v := &group.Velocities[i]
			for axis := range 3 {
				p[axis] += v[axis]
				if math.Abs(float64(p[axis])) > ParticleBoundary {
					v[axis] = -v[axis]
				}
			}
		}
	}
}

// ShapeSystem spins shapes, floats them around their anchors, drifts them
// towards the pointer and cycles their hue.
type ShapeSystem struct {
	Shapes  ecs.Query[Shape]
	Pointer ecs.Singleton[Pointer]
	Camera  ecs.Singleton[Camera]
}

func (s *ShapeSystem) Execute(frame *ecs.UpdateFrame) {
	t := frame.Elapsed
	f := float32(frames(t))
	pointer := s.Pointer.Get()
	camera := s.Camera.Get()

	for _, shape := range s.Shapes.Iter() {
		shape.Rotation = shape.RotationSpeed.Mul(f)

		shape.Position = shape.Anchor
		shape.Position[1] = shape.Anchor[1] + float32(sin(t*shape.FloatSpeed+float64(shape.Index))*shape.FloatRange)

		distance := float64(shape.Position.Sub(camera.Position).Len())
		influence := 1 / (distance*0.5 + 1)
		shape.Position[0] = shape.Anchor[0] + float32(pointer.X*influence*ShapePointerDrift)
		shape.Position[2] = shape.Anchor[2] + float32(pointer.Y*influence*ShapePointerDrift)

		shape.Hue = math.Mod(t*ShapeHueRate+float64(shape.Index)*ShapeHueStep, 1)
		if shape.Hue < 0 {
			shape.Hue++
		}
	}
}

// OrbSystem moves orbs along their orbits and pulses their size.
type OrbSystem struct {
	Orbs ecs.Query[Orb]
}

func (s *OrbSystem) Execute(frame *ecs.UpdateFrame) {
	for _, orb := range s.Orbs.Iter() {
		tau := frame.Elapsed*orb.Speed + orb.Phase
		orb.Position[0] = orb.Anchor[0] + float32(cos(tau)*OrbOrbitRadius)
		orb.Position[1] = orb.Anchor[1] + float32(sin(tau*2)*OrbBobHeight)
		orb.Position[2] = orb.Anchor[2] + float32(sin(tau)*OrbOrbitRadius)
		orb.Scale = OrbScale(orb.Speed, orb.Phase, frame.Elapsed)
	}
}

// GalaxySystem turns the galaxy about Y and rocks it about X.
type GalaxySystem struct {
	Galaxies ecs.Query[Galaxy]
}

func (s *GalaxySystem) Execute(frame *ecs.UpdateFrame) {
	for _, galaxy := range s.Galaxies.Iter() {
		galaxy.Rotation[0] = float32(sin(frame.Elapsed*GalaxyWobbleRate) * GalaxyWobble)
		galaxy.Rotation[1] = float32(GalaxySpinY * frames(frame.Elapsed))
	}
}

// CameraSystem eases the camera towards the pointer target. The camera
// always looks at the origin; only X and Y move.
type CameraSystem struct {
	Camera  ecs.Singleton[Camera]
	Pointer ecs.Singleton[Pointer]
}

func (s *CameraSystem) Execute(frame *ecs.UpdateFrame) {
	camera := s.Camera.Get()
	pointer := s.Pointer.Get()

	targetX := float32(pointer.X * CameraTravel)
	targetY := float32(pointer.Y * CameraTravel)
	camera.Position[0] += (targetX - camera.Position[0]) * CameraSmoothing
	camera.Position[1] += (targetY - camera.Position[1]) * CameraSmoothing
}

// OverlaySystem defers registered overlay callbacks to the end of the frame.
type OverlaySystem struct {
	items []func()
}

func (s *OverlaySystem) Execute(frame *ecs.UpdateFrame) {
	for _, item := range s.items {
		frame.Commands.Defer(item)
	}
}
