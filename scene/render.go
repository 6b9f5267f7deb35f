package scene

import (
	"image/color"

	"github.com/plus3/backdrop/ecs"
	"github.com/plus3/backdrop/surface"
)

// maxPolyhedronVertices is the vertex count of the largest wireframe.
const maxPolyhedronVertices = 20

type screenVertex struct {
	x, y    float32
	visible bool
}

// RenderSystem clears the surface and draws every entity: the galaxy and
// particles additively, then shape wireframes and orbs lit by the rig.
type RenderSystem struct {
	Camera   ecs.Singleton[Camera]
	Viewport ecs.Singleton[Viewport]
	Groups   ecs.Query[ParticleGroup]
	Shapes   ecs.Query[Shape]
	Orbs     ecs.Query[Orb]
	Galaxies ecs.Query[Galaxy]

	surface surface.Surface
	lights  Lights
	scratch [maxPolyhedronVertices]screenVertex
}

func (s *RenderSystem) Execute(frame *ecs.UpdateFrame) {
	p := newProjector(s.Camera.Get(), *s.Viewport.Get())
	s.surface.Clear()

	for _, galaxy := range s.Galaxies.Iter() {
		s.drawGalaxy(&p, galaxy)
	}
	for _, group := range s.Groups.Iter() {
		s.drawParticles(&p, group)
	}
	for _, shape := range s.Shapes.Iter() {
		s.drawShape(&p, shape)
	}
	for _, orb := range s.Orbs.Iter() {
		s.drawOrb(&p, orb)
	}
}

func (s *RenderSystem) drawGalaxy(p *projector, g *Galaxy) {
	model := modelMatrix(g.Center, g.Rotation, 1)
	for i := range g.Points {
		pt := &g.Points[i]
		x, y, depth, ok := p.project(model.Mul4x1(pt.Position.Vec4(1)).Vec3())
		if !ok {
			continue
		}
		s.surface.DrawSprite(g.Sprite, surface.SpriteOp{
			X:     x,
			Y:     y,
			Size:  p.pointSize(GalaxyPointSize, depth),
			Tint:  pt.Color,
			Blend: surface.BlendAdditive,
		})
	}
}

func (s *RenderSystem) drawParticles(p *projector, g *ParticleGroup) {
	model := modelMatrix(origin, g.Rotation, 1)
	for _, pos := range g.Positions {
		x, y, depth, ok := p.project(model.Mul4x1(pos.Vec4(1)).Vec3())
		if !ok {
			continue
		}
		s.surface.DrawSprite(g.Sprite, surface.SpriteOp{
			X:     x,
			Y:     y,
			Size:  p.pointSize(g.Size, depth),
			Tint:  g.Color,
			Blend: surface.BlendAdditive,
		})
	}
}

func (s *RenderSystem) drawShape(p *projector, shape *Shape) {
	geometry := shape.Kind.Geometry()
	model := modelMatrix(shape.Position, shape.Rotation, shape.Radius)

	for i, v := range geometry.Vertices {
		x, y, _, ok := p.project(model.Mul4x1(v.Vec4(1)).Vec3())
		s.scratch[i] = screenVertex{x: x, y: y, visible: ok}
	}

	base := surface.HSL(shape.Hue, ShapeSaturation, ShapeLightness)
	c := surface.WithAlpha(surface.Shade(base, s.lights.At(shape.Position), color.NRGBA{}), ShapeOpacity)

	for _, e := range geometry.Edges {
		a, b := s.scratch[e[0]], s.scratch[e[1]]
		if !a.visible || !b.visible {
			continue
		}
		s.surface.DrawLine(a.x, a.y, b.x, b.y, ShapeLineWidth, c)
	}
}

func (s *RenderSystem) drawOrb(p *projector, orb *Orb) {
	x, y, depth, ok := p.project(orb.Position)
	if !ok {
		return
	}
	c := surface.Shade(orb.Color, s.lights.At(orb.Position), orb.Emissive)
	s.surface.DrawSprite(orb.Sprite, surface.SpriteOp{
		X:     x,
		Y:     y,
		Size:  p.sphereDiameter(OrbRadius*float32(orb.Scale), depth),
		Tint:  c,
		Blend: surface.BlendNormal,
	})
}
