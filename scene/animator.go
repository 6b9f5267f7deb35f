// Package scene implements the animated 3D backdrop: drifting particle
// clouds, floating wireframe polyhedra, pulsing orbs and a spiral galaxy,
// viewed through a camera that eases towards the pointer.
//
// An Animator owns one surface and one ecs.Storage. The host calls Tick and
// Render once per display frame and Dispose exactly once on teardown:
//
//	a, err := scene.Initialize(device, hub, scene.Viewport{Width: 800, Height: 600})
//	if err != nil {
//		// draw without a backdrop
//	}
//	defer a.Dispose()
//	a.Tick(elapsed)
//	a.Render()
package scene

import (
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/backdrop/bridge"
	"github.com/plus3/backdrop/ecs"
	"github.com/plus3/backdrop/surface"
)

// State is the lifecycle state of an Animator.
type State int

const (
	Uninitialized State = iota
	Running
	Disposed
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Running:
		return "running"
	case Disposed:
		return "disposed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Stats reports per-system timings of both schedulers.
type Stats struct {
	Update *ecs.SchedulerStats
	Render *ecs.SchedulerStats
}

// Animator drives one backdrop scene.
type Animator struct {
	state   State
	logger  *log.Logger
	surface surface.Surface
	handles []surface.Handle
	cancels []func()

	storage  *ecs.Storage
	update   *ecs.Scheduler
	render   *ecs.Scheduler
	overlays *OverlaySystem

	clock    *Clock
	pointer  *Pointer
	camera   *Camera
	viewport *Viewport

	groups   *ecs.Arena[ParticleGroup]
	shapes   *ecs.Arena[Shape]
	orbs     *ecs.Arena[Orb]
	galaxies *ecs.Arena[Galaxy]
}

// Initialize opens a surface on device, builds the scene and subscribes to
// pointer and resize events from events, which may be nil. On error nothing
// stays allocated and no listener stays registered.
func Initialize(device surface.Device, events bridge.Source, size Viewport, opts ...Option) (*Animator, error) {
	o := newOptions(opts)

	surf, err := device.Open(size.Width, size.Height)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSurfaceUnavailable, err)
	}

	a := &Animator{
		logger:  o.logger,
		surface: surf,
	}
	if err := a.build(o, size); err != nil {
		a.release()
		return nil, fmt.Errorf("%w: %w", ErrSurfaceUnavailable, err)
	}

	if events != nil {
		a.cancels = append(a.cancels,
			events.OnPointerMove(a.PointerMove),
			events.OnResize(a.Resize),
		)
	}

	a.state = Running
	a.logf("scene: running at %dx%d with %d entities and %d sprites",
		size.Width, size.Height, a.storage.EntityCount(), len(a.handles))
	return a, nil
}

func (a *Animator) build(o *options, size Viewport) error {
	a.storage = ecs.NewStorage()

	a.clock = ecs.NewSingleton(a.storage, Clock{}).Get()
	a.pointer = ecs.NewSingleton(a.storage, Pointer{}).Get()
	a.viewport = ecs.NewSingleton(a.storage, size).Get()
	a.camera = ecs.NewSingleton(a.storage, Camera{
		Position: mgl32.Vec3{0, 0, CameraDistance},
		FOV:      CameraFOV,
		Near:     CameraNear,
		Far:      CameraFar,
		Aspect:   size.Aspect(),
	}).Get()

	a.groups = ecs.NewArena[ParticleGroup](a.storage, len(ParticleTiers))
	a.shapes = ecs.NewArena[Shape](a.storage, ShapeCount)
	a.orbs = ecs.NewArena[Orb](a.storage, OrbCount)
	a.galaxies = ecs.NewArena[Galaxy](a.storage, 1)

	b := &builder{rng: o.rng, surface: a.surface}
	defer func() { a.handles = b.handles }()

	if err := b.particleGroups(a.groups); err != nil {
		return err
	}
	b.shapes(a.shapes)
	if err := b.orbs(a.orbs); err != nil {
		return err
	}
	if err := b.galaxy(a.galaxies); err != nil {
		return err
	}
	a.storage.Seal()

	a.update = ecs.NewScheduler(a.storage)
	a.update.Register(&ParticleSystem{})
	a.update.Register(&ShapeSystem{})
	a.update.Register(&OrbSystem{})
	a.update.Register(&GalaxySystem{})

	a.overlays = &OverlaySystem{}
	a.render = ecs.NewScheduler(a.storage)
	a.render.Register(&CameraSystem{})
	a.render.Register(&RenderSystem{surface: a.surface, lights: DefaultLights()})
	a.render.Register(a.overlays)
	return nil
}

// release frees every sprite, closes the surface and cancels listeners.
func (a *Animator) release() int {
	for _, cancel := range a.cancels {
		cancel()
	}
	a.cancels = nil

	freed := len(a.handles)
	for _, h := range a.handles {
		a.surface.Free(h)
	}
	a.handles = nil

	if a.surface != nil {
		if err := a.surface.Close(); err != nil {
			a.logf("scene: closing surface: %v", err)
		}
	}
	return freed
}

func (a *Animator) logf(format string, args ...any) {
	if a.logger != nil {
		a.logger.Printf(format, args...)
	}
}

func (a *Animator) mustRun(op string) {
	if a.state != Running {
		panic("scene: " + op + " called on " + a.state.String() + " animator")
	}
}

// Tick advances the scene to elapsed seconds since start.
// Panics unless the animator is Running.
func (a *Animator) Tick(elapsed float64) {
	a.mustRun("Tick")

	a.clock.Delta = elapsed - a.clock.Elapsed
	a.clock.Elapsed = elapsed
	a.clock.Ticks++

	a.update.Once(elapsed)
	a.update.Flush()
}

// Render eases the camera and draws the current scene, then runs any overlays.
// Panics unless the animator is Running.
func (a *Animator) Render() {
	a.mustRun("Render")

	a.render.Once(a.clock.Elapsed)
	a.render.Flush()
}

// Resize changes the viewport and camera aspect. Clock and entities are
// kept. Non-positive sizes, the current size and calls outside Running are
// ignored.
func (a *Animator) Resize(width, height int) {
	size := Viewport{Width: width, Height: height}
	if a.state != Running || !size.Valid() || size == *a.viewport {
		return
	}
	if err := a.surface.Resize(width, height); err != nil {
		a.logf("scene: resize to %dx%d: %v", width, height, err)
		return
	}
	*a.viewport = size
	a.camera.Aspect = float64(width) / float64(height)
}

// PointerMove records a pointer position given in viewport pixels.
func (a *Animator) PointerMove(x, y float64) {
	if a.state != Running {
		return
	}
	*a.pointer = NormalizePointer(x, y, a.viewport.Width, a.viewport.Height)
}

// SetPointer records an already normalized pointer position.
func (a *Animator) SetPointer(p Pointer) {
	if a.state != Running {
		return
	}
	*a.pointer = p.clamped()
}

// AddOverlay registers fn to run after every Render, once drawing is done.
func (a *Animator) AddOverlay(fn func()) {
	a.overlays.items = append(a.overlays.items, fn)
}

// Dispose releases every resource held by the animator. It is safe to call
// more than once.
func (a *Animator) Dispose() {
	if a.state == Disposed {
		return
	}
	freed := a.release()
	a.state = Disposed
	a.logf("scene: disposed, freed %d sprites", freed)
}

func (a *Animator) State() State {
	return a.state
}

func (a *Animator) Surface() surface.Surface {
	return a.surface
}

func (a *Animator) Storage() *ecs.Storage {
	return a.storage
}

func (a *Animator) Camera() Camera {
	return *a.camera
}

func (a *Animator) Pointer() Pointer {
	return *a.pointer
}

func (a *Animator) Clock() Clock {
	return *a.clock
}

func (a *Animator) Viewport() Viewport {
	return *a.viewport
}

// ParticleGroups returns the live particle groups. Callers must not append to the slice.
func (a *Animator) ParticleGroups() []ParticleGroup {
	return a.groups.Items()
}

func (a *Animator) Shapes() []Shape {
	return a.shapes.Items()
}

func (a *Animator) Orbs() []Orb {
	return a.orbs.Items()
}

func (a *Animator) Galaxy() *Galaxy {
	return a.galaxies.At(0)
}

func (a *Animator) Stats() Stats {
	return Stats{
		Update: a.update.GetStats(),
		Render: a.render.GetStats(),
	}
}
