// Package headless implements surface.Device without a GPU. It counts draw
// calls per frame and tracks every handle it issues, which makes it the
// surface of choice for tests and the soak tool.
package headless

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/plus3/backdrop/surface"
)

// ErrSpriteBudget is returned when a Device configured with FailSpriteAt runs out of sprites.
var ErrSpriteBudget = errors.New("headless: sprite allocation refused")

// Device opens headless surfaces and keeps every surface it opened for inspection.
type Device struct {
	// FailOpen, when set, is returned by Open instead of a surface.
	FailOpen error
	// FailSpriteAt makes the n-th NewSprite call (1-based) on each surface fail.
	FailSpriteAt int

	surfaces []*Surface
}

// NewDevice returns a device with no injected failures.
func NewDevice() *Device {
	return &Device{}
}

func (d *Device) Open(width, height int) (surface.Surface, error) {
	if d.FailOpen != nil {
		return nil, d.FailOpen
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", surface.ErrInvalidSize, width, height)
	}
	s := &Surface{
		width:   width,
		height:  height,
		failAt:  d.FailSpriteAt,
		sprites: make(map[surface.Handle]int),
	}
	d.surfaces = append(d.surfaces, s)
	return s, nil
}

// Surfaces returns every surface opened so far, in order.
func (d *Device) Surfaces() []*Surface {
	return d.surfaces
}

// Last returns the most recently opened surface, or nil.
func (d *Device) Last() *Surface {
	if len(d.surfaces) == 0 {
		return nil
	}
	return d.surfaces[len(d.surfaces)-1]
}

// FrameStats counts the draw calls issued since the last Clear.
type FrameStats struct {
	Sprites  int
	Additive int
	Lines    int
}

// Surface records what a renderer asks of it.
type Surface struct {
	width, height int
	failAt        int

	next    surface.Handle
	sprites map[surface.Handle]int

	allocated   int
	freed       int
	doubleFrees int
	closed      bool
	closeCalls  int

	frames  int
	current FrameStats
	resizes [][2]int
}

func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

func (s *Surface) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", surface.ErrInvalidSize, width, height)
	}
	s.width, s.height = width, height
	s.resizes = append(s.resizes, [2]int{width, height})
	return nil
}

func (s *Surface) NewSprite(diameter int) (surface.Handle, error) {
	if s.closed {
		return 0, surface.ErrClosed
	}
	if diameter <= 0 {
		return 0, fmt.Errorf("headless: sprite diameter %d", diameter)
	}
	if s.failAt > 0 && s.allocated+1 == s.failAt {
		return 0, ErrSpriteBudget
	}
	s.next++
	s.sprites[s.next] = diameter
	s.allocated++
	return s.next, nil
}

func (s *Surface) Free(h surface.Handle) {
	if _, ok := s.sprites[h]; !ok {
		s.doubleFrees++
		return
	}
	delete(s.sprites, h)
	s.freed++
}

func (s *Surface) Live() int {
	return len(s.sprites)
}

func (s *Surface) Clear() {
	s.frames++
	s.current = FrameStats{}
}

func (s *Surface) DrawSprite(h surface.Handle, op surface.SpriteOp) {
	if _, ok := s.sprites[h]; !ok {
		panic(fmt.Sprintf("headless: draw with unknown sprite %d", h))
	}
	s.current.Sprites++
	if op.Blend == surface.BlendAdditive {
		s.current.Additive++
	}
}

func (s *Surface) DrawLine(x0, y0, x1, y1, width float32, c color.NRGBA) {
	s.current.Lines++
}

func (s *Surface) Close() error {
	s.closeCalls++
	s.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (s *Surface) Closed() bool { return s.closed }

// CloseCalls returns how many times Close was called.
func (s *Surface) CloseCalls() int { return s.closeCalls }

// Allocated returns the number of sprites ever issued.
func (s *Surface) Allocated() int { return s.allocated }

// Freed returns the number of successful frees.
func (s *Surface) Freed() int { return s.freed }

// DoubleFrees returns the number of frees of unknown or already freed handles.
func (s *Surface) DoubleFrees() int { return s.doubleFrees }

// Frames returns the number of frames started with Clear.
func (s *Surface) Frames() int { return s.frames }

// Frame returns the draw counters of the current frame.
func (s *Surface) Frame() FrameStats { return s.current }

// Resizes returns every successful resize, in order.
func (s *Surface) Resizes() [][2]int { return s.resizes }
