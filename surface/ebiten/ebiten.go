// Package ebiten provides a GPU-backed surface.Device on top of the Ebiten game engine.
// The surface renders into an offscreen canvas that the host composites onto
// its screen each frame with Present.
package ebiten

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/backdrop/surface"
)

// Device opens ebiten surfaces. Open creates the canvas immediately, so a
// graphics driver that cannot allocate images fails here with
// surface.ErrNoContext instead of mid-frame.
type Device struct {
	// NewImage allocates images; nil means ebiten.NewImage.
	NewImage func(width, height int) *ebiten.Image
}

func (d Device) Open(width, height int) (surface.Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", surface.ErrInvalidSize, width, height)
	}
	alloc := d.NewImage
	if alloc == nil {
		alloc = ebiten.NewImage
	}
	s := &Surface{
		alloc:   alloc,
		sprites: make(map[surface.Handle]*sprite),
	}
	canvas, err := s.newImage(width, height)
	if err != nil {
		return nil, err
	}
	s.canvas = canvas
	return s, nil
}

type sprite struct {
	image    *ebiten.Image
	diameter float32
}

// Surface draws into an offscreen ebiten image.
type Surface struct {
	alloc   func(width, height int) *ebiten.Image
	canvas  *ebiten.Image
	sprites map[surface.Handle]*sprite
	next    surface.Handle
	closed  bool

	op ebiten.DrawImageOptions
}

// newImage turns an allocation panic from the driver into ErrNoContext.
func (s *Surface) newImage(width, height int) (img *ebiten.Image, err error) {
	defer func() {
		if r := recover(); r != nil {
			img, err = nil, fmt.Errorf("%w: %v", surface.ErrNoContext, r)
		}
	}()
	img = s.alloc(width, height)
	if img == nil {
		return nil, surface.ErrNoContext
	}
	return img, nil
}

func (s *Surface) Size() (int, int) {
	if s.canvas == nil {
		return 0, 0
	}
	b := s.canvas.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Surface) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", surface.ErrInvalidSize, width, height)
	}
	if s.closed {
		return surface.ErrClosed
	}
	if w, h := s.Size(); w == width && h == height {
		return nil
	}
	canvas, err := s.newImage(width, height)
	if err != nil {
		return err
	}
	s.canvas.Deallocate()
	s.canvas = canvas
	return nil
}

func (s *Surface) NewSprite(diameter int) (surface.Handle, error) {
	if s.closed {
		return 0, surface.ErrClosed
	}
	if diameter <= 0 {
		return 0, fmt.Errorf("ebiten: sprite diameter %d", diameter)
	}

	img, err := s.newImage(diameter, diameter)
	if err != nil {
		return 0, err
	}
	r := float32(diameter) / 2
	vector.DrawFilledCircle(img, r, r, r, color.White, true)

	s.next++
	s.sprites[s.next] = &sprite{image: img, diameter: float32(diameter)}
	return s.next, nil
}

func (s *Surface) Free(h surface.Handle) {
	sp, ok := s.sprites[h]
	if !ok {
		return
	}
	sp.image.Deallocate()
	delete(s.sprites, h)
}

func (s *Surface) Live() int {
	return len(s.sprites)
}

func (s *Surface) Clear() {
	s.canvas.Clear()
}

func (s *Surface) DrawSprite(h surface.Handle, op surface.SpriteOp) {
	sp, ok := s.sprites[h]
	if !ok || op.Size <= 0 || op.Tint.A == 0 {
		return
	}

	scale := float64(op.Size / sp.diameter)
	half := float64(op.Size) / 2

	s.op.GeoM.Reset()
	s.op.GeoM.Scale(scale, scale)
	s.op.GeoM.Translate(float64(op.X)-half, float64(op.Y)-half)

	a := float32(op.Tint.A) / 0xff
	s.op.ColorScale.Reset()
	s.op.ColorScale.Scale(
		float32(op.Tint.R)/0xff*a,
		float32(op.Tint.G)/0xff*a,
		float32(op.Tint.B)/0xff*a,
		a,
	)

	s.op.Blend = ebiten.BlendSourceOver
	if op.Blend == surface.BlendAdditive {
		s.op.Blend = ebiten.BlendLighter
	}
	s.op.Filter = ebiten.FilterLinear

	s.canvas.DrawImage(sp.image, &s.op)
}

func (s *Surface) DrawLine(x0, y0, x1, y1, width float32, c color.NRGBA) {
	vector.StrokeLine(s.canvas, x0, y0, x1, y1, width, c, true)
}

// Present composites the canvas onto dst.
func (s *Surface) Present(dst *ebiten.Image) {
	if s.closed {
		return
	}
	dst.DrawImage(s.canvas, nil)
}

func (s *Surface) Close() error {
	if s.closed {
		return nil
	}
	for h, sp := range s.sprites {
		sp.image.Deallocate()
		delete(s.sprites, h)
	}
	s.canvas.Deallocate()
	s.closed = true
	return nil
}
