// Package surface defines the drawing surface a scene renders into and the
// resources it hands out. Implementations live in subpackages: ebiten draws
// to GPU-backed images, headless records calls in memory.
package surface

import (
	"errors"
	"image/color"
)

// Handle identifies a texture allocated on a Surface. The zero Handle is never issued.
type Handle uint32

// ErrInvalidSize is returned when a surface is opened or resized with a non-positive dimension.
var ErrInvalidSize = errors.New("surface: invalid size")

// ErrNoContext is returned when the graphics context cannot create images.
var ErrNoContext = errors.New("surface: no graphics context")

// ErrClosed is returned by allocations on a closed surface.
var ErrClosed = errors.New("surface: closed")

// Blend selects how a sprite is composited onto the surface.
type Blend int

const (
	BlendNormal Blend = iota
	BlendAdditive
)

// SpriteOp positions one sprite draw. X and Y are the sprite centre in
// surface pixels, Size its on-screen diameter in pixels.
type SpriteOp struct {
	X, Y  float32
	Size  float32
	Tint  color.NRGBA
	Blend Blend
}

// Device opens drawing surfaces. A device that has no usable rendering
// context returns an error from Open.
type Device interface {
	Open(width, height int) (Surface, error)
}

// Surface is a single drawing target plus the textures allocated on it.
type Surface interface {
	Size() (width, height int)
	Resize(width, height int) error

	// NewSprite allocates a round white sprite texture with the given pixel diameter.
	NewSprite(diameter int) (Handle, error)
	// Free releases a sprite. Freeing an unknown handle is a no-op.
	Free(h Handle)
	// Live returns the number of allocated, unfreed handles.
	Live() int

	Clear()
	DrawSprite(h Handle, op SpriteOp)
	DrawLine(x0, y0, x1, y1, width float32, c color.NRGBA)

	// Close releases the surface itself. It is safe to call more than once.
	Close() error
}
