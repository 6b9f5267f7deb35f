package ebiten

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/backdrop/scene"
	"github.com/plus3/backdrop/surface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noContext(width, height int) *ebiten.Image {
	panic("graphics driver not initialized")
}

func TestOpenWithoutGraphicsContext(t *testing.T) {
	s, err := Device{NewImage: noContext}.Open(800, 600)
	assert.Nil(t, s)
	require.ErrorIs(t, err, surface.ErrNoContext)
	assert.Contains(t, err.Error(), "graphics driver not initialized")
}

func TestOpenRejectsInvalidSize(t *testing.T) {
	_, err := Device{NewImage: noContext}.Open(0, 600)
	assert.ErrorIs(t, err, surface.ErrInvalidSize)
}

func TestInitializeFailsWithoutGraphicsContext(t *testing.T) {
	a, err := scene.Initialize(Device{NewImage: noContext}, nil, scene.Viewport{Width: 800, Height: 600})
	assert.Nil(t, a)
	assert.ErrorIs(t, err, scene.ErrSurfaceUnavailable)
	assert.ErrorIs(t, err, surface.ErrNoContext)
}
