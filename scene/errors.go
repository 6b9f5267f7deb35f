package scene

import "errors"

// ErrSurfaceUnavailable is returned by Initialize when the device cannot
// provide a drawing surface or the surface cannot hold the scene's textures.
var ErrSurfaceUnavailable = errors.New("scene: surface unavailable")
