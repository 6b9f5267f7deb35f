package surface

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// HSL converts hue, saturation and lightness, each in [0,1], to an opaque colour.
// Hue wraps, so 1.25 and 0.25 are the same colour.
func HSL(h, s, l float64) color.NRGBA {
	h = h - math.Floor(h)
	r, g, b := colorful.Hsl(h*360, s, l).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

// Hex converts a 0xRRGGBB literal to an opaque colour.
func Hex(rgb uint32) color.NRGBA {
	return color.NRGBA{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 0xff}
}

// WithAlpha returns c with its alpha replaced by opacity in [0,1].
func WithAlpha(c color.NRGBA, opacity float64) color.NRGBA {
	c.A = uint8(math.Round(clamp01(opacity) * 0xff))
	return c
}

// Shade multiplies each channel of c by the matching light factor and adds
// the emissive colour, saturating at white. Alpha is kept.
func Shade(c color.NRGBA, light [3]float64, emissive color.NRGBA) color.NRGBA {
	ch := func(base, add uint8, f float64) uint8 {
		v := float64(base)*f + float64(add)
		return uint8(math.Round(math.Min(v, 0xff)))
	}
	return color.NRGBA{
		R: ch(c.R, emissive.R, math.Max(light[0], 0)),
		G: ch(c.G, emissive.G, math.Max(light[1], 0)),
		B: ch(c.B, emissive.B, math.Max(light[2], 0)),
		A: c.A,
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
