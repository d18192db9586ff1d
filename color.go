package objshape

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is a non-premultiplied RGBA color with float channels nominally in [0, 1].
type Color struct {
	R, G, B, A float64
}

// Common colors.
var (
	Transparent = Color{}
	Black       = Color{A: 1}
	White       = Color{R: 1, G: 1, B: 1, A: 1}
	Red         = Color{R: 1, A: 1}
)

// RGBA returns an opaque or translucent color from channel values.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// WithAlpha returns a copy of c with alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// NRGBA clamps the channels to [0, 1] and converts them to 8 bit values.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A),
	}
}

// FromColor converts any color.Color into a Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

func to8(v float64) uint8 {
	return uint8(Clamp(v, 0, 1)*255 + 0.5)
}

// ParseColor parses a hex color string in the form #RRGGBB or #RRGGBBAA.
func ParseColor(s string) (Color, error) {
	if !strings.HasPrefix(s, "#") {
		return Color{}, fmt.Errorf("color must start with #")
	}
	hex := strings.TrimPrefix(s, "#")

	switch len(hex) {
	case 6:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Color{}, err
		}
		return FromColor(color.NRGBA{
			R: uint8(val >> 16),
			G: uint8((val >> 8) & 0xFF),
			B: uint8(val & 0xFF),
			A: 255,
		}), nil
	case 8:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Color{}, err
		}
		return FromColor(color.NRGBA{
			R: uint8(val >> 24),
			G: uint8((val >> 16) & 0xFF),
			B: uint8((val >> 8) & 0xFF),
			A: uint8(val & 0xFF),
		}), nil
	}
	return Color{}, fmt.Errorf("invalid hex length")
}
