package objshape

import (
	"fmt"
	"strings"
)

// BlendMode selects how an incoming color is combined with the pixel already
// on the canvas. Channel values outside [0, 1] are accepted at this point;
// they are clipped when the canvas is materialized into an image.
type BlendMode int

const (
	// ModeSet ignores the original color and stores the incoming value.
	ModeSet BlendMode = iota
	// ModeNormal mixes by the incoming alpha. Alpha is merged with the incoming alpha.
	ModeNormal
	// ModeAdd adds the incoming color weighted by its alpha. Alpha is increased.
	ModeAdd
	// ModeSubtract subtracts the incoming color weighted by its alpha. Alpha is increased.
	ModeSubtract
	// ModeLightenOnly mixes, keeping the original channel if the result would be darker.
	ModeLightenOnly
	// ModeDarkenOnly mixes, keeping the original channel if the result would be lighter.
	ModeDarkenOnly
	// ModeMultiply mixes with the product of both colors, darkening the image.
	ModeMultiply
	// ModeScreen mixes with the product of the inverses, lightening the image.
	ModeScreen
)

var blendModeNames = [...]string{
	ModeSet:         "set",
	ModeNormal:      "normal",
	ModeAdd:         "add",
	ModeSubtract:    "subtract",
	ModeLightenOnly: "lighten-only",
	ModeDarkenOnly:  "darken-only",
	ModeMultiply:    "multiply",
	ModeScreen:      "screen",
}

// BlendModes lists every supported mode in declaration order.
func BlendModes() []BlendMode {
	modes := make([]BlendMode, len(blendModeNames))
	for i := range blendModeNames {
		modes[i] = BlendMode(i)
	}
	return modes
}

func (m BlendMode) String() string {
	if m >= 0 && int(m) < len(blendModeNames) {
		return blendModeNames[m]
	}
	return fmt.Sprintf("BlendMode(%d)", int(m))
}

// ParseBlendMode returns the mode with the given name. Underscores and
// case are ignored, so "LIGHTEN_ONLY" and "lighten-only" are equivalent.
func ParseBlendMode(name string) (BlendMode, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for i, n := range blendModeNames {
		if n == key {
			return BlendMode(i), nil
		}
	}
	return ModeSet, fmt.Errorf("%w: %q", ErrUnknownBlendMode, name)
}

// NeedsOriginal reports whether Apply reads the destination color for an
// incoming alpha a. When it returns false the destination may be passed as
// the zero Color.
func (m BlendMode) NeedsOriginal(a float64) bool {
	switch m {
	case ModeSet:
		return false
	case ModeNormal:
		return a < 1
	}
	return true
}

// Apply composites the incoming color (r, g, b) with alpha a over dst and
// returns the new destination color.
func (m BlendMode) Apply(dst Color, r, g, b, a float64) Color {
	switch m {
	case ModeSet:
		return Color{R: r, G: g, B: b, A: a}
	case ModeNormal:
		dst.R = dst.R*(1-a) + r*a
		dst.G = dst.G*(1-a) + g*a
		dst.B = dst.B*(1-a) + b*a
		dst.A = dst.A*(1-a) + a
	case ModeAdd:
		dst.R += r * a
		dst.G += g * a
		dst.B += b * a
		dst.A += a
	case ModeSubtract:
		dst.R -= r * a
		dst.G -= g * a
		dst.B -= b * a
		dst.A += a
	case ModeLightenOnly:
		dst.R = Max(dst.R*(1-a)+r*a, dst.R)
		dst.G = Max(dst.G*(1-a)+g*a, dst.G)
		dst.B = Max(dst.B*(1-a)+b*a, dst.B)
	case ModeDarkenOnly:
		dst.R = Min(dst.R*(1-a)+r*a, dst.R)
		dst.G = Min(dst.G*(1-a)+g*a, dst.G)
		dst.B = Min(dst.B*(1-a)+b*a, dst.B)
	case ModeMultiply:
		dst.R = dst.R*(1-a) + (r*dst.R)*a
		dst.G = dst.G*(1-a) + (g*dst.G)*a
		dst.B = dst.B*(1-a) + (b*dst.B)*a
	case ModeScreen:
		dst.R = dst.R*(1-a) + (1-(1-r)*(1-dst.R))*a
		dst.G = dst.G*(1-a) + (1-(1-g)*(1-dst.G))*a
		dst.B = dst.B*(1-a) + (1-(1-b)*(1-dst.B))*a
	}
	return dst
}
