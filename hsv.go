package colorkit

import (
	"math"

	"github.com/gogpu/colorkit/internal/scale"
)

// HSV represents a color by hue, saturation and value.
// H is in degrees [0, 360), S and V are in [0, 1].
type HSV[T Float] struct {
	H, S, V T
}

// NewHSV creates an HSV color. No validation is performed; see Normalize.
func NewHSV[T Float](h, s, v T) HSV[T] {
	return HSV[T]{H: h, S: s, V: v}
}

// ToHSV converts c to HSV with components of type U.
//
// The color is first rescaled to U and normalized, which is a no-op for
// integral sources. Gray colors (zero chroma) have hue and saturation 0
// and no division is performed. Otherwise the channel holding the
// maximum is picked in the fixed order red, green, blue, so ties go to
// the earlier channel.
func ToHSV[U Float, T Channel](c RGB[T]) HSV[U] {
	rgb := ConvertRGB[U](c).Normalize()

	mx := max(rgb.R, rgb.G, rgb.B)
	mn := min(rgb.R, rgb.G, rgb.B)
	chr := mx - mn

	// Checked before any division: mx == 0 implies chr == 0.
	if chr == 0 {
		return HSV[U]{H: 0, S: 0, V: mx}
	}

	var h U
	switch {
	case rgb.R == mx:
		h = U(wrapSextant(float64((rgb.G - rgb.B) / chr)))
	case rgb.G == mx:
		h = (rgb.B-rgb.R)/chr + 2
	default:
		h = (rgb.R-rgb.G)/chr + 4
	}
	h *= 60
	if h >= 360 {
		h -= 360
	}

	return HSV[U]{H: h, S: chr / mx, V: mx}
}

// wrapSextant reduces x modulo 6 into [0, 6).
// math.Mod keeps the sign of x, so negative results are shifted up.
func wrapSextant(x float64) float64 {
	x = math.Mod(x, 6)
	if x < 0 {
		x += 6
	}
	if x >= 6 {
		x = 0
	}
	return x
}

// Normalize wraps the hue into [0, 360) and clamps saturation and value
// to [0, 1]. NaN components become 0.
func (c HSV[T]) Normalize() HSV[T] {
	return HSV[T]{
		H: T(wrapDegrees(float64(c.H))),
		S: Normalize(c.S),
		V: Normalize(c.V),
	}
}

// wrapDegrees reduces h modulo 360 into [0, 360). NaN and infinities map to 0.
func wrapDegrees(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

// RGB64 converts the color to RGB on float64 channels.
// The color is normalized first.
func (c HSV[T]) RGB64() RGB[float64] {
	n := c.Normalize()
	h := float64(n.H) / 60
	s := float64(n.S)
	v := float64(n.V)

	chr := v * s
	x := chr * (1 - math.Abs(math.Mod(h, 2)-1))
	m := v - chr

	var r, g, b float64
	switch {
	case h < 1:
		r, g, b = chr, x, 0
	case h < 2:
		r, g, b = x, chr, 0
	case h < 3:
		r, g, b = 0, chr, x
	case h < 4:
		r, g, b = 0, x, chr
	case h < 5:
		r, g, b = x, 0, chr
	default:
		r, g, b = chr, 0, x
	}

	return RGB[float64]{
		R: scale.Clamp01(r + m),
		G: scale.Clamp01(g + m),
		B: scale.Clamp01(b + m),
	}
}

// RGBA implements color.Color. The color is always opaque.
func (c HSV[T]) RGBA() (r, g, b, a uint32) {
	return c.RGB64().RGBA()
}
