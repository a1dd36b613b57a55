package colorkit

import (
	"image/color"
)

// RGB is a color with red, green, and blue components of one channel
// representation. Any combination of values is valid.
//
// RGB is an immutable value type: every method returns a new color.
type RGB[T Channel] struct {
	R, G, B T
}

// Verify at compile time that RGB and HSV implement the conversion contracts.
var (
	_ color.Color = RGB[uint8]{}
	_ RGBSource   = RGB[uint16]{}
	_ RGBSource   = HSV[float32]{}
)

// RGBSource is implemented by color values that can be converted to RGB.
// RGB64 returns the color on float64 channels in [0,1].
type RGBSource interface {
	RGB64() RGB[float64]
}

// NewRGB creates a color from its three components.
func NewRGB[T Channel](r, g, b T) RGB[T] {
	return RGB[T]{R: r, G: g, B: b}
}

// Clamp clamps every component to [lo, hi].
func (c RGB[T]) Clamp(lo, hi T) RGB[T] {
	return RGB[T]{
		R: Clamp(c.R, lo, hi),
		G: Clamp(c.G, lo, hi),
		B: Clamp(c.B, lo, hi),
	}
}

// ClampEach clamps each component between the matching components of lo and hi.
func (c RGB[T]) ClampEach(lo, hi RGB[T]) RGB[T] {
	return RGB[T]{
		R: Clamp(c.R, lo.R, hi.R),
		G: Clamp(c.G, lo.G, hi.G),
		B: Clamp(c.B, lo.B, hi.B),
	}
}

// Inverse returns the complement of the color.
func (c RGB[T]) Inverse() RGB[T] {
	return RGB[T]{
		R: Invert(c.R),
		G: Invert(c.G),
		B: Invert(c.B),
	}
}

// Normalize clamps floating components to [0,1].
// It returns c unchanged for integral channels.
func (c RGB[T]) Normalize() RGB[T] {
	return RGB[T]{
		R: Normalize(c.R),
		G: Normalize(c.G),
		B: Normalize(c.B),
	}
}

// Array returns the components in r, g, b order.
func (c RGB[T]) Array() [3]T {
	return [3]T{c.R, c.G, c.B}
}

// RGB64 returns the color on float64 channels.
func (c RGB[T]) RGB64() RGB[float64] {
	return ConvertRGB[float64](c)
}

// RGBA implements color.Color. The color is always opaque.
func (c RGB[T]) RGBA() (r, g, b, a uint32) {
	return uint32(toU16(c.R)), uint32(toU16(c.G)), uint32(toU16(c.B)), 0xffff
}

// ConvertRGB converts c to channel representation U, rescaling each
// component independently with ToChannel.
func ConvertRGB[U, T Channel](c RGB[T]) RGB[U] {
	return RGB[U]{
		R: ToChannel[U](c.R),
		G: ToChannel[U](c.G),
		B: ToChannel[U](c.B),
	}
}

// ToRGB converts any RGBSource to channel representation U.
//
// For RGB sources this is the same as ConvertRGB, so integral to
// integral conversions stay exact. Other sources go through RGB64.
func ToRGB[U Channel](src RGBSource) RGB[U] {
	switch c := src.(type) {
	case RGB[uint8]:
		return ConvertRGB[U](c)
	case RGB[uint16]:
		return ConvertRGB[U](c)
	case RGB[float32]:
		return ConvertRGB[U](c)
	case RGB[float64]:
		return ConvertRGB[U](c)
	}
	return ConvertRGB[U](src.RGB64())
}

// FromColor converts a standard color.Color to RGB.
// Translucent colors are un-premultiplied and their alpha is dropped.
func FromColor[U Channel](c color.Color) RGB[U] {
	if src, ok := c.(RGBSource); ok {
		return ToRGB[U](src)
	}
	n, _ := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return ConvertRGB[U](RGB[uint16]{R: n.R, G: n.G, B: n.B})
}
