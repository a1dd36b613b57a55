package colorkit

import (
	"github.com/gogpu/colorkit/internal/scale"
)

// Channel is the set of representations a single color component can use.
//
// Integral channels (uint8, uint16) span their full unsigned range.
// Floating channels (float32, float64) are meant to lie in [0,1] but the
// type does not enforce it; Normalize brings them back into range.
type Channel interface {
	uint8 | uint16 | float32 | float64
}

// Float is the set of floating channel representations.
type Float interface {
	float32 | float64
}

// Clamp restricts v to the closed interval [lo, hi].
//
// If lo > hi the bounds are swapped, so the result always lies between
// them. A NaN v is returned unchanged.
func Clamp[T Channel](v, lo, hi T) T {
	if lo > hi {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Invert returns the complement of v: max-v for integral channels,
// 1-v for floating channels.
func Invert[T Channel](v T) T {
	switch x := any(v).(type) {
	case uint8:
		return T(scale.MaxU8 - x)
	case uint16:
		return T(scale.MaxU16 - x)
	case float32:
		return T(1 - x)
	case float64:
		return T(1 - x)
	}
	return v
}

// Normalize clamps v to the natural range of its representation.
// It is the identity for integral channels. Floating channels are
// clamped to [0,1], with NaN mapped to 0.
func Normalize[T Channel](v T) T {
	switch x := any(v).(type) {
	case float32:
		return T(scale.Clamp01(float64(x)))
	case float64:
		return T(scale.Clamp01(x))
	}
	return v
}

// ToChannel rescales v into representation U.
//
// The minimum of T maps to the minimum of U and the maximum of T to the
// maximum of U. Converting to the same representation is the identity.
// Floating values are normalized before they are converted to an
// integral channel; floating to floating conversion does not clamp.
func ToChannel[U, T Channel](v T) U {
	var out U
	switch any(out).(type) {
	case uint8:
		return U(toU8(v))
	case uint16:
		return U(toU16(v))
	case float32:
		return U(float32(toUnit(v)))
	}
	return U(toUnit(v))
}

func toU8[T Channel](v T) uint8 {
	switch x := any(v).(type) {
	case uint8:
		return x
	case uint16:
		return scale.U16ToU8(x)
	case float32:
		return scale.UnitToU8(float64(x))
	case float64:
		return scale.UnitToU8(x)
	}
	return 0
}

func toU16[T Channel](v T) uint16 {
	switch x := any(v).(type) {
	case uint8:
		return scale.U8ToU16(x)
	case uint16:
		return x
	case float32:
		return scale.UnitToU16(float64(x))
	case float64:
		return scale.UnitToU16(x)
	}
	return 0
}

// toUnit returns v on the unit scale. Floating input passes through
// unclamped, so float32 -> float64 -> float32 is exact.
func toUnit[T Channel](v T) float64 {
	switch x := any(v).(type) {
	case uint8:
		return scale.U8ToUnit(x)
	case uint16:
		return scale.U16ToUnit(x)
	case float32:
		return float64(x)
	case float64:
		return x
	}
	return 0
}
