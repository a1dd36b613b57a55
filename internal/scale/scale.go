// Package scale provides the per-representation channel rescaling kernels
// used by colorkit.
//
// Integral channels span their full unsigned range; floating channels
// span the unit interval [0,1]. Every kernel maps the minimum of the
// source range to the minimum of the target range and the maximum to
// the maximum.
package scale

import "math"

const (
	// MaxU8 is the largest 8-bit channel value.
	MaxU8 = math.MaxUint8

	// MaxU16 is the largest 16-bit channel value.
	MaxU16 = math.MaxUint16
)

// U8ToU16 widens an 8-bit channel by bit replication: 0xA0 becomes 0xA0A0.
func U8ToU16(v uint8) uint16 {
	return uint16(v)<<8 | uint16(v)
}

// U16ToU8 narrows a 16-bit channel with rounding.
// Values whose low byte equals the high byte map back exactly.
func U16ToU8(v uint16) uint8 {
	//nolint:gosec // G115: result is at most 255
	return uint8((uint32(v)*MaxU8 + MaxU16/2) / MaxU16)
}

// U8ToUnit maps an 8-bit channel [0,255] to [0,1].
func U8ToUnit(v uint8) float64 {
	return float64(v) / MaxU8
}

// U16ToUnit maps a 16-bit channel [0,65535] to [0,1].
func U16ToUnit(v uint16) float64 {
	return float64(v) / MaxU16
}

// UnitToU8 maps [0,1] to an 8-bit channel with rounding.
// Out of range input is clamped first; NaN maps to 0.
func UnitToU8(f float64) uint8 {
	//nolint:gosec // G115: Clamp01 bounds the product to [0,255]
	return uint8(Clamp01(f)*MaxU8 + 0.5)
}

// UnitToU16 maps [0,1] to a 16-bit channel with rounding.
// Out of range input is clamped first; NaN maps to 0.
func UnitToU16(f float64) uint16 {
	//nolint:gosec // G115: Clamp01 bounds the product to [0,65535]
	return uint16(Clamp01(f)*MaxU16 + 0.5)
}

// Clamp01 clamps f to [0,1]. NaN clamps to 0.
func Clamp01(f float64) float64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f <= 0:
		return 0
	case f >= 1:
		return 1
	}
	return f
}
