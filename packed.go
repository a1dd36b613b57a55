package colorkit

import (
	"github.com/pkg/errors"
)

// Packed integer layouts. Channels are stored big-endian, red highest.
const (
	// packed32Mask covers 0x00RRGGBB: three 8-bit channels.
	packed32Mask = 0x00FFFFFF

	// packed64Mask covers 0x0000RRRRGGGGBBBB: three 16-bit channels.
	packed64Mask = 0x0000FFFFFFFFFFFF
)

// FromPacked32 unpacks a 0x00RRGGBB value into an RGB of representation U.
// A non-zero top byte returns ErrPackedOverflow.
func FromPacked32[U Channel](v uint32) (RGB[U], error) {
	if v&^packed32Mask != 0 {
		Logger().Debug("colorkit: packed32 rejected", "value", v)
		return RGB[U]{}, errors.Wrapf(ErrPackedOverflow, "0x%08X has bits above 0x%06X", v, packed32Mask)
	}
	c := RGB[uint8]{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
	return ConvertRGB[U](c), nil
}

// FromPacked64 unpacks a 0x0000RRRRGGGGBBBB value into an RGB of
// representation U. Non-zero top 16 bits return ErrPackedOverflow.
func FromPacked64[U Channel](v uint64) (RGB[U], error) {
	if v&^packed64Mask != 0 {
		Logger().Debug("colorkit: packed64 rejected", "value", v)
		return RGB[U]{}, errors.Wrapf(ErrPackedOverflow, "0x%016X has bits above 0x%012X", v, uint64(packed64Mask))
	}
	c := RGB[uint16]{
		R: uint16(v >> 32),
		G: uint16(v >> 16),
		B: uint16(v),
	}
	return ConvertRGB[U](c), nil
}

// Packed32 packs the color as 0x00RRGGBB after converting to 8-bit channels.
func (c RGB[T]) Packed32() uint32 {
	u := ConvertRGB[uint8](c)
	return uint32(u.R)<<16 | uint32(u.G)<<8 | uint32(u.B)
}

// Packed64 packs the color as 0x0000RRRRGGGGBBBB after converting to
// 16-bit channels.
func (c RGB[T]) Packed64() uint64 {
	u := ConvertRGB[uint16](c)
	return uint64(u.R)<<32 | uint64(u.G)<<16 | uint64(u.B)
}
