// Package colorkit provides generic RGB and HSV color values and the
// conversions between them.
//
// # Overview
//
// A color component is a Channel: uint8, uint16, float32 or float64.
// Integral channels span their full unsigned range, floating channels
// span [0,1]. Color math is written once against Channel and works the
// same for every representation.
//
// # Quick Start
//
//	import "github.com/gogpu/colorkit"
//
//	c := colorkit.NewRGB[uint8](0x99, 0x00, 0x00)
//	wide := colorkit.ConvertRGB[uint16](c) // {0x9999, 0, 0}
//	hsv := colorkit.ToHSV[float32](c)     // {0, 1, 0.6}
//
//	steel, err := colorkit.Named("SteelBlue")
//	if err != nil {
//		// handle error
//	}
//	_ = steel.Inverse()
//
// # Channel Conversion
//
// ToChannel and ConvertRGB rescale linearly: the minimum of the source
// maps to the minimum of the target, the maximum to the maximum.
// Widening 8-bit to 16-bit replicates bits (0xA0 becomes 0xA0A0);
// narrowing and float to integer conversions round to nearest.
//
// # Packed Integers
//
// FromPacked32 reads 0x00RRGGBB and FromPacked64 reads 0x0000RRRRGGGGBBBB.
// Values with bits outside the layout are rejected with ErrPackedOverflow.
//
// # Concurrency
//
// Colors are plain values and every operation is a pure function, so
// they may be used from any number of goroutines.
package colorkit

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
