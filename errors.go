package colorkit

import "errors"

var (
	// ErrPackedOverflow is returned when a packed integer has bits set
	// outside its channel layout.
	ErrPackedOverflow = errors.New("colorkit: packed value out of range")

	// ErrInvalidHex is returned for malformed hex color strings.
	ErrInvalidHex = errors.New("colorkit: invalid hex color")

	// ErrUnknownName is returned when a name is not an SVG color keyword.
	ErrUnknownName = errors.New("colorkit: unknown color name")
)
