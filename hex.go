package colorkit

import (
	"fmt"

	"github.com/pkg/errors"
)

// ParseHex parses a hex color string.
// Supports formats: "RGB" and "RRGGBB", with an optional leading '#'.
// Short form digits are replicated, so "#fa0" equals "#ffaa00".
func ParseHex(s string) (RGB[uint8], error) {
	hex := s
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint8
	ok := true
	switch len(hex) {
	case 3: // RGB
		r, ok = parseHexByte(hex[0:1], ok)
		g, ok = parseHexByte(hex[1:2], ok)
		b, ok = parseHexByte(hex[2:3], ok)
		r, g, b = r*17, g*17, b*17
	case 6: // RRGGBB
		r, ok = parseHexByte(hex[0:2], ok)
		g, ok = parseHexByte(hex[2:4], ok)
		b, ok = parseHexByte(hex[4:6], ok)
	default:
		ok = false
	}

	if !ok {
		Logger().Debug("colorkit: hex rejected", "input", s)
		return RGB[uint8]{}, errors.Wrapf(ErrInvalidHex, "%q", s)
	}
	return RGB[uint8]{R: r, G: g, B: b}, nil
}

// parseHexByte decodes one or two hex digits. It reports false if any
// digit is invalid or ok was already false.
func parseHexByte(s string, ok bool) (uint8, bool) {
	var val uint8
	for i := 0; i < len(s); i++ {
		c := s[i]
		val *= 16
		switch {
		case '0' <= c && c <= '9':
			val += c - '0'
		case 'a' <= c && c <= 'f':
			val += c - 'a' + 10
		case 'A' <= c && c <= 'F':
			val += c - 'A' + 10
		default:
			return 0, false
		}
	}
	return val, ok
}

// Hex formats the color as "#rrggbb" after converting to 8-bit channels.
func (c RGB[T]) Hex() string {
	u := ConvertRGB[uint8](c)
	return fmt.Sprintf("#%02x%02x%02x", u.R, u.G, u.B)
}
