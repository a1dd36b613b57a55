package colorkit

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// SVG 1.1 keyword colors: https://www.w3.org/TR/SVG11/types.html#ColorKeywords
//
// The table itself comes from golang.org/x/image/colornames. It is only
// ever read here and is never handed out as a map.

// Named returns the SVG keyword color called name.
// Matching ignores case and surrounding white space.
func Named(name string) (RGB[uint8], error) {
	key := cases.Fold().String(strings.TrimSpace(name))
	c, ok := colornames.Map[key]
	if !ok {
		Logger().Debug("colorkit: unknown color name", "name", name)
		return RGB[uint8]{}, errors.Wrapf(ErrUnknownName, "%q", name)
	}
	return RGB[uint8]{R: c.R, G: c.G, B: c.B}, nil
}

// Names returns all SVG keyword color names in lexical order.
// The returned slice is a fresh copy.
func Names() []string {
	return slices.Clone(colornames.Names)
}

// Lookup resolves s as a color keyword or, failing that, a hex string.
func Lookup(s string) (RGB[uint8], error) {
	if c, err := Named(s); err == nil {
		return c, nil
	}
	c, err := ParseHex(strings.TrimSpace(s))
	if err != nil {
		return RGB[uint8]{}, errors.Wrapf(ErrUnknownName, "%q is neither a color name nor a hex color", s)
	}
	return c, nil
}
