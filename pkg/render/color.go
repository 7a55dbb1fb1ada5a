package render

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/decker502/whirl/pkg/geom"
)

// Palette derives per-index stroke and fill colors for a set of
// animation elements. Each element's color is its base hex value with
// an appended alpha byte; later indexes are more opaque, so index
// count-1 renders at the full base opacity and index 0 is the most
// faded. Pulse effects apply a relative opacity modifier on top,
// computed fresh every frame so repeated application cannot drift.
type Palette struct {
	// Colors are 7-character hex strings ("#rrggbb"). Elements beyond
	// the palette length cycle through it.
	Colors []string

	// Opacity is the base opacity of the most opaque element, in [0, 1].
	Opacity float64

	// OpacityDelta is subtracted once per index step away from the most
	// opaque element.
	OpacityDelta float64
}

// Color returns the composited color string for the given element
// index: base hex plus a two-digit lowercase alpha byte.
func (p Palette) Color(index int) string {
	return p.ColorWithModifier(index, 0)
}

// ColorWithModifier is Color with a relative opacity modifier applied:
// the effective base opacity is opacity + opacity*modifier, so a
// modifier of -1 fades the element out entirely and 0 leaves it
// unchanged.
func (p Palette) ColorWithModifier(index int, modifier float64) string {
	n := len(p.Colors)
	if n == 0 {
		return ""
	}
	index = ((index % n) + n) % n

	opacity := p.Opacity + p.Opacity*modifier
	alpha := geom.Clamp(0, opacity-float64(n-1-index)*p.OpacityDelta, 1)
	return fmt.Sprintf("%s%02x", p.Colors[index], int(math.Round(alpha*255)))
}

// Validate checks every palette entry for the "#rrggbb" form.
func (p Palette) Validate() error {
	if len(p.Colors) == 0 {
		return fmt.Errorf("palette: at least one color is required")
	}
	for _, c := range p.Colors {
		if err := ValidateHex(c); err != nil {
			return err
		}
	}
	return nil
}

// ValidateHex checks that s is a 7-character "#rrggbb" color string.
func ValidateHex(s string) error {
	if len(s) != 7 || s[0] != '#' {
		return fmt.Errorf("color: %q is not of the form #rrggbb", s)
	}
	if _, err := strconv.ParseUint(s[1:], 16, 32); err != nil {
		return fmt.Errorf("color: %q is not of the form #rrggbb", s)
	}
	return nil
}

// ParseHex converts "#rrggbb" or "#rrggbbaa" to an RGBA color with
// straight (non-premultiplied) alpha. Parsing is case-insensitive.
func ParseHex(s string) (color.RGBA, error) {
	s = strings.ToLower(s)
	if len(s) != 7 && len(s) != 9 || len(s) > 0 && s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("color: cannot parse %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 64)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color: cannot parse %q: %w", s, err)
	}
	if len(s) == 7 {
		v = v<<8 | 0xff
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
