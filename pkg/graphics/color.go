// Package graphics provides the color values UI documents declare.
package graphics

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// String formats the color as #AARRGGBB.
func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// Common colors.
const (
	ColorBlack = Color(0xFF000000)
	ColorWhite = Color(0xFFFFFFFF)
)

// ParseColor accepts a CSS/SVG color name ("red", "cornflowerblue"),
// #RRGGBB or #AARRGGBB.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid color %q", s)
		}
		switch len(hex) {
		case 6:
			return Color(v) | ColorBlack, nil
		case 8:
			return Color(v), nil
		default:
			return 0, fmt.Errorf("invalid color %q: want #RRGGBB or #AARRGGBB", s)
		}
	}
	named, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return 0, fmt.Errorf("unknown color name %q", s)
	}
	return RGBA8(named.R, named.G, named.B, named.A), nil
}
