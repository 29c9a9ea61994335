// Package colors provides the hex color value used across brookplot along with
// relative luminance and text contrast helpers.
package colors

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrInvalidHex is returned when a string is not a #RRGGBB or #RRGGBBAA color
var ErrInvalidHex = errors.New("invalid hex color")

var (
	// Black is the dark text color returned by the contrast selector
	Black = Color{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	// White is the light text color returned by the contrast selector
	White = Color{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// Color is an 8-bit RGBA color
type Color struct {
	R, G, B, A uint8
}

// ParseHex parses a #RRGGBB or #RRGGBBAA string (case-insensitive).
// Six digit input is fully opaque.
func ParseHex(hex string) (Color, error) {
	if !strings.HasPrefix(hex, "#") {
		return Color{}, fmt.Errorf("%w %q: missing leading '#'", ErrInvalidHex, hex)
	}
	digits := hex[1:]
	if len(digits) != 6 && len(digits) != 8 {
		return Color{}, fmt.Errorf("%w %q: want 6 or 8 hex digits, got %d", ErrInvalidHex, hex, len(digits))
	}

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w %q: %v", ErrInvalidHex, hex, err)
	}

	if len(digits) == 6 {
		return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
	}
	return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// MustParseHex is like ParseHex but panics on malformed input.
// Only use it with compile-time constants.
func MustParseHex(hex string) Color {
	c, err := ParseHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the canonical form: #RRGGBB when opaque, #RRGGBBAA otherwise
func (c Color) Hex() string {
	if c.A == 0xFF {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// RGBHex returns #RRGGBB, dropping alpha
func (c Color) RGBHex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// String implements fmt.Stringer
func (c Color) String() string {
	return c.Hex()
}

// Drawing converts the color for use with go-chart styles
func (c Color) Drawing() drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Lipgloss converts the color for terminal rendering (alpha is dropped)
func (c Color) Lipgloss() lipgloss.Color {
	return lipgloss.Color(c.RGBHex())
}

// RGBA implements image/color.Color with premultiplied alpha
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.Drawing().RGBA()
}

// Lerp linearly interpolates between c and other, t in [0,1]
func (c Color) Lerp(other Color, t float64) Color {
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
	}
	return Color{
		R: mix(c.R, other.R),
		G: mix(c.G, other.G),
		B: mix(c.B, other.B),
		A: mix(c.A, other.A),
	}
}
