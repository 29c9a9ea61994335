package colors

import "math"

// LuminanceThreshold separates backgrounds that take black text from those
// that take white text.
const LuminanceThreshold = 0.179

// linearize converts a normalized sRGB channel to linear light
func linearize(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// Luminance returns the WCAG relative luminance of the color, ignoring alpha
func (c Color) Luminance() float64 {
	r := linearize(float64(c.R) / 255.0)
	g := linearize(float64(c.G) / 255.0)
	b := linearize(float64(c.B) / 255.0)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// TextColor returns black or white, whichever reads better on top of c
func (c Color) TextColor() Color {
	if c.Luminance() > LuminanceThreshold {
		return Black
	}
	return White
}

// TextColor returns "#000000" or "#FFFFFF" for text drawn over the given
// background hex color.
func TextColor(hex string) (string, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return "", err
	}
	return c.TextColor().RGBHex(), nil
}

// ContrastRatio returns the WCAG contrast ratio between two colors (1 to 21)
func ContrastRatio(a, b Color) float64 {
	la, lb := a.Luminance(), b.Luminance()
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}
