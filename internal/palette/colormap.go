package palette

import (
	"math"

	"github.com/renato0307/brookplot/internal/colors"
	"github.com/renato0307/brookplot/internal/lookup"
)

// Colormap maps t in [0,1] to a color by linear interpolation between
// evenly spaced stops.
type Colormap struct {
	name  Name
	stops []colors.Color
}

// NewColormap builds a colormap from one of the palettes designed for it:
// a subset of the core palettes plus every extended ramp.
func NewColormap(name string, reverse bool) (Colormap, error) {
	if !isColormapName(name) {
		err := lookup.NewUnknownKeyError("colormap", name, ColormapNames())
		err.Hint = "Not all palettes are designed to be color maps."
		return Colormap{}, err
	}

	p, err := Lookup(name, reverse)
	if err != nil {
		return Colormap{}, err
	}
	return Colormap{name: p.Name(), stops: p.Colors()}, nil
}

// ColormapFromColors builds an unnamed colormap over arbitrary stops.
// At least one stop is required.
func ColormapFromColors(stops []colors.Color) Colormap {
	return Colormap{stops: append([]colors.Color(nil), stops...)}
}

// ColormapNames lists the palettes accepted by NewColormap
func ColormapNames() []string {
	names := make([]string, 0, len(colormapCore)+extendedRegistry.Len())
	for _, n := range colormapCore {
		names = append(names, string(n))
	}
	return append(names, ExtendedNames()...)
}

func isColormapName(name string) bool {
	for _, n := range colormapCore {
		if string(n) == name {
			return true
		}
	}
	return extendedRegistry.Has(name)
}

// Name returns the source palette name (empty for ColormapFromColors)
func (c Colormap) Name() Name { return c.name }

// Stops returns a copy of the interpolation stops
func (c Colormap) Stops() []colors.Color {
	return append([]colors.Color(nil), c.stops...)
}

// At returns the color at position t; t is clamped to [0,1]
func (c Colormap) At(t float64) colors.Color {
	n := len(c.stops)
	switch {
	case n == 0:
		return colors.Color{}
	case n == 1 || t <= 0 || math.IsNaN(t):
		return c.stops[0]
	case t >= 1:
		return c.stops[n-1]
	}

	pos := t * float64(n-1)
	i := int(math.Floor(pos))
	return c.stops[i].Lerp(c.stops[i+1], pos-float64(i))
}

// Sample returns n evenly spaced colors from the first to the last stop
func (c Colormap) Sample(n int) []colors.Color {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []colors.Color{c.At(0)}
	}
	out := make([]colors.Color, n)
	for i := range out {
		out[i] = c.At(float64(i) / float64(n-1))
	}
	return out
}
