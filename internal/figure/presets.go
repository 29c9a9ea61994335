package figure

import "github.com/renato0307/brookplot/internal/lookup"

// DefaultDPI is the resolution a figure renders at unless told otherwise
const DefaultDPI = 100.0

// Size is a figure size in inches
type Size struct {
	Width  float64
	Height float64
}

var sizes = lookup.NewTable("figure size",
	lookup.Entry[Size]{Key: "small", Value: Size{Width: 3.25, Height: 2}},
	lookup.Entry[Size]{Key: "medium", Value: Size{Width: 6.5, Height: 4}},
	lookup.Entry[Size]{Key: "large", Value: Size{Width: 9, Height: 6.5}},
)

var dpis = lookup.NewTable("DPI",
	lookup.Entry[float64]{Key: "retina", Value: 320},
	lookup.Entry[float64]{Key: "print", Value: 300},
	lookup.Entry[float64]{Key: "screen", Value: 72},
)

// ParseSize returns the size preset with the given name
func ParseSize(name string) (Size, error) {
	return sizes.Get(name)
}

// SizeNames lists the size presets
func SizeNames() []string {
	return sizes.Keys()
}

// ParseDPI returns the DPI preset with the given name. An empty name returns
// 0, which means the figure's own DPI.
func ParseDPI(name string) (float64, error) {
	if name == "" {
		return 0, nil
	}
	return dpis.Get(name)
}

// DPINames lists the DPI presets
func DPINames() []string {
	return dpis.Keys()
}
