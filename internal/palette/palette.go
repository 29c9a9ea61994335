// Package palette holds the named color palettes: a core registry of small
// purpose-tagged sets and an extended registry of 9-step single-hue ramps.
package palette

import (
	"fmt"
	"slices"
	"strings"

	"github.com/renato0307/brookplot/internal/colors"
	"github.com/renato0307/brookplot/internal/lookup"
)

// Name identifies a registered palette
type Name string

// Kind tells which registry a palette belongs to
type Kind string

const (
	KindCore     Kind = "core"
	KindExtended Kind = "extended"
)

// Purpose tags what a core palette is meant for
type Purpose string

const (
	PurposeBrand       Purpose = "brand"
	PurposeAnalogous   Purpose = "analogous"
	PurposeContrasting Purpose = "contrasting"
	PurposeSemantic    Purpose = "semantic"
	PurposePosNeg      Purpose = "pos-neg"
	PurposePolitical   Purpose = "political"
	PurposeCategorical Purpose = "categorical"
	PurposeSequential  Purpose = "sequential"
	PurposeDiverging   Purpose = "diverging"
	PurposeMisc        Purpose = "misc"
	PurposeRamp        Purpose = "ramp"
)

// UnknownPaletteError is returned for names missing from the registry
type UnknownPaletteError = lookup.UnknownKeyError

// Palette is an immutable, ordered set of hex colors
type Palette struct {
	name    Name
	kind    Kind
	purpose Purpose
	colors  []string
}

// Name returns the registered name
func (p Palette) Name() Name { return p.name }

// Kind returns the registry the palette came from
func (p Palette) Kind() Kind { return p.kind }

// Purpose returns the palette's purpose tag
func (p Palette) Purpose() Purpose { return p.purpose }

// Len returns the number of colors
func (p Palette) Len() int { return len(p.colors) }

// Hex returns a copy of the colors exactly as registered
func (p Palette) Hex() []string {
	return slices.Clone(p.colors)
}

// Colors returns the parsed colors
func (p Palette) Colors() []colors.Color {
	out := make([]colors.Color, len(p.colors))
	for i, h := range p.colors {
		// registry data is validated by tests
		out[i] = colors.MustParseHex(h)
	}
	return out
}

// At returns the i-th color, cycling when i exceeds the palette length
func (p Palette) At(i int) colors.Color {
	n := len(p.colors)
	return colors.MustParseHex(p.colors[((i%n)+n)%n])
}

// Reversed returns a copy with the color order reversed
func (p Palette) Reversed() Palette {
	r := p
	r.colors = slices.Clone(p.colors)
	slices.Reverse(r.colors)
	return r
}

// Advisory returns an accessibility note for palettes that should be used
// with care, e.g. red/green pairs.
func (p Palette) Advisory() (string, bool) {
	return Advisory(string(p.name))
}

func (p Palette) String() string {
	return fmt.Sprintf("%s (%s, %d colors)", p.name, p.kind, len(p.colors))
}

// Lookup finds a palette in the core or the extended registry
func Lookup(name string, reverse bool) (Palette, error) {
	if p, err := coreRegistry.Get(name); err == nil {
		return orient(p, reverse), nil
	}
	if p, err := extendedRegistry.Get(name); err == nil {
		return orient(p, reverse), nil
	}
	return Palette{}, lookup.NewUnknownKeyError("palette", name, Names())
}

// LookupCore finds a palette in the core registry only
func LookupCore(name string, reverse bool) (Palette, error) {
	p, err := coreRegistry.Get(name)
	if err != nil {
		return Palette{}, err
	}
	return orient(p, reverse), nil
}

// LookupExtended finds a palette in the extended registry only
func LookupExtended(name string, reverse bool) (Palette, error) {
	p, err := extendedRegistry.Get(name)
	if err != nil {
		return Palette{}, err
	}
	return orient(p, reverse), nil
}

// MustLookup is Lookup for compile-time names; it panics on unknown names
func MustLookup(name Name) Palette {
	p, err := Lookup(string(name), false)
	if err != nil {
		panic(err)
	}
	return p
}

func orient(p Palette, reverse bool) Palette {
	if reverse {
		return p.Reversed()
	}
	return p
}

// ParseName validates a free-form palette name
func ParseName(s string) (Name, error) {
	if coreRegistry.Has(s) || extendedRegistry.Has(s) {
		return Name(s), nil
	}
	return "", lookup.NewUnknownKeyError("palette", s, Names())
}

// CoreNames returns the core palette names in registry order
func CoreNames() []string {
	return coreRegistry.Keys()
}

// ExtendedNames returns the extended palette names in registry order
func ExtendedNames() []string {
	return extendedRegistry.Keys()
}

// Names returns every palette name, core first
func Names() []string {
	return append(CoreNames(), ExtendedNames()...)
}

// All returns every palette, core first
func All() []Palette {
	out := make([]Palette, 0, coreRegistry.Len()+extendedRegistry.Len())
	for _, n := range Names() {
		p, _ := Lookup(n, false)
		out = append(out, p)
	}
	return out
}

// ByKind returns the palettes of one registry
func ByKind(kind Kind) []Palette {
	var names []string
	switch kind {
	case KindCore:
		names = CoreNames()
	case KindExtended:
		names = ExtendedNames()
	}
	out := make([]Palette, 0, len(names))
	for _, n := range names {
		p, _ := Lookup(n, false)
		out = append(out, p)
	}
	return out
}

// ParseKind validates a registry name ("core" or "extended")
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindCore, KindExtended:
		return Kind(s), nil
	}
	return "", lookup.NewUnknownKeyError("palette kind", s, []string{string(KindCore), string(KindExtended)})
}

const advisoryRedGreen = "This palette is accessible but NOT contrasting for people with red-green color blindness."

// Advisory returns the accessibility warning attached to a palette name, if any
func Advisory(name string) (string, bool) {
	if strings.Contains(name, "pos_neg") {
		return advisoryRedGreen, true
	}
	return "", false
}
