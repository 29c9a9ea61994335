// Package theme builds the default visual style for brookplot figures.
//
// A Config is an immutable value: New derives every setting from the base
// font size, line width and background, and figures carry the Config they
// were created with instead of reading shared state.
package theme

import (
	"errors"
	"fmt"

	"github.com/renato0307/brookplot/internal/colors"
	"github.com/renato0307/brookplot/internal/lookup"
	"github.com/renato0307/brookplot/internal/palette"
)

var (
	// ErrInvalidFontSize is returned when the base font size is not positive
	ErrInvalidFontSize = errors.New("font size must be greater than zero")
	// ErrInvalidLineWidth is returned when the line width is not positive
	ErrInvalidLineWidth = errors.New("line width must be greater than zero")
)

// Background selects the figure background color
type Background string

const (
	// Standard is a plain white background for print and documents
	Standard Background = "standard"
	// Web is the off-white used on the website
	Web Background = "web"
)

var backgrounds = lookup.NewTable("background",
	lookup.Entry[colors.Color]{Key: string(Standard), Value: colors.MustParseHex("#FFFFFF")},
	lookup.Entry[colors.Color]{Key: string(Web), Value: colors.MustParseHex("#FAFAFA")},
)

// ParseBackground validates a background name
func ParseBackground(s string) (Background, error) {
	if _, err := backgrounds.Get(s); err != nil {
		return "", err
	}
	return Background(s), nil
}

// BackgroundFor maps the web flag used by callers to a Background
func BackgroundFor(web bool) Background {
	if web {
		return Web
	}
	return Standard
}

const (
	// labelScale sizes axis labels and tick labels relative to the base font
	labelScale = 0.833
	// DefaultFontSize is the base font size in points
	DefaultFontSize = 14.0
	// DefaultLineWidth is the default line thickness in points
	DefaultLineWidth = 1.4
	// DefaultFigureWidth and DefaultFigureHeight are in inches
	DefaultFigureWidth  = 8.0
	DefaultFigureHeight = 4.5
)

// GridConfig describes the background grid
type GridConfig struct {
	Enabled   bool
	Axis      string // "x", "y" or "both"
	Color     colors.Color
	LineWidth float64
	Dash      [2]float64 // on/off lengths, in units of LineWidth
	Below     bool       // drawn behind the data
}

// Spines tells which plot-area borders are drawn
type Spines struct {
	Top, Right, Bottom, Left bool
}

// LegendConfig describes legend placement and decoration
type LegendConfig struct {
	Loc           string
	Frame         bool
	HandleLength  float64 // in font-size units
	BorderAxesPad float64 // in font-size units; negative places it outside the axes
}

// Config is the complete set of default style parameters for a figure
type Config struct {
	FontSize   float64
	LineWidth  float64
	Background Background

	BackgroundColor colors.Color
	FaceColor       colors.Color
	TextColor       colors.Color

	LabelSize     float64
	LabelBold     bool
	TickLabelSize float64
	YTicks        bool
	XTicks        bool

	Grid   GridConfig
	Spines Spines
	Legend LegendConfig

	PatchLineWidth float64

	Cycle    palette.Name
	Colormap palette.Name

	FigureWidth  float64
	FigureHeight float64
}

// New builds the theme for the given base font size (points), line width
// (points) and background. Equal inputs always produce equal Configs.
func New(fontSize, lineWidth float64, bg Background) (Config, error) {
	if !(fontSize > 0) {
		return Config{}, fmt.Errorf("%w: got %v", ErrInvalidFontSize, fontSize)
	}
	if !(lineWidth > 0) {
		return Config{}, fmt.Errorf("%w: got %v", ErrInvalidLineWidth, lineWidth)
	}
	bgColor, err := backgrounds.Get(string(bg))
	if err != nil {
		return Config{}, err
	}

	return Config{
		FontSize:   fontSize,
		LineWidth:  lineWidth,
		Background: bg,

		BackgroundColor: bgColor,
		FaceColor:       bgColor,
		TextColor:       colors.Black,

		LabelSize:     labelScale * fontSize,
		LabelBold:     true,
		TickLabelSize: labelScale * fontSize,
		YTicks:        false,
		XTicks:        true,

		Grid: GridConfig{
			Enabled:   true,
			Axis:      "y",
			Color:     colors.MustParseHex("#CCCCCC"),
			LineWidth: 0.8,
			Dash:      [2]float64{1, 4},
			Below:     true,
		},
		Spines: Spines{Top: false, Right: false, Bottom: true, Left: false},
		Legend: LegendConfig{
			Loc:           "upper center",
			Frame:         false,
			HandleLength:  0.75,
			BorderAxesPad: -1,
		},

		PatchLineWidth: 0,

		Cycle:    palette.Brand1,
		Colormap: palette.BrandBlue,

		FigureWidth:  DefaultFigureWidth,
		FigureHeight: DefaultFigureHeight,
	}, nil
}

// Default returns the theme for a 14pt font, 1.4pt lines on white
func Default() Config {
	cfg, err := New(DefaultFontSize, DefaultLineWidth, Standard)
	if err != nil {
		panic(err)
	}
	return cfg
}

// CyclePalette returns the palette used for series colors
func (c Config) CyclePalette() palette.Palette {
	return palette.MustLookup(c.Cycle)
}

// DefaultColormap returns the colormap used for continuous data
func (c Config) DefaultColormap() palette.Colormap {
	cm, err := palette.NewColormap(string(c.Colormap), false)
	if err != nil {
		panic(err)
	}
	return cm
}

// WithCycle returns a copy using another series palette
func (c Config) WithCycle(name palette.Name) Config {
	c.Cycle = name
	return c
}

// WithFigureSize returns a copy with another default figure size (inches)
func (c Config) WithFigureSize(width, height float64) Config {
	c.FigureWidth = width
	c.FigureHeight = height
	return c
}
