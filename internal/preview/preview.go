// Package preview draws palette swatches: a two-row grid image for
// documents and a compact strip for the terminal.
package preview

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/renato0307/brookplot/internal/colors"
	"github.com/renato0307/brookplot/internal/fonts"
	"github.com/renato0307/brookplot/internal/logging"
	"github.com/renato0307/brookplot/internal/palette"
)

// padHex fills the last cell of palettes with an odd number of colors
const padHex = "#FFFFFF"

// Cell is one swatch of the grid
type Cell struct {
	Row, Col int
	// Index is the 1-based position in the palette, 0 for padding
	Index      int
	Hex        string
	Fill       colors.Color
	Label      string
	LabelColor colors.Color
}

// Padding reports whether the cell only fills out the grid
func (c Cell) Padding() bool { return c.Index == 0 }

// Grid is a palette laid out in two rows, filled row by row
type Grid struct {
	Rows, Cols int
	Cells      []Cell
}

// At returns the cell at row r, column c
func (g Grid) At(r, c int) Cell {
	return g.Cells[r*g.Cols+c]
}

// Layout arranges colors into 2 rows of ceil(n/2) columns. Cells take
// their fill from a colormap built over the padded color list, so every
// cell lands exactly on its own color.
func Layout(hexes []string) (Grid, error) {
	if len(hexes) == 0 {
		return Grid{}, fmt.Errorf("cannot lay out an empty palette")
	}
	cols := int(math.Ceil(float64(len(hexes)) / 2))
	padded := append([]string(nil), hexes...)
	for len(padded) < 2*cols {
		padded = append(padded, padHex)
	}

	stops := make([]colors.Color, len(padded))
	for i, h := range padded {
		c, err := colors.ParseHex(h)
		if err != nil {
			return Grid{}, err
		}
		stops[i] = c
	}
	cmap := palette.ColormapFromColors(stops)

	g := Grid{Rows: 2, Cols: cols, Cells: make([]Cell, 0, len(padded))}
	last := float64(len(padded) - 1)
	for k := range padded {
		cell := Cell{
			Row:  k / cols,
			Col:  k % cols,
			Hex:  strings.ToUpper(padded[k]),
			Fill: cmap.At(float64(k) / last),
		}
		if k < len(hexes) {
			cell.Index = k + 1
			cell.Label = strconv.Itoa(k+1) + "\n" + strings.ToUpper(hexes[k])
			cell.LabelColor = stops[k].TextColor()
		}
		g.Cells = append(g.Cells, cell)
	}
	return g, nil
}

// Options control the rendered grid image
type Options struct {
	Reverse bool
	SVG     bool
	// CellWidth and CellHeight are in pixels
	CellWidth  int
	CellHeight int
	// FontSize is in points
	FontSize float64
	DPI      float64
	Fonts    *fonts.Family
}

func (o Options) withDefaults() Options {
	if o.CellWidth <= 0 {
		o.CellWidth = 120
	}
	if o.CellHeight <= 0 {
		o.CellHeight = 90
	}
	if o.FontSize <= 0 {
		o.FontSize = 10
	}
	if o.DPI <= 0 {
		o.DPI = chart.DefaultDPI
	}
	return o
}

// Render draws the named palette (core or extended) as a swatch grid
func Render(w io.Writer, name string, opts Options) error {
	p, err := palette.Lookup(name, opts.Reverse)
	if err != nil {
		return err
	}
	grid, err := Layout(p.Hex())
	if err != nil {
		return err
	}
	return RenderGrid(w, grid, opts)
}

// RenderGrid draws a grid with go-chart's PNG or SVG renderer
func RenderGrid(w io.Writer, grid Grid, opts Options) error {
	opts = opts.withDefaults()
	family := opts.Fonts
	if family == nil {
		var err error
		if family, err = fonts.Default(); err != nil {
			return err
		}
	}

	provider := chart.PNG
	if opts.SVG {
		provider = chart.SVG
	}
	r, err := provider(grid.Cols*opts.CellWidth, grid.Rows*opts.CellHeight)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	r.SetDPI(opts.DPI)

	ctx := logging.Start("render swatches")
	for _, c := range grid.Cells {
		box := chart.Box{
			Left:   c.Col * opts.CellWidth,
			Top:    c.Row * opts.CellHeight,
			Right:  (c.Col + 1) * opts.CellWidth,
			Bottom: (c.Row + 1) * opts.CellHeight,
		}
		chart.Draw.Box(r, box, chart.Style{
			FillColor:   c.Fill.Drawing(),
			StrokeColor: c.Fill.Drawing(),
			StrokeWidth: 0,
		})
		if c.Padding() {
			continue
		}
		chart.Draw.TextWithin(r, c.Label, box, chart.Style{
			Font:                family.Regular,
			FontSize:            opts.FontSize,
			FontColor:           c.LabelColor.Drawing(),
			TextWrap:            chart.TextWrapWord,
			TextHorizontalAlign: chart.TextHorizontalAlignCenter,
			TextVerticalAlign:   chart.TextVerticalAlignMiddle,
			TextLineSpacing:     2,
		})
	}
	logging.EndWithCount(ctx, len(grid.Cells))

	if err := r.Save(w); err != nil {
		return fmt.Errorf("failed to write swatches: %w", err)
	}
	return nil
}
