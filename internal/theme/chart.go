package theme

import (
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/renato0307/brookplot/internal/palette"
)

// PointsToPixels converts a length in points to pixels at the given DPI
func PointsToPixels(pt, dpi float64) float64 {
	return drawing.PointsToPixels(dpi, pt)
}

// chartPalette adapts a Config and a series palette to chart.ColorPalette
type chartPalette struct {
	cfg   Config
	cycle palette.Palette
}

// ChartPalette returns the go-chart color palette for this theme. Series
// colors cycle through the given palette.
func (c Config) ChartPalette(cycle palette.Palette) chart.ColorPalette {
	return chartPalette{cfg: c, cycle: cycle}
}

func (p chartPalette) BackgroundColor() drawing.Color       { return p.cfg.BackgroundColor.Drawing() }
func (p chartPalette) BackgroundStrokeColor() drawing.Color { return p.cfg.BackgroundColor.Drawing() }
func (p chartPalette) CanvasColor() drawing.Color           { return p.cfg.FaceColor.Drawing() }
func (p chartPalette) CanvasStrokeColor() drawing.Color     { return p.cfg.FaceColor.Drawing() }
func (p chartPalette) AxisStrokeColor() drawing.Color       { return p.cfg.TextColor.Drawing() }
func (p chartPalette) TextColor() drawing.Color             { return p.cfg.TextColor.Drawing() }

func (p chartPalette) GetSeriesColor(index int) drawing.Color {
	return p.cycle.At(index).Drawing()
}

// BackgroundStyle is the style of the whole figure area
func (c Config) BackgroundStyle() chart.Style {
	return chart.Style{
		FillColor:   c.BackgroundColor.Drawing(),
		StrokeColor: c.BackgroundColor.Drawing(),
	}
}

// CanvasStyle is the style of the plot area
func (c Config) CanvasStyle() chart.Style {
	return chart.Style{
		FillColor:   c.FaceColor.Drawing(),
		StrokeColor: c.FaceColor.Drawing(),
		StrokeWidth: 0,
	}
}

func (c Config) spineColor(shown bool) drawing.Color {
	if shown {
		return c.TextColor.Drawing()
	}
	return drawing.ColorTransparent
}

// gridStyle returns the grid line style, or a hidden style when the grid is
// disabled for the given axis.
func (c Config) gridStyle(axis string, dpi float64) chart.Style {
	if !c.Grid.Enabled || (c.Grid.Axis != axis && c.Grid.Axis != "both") {
		return chart.Hidden()
	}
	width := PointsToPixels(c.Grid.LineWidth, dpi)
	return chart.Style{
		StrokeColor:     c.Grid.Color.Drawing(),
		StrokeWidth:     width,
		StrokeDashArray: []float64{c.Grid.Dash[0] * width, c.Grid.Dash[1] * width},
	}
}

// XAxis returns the go-chart x-axis for this theme (bottom spine and tick labels)
func (c Config) XAxis(name string, dpi float64) chart.XAxis {
	return chart.XAxis{
		Name: name,
		NameStyle: chart.Style{
			FontSize:  c.LabelSize,
			FontColor: c.TextColor.Drawing(),
		},
		Style: chart.Style{
			StrokeColor: c.spineColor(c.Spines.Bottom),
			StrokeWidth: PointsToPixels(c.LineWidth, dpi),
			FontSize:    c.TickLabelSize,
			FontColor:   c.TextColor.Drawing(),
		},
		GridMajorStyle: c.gridStyle("x", dpi),
		GridMinorStyle: c.gridStyle("x", dpi),
	}
}

// YAxis returns the go-chart y-axis for this theme: no spine, no tick marks,
// dotted horizontal grid lines.
func (c Config) YAxis(name string, dpi float64) chart.YAxis {
	axisColor := c.spineColor(c.Spines.Left || c.Spines.Right)
	tickColor := axisColor
	if !c.YTicks {
		tickColor = drawing.ColorTransparent
	}
	return chart.YAxis{
		Name: name,
		NameStyle: chart.Style{
			FontSize:  c.LabelSize,
			FontColor: c.TextColor.Drawing(),
		},
		Style: chart.Style{
			StrokeColor: axisColor,
			StrokeWidth: PointsToPixels(c.LineWidth, dpi),
			FontSize:    c.TickLabelSize,
			FontColor:   c.TextColor.Drawing(),
		},
		TickStyle: chart.Style{
			StrokeColor: tickColor,
		},
		GridMajorStyle: c.gridStyle("y", dpi),
		GridMinorStyle: c.gridStyle("y", dpi),
	}
}

// SeriesStyle returns the line style of the i-th series. Areas under lines
// are left unfilled.
func (c Config) SeriesStyle(index int, cycle palette.Palette, dpi float64) chart.Style {
	return chart.Style{
		StrokeColor: cycle.At(index).Drawing(),
		StrokeWidth: PointsToPixels(c.LineWidth, dpi),
	}
}
