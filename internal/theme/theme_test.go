package theme

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/renato0307/brookplot/internal/colors"
	"github.com/renato0307/brookplot/internal/lookup"
	"github.com/renato0307/brookplot/internal/palette"
)

func TestNew_Idempotent(t *testing.T) {
	a, err := New(14, 1.4, Standard)
	require.NoError(t, err)
	b, err := New(14, 1.4, Standard)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.True(t, a == b, "configs should be comparable with ==")
	assert.Equal(t, Default(), a)
}

func TestNew_DerivedValues(t *testing.T) {
	tests := []struct {
		name      string
		fontSize  float64
		lineWidth float64
		bg        Background
		wantBG    string
		wantLabel float64
	}{
		{"default", 14, 1.4, Standard, "#FFFFFF", 11.662},
		{"web", 14, 1.4, Web, "#FAFAFA", 11.662},
		{"large font", 20, 2, Standard, "#FFFFFF", 16.66},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := New(tt.fontSize, tt.lineWidth, tt.bg)
			require.NoError(t, err)

			assert.Equal(t, tt.wantBG, cfg.BackgroundColor.RGBHex())
			assert.Equal(t, cfg.BackgroundColor, cfg.FaceColor)
			assert.InDelta(t, tt.wantLabel, cfg.LabelSize, 1e-9)
			assert.InDelta(t, tt.wantLabel, cfg.TickLabelSize, 1e-9)
			assert.Equal(t, tt.fontSize, cfg.FontSize)
			assert.Equal(t, tt.lineWidth, cfg.LineWidth)
			assert.True(t, cfg.LabelBold)
		})
	}
}

func TestNew_FixedTable(t *testing.T) {
	cfg := Default()

	assert.True(t, cfg.Grid.Enabled)
	assert.Equal(t, "y", cfg.Grid.Axis)
	assert.Equal(t, "#CCCCCC", cfg.Grid.Color.RGBHex())
	assert.Equal(t, [2]float64{1, 4}, cfg.Grid.Dash)
	assert.True(t, cfg.Grid.Below)

	assert.Equal(t, Spines{Bottom: true}, cfg.Spines)
	assert.False(t, cfg.YTicks)

	assert.Equal(t, "upper center", cfg.Legend.Loc)
	assert.False(t, cfg.Legend.Frame)
	assert.Equal(t, 0.75, cfg.Legend.HandleLength)
	assert.Equal(t, -1.0, cfg.Legend.BorderAxesPad)

	assert.Equal(t, 0.0, cfg.PatchLineWidth)
	assert.Equal(t, palette.Brand1, cfg.Cycle)
	assert.Equal(t, palette.BrandBlue, cfg.Colormap)
	assert.Equal(t, 8.0, cfg.FigureWidth)
	assert.Equal(t, 4.5, cfg.FigureHeight)
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		fontSize  float64
		lineWidth float64
		bg        Background
		wantErr   error
	}{
		{"zero font", 0, 1.4, Standard, ErrInvalidFontSize},
		{"negative font", -3, 1.4, Standard, ErrInvalidFontSize},
		{"zero line width", 14, 0, Standard, ErrInvalidLineWidth},
		{"unknown background", 14, 1.4, Background("dark"), lookup.ErrUnknownKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.fontSize, tt.lineWidth, tt.bg)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestParseBackground(t *testing.T) {
	bg, err := ParseBackground("web")
	require.NoError(t, err)
	assert.Equal(t, Web, bg)

	_, err = ParseBackground("sepia")
	var keyErr *lookup.UnknownKeyError
	require.ErrorAs(t, err, &keyErr)
	assert.Contains(t, err.Error(), `"standard"`)
	assert.Contains(t, err.Error(), `"web"`)

	assert.Equal(t, Web, BackgroundFor(true))
	assert.Equal(t, Standard, BackgroundFor(false))
}

func TestWithers_DoNotMutate(t *testing.T) {
	base := Default()
	other := base.WithCycle(palette.Categorical).WithFigureSize(3.25, 2)

	assert.Equal(t, palette.Brand1, base.Cycle)
	assert.Equal(t, palette.Categorical, other.Cycle)
	assert.Equal(t, 3.25, other.FigureWidth)
	assert.Equal(t, 8.0, base.FigureWidth)
	assert.Equal(t, palette.Categorical, other.CyclePalette().Name())
	assert.Equal(t, palette.BrandBlue, base.DefaultColormap().Name())
}

func TestChartPalette(t *testing.T) {
	cfg, err := New(14, 1.4, Web)
	require.NoError(t, err)
	cycle := cfg.CyclePalette()
	cp := cfg.ChartPalette(cycle)

	web := colors.MustParseHex("#FAFAFA").Drawing()
	assert.Equal(t, web, cp.BackgroundColor())
	assert.Equal(t, web, cp.CanvasColor())
	assert.Equal(t, colors.Black.Drawing(), cp.TextColor())
	for i := 0; i < cycle.Len()*2; i++ {
		assert.Equal(t, cycle.At(i).Drawing(), cp.GetSeriesColor(i))
	}
}

func TestAxes(t *testing.T) {
	cfg := Default()

	y := cfg.YAxis("", 72)
	assert.Equal(t, drawing.ColorTransparent, y.Style.StrokeColor, "y spine hidden")
	assert.Equal(t, drawing.ColorTransparent, y.TickStyle.StrokeColor, "y ticks hidden")
	assert.False(t, y.GridMajorStyle.Hidden)
	assert.Equal(t, cfg.Grid.Color.Drawing(), y.GridMajorStyle.StrokeColor)
	assert.InDelta(t, 0.8, y.GridMajorStyle.StrokeWidth, 1e-9)
	assert.Equal(t, []float64{0.8, 3.2}, y.GridMajorStyle.StrokeDashArray)

	x := cfg.XAxis("", 72)
	assert.Equal(t, colors.Black.Drawing(), x.Style.StrokeColor, "bottom spine shown")
	assert.True(t, x.GridMajorStyle.Hidden)
	assert.True(t, x.GridMinorStyle.Hidden)
	assert.Equal(t, cfg.TickLabelSize, x.Style.FontSize)
}

func TestSeriesStyle(t *testing.T) {
	cfg := Default()
	cycle := palette.MustLookup(palette.Brand1)

	s := cfg.SeriesStyle(3, cycle, 144)
	assert.Equal(t, cycle.At(0).Drawing(), s.StrokeColor)
	assert.InDelta(t, 2.8, s.StrokeWidth, 1e-9)
}

func TestPointsToPixels(t *testing.T) {
	assert.Equal(t, 1.0, PointsToPixels(1, 72))
	assert.InDelta(t, 5.0, PointsToPixels(1.2, 300), 1e-9)
}
