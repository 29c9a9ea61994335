package figure

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	xdraw "golang.org/x/image/draw"

	"github.com/renato0307/brookplot/internal/annotate"
	"github.com/renato0307/brookplot/internal/logging"
	"github.com/renato0307/brookplot/internal/logo"
	"github.com/renato0307/brookplot/internal/lookup"
	"github.com/renato0307/brookplot/internal/theme"
)

// ErrLogoNeedsRaster is returned when saving a figure with logos as SVG
var ErrLogoNeedsRaster = errors.New("logos can only be drawn into PNG output")

// Format is an output image format
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

var formats = lookup.NewTable("image format",
	lookup.Entry[chart.RendererProvider]{Key: string(FormatPNG), Value: chart.PNG},
	lookup.Entry[chart.RendererProvider]{Key: string(FormatSVG), Value: chart.SVG},
)

// ParseFormat validates an output format name
func ParseFormat(s string) (Format, error) {
	if _, err := formats.Get(strings.ToLower(s)); err != nil {
		return "", err
	}
	return Format(strings.ToLower(s)), nil
}

// FormatForPath picks the output format from a file extension
func FormatForPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Plot area inside the figure, in figure fractions, before titles and
// legend claim their space.
const (
	plotLeft   = 0.125
	plotRight  = 0.9
	plotBottom = 0.11
	plotTop    = 0.88
	// titleGap separates the lowest title line from the plot area
	titleGap = 0.03
	// lineSpacing is the line height as a multiple of the font size
	lineSpacing = 1.2
	// edgeMargin keeps text off the image border, in pixels
	edgeMargin = 6
)

// frame maps figure fractions to pixels. Text and logos placed outside
// [0,1] grow the image by top and bottom pixels.
type frame struct {
	width, height int
	top, bottom   int
	dpi           float64
	// escape text for SVG output, which go-chart writes verbatim
	escape bool
}

func (fr frame) text(s string) string {
	if fr.escape {
		return html.EscapeString(s)
	}
	return s
}

func (fr frame) x(fx float64) int {
	return int(math.Round(fx * float64(fr.width)))
}

func (fr frame) y(fy float64) int {
	return fr.top + int(math.Round((1-fy)*float64(fr.height)))
}

func (fr frame) totalHeight() int {
	return fr.top + fr.height + fr.bottom
}

func (fr frame) lineHeight(size float64) float64 {
	return theme.PointsToPixels(size, fr.dpi) * lineSpacing
}

// textExtent returns the pixel rows a text item covers relative to the
// unextended figure
func (fr frame) textExtent(t annotate.Text) (top, bottom float64) {
	y0 := (1 - t.Y) * float64(fr.height)
	block := float64(t.Lines()) * fr.lineHeight(t.Size)
	if t.Anchor == annotate.Top {
		return y0, y0 + block
	}
	return y0 - block, y0 + 0.3*fr.lineHeight(t.Size)
}

func (f *Figure) frame(dpi float64, texts []annotate.Text) frame {
	fr := frame{
		width:  int(math.Round(f.size.Width * dpi)),
		height: int(math.Round(f.size.Height * dpi)),
		dpi:    dpi,
	}

	minTop, maxBottom := 0.0, float64(fr.height)
	for _, t := range texts {
		top, bottom := fr.textExtent(t)
		minTop = math.Min(minTop, top)
		maxBottom = math.Max(maxBottom, bottom)
	}
	for _, p := range f.placed {
		minTop = math.Min(minTop, (1-p.rect.Top())*float64(fr.height))
		maxBottom = math.Max(maxBottom, (1-p.rect.Bottom)*float64(fr.height))
	}
	if minTop < 0 {
		fr.top = int(math.Ceil(-minTop)) + edgeMargin
	}
	if maxBottom > float64(fr.height) {
		fr.bottom = int(math.Ceil(maxBottom-float64(fr.height))) + edgeMargin
	}
	return fr
}

// plotTopFor lowers the top of the plot area below the titles
func (f *Figure) plotTopFor() float64 {
	top := plotTop
	for _, t := range f.titles {
		top = math.Min(top, t.Y-titleGap)
	}
	return top
}

func (f *Figure) legendEntries(series []chart.Series) []chart.Series {
	var named []chart.Series
	for _, s := range series {
		if s.GetName() != "" && !s.GetStyle().Hidden {
			named = append(named, s)
		}
	}
	return named
}

func (f *Figure) buildChart(fr frame) chart.Chart {
	series := f.chartSeries(fr.dpi)
	legend := f.legendEntries(series)

	padTop := fr.top + int(math.Round((1-f.plotTopFor())*float64(fr.height)))
	if len(legend) > 0 {
		padTop += int(math.Ceil(1.5 * fr.lineHeight(f.cfg.FontSize)))
	}

	bg := f.cfg.BackgroundStyle()
	bg.Padding = chart.Box{
		Top:    padTop,
		Left:   fr.x(plotLeft),
		Right:  fr.width - fr.x(plotRight),
		Bottom: fr.bottom + int(math.Round(plotBottom*float64(fr.height))),
		IsSet:  true,
	}

	c := chart.Chart{
		Width:        fr.width,
		Height:       fr.totalHeight(),
		DPI:          fr.dpi,
		Font:         f.family.Regular,
		ColorPalette: f.cfg.ChartPalette(f.cycle),
		Background:   bg,
		Canvas:       f.cfg.CanvasStyle(),
		XAxis:        f.cfg.XAxis(f.xName, fr.dpi),
		YAxis:        f.cfg.YAxis(f.yName, fr.dpi),
		Series:       series,
		Log:          chartLogger{l: f.logger},
	}
	if len(legend) > 0 {
		c.Elements = append(c.Elements, f.drawLegend(legend, fr))
	}
	c.Elements = append(c.Elements, f.drawTexts(f.Texts(), fr))
	return c
}

// drawTexts renders titles and footnotes in figure coordinates
func (f *Figure) drawTexts(texts []annotate.Text, fr frame) chart.Renderable {
	return func(r chart.Renderer, _ chart.Box, _ chart.Style) {
		for _, t := range texts {
			r.SetFont(f.family.Face(t.Weight))
			r.SetFontSize(t.Size)
			r.SetFontColor(t.Color.Drawing())

			lines := strings.Split(t.Body, "\n")
			lh := fr.lineHeight(t.Size)
			x := fr.x(t.X)
			y := float64(fr.y(t.Y))
			if t.Anchor == annotate.Top {
				// first baseline sits one ascent below the anchor
				y += theme.PointsToPixels(t.Size, fr.dpi)
			} else {
				// baseline anchors the last line
				y -= float64(len(lines)-1) * lh
			}
			for i, l := range lines {
				r.Text(fr.text(l), x, int(math.Round(y+float64(i)*lh)))
			}
		}
	}
}

// drawLegend renders a frameless single-row legend centered above the plot
func (f *Figure) drawLegend(series []chart.Series, fr frame) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, _ chart.Style) {
		size := f.cfg.FontSize
		r.SetFont(f.family.Regular)
		r.SetFontSize(size)
		r.SetFontColor(f.cfg.TextColor.Drawing())

		em := theme.PointsToPixels(size, fr.dpi)
		handle := int(math.Round(f.cfg.Legend.HandleLength * em))
		gap := int(math.Round(0.4 * em))
		spacing := int(math.Round(1.5 * em))

		widths := make([]int, len(series))
		total := 0
		for i, s := range series {
			widths[i] = handle + gap + r.MeasureText(s.GetName()).Width()
			total += widths[i]
		}
		total += spacing * (len(series) - 1)

		x := canvasBox.Left + (canvasBox.Width()-total)/2
		y := canvasBox.Top - int(math.Round(0.5*em))
		for i, s := range series {
			style := s.GetStyle().InheritFrom(f.cfg.SeriesStyle(i, f.cycle, fr.dpi))
			r.SetStrokeColor(style.StrokeColor)
			r.SetStrokeWidth(style.StrokeWidth)
			r.SetStrokeDashArray(nil)
			mid := y - int(math.Round(0.35*em))
			r.MoveTo(x, mid)
			r.LineTo(x+handle, mid)
			r.Stroke()

			r.Text(fr.text(s.GetName()), x+handle+gap, y)
			x += widths[i] + spacing
		}
	}
}

// Render draws the figure in the given format. A dpi of 0 uses the
// figure's DPI.
func (f *Figure) Render(w io.Writer, format Format, dpi float64) error {
	if dpi == 0 {
		dpi = f.dpi
	}
	if !(dpi > 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidDPI, dpi)
	}
	provider, err := formats.Get(string(format))
	if err != nil {
		return err
	}
	if len(f.lines)+len(f.series) == 0 {
		return ErrNoSeries
	}
	if len(f.placed) > 0 && format != FormatPNG {
		return ErrLogoNeedsRaster
	}

	ctx := logging.Start("render figure", "format", string(format), "dpi", dpi)
	defer logging.End(ctx)

	fr := f.frame(dpi, f.Texts())
	fr.escape = format == FormatSVG
	c := f.buildChart(fr)

	if len(f.placed) == 0 {
		if err := c.Render(provider, w); err != nil {
			return fmt.Errorf("failed to render chart: %w", err)
		}
		return nil
	}

	var buf bytes.Buffer
	if err := c.Render(provider, &buf); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	img, err := f.compositeLogos(&buf, fr)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// compositeLogos draws each logo fitted inside its placement rect
func (f *Figure) compositeLogos(rendered io.Reader, fr frame) (*image.RGBA, error) {
	base, err := png.Decode(rendered)
	if err != nil {
		return nil, fmt.Errorf("failed to decode rendered chart: %w", err)
	}
	dst := image.NewRGBA(base.Bounds())
	xdraw.Draw(dst, dst.Bounds(), base, base.Bounds().Min, xdraw.Src)

	for _, p := range f.placed {
		area := image.Rect(
			fr.x(p.rect.Left), fr.y(p.rect.Top()),
			fr.x(p.rect.Left+p.rect.Width), fr.y(p.rect.Bottom),
		)
		target := logo.Fit(p.img.Bounds(), area)
		xdraw.CatmullRom.Scale(dst, target, p.img, p.img.Bounds(), xdraw.Over, nil)
	}
	return dst, nil
}

// Save writes the figure to path, choosing PNG or SVG by extension.
// A dpi of 0 uses the figure's DPI. The file is only written once the
// figure rendered without error.
func (f *Figure) Save(path string, dpi float64) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := f.Render(&buf, format, dpi); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	f.logger.Info("figure saved", "path", path, "format", string(format))
	return nil
}
