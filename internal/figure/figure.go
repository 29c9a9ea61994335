// Package figure is the handle every styling operation works on.
//
// A Figure owns one chart: its theme, series palette, titles, footnotes and
// logos. Figures are independent of each other and not safe for concurrent
// use.
package figure

import (
	"errors"
	"fmt"
	"image"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/renato0307/brookplot/internal/annotate"
	"github.com/renato0307/brookplot/internal/fonts"
	"github.com/renato0307/brookplot/internal/logging"
	"github.com/renato0307/brookplot/internal/logo"
	"github.com/renato0307/brookplot/internal/palette"
	"github.com/renato0307/brookplot/internal/theme"
)

var (
	// ErrInvalidSize is returned for a non-positive width or height
	ErrInvalidSize = errors.New("figure width and height must be greater than zero")
	// ErrInvalidDPI is returned for a non-positive resolution
	ErrInvalidDPI = errors.New("DPI must be greater than zero")
	// ErrNoSeries is returned when rendering a figure without data
	ErrNoSeries = errors.New("figure has no series to draw")
)

// Warning is a non-fatal notice recorded on a figure
type Warning struct {
	Palette palette.Name
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Palette, w.Message)
}

// placedLogo is a decoded logo and the area it occupies
type placedLogo struct {
	path string
	img  image.Image
	rect logo.Rect
}

// line is a series added with AddLine
type line struct {
	name   string
	xs, ys []float64
}

// Figure is one chart being built
type Figure struct {
	cfg    theme.Config
	size   Size
	dpi    float64
	cycle  palette.Palette
	family *fonts.Family
	logos  logo.Resolver
	logger *logging.Logger

	lines        []line
	series       []chart.Series
	xName, yName string

	titles    []annotate.Text
	notes     []string
	notesOpts annotate.NotesOptions
	placed    []placedLogo

	warnings []Warning
}

// Option customizes a new Figure
type Option func(*Figure)

// WithSize sets the figure size in inches
func WithSize(s Size) Option {
	return func(f *Figure) { f.size = s }
}

// WithDPI sets the resolution used when Save or Render get no DPI
func WithDPI(dpi float64) Option {
	return func(f *Figure) { f.dpi = dpi }
}

// WithFonts sets the font family used for all text
func WithFonts(family *fonts.Family) Option {
	return func(f *Figure) { f.family = family }
}

// WithLogoResolver sets where logo codes are looked up
func WithLogoResolver(r logo.Resolver) Option {
	return func(f *Figure) { f.logos = r }
}

// WithLogger sets the logger used for warnings and timing
func WithLogger(l *logging.Logger) Option {
	return func(f *Figure) { f.logger = l }
}

// New creates a figure styled by cfg. The size defaults to the theme's
// figure size and the series palette to the theme's cycle.
func New(cfg theme.Config, opts ...Option) (*Figure, error) {
	f := &Figure{
		cfg:  cfg,
		size: Size{Width: cfg.FigureWidth, Height: cfg.FigureHeight},
		dpi:  DefaultDPI,
	}
	for _, opt := range opts {
		opt(f)
	}

	if !(f.size.Width > 0) || !(f.size.Height > 0) {
		return nil, fmt.Errorf("%w: got %vx%v", ErrInvalidSize, f.size.Width, f.size.Height)
	}
	if !(f.dpi > 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidDPI, f.dpi)
	}
	if f.logger == nil {
		f.logger = logging.Get().Component("figure")
	}
	if f.family == nil {
		family, err := fonts.Default()
		if err != nil {
			return nil, err
		}
		f.family = family
	}

	cycle, err := palette.LookupCore(string(cfg.Cycle), false)
	if err != nil {
		return nil, fmt.Errorf("invalid theme cycle: %w", err)
	}
	f.cycle = cycle
	return f, nil
}

// Theme returns the configuration the figure was created with
func (f *Figure) Theme() theme.Config { return f.cfg }

// Size returns the figure size in inches
func (f *Figure) Size() Size { return f.size }

// DPI returns the figure's default resolution
func (f *Figure) DPI() float64 { return f.dpi }

// Palette returns the palette series colors cycle through
func (f *Figure) Palette() palette.Palette { return f.cycle }

// SetPalette makes the named core palette the series color cycle.
// Red/green palettes are accepted with a color-blindness warning.
func (f *Figure) SetPalette(name string, reverse bool) error {
	p, err := palette.LookupCore(name, reverse)
	if err != nil {
		return err
	}
	f.cycle = p

	if msg, ok := p.Advisory(); ok {
		w := Warning{Palette: p.Name(), Message: msg}
		f.warnings = append(f.warnings, w)
		f.logger.Warn("palette advisory", "palette", string(p.Name()), "advisory", msg)
	}
	return nil
}

// Warnings returns the warnings recorded so far
func (f *Figure) Warnings() []Warning {
	return append([]Warning(nil), f.warnings...)
}

// SetAxisNames sets the x and y axis labels
func (f *Figure) SetAxisNames(x, y string) {
	f.xName, f.yName = x, y
}

// AddSeries adds go-chart series drawn with their own style
func (f *Figure) AddSeries(series ...chart.Series) {
	f.series = append(f.series, series...)
}

// AddLine adds a line series colored by the figure's palette. The i-th line
// takes the i-th palette color, wrapping around.
func (f *Figure) AddLine(name string, xs, ys []float64) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("line %q: %d x values but %d y values", name, len(xs), len(ys))
	}
	f.lines = append(f.lines, line{name: name, xs: xs, ys: ys})
	return nil
}

// chartSeries returns the lines styled for the given DPI followed by the
// series added with AddSeries
func (f *Figure) chartSeries(dpi float64) []chart.Series {
	out := make([]chart.Series, 0, len(f.lines)+len(f.series))
	for i, l := range f.lines {
		out = append(out, chart.ContinuousSeries{
			Name:    l.name,
			Style:   f.cfg.SeriesStyle(i, f.cycle, dpi),
			XValues: l.xs,
			YValues: l.ys,
		})
	}
	return append(out, f.series...)
}

// AddTitles places a subtitle, title and tag at the top of the figure
func (f *Figure) AddTitles(opts annotate.TitleOptions) {
	f.titles = annotate.Titles(f.cfg.FontSize, opts)
}

// AddNotes adds footnotes below the plot. The options of the latest call
// apply to all footnotes.
func (f *Figure) AddNotes(opts annotate.NotesOptions, notes ...string) {
	f.notesOpts = opts
	f.notes = append(f.notes, notes...)
}

// AddSource adds a "Source:" footnote
func (f *Figure) AddSource(text string) {
	f.notes = append(f.notes, annotate.SourceNote(text))
}

// AddNote adds a "Note:" footnote
func (f *Figure) AddNote(text string) {
	f.notes = append(f.notes, annotate.NotesNote(text))
}

// Texts returns every text item the figure will draw
func (f *Figure) Texts() []annotate.Text {
	out := append([]annotate.Text(nil), f.titles...)
	return append(out, annotate.Notes(f.cfg.FontSize, f.notesOpts, f.notes...)...)
}

// AddLogo places a bundled logo (by code) or an image file at the bottom
// right of the figure, moved by (dx, dy) figure fractions, scale wide.
func (f *Figure) AddLogo(idOrPath string, dx, dy, scale float64) error {
	rect, err := logo.Placement(dx, dy, scale, f.cfg.FontSize)
	if err != nil {
		return err
	}
	path, err := f.logos.Resolve(idOrPath)
	if err != nil {
		return err
	}
	img, err := logo.Load(path)
	if err != nil {
		return err
	}
	f.placed = append(f.placed, placedLogo{path: path, img: img, rect: rect})
	f.logger.Debug("logo added", "path", path)
	return nil
}

// LogoRects returns the areas of the logos added so far
func (f *Figure) LogoRects() []logo.Rect {
	out := make([]logo.Rect, len(f.placed))
	for i, p := range f.placed {
		out[i] = p.rect
	}
	return out
}
