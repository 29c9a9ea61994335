package figure

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/brookplot/internal/annotate"
	"github.com/renato0307/brookplot/internal/logo"
	"github.com/renato0307/brookplot/internal/lookup"
	"github.com/renato0307/brookplot/internal/palette"
	"github.com/renato0307/brookplot/internal/theme"
)

func newFigure(t *testing.T, opts ...Option) *Figure {
	t.Helper()
	f, err := New(theme.Default(), opts...)
	require.NoError(t, err)
	return f
}

func addSampleLines(t *testing.T, f *Figure) {
	t.Helper()
	xs := []float64{2019, 2020, 2021, 2022, 2023}
	require.NoError(t, f.AddLine("Actual", xs, []float64{3.7, 8.1, 5.4, 3.6, 3.6}))
	require.NoError(t, f.AddLine("Forecast", xs, []float64{3.8, 7.5, 5.0, 3.9, 3.8}))
}

func writeLogo(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	img := image.NewRGBA(image.Rect(0, 0, 40, 10))
	for x := 0; x < 40; x++ {
		for y := 0; y < 10; y++ {
			img.Set(x, y, color.RGBA{R: 0xFF, A: 0xFF})
		}
	}
	out, err := os.Create(path)
	require.NoError(t, err)
	defer out.Close()
	require.NoError(t, png.Encode(out, img))
}

func TestPresets(t *testing.T) {
	tests := []struct {
		name string
		want Size
	}{
		{"small", Size{3.25, 2}},
		{"medium", Size{6.5, 4}},
		{"large", Size{9, 6.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSize(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseSize("huge")
	assert.ErrorIs(t, err, lookup.ErrUnknownKey)
	assert.Contains(t, err.Error(), `"medium"`)

	for name, want := range map[string]float64{"retina": 320, "print": 300, "screen": 72, "": 0} {
		got, err := ParseDPI(name)
		require.NoError(t, err)
		assert.Equal(t, want, got, name)
	}
	_, err = ParseDPI("poster")
	assert.ErrorIs(t, err, lookup.ErrUnknownKey)

	assert.Equal(t, []string{"small", "medium", "large"}, SizeNames())
	assert.Equal(t, []string{"retina", "print", "screen"}, DPINames())
}

func TestNew(t *testing.T) {
	f := newFigure(t)
	assert.Equal(t, Size{8, 4.5}, f.Size())
	assert.Equal(t, DefaultDPI, f.DPI())
	assert.Equal(t, palette.Brand1, f.Palette().Name())

	small := newFigure(t, WithSize(Size{3.25, 2}), WithDPI(300))
	assert.Equal(t, 3.25, small.Size().Width)
	assert.Equal(t, 300.0, small.DPI())

	_, err := New(theme.Default(), WithSize(Size{0, 2}))
	assert.ErrorIs(t, err, ErrInvalidSize)
	_, err = New(theme.Default(), WithDPI(-1))
	assert.ErrorIs(t, err, ErrInvalidDPI)
}

func TestSetPalette(t *testing.T) {
	f := newFigure(t)

	require.NoError(t, f.SetPalette("categorical", false))
	assert.Equal(t, palette.Categorical, f.Palette().Name())
	assert.Empty(t, f.Warnings())

	require.NoError(t, f.SetPalette("pos_neg1", false))
	warnings := f.Warnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, palette.PosNeg1, warnings[0].Palette)
	assert.Contains(t, strings.ToLower(warnings[0].Message), "color")

	err := f.SetPalette("brand blue", false)
	assert.ErrorIs(t, err, lookup.ErrUnknownKey, "extended ramps are not series palettes")
	assert.Equal(t, palette.PosNeg1, f.Palette().Name(), "failed selection keeps the previous palette")
}

func TestSetPalette_Reverse(t *testing.T) {
	f := newFigure(t)
	require.NoError(t, f.SetPalette("brand1", true))
	forward := palette.MustLookup(palette.Brand1).Hex()
	got := f.Palette().Hex()
	assert.Equal(t, forward[0], got[len(got)-1])
}

func TestFiguresAreIndependent(t *testing.T) {
	a := newFigure(t)
	b := newFigure(t)

	require.NoError(t, a.SetPalette("pos_neg2", false))
	a.AddTitles(annotate.TitleOptions{Title: "A"})

	assert.Equal(t, palette.Brand1, b.Palette().Name())
	assert.Empty(t, b.Warnings())
	assert.Empty(t, b.Texts())
}

func TestAddLine_Mismatch(t *testing.T) {
	f := newFigure(t)
	err := f.AddLine("bad", []float64{1, 2}, []float64{1})
	assert.Error(t, err)
}

func TestSeriesColorsFollowPalette(t *testing.T) {
	f := newFigure(t)
	addSampleLines(t, f)
	require.NoError(t, f.SetPalette("contrasting1", false))

	series := f.chartSeries(100)
	require.Len(t, series, 2)
	p := palette.MustLookup(palette.Contrasting1)
	assert.Equal(t, p.At(0).Drawing(), series[0].GetStyle().StrokeColor)
	assert.Equal(t, p.At(1).Drawing(), series[1].GetStyle().StrokeColor)
}

func TestTexts(t *testing.T) {
	f := newFigure(t)
	f.AddTitles(annotate.TitleOptions{Title: "Title", Subtitle: "Subtitle", Tag: "Figure 1"})
	f.AddSource("BLS")
	f.AddNote("Shaded areas are recessions")

	texts := f.Texts()
	// 3 titles + 2 notes with labels
	require.Len(t, texts, 7)
	assert.Equal(t, annotate.RoleSubtitle, texts[0].Role)
	assert.Equal(t, "Source:", texts[3].Body)
	assert.Equal(t, "Note:", texts[5].Body)
	assert.Greater(t, texts[3].Y, texts[5].Y)
}

func TestAddLogo(t *testing.T) {
	bundle := t.TempDir()
	writeLogo(t, filepath.Join(bundle, "logos", "brookings.png"))
	f := newFigure(t, WithLogoResolver(logo.Resolver{BundleDir: bundle}))

	require.NoError(t, f.AddLogo("brookings", 0, 0, logo.DefaultScale))
	rects := f.LogoRects()
	require.Len(t, rects, 1)
	assert.InDelta(t, 0.65, rects[0].Left, 1e-9)

	err := f.AddLogo("unknown-center", 0, 0, 0.25)
	var missing *logo.MissingLogoError
	require.ErrorAs(t, err, &missing)
	assert.Len(t, missing.Codes, 21)

	err = f.AddLogo("brookings", 0, 0, 0)
	assert.ErrorIs(t, err, logo.ErrInvalidScale)
	assert.Len(t, f.LogoRects(), 1)
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"chart.png", FormatPNG, false},
		{"out/Chart.PNG", FormatPNG, false},
		{"chart.svg", FormatSVG, false},
		{"chart.pdf", "", true},
		{"chart", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatForPath(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, lookup.ErrUnknownKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender_PNG(t *testing.T) {
	f := newFigure(t, WithSize(Size{3.25, 2}))
	addSampleLines(t, f)

	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf, FormatPNG, 100))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 325, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}

func TestRender_AnnotationsExtendCanvas(t *testing.T) {
	bundle := t.TempDir()
	writeLogo(t, filepath.Join(bundle, "logos", "gs.png"))

	f := newFigure(t, WithSize(Size{6.5, 4}), WithLogoResolver(logo.Resolver{BundleDir: bundle}))
	addSampleLines(t, f)
	f.AddTitles(annotate.TitleOptions{Title: "Unemployment", Subtitle: "Percent", Tag: "Figure 1"})
	f.AddSource("Bureau of Labor Statistics")
	f.AddNote("Annual averages")
	require.NoError(t, f.AddLogo("gs", 0, 0, 0.25))

	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf, FormatPNG, 0))
	img, err := png.Decode(&buf)
	require.NoError(t, err)

	assert.Equal(t, 650, img.Bounds().Dx())
	assert.Greater(t, img.Bounds().Dy(), 400, "footnotes and logo sit below the figure")

	fr := f.frame(100, f.Texts())
	rect := f.LogoRects()[0]
	cx := (fr.x(rect.Left) + fr.x(rect.Left+rect.Width)) / 2
	cy := (fr.y(rect.Top()) + fr.y(rect.Bottom)) / 2
	r, g, b, _ := img.At(cx, cy).RGBA()
	assert.Equal(t, uint32(0xFFFF), r, "logo composited at its placement")
	assert.Zero(t, g)
	assert.Zero(t, b)
}

func TestRender_SVG(t *testing.T) {
	f := newFigure(t)
	addSampleLines(t, f)
	f.AddTitles(annotate.TitleOptions{Title: "Wages", Subtitle: "R&D <share>"})

	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf, FormatSVG, 0))
	assert.Contains(t, buf.String(), "<svg")
	assert.Contains(t, buf.String(), "Wages")
	assert.Contains(t, buf.String(), "R&amp;D &lt;share&gt;")
}

func TestRender_Errors(t *testing.T) {
	f := newFigure(t)
	var buf bytes.Buffer
	assert.ErrorIs(t, f.Render(&buf, FormatPNG, 0), ErrNoSeries)

	addSampleLines(t, f)
	assert.ErrorIs(t, f.Render(&buf, FormatPNG, -5), ErrInvalidDPI)
	assert.ErrorIs(t, f.Render(&buf, Format("gif"), 0), lookup.ErrUnknownKey)

	bundle := t.TempDir()
	writeLogo(t, filepath.Join(bundle, "logos", "fp.png"))
	withLogo := newFigure(t, WithLogoResolver(logo.Resolver{BundleDir: bundle}))
	addSampleLines(t, withLogo)
	require.NoError(t, withLogo.AddLogo("fp", 0, 0, 0.25))
	assert.ErrorIs(t, withLogo.Render(&buf, FormatSVG, 0), ErrLogoNeedsRaster)
}

func TestSave(t *testing.T) {
	f := newFigure(t, WithSize(Size{3.25, 2}))
	addSampleLines(t, f)

	dir := t.TempDir()
	pngPath := filepath.Join(dir, "chart.png")
	require.NoError(t, f.Save(pngPath, 72))

	data, err := os.ReadFile(pngPath)
	require.NoError(t, err)
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 234, cfg.Width)
	assert.Equal(t, 144, cfg.Height)

	svgPath := filepath.Join(dir, "chart.svg")
	require.NoError(t, f.Save(svgPath, 0))
	data, err = os.ReadFile(svgPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(string(data)), "<svg"))

	assert.Error(t, f.Save(filepath.Join(dir, "chart.tiff"), 0))
}

func TestSave_FailureLeavesNoFile(t *testing.T) {
	dir := t.TempDir()

	empty := newFigure(t)
	noSeries := filepath.Join(dir, "empty.png")
	assert.ErrorIs(t, empty.Save(noSeries, 0), ErrNoSeries)
	assert.NoFileExists(t, noSeries)

	bundle := t.TempDir()
	writeLogo(t, filepath.Join(bundle, "logos", "fp.png"))
	withLogo := newFigure(t, WithLogoResolver(logo.Resolver{BundleDir: bundle}))
	addSampleLines(t, withLogo)
	require.NoError(t, withLogo.AddLogo("fp", 0, 0, 0.25))

	vector := filepath.Join(dir, "report.svg")
	assert.ErrorIs(t, withLogo.Save(vector, 0), ErrLogoNeedsRaster)
	assert.NoFileExists(t, vector)

	existing := filepath.Join(dir, "existing.svg")
	require.NoError(t, os.WriteFile(existing, []byte("<svg/>"), 0o644))
	assert.ErrorIs(t, withLogo.Save(existing, 0), ErrLogoNeedsRaster)
	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(data), "failed save keeps the previous file")

	assert.ErrorIs(t, withLogo.Save(filepath.Join(dir, "bad.png"), -1), ErrInvalidDPI)
	assert.NoFileExists(t, filepath.Join(dir, "bad.png"))
}
