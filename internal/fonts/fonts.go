// Package fonts loads the Roboto family used for figure text.
//
// Figures draw regular, bold and light text. LoadDir reads those faces from a
// directory of TrueType files; faces that are missing fall back to the
// regular face. Default uses the Roboto face embedded in go-chart, which
// has a single regular weight: without a font directory titles and tags
// are drawn at regular weight.
package fonts

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/renato0307/brookplot/internal/annotate"
	"github.com/renato0307/brookplot/internal/logging"
)

// ErrNoRegularFace is returned when a font directory has no regular face
var ErrNoRegularFace = errors.New("no regular Roboto face found")

// Family holds one font per text weight
type Family struct {
	Regular *truetype.Font
	Bold    *truetype.Font
	Light   *truetype.Font
	// Source is the directory the faces came from, empty for the embedded font
	Source string
}

// Face returns the font for a weight
func (f *Family) Face(w annotate.Weight) *truetype.Font {
	switch w {
	case annotate.Bold:
		return f.Bold
	case annotate.Light:
		return f.Light
	default:
		return f.Regular
	}
}

// faceFiles lists accepted file names per weight, most specific first
var faceFiles = map[annotate.Weight][]string{
	annotate.Regular: {"Roboto-Regular.ttf", "Roboto.ttf"},
	annotate.Bold:    {"Roboto-Bold.ttf"},
	annotate.Light:   {"Roboto-Light.ttf"},
}

var (
	mu    sync.Mutex
	cache = map[string]*Family{}
)

// Default returns the family built on go-chart's embedded Roboto. All
// three weights share the one embedded regular face.
func Default() (*Family, error) {
	mu.Lock()
	defer mu.Unlock()

	if f, ok := cache[""]; ok {
		return f, nil
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, fmt.Errorf("failed to load default font: %w", err)
	}
	f := &Family{Regular: font, Bold: font, Light: font}
	cache[""] = f
	return f, nil
}

// LoadDir parses the Roboto faces found in dir. Results are cached per
// directory. An empty dir returns Default.
func LoadDir(dir string) (*Family, error) {
	if dir == "" {
		return Default()
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve font dir: %w", err)
	}

	mu.Lock()
	if f, ok := cache[abs]; ok {
		mu.Unlock()
		return f, nil
	}
	mu.Unlock()

	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to read font dir: %w", err)
	}
	present := make(map[string]string, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			present[strings.ToLower(e.Name())] = filepath.Join(abs, e.Name())
		}
	}

	f := &Family{Source: abs}
	for _, w := range []annotate.Weight{annotate.Regular, annotate.Bold, annotate.Light} {
		font, err := parseFirst(present, faceFiles[w])
		if err != nil {
			return nil, err
		}
		switch w {
		case annotate.Regular:
			f.Regular = font
		case annotate.Bold:
			f.Bold = font
		case annotate.Light:
			f.Light = font
		}
	}
	if f.Regular == nil {
		return nil, fmt.Errorf("%w in %s", ErrNoRegularFace, abs)
	}
	if f.Bold == nil {
		f.Bold = f.Regular
	}
	if f.Light == nil {
		f.Light = f.Regular
	}
	logging.Debug("loaded font family", "dir", abs)

	mu.Lock()
	cache[abs] = f
	mu.Unlock()
	return f, nil
}

func parseFirst(present map[string]string, names []string) (*truetype.Font, error) {
	for _, name := range names {
		path, ok := present[strings.ToLower(name)]
		if !ok {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read font %s: %w", path, err)
		}
		font, err := truetype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse font %s: %w", path, err)
		}
		return font, nil
	}
	return nil, nil
}
