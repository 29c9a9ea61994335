// Package export writes the palette registries to files other tools can
// read: a YAML document for code and a colored XLSX workbook for people.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/renato0307/brookplot/internal/logging"
	"github.com/renato0307/brookplot/internal/lookup"
	"github.com/renato0307/brookplot/internal/palette"
)

// Format is an export file format
type Format string

const (
	FormatYAML Format = "yaml"
	FormatXLSX Format = "xlsx"
)

type writer func(io.Writer, []palette.Palette) error

var writers = lookup.NewTable("export format",
	lookup.Entry[writer]{Key: string(FormatYAML), Value: YAML},
	lookup.Entry[writer]{Key: string(FormatXLSX), Value: XLSX},
)

// FormatNames returns the supported formats
func FormatNames() []string { return writers.Keys() }

// ParseFormat validates a format name. "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(s)
	if s == "yml" {
		s = string(FormatYAML)
	}
	if _, err := writers.Get(s); err != nil {
		return "", err
	}
	return Format(s), nil
}

// FormatForPath picks the format from a file extension
func FormatForPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Write exports palettes in the given format
func Write(w io.Writer, format Format, palettes []palette.Palette) error {
	fn, err := writers.Get(string(format))
	if err != nil {
		return err
	}
	return fn(w, palettes)
}

// Save exports every palette to path. An empty format is taken from the
// file extension.
func Save(path string, format Format) (err error) {
	if format == "" {
		if format, err = FormatForPath(path); err != nil {
			return err
		}
	}
	if _, err := writers.Get(string(format)); err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	all := palette.All()
	if err := Write(out, format, all); err != nil {
		return err
	}
	logging.Info("palettes exported", "path", path, "format", string(format), "count", len(all))
	return nil
}
