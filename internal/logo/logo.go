// Package logo resolves bundled institutional logos and computes where they
// sit on a figure.
package logo

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoding for custom logo files
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/renato0307/brookplot/internal/lookup"
)

// ErrInvalidScale is returned when a logo width is not positive
var ErrInvalidScale = errors.New("logo scale must be greater than zero")

var codes = lookup.NewTable("logo",
	lookup.Entry[string]{Key: "bc", Value: "Brown Center"},
	lookup.Entry[string]{Key: "bi", Value: "Bass Initiative on Innovation and Placemaking"},
	lookup.Entry[string]{Key: "brookings", Value: "Brookings Institution"},
	lookup.Entry[string]{Key: "cc", Value: "China Center"},
	lookup.Entry[string]{Key: "ccf", Value: "Center on Children and Families"},
	lookup.Entry[string]{Key: "ceaps", Value: "Center for East Asia Policy Studies"},
	lookup.Entry[string]{Key: "cepm", Value: "Center for Effective Policy Management"},
	lookup.Entry[string]{Key: "chp", Value: "Center for Health Policy"},
	lookup.Entry[string]{Key: "cmep", Value: "Center for Middle Eastern Policy"},
	lookup.Entry[string]{Key: "crm", Value: "Center on Regulation and Markets"},
	lookup.Entry[string]{Key: "csd", Value: "Center for Sustainable Development"},
	lookup.Entry[string]{Key: "cti", Value: "Center for Technology Innovation"},
	lookup.Entry[string]{Key: "cue", Value: "Center for Universal Education"},
	lookup.Entry[string]{Key: "cuse", Value: "Center on United States and Europe"},
	lookup.Entry[string]{Key: "es", Value: "Economic Studies"},
	lookup.Entry[string]{Key: "fp", Value: "Foreign Policy"},
	lookup.Entry[string]{Key: "global", Value: "Global Studies"},
	lookup.Entry[string]{Key: "gs", Value: "Governance Studies"},
	lookup.Entry[string]{Key: "hc", Value: "Hutchins Center"},
	lookup.Entry[string]{Key: "metro", Value: "Metropolitan Policy Studies"},
	lookup.Entry[string]{Key: "thp", Value: "The Hamilton Project"},
)

// Codes returns the supported logo codes in alphabetical order
func Codes() []string {
	return codes.Keys()
}

// Describe returns the program a logo code belongs to
func Describe(code string) (string, bool) {
	d, err := codes.Get(code)
	if err != nil {
		return "", false
	}
	return d, true
}

// IsCode reports whether s is a supported logo code
func IsCode(s string) bool {
	return codes.Has(s)
}

// MissingLogoError is returned when a logo file cannot be found
type MissingLogoError struct {
	Path  string
	Codes []string
}

func (e *MissingLogoError) Error() string {
	quoted := make([]string, len(e.Codes))
	for i, c := range e.Codes {
		quoted[i] = fmt.Sprintf("%q", c)
	}
	return fmt.Sprintf("no such file or directory: %q. Check your path or try one of the following: %s",
		e.Path, strings.Join(quoted, ", "))
}

// Is lets errors.Is(err, os.ErrNotExist) match a missing logo
func (e *MissingLogoError) Is(target error) bool {
	return target == os.ErrNotExist
}

// Resolver maps logo codes to files of a bundle
type Resolver struct {
	// BundleDir is the directory holding the logos/ folder
	BundleDir string
}

// Path returns where a code's file lives inside the bundle, without
// checking that it exists
func (r Resolver) Path(code string) string {
	return filepath.Join(r.BundleDir, "logos", code+".png")
}

// Resolve turns a logo code or file path into an existing file path.
// Known codes resolve inside the bundle; anything else is used as given.
func (r Resolver) Resolve(idOrPath string) (string, error) {
	path := idOrPath
	if IsCode(idOrPath) {
		path = r.Path(idOrPath)
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", &MissingLogoError{Path: path, Codes: Codes()}
	}
	return path, nil
}

// Load decodes a PNG or JPEG image
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &MissingLogoError{Path: path, Codes: Codes()}
		}
		return nil, fmt.Errorf("failed to open logo: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode logo %s: %w", path, err)
	}
	return img, nil
}
