package logo

import (
	"fmt"
	"image"
)

const (
	// DefaultScale is the logo width as a fraction of the figure width
	DefaultScale = 0.25

	originX = 0.65
	originY = -0.12
	// fontDrop lowers the logo by this much per point of font size
	fontDrop = 0.006
	height   = 0.2
)

// Rect is an area in figure fractions, origin bottom-left
type Rect struct {
	Left, Bottom, Width, Height float64
}

// Top returns the upper edge of the rect
func (r Rect) Top() float64 { return r.Bottom + r.Height }

// Placement returns the inset a logo occupies: bottom right of the figure,
// below the plot area, moved by (dx, dy) and lowered as the font grows.
func Placement(dx, dy, scale, fontSize float64) (Rect, error) {
	if !(scale > 0) {
		return Rect{}, fmt.Errorf("%w: got %v", ErrInvalidScale, scale)
	}
	return Rect{
		Left:   originX + dx,
		Bottom: originY + dy - fontSize*fontDrop,
		Width:  scale,
		Height: height,
	}, nil
}

// Fit returns the largest rectangle with the image's aspect ratio centered
// inside bounds.
func Fit(img image.Rectangle, bounds image.Rectangle) image.Rectangle {
	iw, ih := img.Dx(), img.Dy()
	bw, bh := bounds.Dx(), bounds.Dy()
	if iw <= 0 || ih <= 0 || bw <= 0 || bh <= 0 {
		return image.Rectangle{Min: bounds.Min, Max: bounds.Min}
	}

	w, h := bw, bw*ih/iw
	if h > bh {
		w, h = bh*iw/ih, bh
	}
	x := bounds.Min.X + (bw-w)/2
	y := bounds.Min.Y + (bh-h)/2
	return image.Rect(x, y, x+w, y+h)
}
