package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextColor(t *testing.T) {
	tests := []struct {
		background string
		expected   string
	}{
		{"#FFFFFF", "#000000"},
		{"#000000", "#FFFFFF"},
		{"#003A79", "#FFFFFF"}, // brand blue
		{"#FF9E1B", "#000000"}, // brand orange
		{"#8AC6FF", "#000000"},
		{"#CD1A1C", "#FFFFFF"},
		{"#FFDD00", "#000000"},
		{"#2599adff", "#000000"},
		{"#00649fff", "#FFFFFF"},
	}

	for _, tt := range tests {
		t.Run(tt.background, func(t *testing.T) {
			got, err := TextColor(tt.background)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTextColor_Malformed(t *testing.T) {
	for _, input := range []string{"FFFFFF", "#FFF", "#12345", "#zzzzzz"} {
		t.Run(input, func(t *testing.T) {
			_, err := TextColor(input)
			assert.ErrorIs(t, err, ErrInvalidHex)
		})
	}
}

func TestLuminance(t *testing.T) {
	assert.InDelta(t, 1.0, White.Luminance(), 1e-9)
	assert.InDelta(t, 0.0, Black.Luminance(), 1e-9)

	// 0x80 sits above the linear segment of the sRGB curve
	gray := Color{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}
	assert.InDelta(t, 0.2159, gray.Luminance(), 1e-4)

	// very dark channels use the linear segment
	dark := Color{R: 10, G: 10, B: 10, A: 0xFF}
	assert.InDelta(t, (10.0/255.0)/12.92, dark.Luminance(), 1e-9)
}

func TestTextColor_Threshold(t *testing.T) {
	// 0x75 gray has luminance ~0.178, 0x76 ~0.181
	below := Color{R: 0x75, G: 0x75, B: 0x75, A: 0xFF}
	above := Color{R: 0x76, G: 0x76, B: 0x76, A: 0xFF}
	assert.Less(t, below.Luminance(), LuminanceThreshold)
	assert.Greater(t, above.Luminance(), LuminanceThreshold)
	assert.Equal(t, White, below.TextColor())
	assert.Equal(t, Black, above.TextColor())
}

func TestContrastRatio(t *testing.T) {
	assert.InDelta(t, 21.0, ContrastRatio(Black, White), 1e-9)
	assert.InDelta(t, 21.0, ContrastRatio(White, Black), 1e-9)
	assert.InDelta(t, 1.0, ContrastRatio(White, White), 1e-9)
}
