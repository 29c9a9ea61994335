package palette

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/brookplot/internal/colors"
	"github.com/renato0307/brookplot/internal/lookup"
)

func TestNewColormap(t *testing.T) {
	for _, name := range ColormapNames() {
		t.Run(name, func(t *testing.T) {
			cm, err := NewColormap(name, false)
			require.NoError(t, err)

			p, err := Lookup(name, false)
			require.NoError(t, err)
			stops := p.Colors()

			assert.Equal(t, stops[0], cm.At(0))
			assert.Equal(t, stops[len(stops)-1], cm.At(1))
		})
	}
}

func TestNewColormap_Reverse(t *testing.T) {
	cm, err := NewColormap(string(BrandBlue), true)
	require.NoError(t, err)
	assert.Equal(t, "#DDE5ED", cm.At(0).Hex())
	assert.Equal(t, "#022A4E", cm.At(1).Hex())
}

func TestNewColormap_RejectsNonColormap(t *testing.T) {
	_, err := NewColormap(string(Brand1), false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, lookup.ErrUnknownKey))
	assert.Contains(t, err.Error(), "Not all palettes are designed to be color maps")
	for _, n := range ColormapNames() {
		assert.Contains(t, err.Error(), n)
	}
}

func TestColormap_At(t *testing.T) {
	cm := ColormapFromColors([]colors.Color{colors.Black, colors.White})

	assert.Equal(t, colors.Black, cm.At(-1), "clamped below")
	assert.Equal(t, colors.White, cm.At(2), "clamped above")
	assert.Equal(t, uint8(128), cm.At(0.5).R)

	three := ColormapFromColors([]colors.Color{colors.Black, colors.White, colors.Black})
	assert.Equal(t, colors.White, three.At(0.5))
	assert.Equal(t, uint8(128), three.At(0.25).G)
}

func TestColormap_Sample(t *testing.T) {
	cm, err := NewColormap(string(Diverging), false)
	require.NoError(t, err)

	samples := cm.Sample(7)
	require.Len(t, samples, 7)
	assert.Equal(t, MustLookup(Diverging).Colors(), samples, "sampling at the stops returns the stops")

	assert.Nil(t, cm.Sample(0))
	assert.Len(t, cm.Sample(1), 1)
}

func TestColormap_SingleStop(t *testing.T) {
	cm := ColormapFromColors([]colors.Color{colors.White})
	assert.Equal(t, colors.White, cm.At(0.7))
	assert.Equal(t, colors.Color{}, ColormapFromColors(nil).At(0.5))
}
