package palette

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/brookplot/internal/colors"
	"github.com/renato0307/brookplot/internal/lookup"
)

func TestRegistry_AllColorsValid(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			p, err := Lookup(name, false)
			require.NoError(t, err)
			assert.Greater(t, p.Len(), 0)
			for _, h := range p.Hex() {
				_, err := colors.ParseHex(h)
				assert.NoError(t, err, "color %s in %s", h, name)
			}
		})
	}
}

func TestRegistry_Sizes(t *testing.T) {
	for _, p := range ByKind(KindCore) {
		assert.GreaterOrEqual(t, p.Len(), 2, p.Name())
		assert.LessOrEqual(t, p.Len(), 7, p.Name())
		assert.Equal(t, KindCore, p.Kind())
	}
	for _, p := range ByKind(KindExtended) {
		assert.Equal(t, 9, p.Len(), p.Name())
		assert.Equal(t, KindExtended, p.Kind())
		assert.Equal(t, PurposeRamp, p.Purpose())
	}
	assert.Len(t, CoreNames(), 20)
	assert.Len(t, ExtendedNames(), 9)
}

func TestRegistry_DisjointNames(t *testing.T) {
	for _, n := range ExtendedNames() {
		assert.NotContains(t, CoreNames(), n)
	}
	names := Names()
	unique := slices.Compact(slices.Sorted(slices.Values(names)))
	assert.Len(t, unique, len(names))
}

func TestLookup_Reverse(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			fwd, err := Lookup(name, false)
			require.NoError(t, err)
			rev, err := Lookup(name, true)
			require.NoError(t, err)

			want := fwd.Hex()
			slices.Reverse(want)
			assert.Equal(t, want, rev.Hex())
		})
	}
}

func TestLookup_ReverseDoesNotMutate(t *testing.T) {
	before := MustLookup(Brand1).Hex()
	_, err := Lookup(string(Brand1), true)
	require.NoError(t, err)
	assert.Equal(t, before, MustLookup(Brand1).Hex())

	hex := MustLookup(Brand1).Hex()
	hex[0] = "#000000"
	assert.Equal(t, BrandBlueHex, MustLookup(Brand1).Hex()[0])
}

func TestLookup_Unknown(t *testing.T) {
	for _, name := range []string{"brand3", "Brand1", "", "navy"} {
		t.Run(name, func(t *testing.T) {
			_, err := Lookup(name, false)
			require.Error(t, err)
			assert.True(t, errors.Is(err, lookup.ErrUnknownKey))

			var upe *UnknownPaletteError
			require.True(t, errors.As(err, &upe))
			assert.Equal(t, name, upe.Key)

			for _, valid := range Names() {
				assert.Contains(t, err.Error(), valid)
			}
		})
	}
}

func TestLookupCore_RejectsExtended(t *testing.T) {
	_, err := LookupCore(string(Teal), false)
	require.Error(t, err)
	for _, valid := range CoreNames() {
		assert.Contains(t, err.Error(), valid)
	}

	p, err := LookupExtended(string(Teal), false)
	require.NoError(t, err)
	assert.Equal(t, Teal, p.Name())

	_, err = LookupExtended(string(Brand1), false)
	assert.ErrorIs(t, err, lookup.ErrUnknownKey)
}

func TestLookup_Suggestions(t *testing.T) {
	_, err := Lookup("brnd1", false)
	var upe *UnknownPaletteError
	require.True(t, errors.As(err, &upe))
	assert.Contains(t, upe.Suggestions, "brand1")
}

func TestParseName(t *testing.T) {
	n, err := ParseName("vivid blue")
	require.NoError(t, err)
	assert.Equal(t, VividBlue, n)

	_, err = ParseName("vivid_blue")
	assert.ErrorIs(t, err, lookup.ErrUnknownKey)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("extended")
	require.NoError(t, err)
	assert.Equal(t, KindExtended, k)

	_, err = ParseKind("ramp")
	assert.ErrorIs(t, err, lookup.ErrUnknownKey)
}

func TestPalette_At(t *testing.T) {
	p := MustLookup(Brand1)
	assert.Equal(t, "#003A79", p.At(0).Hex())
	assert.Equal(t, "#FF9E1B", p.At(2).Hex())
	assert.Equal(t, "#003A79", p.At(3).Hex(), "cycles")
	assert.Equal(t, "#FF9E1B", p.At(-1).Hex(), "negative index wraps")
}

func TestAdvisory(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"pos_neg1", true},
		{"pos_neg2", true},
		{"brand1", false},
		{"semantic1", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, ok := Advisory(tt.name)
			assert.Equal(t, tt.want, ok)
			if ok {
				assert.Contains(t, msg, "red-green")
			}
		})
	}

	_, ok := MustLookup(PosNeg2).Advisory()
	assert.True(t, ok)
}

func TestAll(t *testing.T) {
	all := All()
	require.Len(t, all, len(Names()))
	assert.Equal(t, Brand1, all[0].Name())
	assert.Equal(t, Purple, all[len(all)-1].Name())
}
