package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/renato0307/brookplot/internal/lookup"
	"github.com/renato0307/brookplot/internal/palette"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"yaml", FormatYAML, false},
		{"YML", FormatYAML, false},
		{"xlsx", FormatXLSX, false},
		{"csv", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, lookup.ErrUnknownKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	got, err := FormatForPath("out/palettes.xlsx")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, got)
	assert.Equal(t, []string{"yaml", "xlsx"}, FormatNames())
}

func TestYAML_ListsEveryPalette(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, YAML(&buf, palette.All()))

	doc, err := ReadYAML(&buf)
	require.NoError(t, err)
	require.Len(t, doc.Palettes, len(palette.Names()))

	for i, name := range palette.Names() {
		e := doc.Palettes[i]
		p := palette.MustLookup(palette.Name(name))
		assert.Equal(t, name, e.Name)
		assert.Equal(t, string(p.Kind()), e.Kind)
		assert.Equal(t, p.Hex(), e.Colors)
	}
}

func TestYAML_Advisory(t *testing.T) {
	var buf bytes.Buffer
	palettes := []palette.Palette{
		palette.MustLookup(palette.PosNeg2),
		palette.MustLookup(palette.Brand1),
	}
	require.NoError(t, YAML(&buf, palettes))

	out := buf.String()
	assert.Contains(t, out, "name: pos_neg2")
	assert.Equal(t, 1, strings.Count(out, "advisory:"))

	doc, err := ReadYAML(strings.NewReader(out))
	require.NoError(t, err)
	assert.NotEmpty(t, doc.Palettes[0].Advisory)
	assert.Empty(t, doc.Palettes[1].Advisory)
	assert.Equal(t, "#003A79", doc.Palettes[1].Colors[0])
}

func TestXLSX_SheetPerRegistry(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, XLSX(&buf, palette.All()))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"core", "extended"}, f.GetSheetList())

	rows, err := f.GetRows("core")
	require.NoError(t, err)
	require.Len(t, rows, 1+len(palette.CoreNames()))
	assert.Equal(t, header, rows[0])

	first := palette.MustLookup(palette.Brand1)
	assert.Equal(t, "brand1", rows[1][0])
	assert.Equal(t, string(first.Purpose()), rows[1][1])
	assert.Equal(t, first.Hex(), rows[1][colorColumn-1:])

	rows, err = f.GetRows("extended")
	require.NoError(t, err)
	assert.Len(t, rows, 1+len(palette.ExtendedNames()))
}

func TestXLSX_CellsAreFilled(t *testing.T) {
	var buf bytes.Buffer
	p := palette.MustLookup(palette.Brand1)
	require.NoError(t, XLSX(&buf, []palette.Palette{p}))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	for i, c := range p.Colors() {
		cell, err := excelize.CoordinatesToCellName(colorColumn+i, 2)
		require.NoError(t, err)

		id, err := f.GetCellStyle("core", cell)
		require.NoError(t, err)
		style, err := f.GetStyle(id)
		require.NoError(t, err)

		require.Len(t, style.Fill.Color, 1, cell)
		hex := strings.TrimPrefix(c.RGBHex(), "#")
		assert.Contains(t, strings.ToUpper(style.Fill.Color[0]), hex)
		require.NotNil(t, style.Font)
		assert.Contains(t, strings.ToUpper(style.Font.Color), strings.TrimPrefix(c.TextColor().RGBHex(), "#"))
	}

	assert.Equal(t, []string{"core"}, f.GetSheetList())
}

func TestXLSX_Empty(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, XLSX(&buf, nil))
}

func TestSave(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "palettes.yaml")
	require.NoError(t, Save(path, ""))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: brand1")

	path = filepath.Join(dir, "palettes.bin")
	require.NoError(t, Save(path, FormatXLSX))
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	assert.Len(t, f.GetSheetList(), 2)
	require.NoError(t, f.Close())

	err = Save(filepath.Join(dir, "palettes.csv"), "")
	assert.ErrorIs(t, err, lookup.ErrUnknownKey)
	_, statErr := os.Stat(filepath.Join(dir, "palettes.csv"))
	assert.True(t, os.IsNotExist(statErr), "no file is created for an unknown format")
}
