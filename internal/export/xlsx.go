package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/renato0307/brookplot/internal/palette"
)

// Workbook layout: one sheet per registry, one row per palette. Colors
// start in colorColumn, each cell filled with its color and labeled with
// its hex code in the contrast text color.
const (
	headerRow   = 1
	colorColumn = 3
)

var header = []string{"palette", "purpose", "colors"}

// XLSX writes palettes as a workbook with one sheet per registry
func XLSX(w io.Writer, palettes []palette.Palette) (err error) {
	if len(palettes) == 0 {
		return fmt.Errorf("no palettes to export")
	}
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close workbook: %w", cerr)
		}
	}()

	b := &workbook{file: f, styles: map[string]int{}, rows: map[string]int{}}
	for _, p := range palettes {
		if err := b.add(p); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

type workbook struct {
	file *excelize.File
	// rows holds the last written row per sheet
	rows   map[string]int
	styles map[string]int
}

func (b *workbook) add(p palette.Palette) error {
	sheet := string(p.Kind())
	if _, ok := b.rows[sheet]; !ok {
		if err := b.addSheet(sheet); err != nil {
			return err
		}
	}
	b.rows[sheet]++
	return b.writePalette(sheet, b.rows[sheet], p)
}

// addSheet creates a sheet with its header row. The first sheet takes
// over the workbook's default one.
func (b *workbook) addSheet(sheet string) error {
	if len(b.rows) == 0 {
		if err := b.file.SetSheetName(b.file.GetSheetName(0), sheet); err != nil {
			return fmt.Errorf("failed to name sheet %s: %w", sheet, err)
		}
	} else if _, err := b.file.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to add sheet %s: %w", sheet, err)
	}
	b.rows[sheet] = headerRow
	return b.writeHeader(sheet)
}

func (b *workbook) writeHeader(sheet string) error {
	for i, h := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return err
		}
		if err := b.file.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	bold, err := b.file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(len(header), headerRow)
	if err := b.file.SetCellStyle(sheet, "A1", last, bold); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}
	if err := b.file.SetColWidth(sheet, "A", "B", 16); err != nil {
		return fmt.Errorf("failed to size columns: %w", err)
	}
	return nil
}

func (b *workbook) writePalette(sheet string, row int, p palette.Palette) error {
	name, _ := excelize.CoordinatesToCellName(1, row)
	if err := b.file.SetCellValue(sheet, name, string(p.Name())); err != nil {
		return fmt.Errorf("failed to write %s: %w", p.Name(), err)
	}
	purpose, _ := excelize.CoordinatesToCellName(2, row)
	if err := b.file.SetCellValue(sheet, purpose, string(p.Purpose())); err != nil {
		return fmt.Errorf("failed to write %s: %w", p.Name(), err)
	}

	for i, c := range p.Colors() {
		cell, err := excelize.CoordinatesToCellName(colorColumn+i, row)
		if err != nil {
			return err
		}
		style, err := b.swatch(c.RGBHex(), c.TextColor().RGBHex())
		if err != nil {
			return err
		}
		if err := b.file.SetCellValue(sheet, cell, c.RGBHex()); err != nil {
			return fmt.Errorf("failed to write %s: %w", p.Name(), err)
		}
		if err := b.file.SetCellStyle(sheet, cell, cell, style); err != nil {
			return fmt.Errorf("failed to style %s: %w", p.Name(), err)
		}
	}
	return nil
}

// swatch returns a cached fill style per background color
func (b *workbook) swatch(fill, text string) (int, error) {
	if id, ok := b.styles[fill]; ok {
		return id, nil
	}
	id, err := b.file.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{strings.TrimPrefix(fill, "#")}},
		Font: &excelize.Font{Color: strings.TrimPrefix(text, "#")},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create style for %s: %w", fill, err)
	}
	b.styles[fill] = id
	return id, nil
}
