package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/brookplot/internal/palette"
)

// SwatchWidth is the number of terminal cells per swatch
const SwatchWidth = 9

// Strip renders one line of swatches, each showing its hex code in the
// contrast color on the swatch color.
func Strip(p palette.Palette) string {
	swatches := make([]string, 0, p.Len())
	for _, c := range p.Colors() {
		style := lipgloss.NewStyle().
			Background(c.Lipgloss()).
			Foreground(c.TextColor().Lipgloss()).
			Width(SwatchWidth).
			Align(lipgloss.Center)
		swatches = append(swatches, style.Render(c.RGBHex()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, swatches...)
}

// Terminal renders the named palette as a labeled swatch strip
func Terminal(name string, reverse bool) (string, error) {
	p, err := palette.Lookup(name, reverse)
	if err != nil {
		return "", err
	}

	label := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(palette.BrandBlueHex)).
		Width(14).
		Render(string(p.Name()))

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, label, Strip(p)))
	if msg, ok := p.Advisory(); ok {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Faint(true).Render("  ! " + msg))
	}
	return b.String(), nil
}
