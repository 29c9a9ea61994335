package browser

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/renato0307/brookplot/internal/palette"
	"github.com/renato0307/brookplot/internal/preview"
	"github.com/renato0307/brookplot/internal/ui"
)

const (
	// defaultVisible is used until the first window size arrives
	defaultVisible = 10
	nameWidth      = 14
	purposeWidth   = 13
)

// source exposes palette names to the fuzzy matcher
type source []palette.Palette

func (s source) String(i int) string { return string(s[i].Name()) }
func (s source) Len() int            { return len(s) }

// paletteList manages filtering, navigation and rendering of palettes
type paletteList struct {
	all          []palette.Palette
	items        []palette.Palette
	query        string
	index        int
	scrollOffset int // First visible item index
	visible      int
}

func newPaletteList() *paletteList {
	return &paletteList{visible: defaultVisible}
}

// SetPalettes replaces the palettes and reapplies the current filter.
// The selection stays on the same palette name when it is still listed.
func (l *paletteList) SetPalettes(ps []palette.Palette) {
	var keep palette.Name
	if p, ok := l.Selected(); ok {
		keep = p.Name()
	}
	l.all = ps
	l.Filter(l.query)
	for i, p := range l.items {
		if p.Name() == keep {
			l.index = i
			l.clampScroll()
			break
		}
	}
}

// Filter narrows the list to names fuzzy-matching query, best first.
// An empty query lists every palette in registry order.
func (l *paletteList) Filter(query string) {
	l.query = query
	l.index = 0
	l.scrollOffset = 0

	if query == "" {
		l.items = append([]palette.Palette(nil), l.all...)
		return
	}
	matches := fuzzy.FindFrom(query, source(l.all))
	l.items = make([]palette.Palette, 0, len(matches))
	for _, m := range matches {
		l.items = append(l.items, l.all[m.Index])
	}
}

// SetVisible sets how many rows fit on screen
func (l *paletteList) SetVisible(n int) {
	l.visible = max(n, 1)
	l.clampScroll()
}

// NavigateUp moves selection up, scrolling when it leaves the viewport
func (l *paletteList) NavigateUp() {
	if l.index > 0 {
		l.index--
		l.clampScroll()
	}
}

// NavigateDown moves selection down, scrolling when it leaves the viewport
func (l *paletteList) NavigateDown() {
	if l.index < len(l.items)-1 {
		l.index++
		l.clampScroll()
	}
}

// JumpTop selects the first palette
func (l *paletteList) JumpTop() {
	l.index = 0
	l.clampScroll()
}

// JumpBottom selects the last palette
func (l *paletteList) JumpBottom() {
	l.index = max(len(l.items)-1, 0)
	l.clampScroll()
}

func (l *paletteList) clampScroll() {
	if l.index < l.scrollOffset {
		l.scrollOffset = l.index
	}
	if l.index > l.scrollOffset+l.visible-1 {
		l.scrollOffset = l.index - l.visible + 1
	}
}

// Selected returns the highlighted palette
func (l *paletteList) Selected() (palette.Palette, bool) {
	if l.index >= 0 && l.index < len(l.items) {
		return l.items[l.index], true
	}
	return palette.Palette{}, false
}

// Size returns the number of listed palettes
func (l *paletteList) Size() int {
	return len(l.items)
}

// View renders the visible rows with a selection marker
func (l *paletteList) View(theme *ui.Theme, width int) string {
	if len(l.items) == 0 {
		return theme.Help.Render("  no palette matches " + `"` + l.query + `"`)
	}

	end := min(l.scrollOffset+l.visible, len(l.items))
	rows := make([]string, 0, end-l.scrollOffset)
	for i := l.scrollOffset; i < end; i++ {
		p := l.items[i]
		marker, style := "  ", theme.Row
		if i == l.index {
			marker, style = "▶ ", theme.Selected
		}
		text := lipgloss.NewStyle().Width(nameWidth).Render(marker+string(p.Name())) +
			lipgloss.NewStyle().Width(purposeWidth).Render(string(p.Purpose()))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, style.Render(text), " ", preview.Strip(p)))
	}
	out := strings.Join(rows, "\n")
	if width > 0 {
		out = lipgloss.NewStyle().MaxWidth(width).Render(out)
	}
	return out
}
