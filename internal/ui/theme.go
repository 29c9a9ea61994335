// Package ui holds the terminal color themes and shared renderers used by
// the interactive palette browser.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/brookplot/internal/lookup"
)

// Theme defines the color scheme and styles for the terminal views
type Theme struct {
	Name string

	// Core colors
	Primary    lipgloss.AdaptiveColor
	Accent     lipgloss.AdaptiveColor
	Foreground lipgloss.AdaptiveColor
	Muted      lipgloss.AdaptiveColor
	Error      lipgloss.AdaptiveColor
	Success    lipgloss.AdaptiveColor
	Warning    lipgloss.AdaptiveColor

	// Selection and chrome
	Border    lipgloss.AdaptiveColor
	Dimmed    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor // background of the selected row

	// Component styles
	Title    lipgloss.Style
	Header   lipgloss.Style
	Selected lipgloss.Style
	Row      lipgloss.Style
	Help     lipgloss.Style
}

// finish derives the component styles from the colors
func (t *Theme) finish() *Theme {
	t.Title = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
		Background(t.Primary).
		Bold(true).
		Padding(0, 1)
	t.Header = lipgloss.NewStyle().
		Foreground(t.Muted).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.Border).
		BorderBottom(true)
	t.Selected = lipgloss.NewStyle().
		Foreground(t.Foreground).
		Background(t.Highlight).
		Bold(true)
	t.Row = lipgloss.NewStyle().
		Foreground(t.Foreground)
	t.Help = lipgloss.NewStyle().
		Foreground(t.Dimmed)
	return t
}

// ThemeBrookings uses the institutional blue and orange
func ThemeBrookings() *Theme {
	t := &Theme{Name: "brookings"}
	t.Primary = lipgloss.AdaptiveColor{Light: "#003A79", Dark: "#1A73CB"}
	t.Accent = lipgloss.AdaptiveColor{Light: "#FF9E1B", Dark: "#FF9E1B"}
	t.Foreground = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#F2F2F2"}
	t.Muted = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#A6A6A6"}
	t.Error = lipgloss.AdaptiveColor{Light: "#CF4E14", Dark: "#F26A35"}
	t.Success = lipgloss.AdaptiveColor{Light: "#2A6B4F", Dark: "#7CC293"}
	t.Warning = lipgloss.AdaptiveColor{Light: "#B37100", Dark: "#FFC35A"}
	t.Border = lipgloss.AdaptiveColor{Light: "#BFBFBF", Dark: "#4D4D4D"}
	t.Dimmed = lipgloss.AdaptiveColor{Light: "#8C8C8C", Dark: "#737373"}
	t.Highlight = lipgloss.AdaptiveColor{Light: "#D8ECFF", Dark: "#14375C"}
	return t.finish()
}

// ThemeCharm is the Charm default look
func ThemeCharm() *Theme {
	t := &Theme{Name: "charm"}
	t.Primary = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	t.Accent = lipgloss.AdaptiveColor{Light: "#F780E2", Dark: "#F780E2"}
	t.Foreground = lipgloss.AdaptiveColor{Light: "235", Dark: "252"}
	t.Muted = lipgloss.AdaptiveColor{Light: "243", Dark: "243"}
	t.Error = lipgloss.AdaptiveColor{Light: "#FF4672", Dark: "#ED567A"}
	t.Success = lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"}
	t.Warning = lipgloss.AdaptiveColor{Light: "#FFAA00", Dark: "#FFAA00"}
	t.Border = lipgloss.AdaptiveColor{Light: "240", Dark: "240"}
	t.Dimmed = lipgloss.AdaptiveColor{Light: "243", Dark: "243"}
	t.Highlight = lipgloss.AdaptiveColor{Light: "254", Dark: "57"}
	return t.finish()
}

// ThemeDracula is a Dracula-inspired theme
func ThemeDracula() *Theme {
	t := &Theme{Name: "dracula"}
	t.Primary = lipgloss.AdaptiveColor{Light: "#bd93f9", Dark: "#bd93f9"}
	t.Accent = lipgloss.AdaptiveColor{Light: "#ff79c6", Dark: "#ff79c6"}
	t.Foreground = lipgloss.AdaptiveColor{Light: "#282a36", Dark: "#f8f8f2"}
	t.Muted = lipgloss.AdaptiveColor{Light: "#6272a4", Dark: "#6272a4"}
	t.Error = lipgloss.AdaptiveColor{Light: "#ff5555", Dark: "#ff5555"}
	t.Success = lipgloss.AdaptiveColor{Light: "#50fa7b", Dark: "#50fa7b"}
	t.Warning = lipgloss.AdaptiveColor{Light: "#f1fa8c", Dark: "#f1fa8c"}
	t.Border = lipgloss.AdaptiveColor{Light: "61", Dark: "61"}
	t.Dimmed = lipgloss.AdaptiveColor{Light: "#6272a4", Dark: "#6272a4"}
	t.Highlight = lipgloss.AdaptiveColor{Light: "#e6e6f0", Dark: "#44475a"}
	return t.finish()
}

// ThemeNord is an arctic, north-bluish theme
func ThemeNord() *Theme {
	t := &Theme{Name: "nord"}
	t.Primary = lipgloss.AdaptiveColor{Light: "#5e81ac", Dark: "#88c0d0"}
	t.Accent = lipgloss.AdaptiveColor{Light: "#b48ead", Dark: "#b48ead"}
	t.Foreground = lipgloss.AdaptiveColor{Light: "#2e3440", Dark: "#eceff4"}
	t.Muted = lipgloss.AdaptiveColor{Light: "#4c566a", Dark: "#d8dee9"}
	t.Error = lipgloss.AdaptiveColor{Light: "#bf616a", Dark: "#bf616a"}
	t.Success = lipgloss.AdaptiveColor{Light: "#a3be8c", Dark: "#a3be8c"}
	t.Warning = lipgloss.AdaptiveColor{Light: "#d08770", Dark: "#ebcb8b"}
	t.Border = lipgloss.AdaptiveColor{Light: "#d8dee9", Dark: "#4c566a"}
	t.Dimmed = lipgloss.AdaptiveColor{Light: "#4c566a", Dark: "#616e88"}
	t.Highlight = lipgloss.AdaptiveColor{Light: "#e5e9f0", Dark: "#3b4252"}
	return t.finish()
}

var themes = lookup.NewTable("theme",
	lookup.Entry[func() *Theme]{Key: "brookings", Value: ThemeBrookings},
	lookup.Entry[func() *Theme]{Key: "charm", Value: ThemeCharm},
	lookup.Entry[func() *Theme]{Key: "dracula", Value: ThemeDracula},
	lookup.Entry[func() *Theme]{Key: "nord", Value: ThemeNord},
)

// GetTheme returns a theme by name, defaulting to brookings
func GetTheme(name string) *Theme {
	if fn, err := themes.Get(name); err == nil {
		return fn()
	}
	return ThemeBrookings()
}

// ParseTheme validates a theme name
func ParseTheme(name string) (string, error) {
	if _, err := themes.Get(name); err != nil {
		return "", err
	}
	return name, nil
}

// AvailableThemes returns the theme names
func AvailableThemes() []string {
	return themes.Keys()
}
