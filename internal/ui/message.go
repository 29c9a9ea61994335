package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/brookplot/internal/types"
)

// minMessageWidth keeps very narrow terminals readable
const minMessageWidth = 20

// RenderMessage renders a status line colored by its type.
// Long messages are truncated to fit the terminal width.
func RenderMessage(text string, msgType types.MessageType, theme *Theme, width int) string {
	if text == "" {
		return ""
	}

	// prefix (2) plus a small right margin
	limit := max(width-7, minMessageWidth)
	if r := []rune(text); len(r) > limit {
		text = string(r[:limit-1]) + "…"
	}

	color := theme.Muted
	switch msgType {
	case types.MessageTypeSuccess:
		color = theme.Success
	case types.MessageTypeError:
		color = theme.Error
	case types.MessageTypeWarning:
		color = theme.Warning
	}
	return lipgloss.NewStyle().Foreground(color).Render("● " + text)
}
