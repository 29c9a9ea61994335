package messages

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/brookplot/internal/types"
)

// ErrorCmd returns a tea.Cmd that produces an error status message.
//
// Example:
//
//	if err := copy(codes); err != nil {
//	    return messages.ErrorCmd("Copy failed: %v", err)
//	}
func ErrorCmd(format string, args ...any) tea.Cmd {
	msg := fmt.Sprintf(format, args...)
	return func() tea.Msg {
		return types.ErrorStatusMsg(msg)
	}
}

// SuccessCmd returns a tea.Cmd that produces a success status message.
func SuccessCmd(format string, args ...any) tea.Cmd {
	msg := fmt.Sprintf(format, args...)
	return func() tea.Msg {
		return types.SuccessMsg(msg)
	}
}

// InfoCmd returns a tea.Cmd that produces an info status message.
func InfoCmd(format string, args ...any) tea.Cmd {
	msg := fmt.Sprintf(format, args...)
	return func() tea.Msg {
		return types.InfoMsg(msg)
	}
}

// WarningCmd returns a tea.Cmd that produces a warning status message.
// Palette advisories use it.
func WarningCmd(format string, args ...any) tea.Cmd {
	msg := fmt.Sprintf(format, args...)
	return func() tea.Msg {
		return types.WarningMsg(msg)
	}
}

// WrapError wraps an error with additional context using fmt.Errorf.
// Preserves the error chain with %w.
//
// Example:
//
//	if err := clipboard.WriteAll(codes); err != nil {
//	    return messages.WrapError(err, "failed to copy %s", name)
//	}
func WrapError(err error, format string, args ...any) error {
	context := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", context, err)
}
