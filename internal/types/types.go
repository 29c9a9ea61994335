// Package types holds the Bubble Tea messages shared by the terminal views.
package types

// MessageType defines the type of status message
type MessageType int

const (
	MessageTypeInfo MessageType = iota
	MessageTypeSuccess
	MessageTypeWarning
	MessageTypeError
)

// StatusMsg shows a line in the status area
type StatusMsg struct {
	Message string
	Type    MessageType
}

// ClearStatusMsg clears the status area
type ClearStatusMsg struct {
	MessageID int // Only clear if this matches the current message ID
}

// InfoMsg creates an info status message
func InfoMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeInfo}
}

// SuccessMsg creates a success status message
func SuccessMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeSuccess}
}

// WarningMsg creates a warning status message
func WarningMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeWarning}
}

// ErrorStatusMsg creates an error status message
func ErrorStatusMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeError}
}

// FilterUpdateMsg replaces the browser's filter query
type FilterUpdateMsg struct {
	Filter string
}

// PaletteCopiedMsg reports hex codes placed on the clipboard
type PaletteCopiedMsg struct {
	Name  string
	Codes string
}
