// Package keyboard defines the key bindings of the palette browser.
package keyboard

import "github.com/charmbracelet/bubbles/key"

// Keys holds the browser key bindings. It implements help.KeyMap.
type Keys struct {
	// Navigation
	Up         key.Binding
	Down       key.Binding
	JumpTop    key.Binding
	JumpBottom key.Binding

	// Palette actions
	Filter  key.Binding
	Reverse key.Binding
	Kind    key.Binding
	Copy    key.Binding

	// Global
	Back key.Binding
	Quit key.Binding
	Help key.Binding
}

// Default returns the default key bindings
func Default() *Keys {
	return &Keys{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		JumpTop: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "top"),
		),
		JumpBottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "bottom"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Reverse: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reverse"),
		),
		Kind: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "core/extended"),
		),
		Copy: key.NewBinding(
			key.WithKeys("enter", "y"),
			key.WithHelp("enter", "copy hex"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear filter"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
	}
}

// ShortHelp is shown in the footer
func (k *Keys) ShortHelp() []key.Binding {
	return []key.Binding{k.Filter, k.Copy, k.Reverse, k.Kind, k.Quit, k.Help}
}

// FullHelp is shown when help is expanded
func (k *Keys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.JumpTop, k.JumpBottom},
		{k.Filter, k.Back, k.Copy},
		{k.Reverse, k.Kind, k.Quit, k.Help},
	}
}
