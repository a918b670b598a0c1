package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the BarberBook TUI.
type KeyMap struct {
	// Form navigation.
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding

	// Password visibility toggle (local view state only).
	ToggleSecret key.Binding

	// Example credential shortcuts: fill the form without submitting.
	Example1 key.Binding
	Example2 key.Binding
	Example3 key.Binding

	// Table navigation and row actions.
	Up     key.Binding
	Down   key.Binding
	Edit   key.Binding
	Delete key.Binding

	// Clients page.
	Refresh key.Binding
	Logout  key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	NextField: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("tab", "next field"),
	),
	PrevField: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("shift+tab", "previous field"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "sign in"),
	),
	ToggleSecret: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "show/hide password"),
	),
	Example1: key.NewBinding(
		key.WithKeys("alt+1"),
		key.WithHelp("alt+1", "use Admin example"),
	),
	Example2: key.NewBinding(
		key.WithKeys("alt+2"),
		key.WithHelp("alt+2", "use Recepcionista example"),
	),
	Example3: key.NewBinding(
		key.WithKeys("alt+3"),
		key.WithHelp("alt+3", "use Estilista example"),
	),
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit client"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete client"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Logout: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "log out"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}
