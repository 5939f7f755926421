package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Enter     key.Binding
	Merge     key.Binding
	Delete    key.Binding
	Quit      key.Binding
	Interrupt key.Binding
	Back      key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "left", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "right", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Merge: key.NewBinding(
		key.WithKeys("m", "M"),
		key.WithHelp("m", "merge"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d", "D"),
		key.WithHelp("d", "delete"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	// Interrupt is the only quit key while a text input has focus.
	Interrupt: key.NewBinding(
		key.WithKeys("ctrl+c"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
}
