package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the timer list.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Remove key.Binding
	New    key.Binding
	Back   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default set of keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "remove"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new timer"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close form"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the compact help bindings.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.New, k.Remove, k.Help, k.Quit}
}

// FullHelp returns all bindings grouped for the expanded help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Remove},
		{k.New, k.Back},
		{k.Help, k.Quit},
	}
}
