package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the bindings of both views. Bindings that only apply to one
// view are enabled and disabled by Model.syncKeys.
type keyMap struct {
	Prev    key.Binding
	Next    key.Binding
	Toggle  key.Binding
	Create  key.Binding
	Clear   key.Binding
	Refresh key.Binding
	Dismiss key.Binding

	Up        key.Binding
	Down      key.Binding
	MoveLeft  key.Binding
	MoveRight key.Binding
	Commit    key.Binding
	Cancel    key.Binding

	Help key.Binding
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/h", "prev"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/l", "next"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "select list"),
		),
		Create: key.NewBinding(
			key.WithKeys("enter", "c"),
			key.WithHelp("enter", "create new list"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear selection"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "try again"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "dismiss"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		MoveLeft: key.NewBinding(
			key.WithKeys("<", ","),
			key.WithHelp("<", "move item left"),
		),
		MoveRight: key.NewBinding(
			key.WithKeys(">", "."),
			key.WithHelp(">", "move item right"),
		),
		Commit: key.NewBinding(
			key.WithKeys("u", "enter"),
			key.WithHelp("u", "update"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Toggle, k.Create, k.MoveLeft, k.MoveRight, k.Commit,
		k.Cancel, k.Clear, k.Refresh, k.Help, k.Quit,
	}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Up, k.Down},
		{k.Toggle, k.Create, k.Clear},
		{k.MoveLeft, k.MoveRight, k.Commit, k.Cancel},
		{k.Refresh, k.Dismiss, k.Help, k.Quit},
	}
}
