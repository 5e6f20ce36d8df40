package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Place   key.Binding
	Cell    key.Binding
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Focus   key.Binding
	Sort    key.Binding
	NewGame key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Place: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("enter", "place / jump"),
		),
		Cell: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "place on cell"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "board / moves"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort moves"),
		),
		NewGame: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new game"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Cell, k.Place, k.Focus, k.Sort, k.NewGame, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Cell, k.Place},
		{k.Up, k.Down, k.Left, k.Right},
		{k.Focus, k.Sort, k.NewGame, k.Quit},
	}
}
