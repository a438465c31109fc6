package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Select   key.Binding
	Rotate   key.Binding
	RotateCC key.Binding
	Place    key.Binding
	Hint     key.Binding
	New      key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Select:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "pick block")),
		Rotate:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rotate")),
		RotateCC: key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "rotate back")),
		Place:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "place")),
		Hint:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "hint")),
		New:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new game")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Rotate, k.Place, k.Hint, k.New, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.Rotate, k.RotateCC, k.Place},
		{k.Hint, k.New, k.Quit},
	}
}
