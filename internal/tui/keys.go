package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Dec       key.Binding
	Inc       key.Binding
	DecFast   key.Binding
	IncFast   key.Binding
	Toggle    key.Binding
	Direct    key.Binding
	Graph     key.Binding
	Mode      key.Binding
	Theme     key.Binding
	HoverPrev key.Binding
	HoverNext key.Binding
	HoverOff  key.Binding
	Save      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Dec, k.Inc, k.Toggle, k.Mode, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Dec, k.Inc, k.DecFast, k.IncFast},
		{k.Toggle, k.Direct, k.Graph, k.Mode},
		{k.HoverPrev, k.HoverNext, k.HoverOff},
		{k.Theme, k.Save, k.Help, k.Quit},
	}
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Dec: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "decrease"),
	),
	Inc: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "increase"),
	),
	DecFast: key.NewBinding(
		key.WithKeys("shift+left", "H"),
		key.WithHelp("shift+←", "decrease ×10"),
	),
	IncFast: key.NewBinding(
		key.WithKeys("shift+right", "L"),
		key.WithHelp("shift+→", "increase ×10"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("space", "toggle"),
	),
	Direct: key.NewBinding(
		key.WithKeys("1", "2", "3"),
		key.WithHelp("1-3", "toggle variable"),
	),
	Graph: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "graph axis"),
	),
	Mode: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "mode"),
	),
	Theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "theme"),
	),
	HoverPrev: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "cursor left"),
	),
	HoverNext: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "cursor right"),
	),
	HoverOff: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "hide cursor"),
	),
	Save: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save"),
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
