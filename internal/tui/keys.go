package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Activate  key.Binding
	Close     key.Binding
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	PrevYear  key.Binding
	NextYear  key.Binding
	Today     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "open/select"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "ctrl+g"),
			key.WithHelp("esc", "close"),
		),
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev week")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next week")),
		PrevMonth: key.NewBinding(
			key.WithKeys("[", "pgup"),
			key.WithHelp("[", "prev month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("]", "pgdown"),
			key.WithHelp("]", "next month"),
		),
		PrevYear: key.NewBinding(key.WithKeys("{"), key.WithHelp("{", "prev year")),
		NextYear: key.NewBinding(key.WithKeys("}"), key.WithHelp("}", "next year")),
		Today:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Activate, k.PrevMonth, k.NextMonth, k.Close, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Activate, k.Close, k.Today},
		{k.Left, k.Right, k.Up, k.Down},
		{k.PrevMonth, k.NextMonth, k.PrevYear, k.NextYear},
		{k.Help, k.Quit},
	}
}
