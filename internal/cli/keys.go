package cli

import "github.com/charmbracelet/bubbles/key"

type timerKeyMap struct {
	Quit    key.Binding
	Later   key.Binding
	Earlier key.Binding
	Help    key.Binding
}

func defaultTimerKeys() timerKeyMap {
	return timerKeyMap{
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
		Later:   key.NewBinding(key.WithKeys("+", "=", "up", "k"), key.WithHelp("+", "target +1m")),
		Earlier: key.NewBinding(key.WithKeys("-", "_", "down", "j"), key.WithHelp("-", "target -1m")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}
}

func (k timerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Help}
}

func (k timerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Later, k.Earlier},
		{k.Quit, k.Help},
	}
}
