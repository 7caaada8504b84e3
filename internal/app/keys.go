package app

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Popup    key.Binding
	Toast    key.Binding
	Confirm  key.Binding
	Prompt   key.Binding
	Progress key.Binding
	CloseTop key.Binding
	CloseAll key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Popup:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "popup")),
		Toast:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toast")),
		Confirm:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "confirm")),
		Prompt:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "prompt")),
		Progress: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "progress")),
		CloseTop: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close top")),
		CloseAll: key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "close all")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
