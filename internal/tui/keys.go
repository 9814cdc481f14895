package tui

import "charm.land/bubbles/v2/key"

// keyMap holds the bindings of the picker and the upload dialog.
type keyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Left      key.Binding
	Right     key.Binding
	Confirm   key.Binding
	Submit    key.Binding
	Escape    key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next control")),
		Prev:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous control")),
		Left:      key.NewBinding(key.WithKeys("left", "-"), key.WithHelp("←/-", "smaller / previous")),
		Right:     key.NewBinding(key.WithKeys("right", "+", "="), key.WithHelp("→/+", "bigger / next")),
		Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "press button")),
		Submit:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "publish")),
		Escape:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close dialog")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}
