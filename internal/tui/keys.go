package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	nextField key.Binding
	prevField key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	forceQuit key.Binding
	logout    key.Binding
	newItem   key.Binding
	edit      key.Binding
	delete    key.Binding
	copyUser  key.Binding
	clear     key.Binding
	clearForm key.Binding
	reload    key.Binding
	about     key.Binding
}

var keys = keyMap{
	nextField: key.NewBinding(key.WithKeys("down")),
	prevField: key.NewBinding(key.WithKeys("up")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	logout:    key.NewBinding(key.WithKeys("L")),
	newItem:   key.NewBinding(key.WithKeys("n")),
	edit:      key.NewBinding(key.WithKeys("e")),
	delete:    key.NewBinding(key.WithKeys("d")),
	copyUser:  key.NewBinding(key.WithKeys("c")),
	clear:     key.NewBinding(key.WithKeys("x")),
	clearForm: key.NewBinding(key.WithKeys("ctrl+x")),
	reload:    key.NewBinding(key.WithKeys("r")),
	about:     key.NewBinding(key.WithKeys("i")),
}
