package kiosk

import "charm.land/bubbles/v2/key"

// KeyMap holds the kiosk key bindings. Digits and '.' are not bindings:
// they are routed to the keypad editors as typed.
type KeyMap struct {
	Submit       key.Binding
	Back         key.Binding
	Delete       key.Binding
	EndSession   key.Binding
	Language     key.Binding
	Quit         key.Binding
	Up           key.Binding
	Down         key.Binding
	CurrencyNext key.Binding
	CurrencyPrev key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "continue")),
		Back:         key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Delete:       key.NewBinding(key.WithKeys("backspace", "delete"), key.WithHelp("⌫", "delete")),
		EndSession:   key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "end session")),
		Language:     key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "language")),
		Quit:         key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "choose")),
		Down:         key.NewBinding(key.WithKeys("down", "j")),
		CurrencyNext: key.NewBinding(key.WithKeys("tab", "right"), key.WithHelp("←/→", "currency")),
		CurrencyPrev: key.NewBinding(key.WithKeys("shift+tab", "left")),
	}
}
