package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Left     key.Binding
	Right    key.Binding
	Activate key.Binding
	Submit   key.Binding
	Back     key.Binding
	Logout   key.Binding
	Route    key.Binding
	Clear    key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
		Left:     key.NewBinding(key.WithKeys("left"), key.WithHelp("←/→", "choose")),
		Right:    key.NewBinding(key.WithKeys("right")),
		Activate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "press/open")),
		Submit:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "submit")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Logout:   key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "logout")),
		Route:    key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "go to route")),
		Clear:    key.NewBinding(key.WithKeys("backspace", "delete")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// shortHelp picks the bindings that make sense on the visible screen.
func (k keyMap) shortHelp(hasFields, hasBack, hasLogout bool) []key.Binding {
	out := []key.Binding{k.Next, k.Activate}
	if hasFields {
		out = append(out, k.Left, k.Submit)
	}
	if hasBack {
		out = append(out, k.Back)
	}
	if hasLogout {
		out = append(out, k.Logout)
	}
	return append(out, k.Route, k.Quit)
}
