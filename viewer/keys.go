package viewer

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Save       key.Binding
	Copy       key.Binding
	Regenerate key.Binding
	Quit       key.Binding
	Confirm    key.Binding
	Cancel     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
		Regenerate: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "regenerate"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// helpLine renders the help text for a set of bindings on one line.
func helpLine(bindings ...key.Binding) string {
	var s string
	for i, b := range bindings {
		if i > 0 {
			s += "  "
		}
		h := b.Help()
		s += h.Key + " " + h.Desc
	}
	return s
}
