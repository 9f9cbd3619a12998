package playlistmenu

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Select   key.Binding
	Close    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous item"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next item"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("pgup", "h", "left"),
			key.WithHelp("pgup/h", "previous page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("pgdown", "l", "right"),
			key.WithHelp("pgdn/l", "next page"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play track"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close menu"),
		),
	}
}

// Help returns the menu's bindings for the help popup.
func Help() []key.Binding {
	k := defaultKeyMap()
	return []key.Binding{k.Up, k.Down, k.PrevPage, k.NextPage, k.Select, k.Close}
}
