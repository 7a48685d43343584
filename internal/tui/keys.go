package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds all key bindings for the TUI. The digit keys selecting the
// sort column are handled directly in Update, they carry no binding here.
type keyMap struct {
	Quit     key.Binding
	Sample   key.Binding
	Help     key.Binding
	Search   key.Binding
	Escape   key.Binding
	PrevPage key.Binding
	NextPage key.Binding
}

// keys is the global key map.
var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Sample: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "sample now"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear filter"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "prev page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "next page"),
	),
}

// helpText is the full help string displayed in the footer when help is toggled on.
const helpText = "q/ctrl+c: quit  r: sample now  /: filter  esc: clear filter  ←/→: page  1-8: sort column  ?: toggle help"
