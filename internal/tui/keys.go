package tui

import "github.com/charmbracelet/bubbles/key"

// GlobalKeys are always active.
type GlobalKeys struct {
	Quit key.Binding
	Help key.Binding
}

var globalKeys = GlobalKeys{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
}

// ModeKeys switch the timer mode through the selector.
type ModeKeys struct {
	Mode1 key.Binding
	Mode2 key.Binding
	Mode3 key.Binding
	Prev  key.Binding
	Next  key.Binding
}

var modeKeys = ModeKeys{
	Mode1: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "first mode"),
	),
	Mode2: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "second mode"),
	),
	Mode3: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "third mode"),
	),
	Prev: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous mode"),
	),
	Next: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next mode"),
	),
}

// ControlKeys drive the timer.
type ControlKeys struct {
	Toggle key.Binding
	Reset  key.Binding
}

var controlKeys = ControlKeys{
	Toggle: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("Space", "start/pause"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
}

// OverlayKeys are active when an overlay is shown.
type OverlayKeys struct {
	Cancel key.Binding
}

var overlayKeys = OverlayKeys{
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "close"),
	),
}
