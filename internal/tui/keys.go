package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Load    key.Binding
	Reload  key.Binding
	Orbit   key.Binding
	Zoom    key.Binding
	Panel   key.Binding
	Help    key.Binding
	Quit    key.Binding
	OrbitL  key.Binding
	OrbitR  key.Binding
	OrbitU  key.Binding
	OrbitD  key.Binding
	ZoomIn  key.Binding
	ZoomOut key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "shape")),
		Down:    key.NewBinding(key.WithKeys("down", "j")),
		Load:    key.NewBinding(key.WithKeys("enter", "1", "2", "3", "4", "5", "6", "7"), key.WithHelp("enter/1-7", "load")),
		Reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Orbit:   key.NewBinding(key.WithKeys("w", "a", "s", "d"), key.WithHelp("wasd/drag", "orbit")),
		Zoom:    key.NewBinding(key.WithKeys("+", "-"), key.WithHelp("+/-/wheel", "zoom")),
		Panel:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "panel")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		OrbitL:  key.NewBinding(key.WithKeys("a")),
		OrbitR:  key.NewBinding(key.WithKeys("d")),
		OrbitU:  key.NewBinding(key.WithKeys("w")),
		OrbitD:  key.NewBinding(key.WithKeys("s")),
		ZoomIn:  key.NewBinding(key.WithKeys("+", "=")),
		ZoomOut: key.NewBinding(key.WithKeys("-", "_")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Load, k.Reload, k.Orbit, k.Zoom, k.Panel, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
