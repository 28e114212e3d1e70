package ui

import (
	"github.com/atomicstack/dirnav/internal/backend"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Back  key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "parent"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// lookup maps a terminal key press onto the browser's key alphabet.
func (k keyMap) lookup(msg tea.KeyMsg) backend.Key {
	switch {
	case key.Matches(msg, k.Quit):
		return backend.KeyQuit
	case key.Matches(msg, k.Up):
		return backend.KeyUp
	case key.Matches(msg, k.Down):
		return backend.KeyDown
	case key.Matches(msg, k.Enter):
		return backend.KeyEnter
	case key.Matches(msg, k.Back):
		return backend.KeyBack
	default:
		return backend.KeyOther
	}
}
