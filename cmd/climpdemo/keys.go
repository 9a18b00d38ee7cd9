package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func isQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return true
	}
	return false
}

// keyMap defines all keybindings for the help component.
type keyMap struct {
	Pause   key.Binding
	Volume  key.Binding
	Pan     key.Binding
	Speed   key.Binding
	Flange  key.Binding
	Loop    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Pause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause"),
		),
		Volume: key.NewBinding(
			key.WithKeys("+", "-", "="),
			key.WithHelp("+/-", "volume"),
		),
		Pan: key.NewBinding(
			key.WithKeys("left", "right"),
			key.WithHelp("←/→", "pan"),
		),
		Speed: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "speed"),
		),
		Flange: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "flange"),
		),
		Loop: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "loop"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the keybindings shown in the collapsed help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Volume, k.Pan, k.Help, k.Quit}
}

// FullHelp returns keybindings organized into columns for the expanded help view.
func (k keyMap) FullHelp() [][]key.Binding {
	playback := []key.Binding{k.Pause, k.Volume, k.Pan, k.Speed}
	effects := []key.Binding{k.Flange, k.Loop}
	other := []key.Binding{k.Help, k.Quit}
	return [][]key.Binding{playback, effects, other}
}
