package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/anlythree/foodpicker/internal/picker"
)

// Button labels for the pick action.
const (
	PickLabelIdle    = "tell me"
	PickLabelShowing = "another one"
)

// keyMap defines key bindings for the picker screen
type keyMap struct {
	Pick   key.Binding
	Toggle key.Binding
	Reset  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Pick: key.NewBinding(
			key.WithKeys(" ", "enter", "n"),
			key.WithHelp("space", PickLabelIdle),
		),
		Toggle: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "nutrition"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// forState adjusts labels and availability to the current selection state.
// The nutrition toggle is hidden while nothing is selected.
func (k keyMap) forState(s picker.Snapshot) keyMap {
	if s.HasSelection() {
		k.Pick.SetHelp("space", PickLabelShowing)
		k.Toggle.SetEnabled(true)
		if s.ShowNutrition {
			k.Toggle.SetHelp("i", "hide nutrition")
		} else {
			k.Toggle.SetHelp("i", "nutrition")
		}
	} else {
		k.Pick.SetHelp("space", PickLabelIdle)
		k.Toggle.SetEnabled(false)
	}
	return k
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pick, k.Toggle, k.Reset, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pick, k.Toggle, k.Reset},
		{k.Help, k.Quit},
	}
}
