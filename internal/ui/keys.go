package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/renato0307/chord/internal/config"
)

// KeyMap contains the tester's own key bindings organized by context.
// It implements help.KeyMap.
type KeyMap struct {
	Application ApplicationKeys
	Input       InputKeys
}

// NewKeyMap creates a new KeyMap with all key bindings initialized
// Pass nil for customKeys to use default bindings
func NewKeyMap(customKeys config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	return KeyMap{
		Application: newApplicationKeys(defaults, customKeys),
		Input:       newInputKeys(defaults, customKeys),
	}
}

// ShortHelp returns the bindings for the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Input.Focus.Binding,
		k.Application.Help.Binding,
		k.Application.Quit.Binding,
	}
}

// Tips returns the tips of every binding that has one, in a stable order
func (k KeyMap) Tips() []Tip {
	var out []Tip
	for _, b := range []KeyWithTip{
		k.Input.Focus,
		k.Application.Help,
		k.Application.ClearLog,
	} {
		if !b.Tip.IsZero() {
			out = append(out, b.Tip)
		}
	}
	return out
}

// FullHelp returns every binding, grouped in columns
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{
			k.Input.Focus.Binding,
			k.Input.Blur.Binding,
		},
		{
			k.Application.ClearLog.Binding,
			k.Application.Help.Binding,
			k.Application.Quit.Binding,
			k.Application.ForceQuit.Binding,
		},
	}
}
