package ui

import (
	"github.com/renato0307/chord/internal/domain"
)

// Demo action names
const (
	ActionClear = "clear"
	ActionRedo  = "redo"
	ActionReset = "reset"
	ActionSave  = "save"
	ActionUndo  = "undo"
)

// SaveShortcut is registered on its own, outside any keymap
const SaveShortcut = "ctrl+s"

const idleMessage = "Press keyboard shortcuts to test!"

// DefaultKeymap is the keymap the tester uses when none is selected
func DefaultKeymap() domain.Keymap {
	return domain.Keymap{
		Name:        "default",
		Description: "Counter demo",
		Entries: []domain.KeymapEntry{
			{Shortcut: "ctrl+z", Action: ActionUndo},
			{Shortcut: "ctrl+y", Action: ActionRedo},
			{Shortcut: "space", Action: ActionReset},
			{Shortcut: "esc", Action: ActionClear},
		},
	}
}

// DemoActions lists the actions a keymap can bind in the tester
func DemoActions() []domain.Action {
	return []domain.Action{
		{Name: ActionSave, Description: "Save document"},
		{Name: ActionUndo, Description: "Decrease count"},
		{Name: ActionRedo, Description: "Increase count"},
		{Name: ActionReset, Description: "Reset count"},
		{Name: ActionClear, Description: "Clear message"},
	}
}
