package ui

import (
	"github.com/renato0307/chord/internal/config"
)

// InputKeys defines key bindings for moving focus in and out of the text field
type InputKeys struct {
	Blur  KeyWithTip
	Focus KeyWithTip
}

// newInputKeys creates input key bindings
func newInputKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) InputKeys {
	return InputKeys{
		Blur:  buildBinding("blur_input", defaults, customKeys),
		Focus: buildBinding("focus_input", defaults, customKeys),
	}
}
