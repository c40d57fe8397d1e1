package domain

import "errors"

var (
	ErrEmptyShortcut  = errors.New("shortcut description is empty")
	ErrInvalidPolicy  = errors.New("invalid modifier policy")
	ErrKeymapExists   = errors.New("keymap already exists")
	ErrKeymapNotFound = errors.New("keymap not found")
	ErrUnknownAction  = errors.New("unknown action")
	ErrUnresolvedKey  = errors.New("primary key does not resolve")
)
