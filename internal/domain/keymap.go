package domain

import "time"

// Keymap is a named, ordered set of shortcut-to-action entries
type Keymap struct {
	CreatedAt   time.Time
	Description string
	Entries     []KeymapEntry
	Name        string
	UpdatedAt   time.Time
}

// KeymapEntry binds a shortcut description to a named action
type KeymapEntry struct {
	Action   string
	Shortcut string
}

// Action is something a keymap entry can trigger
type Action struct {
	Description string
	Name        string
}
