package ui

import "github.com/renato0307/chord/internal/domain"

// KeymapChangedMsg delivers a reloaded keymap to a running tester
type KeymapChangedMsg struct {
	Keymap domain.Keymap
}

// clearMessageMsg restores the idle message unless a newer message replaced it
type clearMessageMsg struct {
	generation int
}
