package domain

// ShortcutEntry maps one shortcut description to its handler
type ShortcutEntry struct {
	Description string
	Handler     Handler
}

// ShortcutMap is an ordered mapping from description to handler.
// Entry order is match priority.
type ShortcutMap []ShortcutEntry

// Add returns the map with a new entry appended
func (m ShortcutMap) Add(description string, handler Handler) ShortcutMap {
	return append(m, ShortcutEntry{Description: description, Handler: handler})
}

// Descriptions returns the descriptions in order
func (m ShortcutMap) Descriptions() []string {
	out := make([]string, len(m))
	for i, e := range m {
		out[i] = e.Description
	}
	return out
}

// SameDescriptions reports whether both maps list the same descriptions in the same order
func (m ShortcutMap) SameDescriptions(other ShortcutMap) bool {
	if len(m) != len(other) {
		return false
	}
	for i := range m {
		if m[i].Description != other[i].Description {
			return false
		}
	}
	return true
}
