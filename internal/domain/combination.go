package domain

// KeyCombination is the resolved form of one shortcut description segment.
// It is a value type and is never mutated after parsing.
type KeyCombination struct {
	Key       KeyCode
	Modifiers ModifierSet
	Source    string // segment text as written, whitespace removed
}

// Resolved reports whether the primary key resolved to a concrete code
func (c KeyCombination) Resolved() bool {
	return c.Key != KeyNone
}

// ShortcutBinding pairs a combination with the handler it triggers
type ShortcutBinding struct {
	KeyCombination
	Handler Handler
}
