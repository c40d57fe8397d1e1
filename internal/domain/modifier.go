package domain

import "strings"

// Modifier is the numeric identifier of a modifier key
type Modifier int

const (
	ModShift Modifier = 16
	ModCtrl  Modifier = 17
	ModAlt   Modifier = 18
	ModMeta  Modifier = 91
)

// AllModifiers lists the recognized modifiers in display order
var AllModifiers = []Modifier{ModCtrl, ModAlt, ModShift, ModMeta}

// String returns the canonical lowercase name of the modifier
func (m Modifier) String() string {
	switch m {
	case ModShift:
		return "shift"
	case ModCtrl:
		return "ctrl"
	case ModAlt:
		return "alt"
	case ModMeta:
		return "meta"
	default:
		return "unknown"
	}
}

func (m Modifier) bit() ModifierSet {
	switch m {
	case ModShift:
		return 1 << 0
	case ModCtrl:
		return 1 << 1
	case ModAlt:
		return 1 << 2
	case ModMeta:
		return 1 << 3
	default:
		return 0
	}
}

// ModifierSet is a set of modifiers. Duplicates collapse and unknown identifiers are ignored.
type ModifierSet uint8

// NewModifierSet builds a set from the given modifiers
func NewModifierSet(mods ...Modifier) ModifierSet {
	var s ModifierSet
	for _, m := range mods {
		s = s.With(m)
	}
	return s
}

// With returns a copy of the set including m
func (s ModifierSet) With(m Modifier) ModifierSet {
	return s | m.bit()
}

// Has reports whether m is in the set
func (s ModifierSet) Has(m Modifier) bool {
	b := m.bit()
	return b != 0 && s&b == b
}

// Len returns the number of modifiers in the set
func (s ModifierSet) Len() int {
	n := 0
	for _, m := range AllModifiers {
		if s.Has(m) {
			n++
		}
	}
	return n
}

// ContainsAll reports whether every modifier of other is in s
func (s ModifierSet) ContainsAll(other ModifierSet) bool {
	for _, m := range other.Modifiers() {
		if !s.Has(m) {
			return false
		}
	}
	return true
}

// IsEmpty reports whether no modifier is set
func (s ModifierSet) IsEmpty() bool {
	return s == 0
}

// Modifiers returns the members in display order
func (s ModifierSet) Modifiers() []Modifier {
	mods := make([]Modifier, 0, 4)
	for _, m := range AllModifiers {
		if s.Has(m) {
			mods = append(mods, m)
		}
	}
	return mods
}

// String renders the set as "ctrl+alt+shift+meta" (empty for no modifiers)
func (s ModifierSet) String() string {
	mods := s.Modifiers()
	names := make([]string, len(mods))
	for i, m := range mods {
		names[i] = m.String()
	}
	return strings.Join(names, "+")
}
