package shortcut

import "github.com/renato0307/chord/internal/domain"

// ActiveModifiers computes the modifier set an event holds under the given policy.
//
// With domain.PolicyMetaAsControl ctrl or meta counts as ctrl, and meta also counts as
// itself, so a lone command key produces {ctrl, meta}.
func ActiveModifiers(event domain.KeyEvent, policy domain.ModifierPolicy) domain.ModifierSet {
	var active domain.ModifierSet
	if event.ShiftKey() {
		active = active.With(domain.ModShift)
	}
	switch policy {
	case domain.PolicyStrict:
		if event.CtrlKey() {
			active = active.With(domain.ModCtrl)
		}
	default:
		if event.CtrlKey() || event.MetaKey() {
			active = active.With(domain.ModCtrl)
		}
	}
	if event.AltKey() {
		active = active.With(domain.ModAlt)
	}
	if event.MetaKey() {
		active = active.With(domain.ModMeta)
	}
	return active
}

// Matches reports whether the event satisfies the combination exactly
func Matches(combo domain.KeyCombination, event domain.KeyEvent, policy domain.ModifierPolicy) bool {
	if !combo.Resolved() || event.KeyCode() != combo.Key {
		return false
	}
	return modifiersEqual(ActiveModifiers(event, policy), combo.Modifiers)
}

// Match returns the first combination the event satisfies
func Match(combos []domain.KeyCombination, event domain.KeyEvent, policy domain.ModifierPolicy) (domain.KeyCombination, bool) {
	for _, combo := range combos {
		if Matches(combo, event, policy) {
			return combo, true
		}
	}
	return domain.KeyCombination{}, false
}

// MatchBinding returns the first binding the event satisfies
func MatchBinding(bindings []domain.ShortcutBinding, event domain.KeyEvent, policy domain.ModifierPolicy) (domain.ShortcutBinding, bool) {
	for _, b := range bindings {
		if Matches(b.KeyCombination, event, policy) {
			return b, true
		}
	}
	return domain.ShortcutBinding{}, false
}

// modifiersEqual applies the exact-set rule: same size and every required one held
func modifiersEqual(active, required domain.ModifierSet) bool {
	return active.Len() == required.Len() && active.ContainsAll(required)
}
