package domain

import "fmt"

// ModifierPolicy decides how the held modifier flags of an event map to modifier identifiers
type ModifierPolicy string

const (
	// PolicyMetaAsControl counts ctrl or meta as ctrl, and meta additionally as meta
	PolicyMetaAsControl ModifierPolicy = "meta-as-control"
	// PolicyStrict maps every flag to its own identifier only
	PolicyStrict ModifierPolicy = "strict"
)

// ParseModifierPolicy validates a policy name. Empty selects the default.
func ParseModifierPolicy(s string) (ModifierPolicy, error) {
	switch ModifierPolicy(s) {
	case "":
		return PolicyMetaAsControl, nil
	case PolicyMetaAsControl, PolicyStrict:
		return ModifierPolicy(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
	}
}

// ShortcutOptions configures a single-shortcut registration
type ShortcutOptions struct {
	Enabled         bool
	Policy          ModifierPolicy
	PreventDefault  bool
	StopPropagation bool
}

// DefaultShortcutOptions returns enabled, preventDefault on, stopPropagation off
func DefaultShortcutOptions() ShortcutOptions {
	return ShortcutOptions{
		Enabled:         true,
		Policy:          PolicyMetaAsControl,
		PreventDefault:  true,
		StopPropagation: false,
	}
}

// ShortcutsOptions configures a multi-shortcut registration
type ShortcutsOptions struct {
	Enabled bool
	Policy  ModifierPolicy
}

// DefaultShortcutsOptions returns enabled with the default modifier policy
func DefaultShortcutsOptions() ShortcutsOptions {
	return ShortcutsOptions{
		Enabled: true,
		Policy:  PolicyMetaAsControl,
	}
}
