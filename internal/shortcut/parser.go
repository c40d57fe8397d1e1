package shortcut

import (
	"strings"
	"unicode"

	"github.com/renato0307/chord/internal/domain"
	"github.com/renato0307/chord/internal/keys"
)

// Parse converts a description into its alternative combinations, in declaration order.
// It never fails: empty segments and unknown keys yield combinations with domain.KeyNone,
// and unknown modifier names are dropped.
func Parse(description string) []domain.KeyCombination {
	compact := stripSpace(description)
	segments := strings.Split(compact, ",")
	combos := make([]domain.KeyCombination, 0, len(segments))
	for _, segment := range segments {
		combos = append(combos, parseSegment(segment))
	}
	return combos
}

// parseSegment resolves one "mod+mod+key" segment
func parseSegment(segment string) domain.KeyCombination {
	parts := strings.Split(segment, "+")
	primary := parts[len(parts)-1]

	var mods domain.ModifierSet
	for _, name := range parts[:len(parts)-1] {
		if mod, ok := keys.ResolveModifier(name); ok {
			mods = mods.With(mod)
		}
	}

	return domain.KeyCombination{
		Key:       keys.Resolve(primary),
		Modifiers: mods,
		Source:    segment,
	}
}

// Validate reports the first problem a description would silently degrade on.
// Parse itself stays lenient; this is for tooling that wants to warn early.
func Validate(description string) error {
	if stripSpace(description) == "" {
		return domain.ErrEmptyShortcut
	}
	for _, combo := range Parse(description) {
		if !combo.Resolved() {
			return &SegmentError{Segment: combo.Source, Err: domain.ErrUnresolvedKey}
		}
	}
	return nil
}

// SegmentError points at the segment of a description that failed validation
type SegmentError struct {
	Err     error
	Segment string
}

func (e *SegmentError) Error() string {
	return e.Err.Error() + ": " + quoteSegment(e.Segment)
}

func (e *SegmentError) Unwrap() error {
	return e.Err
}

func quoteSegment(s string) string {
	return "\"" + s + "\""
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
