package shortcut

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/chord/internal/domain"
)

func TestParse(t *testing.T) {
	tests := []struct {
		description string
		want        []domain.KeyCombination
	}{
		{
			description: "ctrl+s",
			want: []domain.KeyCombination{
				{Key: 83, Modifiers: domain.NewModifierSet(domain.ModCtrl), Source: "ctrl+s"},
			},
		},
		{
			description: "ctrl+shift+s",
			want: []domain.KeyCombination{
				{Key: 83, Modifiers: domain.NewModifierSet(domain.ModCtrl, domain.ModShift), Source: "ctrl+shift+s"},
			},
		},
		{
			description: "esc",
			want: []domain.KeyCombination{
				{Key: 27, Source: "esc"},
			},
		},
		{
			description: " ctrl + s , cmd + s ",
			want: []domain.KeyCombination{
				{Key: 83, Modifiers: domain.NewModifierSet(domain.ModCtrl), Source: "ctrl+s"},
				{Key: 83, Modifiers: domain.NewModifierSet(domain.ModMeta), Source: "cmd+s"},
			},
		},
		{
			description: "⌘+⇧+p",
			want: []domain.KeyCombination{
				{Key: 80, Modifiers: domain.NewModifierSet(domain.ModMeta, domain.ModShift), Source: "⌘+⇧+p"},
			},
		},
		{
			description: "alt+f4",
			want: []domain.KeyCombination{
				{Key: 115, Modifiers: domain.NewModifierSet(domain.ModAlt), Source: "alt+f4"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.description))
		})
	}
}

func TestParse_CaseInsensitive(t *testing.T) {
	upper := Parse("CTRL+S")
	lower := Parse("ctrl+s")

	require.Len(t, upper, 1)
	require.Len(t, lower, 1)
	assert.Equal(t, lower[0].Key, upper[0].Key)
	assert.Equal(t, lower[0].Modifiers, upper[0].Modifiers)
}

func TestParse_UnknownModifiersAreDropped(t *testing.T) {
	combos := Parse("hyper+ctrl+s")

	require.Len(t, combos, 1)
	assert.Equal(t, domain.NewModifierSet(domain.ModCtrl), combos[0].Modifiers)
}

func TestParse_DuplicateModifiersCollapse(t *testing.T) {
	combos := Parse("ctrl+control+s")

	require.Len(t, combos, 1)
	assert.Equal(t, 1, combos[0].Modifiers.Len())
}

func TestParse_EmptySegmentsDoNotResolve(t *testing.T) {
	combos := Parse("ctrl+s,")

	require.Len(t, combos, 2)
	assert.True(t, combos[0].Resolved())
	assert.False(t, combos[1].Resolved())
	assert.Equal(t, "", combos[1].Source)
}

func TestParse_UnknownPrimaryKeyDoesNotResolve(t *testing.T) {
	combos := Parse("ctrl+banana")

	require.Len(t, combos, 1)
	assert.Equal(t, domain.KeyNone, combos[0].Key)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate("ctrl+s, esc"))
	require.ErrorIs(t, Validate("   "), domain.ErrEmptyShortcut)

	err := Validate("ctrl+s, ctrl+banana")
	require.ErrorIs(t, err, domain.ErrUnresolvedKey)

	var segErr *SegmentError
	require.ErrorAs(t, err, &segErr)
	assert.Equal(t, "ctrl+banana", segErr.Segment)
}
