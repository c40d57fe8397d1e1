package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModifierSet_CollapsesDuplicates(t *testing.T) {
	s := NewModifierSet(ModCtrl, ModCtrl, ModShift)

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has(ModCtrl))
	assert.True(t, s.Has(ModShift))
	assert.False(t, s.Has(ModAlt))
	assert.Equal(t, "ctrl+shift", s.String())
}

func TestModifierSet_IgnoresUnknownIdentifiers(t *testing.T) {
	s := NewModifierSet(Modifier(42))

	assert.True(t, s.IsEmpty())
	assert.False(t, s.Has(Modifier(42)))
	assert.Equal(t, "", s.String())
}

func TestModifierSet_ContainsAll(t *testing.T) {
	tests := []struct {
		name  string
		set   ModifierSet
		other ModifierSet
		want  bool
	}{
		{"empty contains empty", 0, 0, true},
		{"superset", NewModifierSet(ModCtrl, ModShift), NewModifierSet(ModCtrl), true},
		{"missing member", NewModifierSet(ModCtrl), NewModifierSet(ModCtrl, ModAlt), false},
		{"disjoint", NewModifierSet(ModMeta), NewModifierSet(ModAlt), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.set.ContainsAll(tt.other))
		})
	}
}

func TestModifierSet_ModifiersDisplayOrder(t *testing.T) {
	s := NewModifierSet(ModMeta, ModShift, ModAlt, ModCtrl)

	assert.Equal(t, []Modifier{ModCtrl, ModAlt, ModShift, ModMeta}, s.Modifiers())
}

func TestParseModifierPolicy(t *testing.T) {
	p, err := ParseModifierPolicy("")
	require.NoError(t, err)
	assert.Equal(t, PolicyMetaAsControl, p)

	p, err = ParseModifierPolicy("strict")
	require.NoError(t, err)
	assert.Equal(t, PolicyStrict, p)

	_, err = ParseModifierPolicy("loose")
	require.ErrorIs(t, err, ErrInvalidPolicy)
}

func TestShortcutMap_SameDescriptions(t *testing.T) {
	noop := func(KeyEvent) {}
	a := ShortcutMap{}.Add("ctrl+s", noop).Add("esc", noop)
	b := ShortcutMap{}.Add("ctrl+s", func(KeyEvent) {}).Add("esc", noop)
	c := ShortcutMap{}.Add("esc", noop).Add("ctrl+s", noop)

	assert.True(t, a.SameDescriptions(b))
	assert.False(t, a.SameDescriptions(c))
	assert.Equal(t, []string{"ctrl+s", "esc"}, a.Descriptions())
}

func TestTag_TagNameIsUppercase(t *testing.T) {
	assert.Equal(t, "INPUT", Tag("input").TagName())
	assert.Equal(t, "TEXTAREA", TagTextArea.TagName())
}
