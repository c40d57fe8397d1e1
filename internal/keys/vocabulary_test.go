package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/chord/internal/domain"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		want domain.KeyCode
	}{
		{"enter", 13},
		{"Return", 13},
		{"ESC", 27},
		{"escape", 27},
		{"space", 32},
		{"left", 37},
		{"up", 38},
		{"right", 39},
		{"down", 40},
		{"del", 46},
		{"pageup", 33},
		{"pgdown", 34},
		{",", 188},
		{"comma", 188},
		{"plus", 187},
		{"\\", 220},
		{"f1", 112},
		{"F12", 123},
		{"f20", 131},
		{"s", 83},
		{"S", 83},
		{"1", 49},
		{"é", domain.KeyCode('É')},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.name))
		})
	}
}

func TestResolve_Unresolvable(t *testing.T) {
	for _, name := range []string{"", "foo", "f21", "\t"} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, domain.KeyNone, Resolve(name))
		})
	}
}

func TestFunctionKeysAreContiguous(t *testing.T) {
	entries := FunctionKeys()

	assert.Len(t, entries, FunctionKeyCount)
	for i, e := range entries {
		assert.Equal(t, FunctionKeyBase+domain.KeyCode(i+1), e.Code)
	}
}

func TestResolveModifier(t *testing.T) {
	tests := []struct {
		name string
		want domain.Modifier
	}{
		{"shift", domain.ModShift},
		{"⇧", domain.ModShift},
		{"CTRL", domain.ModCtrl},
		{"control", domain.ModCtrl},
		{"⌃", domain.ModCtrl},
		{"alt", domain.ModAlt},
		{"option", domain.ModAlt},
		{"⌥", domain.ModAlt},
		{"meta", domain.ModMeta},
		{"command", domain.ModMeta},
		{"cmd", domain.ModMeta},
		{"⌘", domain.ModMeta},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveModifier(tt.name)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := ResolveModifier("hyper")
	assert.False(t, ok)
}

func TestName(t *testing.T) {
	assert.Equal(t, "esc", Name(Escape))
	assert.Equal(t, "f5", Name(116))
	assert.Equal(t, "s", Name(83))
	assert.Equal(t, "comma", Name(Comma))
	assert.Equal(t, "0", Name(domain.KeyNone))
}

func TestModifiersSorted(t *testing.T) {
	mods := Modifiers()

	assert.Len(t, mods, 12)
	assert.Equal(t, domain.ModShift, mods[0].Modifier)
	assert.Equal(t, domain.ModMeta, mods[len(mods)-1].Modifier)
}
