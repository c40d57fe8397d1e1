package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/chord/internal/config"
	"github.com/renato0307/chord/internal/domain"
)

func TestNewKeyMap_Defaults(t *testing.T) {
	keys := NewKeyMap(nil)

	assert.Equal(t, []string{"q"}, keys.Application.Quit.Binding.Keys())
	assert.Equal(t, []string{"tab"}, keys.Input.Focus.Binding.Keys())
	assert.Equal(t, "tab/esc", keys.Input.Blur.Binding.Help().Key)
}

func TestNewKeyMap_CustomKeys(t *testing.T) {
	keys := NewKeyMap(config.KeyBindingsConfig{"quit": {"x", "ctrl+q"}})

	assert.Equal(t, []string{"x", "ctrl+q"}, keys.Application.Quit.Binding.Keys())
	assert.Equal(t, "x/ctrl+q", keys.Application.Quit.Binding.Help().Key)
}

func TestKeyMap_Tips(t *testing.T) {
	tips := NewKeyMap(nil).Tips()

	require.NotEmpty(t, tips)
	assert.Contains(t, tips[0].String(), "tab")
	assert.Contains(t, RenderTip(tips[0]), "tip")
}

func TestKeyDefinitions(t *testing.T) {
	names := GetValidKeyNames()

	assert.Contains(t, names, "quit")
	assert.True(t, IsValidKeyName("help"))
	assert.False(t, IsValidKeyName("archive"))
	assert.Nil(t, GetKeyDefinition("archive"))
	assert.NoError(t, config.KeyBindingsConfig{"quit": {"x"}}.Validate(names))
}

func TestBuildBinding_UnknownPanics(t *testing.T) {
	assert.Panics(t, func() {
		buildBinding("archive", GetDefaultKeyBindings(), nil)
	})
}

func TestActionOptions(t *testing.T) {
	options := actionOptions(DemoActions())

	require.Len(t, options, len(DemoActions()))
	assert.Equal(t, ActionSave, options[0].Value)
	assert.Equal(t, "save - Save document", options[0].Key)
}

func TestKeymapForm_ValidateName(t *testing.T) {
	form := NewKeymapForm(DemoActions(), func(name string) bool { return name == "taken" })

	assert.Error(t, form.validateName(" "))
	assert.Error(t, form.validateName("taken"))
	assert.NoError(t, form.validateName("fresh"))
}

func TestDefaultKeymap_UsesKnownActions(t *testing.T) {
	known := make(map[string]bool)
	for _, a := range DemoActions() {
		known[a.Name] = true
	}
	for _, e := range DefaultKeymap().Entries {
		assert.True(t, known[e.Action], e.Action)
	}
	assert.IsType(t, domain.Keymap{}, DefaultKeymap())
}
