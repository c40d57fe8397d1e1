package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/chord/internal/domain"
)

func newTestModel(t *testing.T, cfg ModelConfig) *Model {
	t.Helper()
	if cfg.Keymap.Name == "" {
		cfg.Keymap = DefaultKeymap()
	}
	m, err := NewModel(cfg)
	require.NoError(t, err)
	t.Cleanup(m.Close)
	return m
}

func press(t *testing.T, m *Model, msg tea.KeyMsg) tea.Cmd {
	t.Helper()
	_, cmd := m.Update(msg)
	return cmd
}

func ctrl(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_SaveShortcut(t *testing.T) {
	m := newTestModel(t, ModelConfig{})

	press(t, m, ctrl(tea.KeyCtrlS))

	assert.Equal(t, "Document saved! (Ctrl+S pressed)", m.Message())
	require.Len(t, m.events, 1)
	assert.Equal(t, ActionSave, m.events[0].fired)
	assert.True(t, m.events[0].prevented)
	assert.True(t, m.events[0].propagated)
}

func TestModel_SaveStopsPropagation(t *testing.T) {
	m := newTestModel(t, ModelConfig{StopPropagation: true})

	press(t, m, ctrl(tea.KeyCtrlS))

	require.Len(t, m.events, 1)
	assert.False(t, m.events[0].propagated)
}

func TestModel_CounterShortcuts(t *testing.T) {
	m := newTestModel(t, ModelConfig{})

	press(t, m, ctrl(tea.KeyCtrlY))
	press(t, m, ctrl(tea.KeyCtrlY))
	press(t, m, ctrl(tea.KeyCtrlZ))
	assert.Equal(t, 1, m.Count())
	assert.Equal(t, "Undo! Count decreased", m.Message())

	press(t, m, ctrl(tea.KeyCtrlZ))
	press(t, m, ctrl(tea.KeyCtrlZ))
	assert.Equal(t, 0, m.Count())

	press(t, m, ctrl(tea.KeyCtrlY))
	press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.Equal(t, 0, m.Count())
	assert.Equal(t, "Reset! Count set to 0", m.Message())
}

func TestModel_EscapeClearsMessageLater(t *testing.T) {
	m := newTestModel(t, ModelConfig{})

	cmd := press(t, m, ctrl(tea.KeyEsc))
	assert.Equal(t, "Escape pressed - clearing message", m.Message())
	assert.NotNil(t, cmd)

	m.Update(clearMessageMsg{generation: m.generation})
	assert.Equal(t, idleMessage, m.Message())
}

func TestModel_StaleClearIsIgnored(t *testing.T) {
	m := newTestModel(t, ModelConfig{})

	press(t, m, ctrl(tea.KeyEsc))
	stale := m.generation
	press(t, m, ctrl(tea.KeyCtrlS))

	m.Update(clearMessageMsg{generation: stale})
	assert.Equal(t, "Document saved! (Ctrl+S pressed)", m.Message())
}

func TestModel_InputSuppressesShortcuts(t *testing.T) {
	m := newTestModel(t, ModelConfig{})

	press(t, m, ctrl(tea.KeyTab))
	require.True(t, m.input.Focused())

	press(t, m, runes("a"))
	press(t, m, ctrl(tea.KeyCtrlY))
	press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	assert.Equal(t, 0, m.Count())
	assert.Equal(t, idleMessage, m.Message())
	assert.Equal(t, "a ", m.input.Value())
	last := m.events[len(m.events)-1]
	assert.True(t, last.suppressed)
	assert.Equal(t, "INPUT", last.origin)

	press(t, m, ctrl(tea.KeyEsc))
	assert.False(t, m.input.Focused())
	assert.Equal(t, idleMessage, m.Message())
}

func TestModel_QuitWhenNotPrevented(t *testing.T) {
	m := newTestModel(t, ModelConfig{})

	cmd := press(t, m, runes("q"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_ForceQuit(t *testing.T) {
	m := newTestModel(t, ModelConfig{})

	cmd := press(t, m, ctrl(tea.KeyCtrlC))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.events)
}

func TestModel_ShortcutPreventsTesterKey(t *testing.T) {
	keymap := domain.Keymap{
		Name:    "greedy",
		Entries: []domain.KeymapEntry{{Shortcut: "q", Action: ActionRedo}},
	}
	m := newTestModel(t, ModelConfig{Keymap: keymap})

	cmd := press(t, m, runes("q"))

	assert.Equal(t, 1, m.Count())
	if cmd != nil {
		assert.NotEqual(t, tea.QuitMsg{}, cmd())
	}
}

func TestModel_KeymapReload(t *testing.T) {
	m := newTestModel(t, ModelConfig{})

	m.Update(KeymapChangedMsg{Keymap: domain.Keymap{
		Name:    "alt",
		Entries: []domain.KeymapEntry{{Shortcut: "ctrl+u", Action: ActionRedo}},
	}})
	assert.Contains(t, m.Message(), `"alt" reloaded`)

	press(t, m, ctrl(tea.KeyCtrlU))
	press(t, m, ctrl(tea.KeyCtrlY))
	assert.Equal(t, 1, m.Count())
	assert.Equal(t, "alt", m.keymap.Name)
}

func TestModel_KeymapReloadRejectsUnknownAction(t *testing.T) {
	m := newTestModel(t, ModelConfig{})

	m.Update(KeymapChangedMsg{Keymap: domain.Keymap{
		Name:    "broken",
		Entries: []domain.KeymapEntry{{Shortcut: "ctrl+u", Action: "explode"}},
	}})

	assert.Contains(t, m.Message(), "Keymap rejected")
	assert.Equal(t, "default", m.keymap.Name)

	press(t, m, ctrl(tea.KeyCtrlY))
	assert.Equal(t, 1, m.Count())
}

func TestNewModel_Errors(t *testing.T) {
	_, err := NewModel(ModelConfig{Keymap: domain.Keymap{
		Name:    "bad",
		Entries: []domain.KeymapEntry{{Shortcut: "f1", Action: "missing"}},
	}})
	assert.ErrorIs(t, err, domain.ErrUnknownAction)

	_, err = NewModel(ModelConfig{Keymap: DefaultKeymap(), Policy: "loose"})
	assert.ErrorIs(t, err, domain.ErrInvalidPolicy)
}

func TestModel_StrictPolicy(t *testing.T) {
	keymap := domain.Keymap{
		Name:    "mac",
		Entries: []domain.KeymapEntry{{Shortcut: "alt+r", Action: ActionRedo}},
	}
	m := newTestModel(t, ModelConfig{Keymap: keymap, Policy: domain.PolicyStrict})

	press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}, Alt: true})

	assert.Equal(t, 1, m.Count())
}

func TestModel_View(t *testing.T) {
	m := newTestModel(t, ModelConfig{SessionID: "0123456789abcdef"})
	press(t, m, ctrl(tea.KeyCtrlY))

	view := m.View()

	assert.Contains(t, view, "Count:")
	assert.Contains(t, view, "Redo! Count increased")
	assert.Contains(t, view, "ctrl+z")
	assert.Contains(t, view, "Increase count")
	assert.Contains(t, view, "01234567")
	assert.Contains(t, view, "→ redo")
}
