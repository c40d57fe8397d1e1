package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/chord/internal/adapters/eventbus"
	"github.com/renato0307/chord/internal/domain"
	"github.com/renato0307/chord/internal/keys"
	"github.com/renato0307/chord/internal/ports"
	portsmocks "github.com/renato0307/chord/internal/ports/mocks"
)

const (
	codeO domain.KeyCode = 79
	codeS domain.KeyCode = 83
)

func ctrlKey(code domain.KeyCode) *eventbus.Event {
	return eventbus.NewEvent(code, domain.TagDiv).WithModifiers(false, true, false, false)
}

type recorder struct {
	events []domain.KeyEvent
}

func (r *recorder) handle(e domain.KeyEvent) {
	r.events = append(r.events, e)
}

func TestRegisterShortcut_AddsAndRemovesSameListener(t *testing.T) {
	source := portsmocks.NewMockEventSource(t)
	var added ports.KeyListener
	source.EXPECT().AddListener(mock.Anything).Run(func(l ports.KeyListener) { added = l }).Return().Once()

	service := NewShortcutService(source)
	reg := service.RegisterShortcut("ctrl+s", func(domain.KeyEvent) {}, domain.DefaultShortcutOptions())

	source.EXPECT().RemoveListener(reg).Return().Once()
	reg.Detach()
	reg.Detach()

	assert.Same(t, reg, added)
}

func TestRegisterShortcut_CtrlS(t *testing.T) {
	bus := eventbus.New("test")
	rec := &recorder{}
	NewShortcutService(bus).RegisterShortcut("ctrl+s", rec.handle, domain.DefaultShortcutOptions())

	event := bus.Dispatch(ctrlKey(codeS))

	require.Len(t, rec.events, 1)
	assert.Same(t, event, rec.events[0])
	assert.True(t, event.DefaultPrevented())
	assert.False(t, event.PropagationStopped())
}

func TestRegisterShortcut_MissingModifierDoesNotFire(t *testing.T) {
	bus := eventbus.New("test")
	rec := &recorder{}
	NewShortcutService(bus).RegisterShortcut("ctrl+shift+s", rec.handle, domain.DefaultShortcutOptions())

	event := bus.Dispatch(ctrlKey(codeS))

	assert.Empty(t, rec.events)
	assert.False(t, event.DefaultPrevented())
}

func TestRegisterShortcut_ExtraModifierDoesNotFire(t *testing.T) {
	bus := eventbus.New("test")
	rec := &recorder{}
	NewShortcutService(bus).RegisterShortcut("ctrl+s", rec.handle, domain.DefaultShortcutOptions())

	bus.Dispatch(eventbus.NewEvent(codeS, domain.TagDiv).WithModifiers(true, true, false, false))
	bus.Dispatch(eventbus.NewEvent(codeS, domain.TagDiv))

	assert.Empty(t, rec.events)
}

func TestRegisterShortcut_EscapeOnPlainElement(t *testing.T) {
	bus := eventbus.New("test")
	rec := &recorder{}
	NewShortcutService(bus).RegisterShortcut("esc", rec.handle, domain.DefaultShortcutOptions())

	bus.Dispatch(eventbus.NewEvent(keys.Escape, domain.TagDiv))

	assert.Len(t, rec.events, 1)
}

func TestRegisterShortcut_SpecialKeys(t *testing.T) {
	tests := []struct {
		description string
		code        domain.KeyCode
	}{
		{"enter", 13},
		{"f1", 112},
		{"left", 37},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			bus := eventbus.New("test")
			rec := &recorder{}
			NewShortcutService(bus).RegisterShortcut(tt.description, rec.handle, domain.DefaultShortcutOptions())

			bus.Dispatch(eventbus.NewEvent(tt.code, nil))

			assert.Len(t, rec.events, 1)
		})
	}
}

func TestRegisterShortcut_Options(t *testing.T) {
	t.Run("preventDefault off", func(t *testing.T) {
		bus := eventbus.New("test")
		opts := domain.DefaultShortcutOptions()
		opts.PreventDefault = false
		rec := &recorder{}
		NewShortcutService(bus).RegisterShortcut("ctrl+s", rec.handle, opts)

		event := bus.Dispatch(ctrlKey(codeS))

		assert.Len(t, rec.events, 1)
		assert.False(t, event.DefaultPrevented())
	})

	t.Run("stopPropagation on", func(t *testing.T) {
		bus := eventbus.New("test")
		opts := domain.DefaultShortcutOptions()
		opts.StopPropagation = true
		NewShortcutService(bus).RegisterShortcut("ctrl+s", func(domain.KeyEvent) {}, opts)

		event := bus.Dispatch(ctrlKey(codeS))

		assert.True(t, event.PropagationStopped())
	})

	t.Run("disabled", func(t *testing.T) {
		bus := eventbus.New("test")
		opts := domain.DefaultShortcutOptions()
		opts.Enabled = false
		rec := &recorder{}
		NewShortcutService(bus).RegisterShortcut("ctrl+s", rec.handle, opts)

		event := bus.Dispatch(ctrlKey(codeS))

		assert.Empty(t, rec.events)
		assert.False(t, event.DefaultPrevented())
	})
}

func TestRegisterShortcut_SuppressedOrigins(t *testing.T) {
	for _, tag := range []domain.Tag{domain.TagInput, domain.TagTextArea, domain.TagSelect} {
		t.Run(string(tag), func(t *testing.T) {
			bus := eventbus.New("test")
			rec := &recorder{}
			NewShortcutService(bus).RegisterShortcut("ctrl+s", rec.handle, domain.DefaultShortcutOptions())

			event := bus.Dispatch(eventbus.NewEvent(codeS, tag).WithModifiers(false, true, false, false))

			assert.Empty(t, rec.events)
			assert.False(t, event.DefaultPrevented())
		})
	}
}

func TestRegisterShortcut_AlternativesFireOnce(t *testing.T) {
	bus := eventbus.New("test")
	opts := domain.DefaultShortcutOptions()
	opts.Policy = domain.PolicyStrict
	rec := &recorder{}
	reg := NewShortcutService(bus).RegisterShortcut("ctrl+s, cmd+s", rec.handle, opts)

	require.Len(t, reg.Combinations(), 2)

	bus.Dispatch(ctrlKey(codeS))
	bus.Dispatch(eventbus.NewEvent(codeS, nil).WithModifiers(false, false, false, true))

	assert.Len(t, rec.events, 2)
}

func TestRegisterShortcut_SetHandlerUsesLatest(t *testing.T) {
	source := portsmocks.NewMockEventSource(t)
	bus := eventbus.New("test")
	source.EXPECT().AddListener(mock.Anything).Run(bus.AddListener).Return().Once()

	first, second := &recorder{}, &recorder{}
	reg := NewShortcutService(source).RegisterShortcut("ctrl+s", first.handle, domain.DefaultShortcutOptions())
	reg.SetHandler(second.handle)

	bus.Dispatch(ctrlKey(codeS))

	assert.Empty(t, first.events)
	assert.Len(t, second.events, 1)
}

func TestRegisterShortcut_SetDescriptionReparses(t *testing.T) {
	bus := eventbus.New("test")
	rec := &recorder{}
	reg := NewShortcutService(bus).RegisterShortcut("ctrl+s", rec.handle, domain.DefaultShortcutOptions())
	before := reg.Combinations()

	reg.SetDescription("ctrl+s")
	assert.Equal(t, before, reg.Combinations())

	reg.SetDescription("ctrl+o")
	bus.Dispatch(ctrlKey(codeS))
	bus.Dispatch(ctrlKey(codeO))

	require.Len(t, rec.events, 1)
	assert.Equal(t, codeO, rec.events[0].KeyCode())
	assert.Equal(t, 1, bus.ListenerCount())
}

func TestRegisterShortcut_SetEnabled(t *testing.T) {
	bus := eventbus.New("test")
	rec := &recorder{}
	reg := NewShortcutService(bus).RegisterShortcut("ctrl+s", rec.handle, domain.DefaultShortcutOptions())

	reg.SetEnabled(false)
	bus.Dispatch(ctrlKey(codeS))
	reg.SetEnabled(true)
	bus.Dispatch(ctrlKey(codeS))

	assert.Len(t, rec.events, 1)
	assert.True(t, reg.Options().PreventDefault)
}

func TestRegisterShortcut_DetachIsIdempotent(t *testing.T) {
	bus := eventbus.New("test")
	rec := &recorder{}
	reg := NewShortcutService(bus).RegisterShortcut("ctrl+s", rec.handle, domain.DefaultShortcutOptions())

	reg.Detach()
	assert.NotPanics(t, reg.Detach)

	bus.Dispatch(ctrlKey(codeS))

	assert.Empty(t, rec.events)
	assert.Equal(t, 0, bus.ListenerCount())
}

func TestRegisterShortcut_DetachedListenerIgnoresLateDelivery(t *testing.T) {
	bus := eventbus.New("test")
	rec := &recorder{}
	reg := NewShortcutService(bus).RegisterShortcut("ctrl+s", rec.handle, domain.DefaultShortcutOptions())

	reg.Detach()
	reg.HandleKeyEvent(ctrlKey(codeS))

	assert.Empty(t, rec.events)
}

func TestRegisterShortcut_NilHandlerPanics(t *testing.T) {
	service := NewShortcutService(eventbus.New("test"))

	assert.Panics(t, func() {
		service.RegisterShortcut("ctrl+s", nil, domain.DefaultShortcutOptions())
	})
}

func TestRegisterShortcut_MalformedNeverMatches(t *testing.T) {
	bus := eventbus.New("test")
	rec := &recorder{}
	NewShortcutService(bus).RegisterShortcut(",", rec.handle, domain.DefaultShortcutOptions())

	bus.Dispatch(eventbus.NewEvent(domain.KeyNone, nil))
	bus.Dispatch(eventbus.NewEvent(keys.Comma, nil))

	assert.Empty(t, rec.events)
}

func TestRegisterShortcuts_RoutesToMatchingHandler(t *testing.T) {
	bus := eventbus.New("test")
	save, open := &recorder{}, &recorder{}
	mapping := domain.ShortcutMap{}.
		Add("ctrl+s", save.handle).
		Add("ctrl+o", open.handle)
	NewShortcutService(bus).RegisterShortcuts(mapping, domain.DefaultShortcutsOptions())

	event := bus.Dispatch(ctrlKey(codeO))

	assert.Empty(t, save.events)
	require.Len(t, open.events, 1)
	assert.True(t, event.DefaultPrevented())
}

func TestRegisterShortcuts_FirstMatchWins(t *testing.T) {
	bus := eventbus.New("test")
	a, b := &recorder{}, &recorder{}
	mapping := domain.ShortcutMap{}.
		Add("ctrl+s", a.handle).
		Add("ctrl+s", b.handle)
	NewShortcutService(bus).RegisterShortcuts(mapping, domain.DefaultShortcutsOptions())

	bus.Dispatch(ctrlKey(codeS))

	assert.Len(t, a.events, 1)
	assert.Empty(t, b.events)
}

func TestRegisterShortcuts_FlattensInOrder(t *testing.T) {
	noop := func(domain.KeyEvent) {}
	mapping := domain.ShortcutMap{}.
		Add("ctrl+s, cmd+s", noop).
		Add("esc", noop)
	reg := NewShortcutService(eventbus.New("test")).RegisterShortcuts(mapping, domain.DefaultShortcutsOptions())

	bindings := reg.Bindings()

	require.Len(t, bindings, 3)
	assert.Equal(t, "ctrl+s", bindings[0].Source)
	assert.Equal(t, "cmd+s", bindings[1].Source)
	assert.Equal(t, "esc", bindings[2].Source)
}

func TestRegisterShortcuts_DisabledAndSuppressed(t *testing.T) {
	bus := eventbus.New("test")
	rec := &recorder{}
	opts := domain.DefaultShortcutsOptions()
	opts.Enabled = false
	reg := NewShortcutService(bus).RegisterShortcuts(domain.ShortcutMap{}.Add("ctrl+s", rec.handle), opts)

	bus.Dispatch(ctrlKey(codeS))
	assert.Empty(t, rec.events)

	reg.SetEnabled(true)
	bus.Dispatch(eventbus.NewEvent(codeS, domain.TagInput).WithModifiers(false, true, false, false))
	assert.Empty(t, rec.events)

	bus.Dispatch(ctrlKey(codeS))
	assert.Len(t, rec.events, 1)
}

func TestRegisterShortcuts_SetMappingWithoutReattach(t *testing.T) {
	source := portsmocks.NewMockEventSource(t)
	bus := eventbus.New("test")
	source.EXPECT().AddListener(mock.Anything).Run(bus.AddListener).Return().Once()

	first, second, third := &recorder{}, &recorder{}, &recorder{}
	reg := NewShortcutService(source).RegisterShortcuts(domain.ShortcutMap{}.Add("ctrl+s", first.handle), domain.DefaultShortcutsOptions())

	reg.SetMapping(domain.ShortcutMap{}.Add("ctrl+s", second.handle))
	bus.Dispatch(ctrlKey(codeS))

	reg.SetMapping(domain.ShortcutMap{}.Add("ctrl+o", third.handle))
	bus.Dispatch(ctrlKey(codeS))
	bus.Dispatch(ctrlKey(codeO))

	assert.Empty(t, first.events)
	assert.Len(t, second.events, 1)
	assert.Len(t, third.events, 1)
}

func TestRegisterShortcuts_DetachIsIdempotent(t *testing.T) {
	bus := eventbus.New("test")
	rec := &recorder{}
	reg := NewShortcutService(bus).RegisterShortcuts(domain.ShortcutMap{}.Add("esc", rec.handle), domain.DefaultShortcutsOptions())

	reg.Detach()
	reg.Detach()
	bus.Dispatch(eventbus.NewEvent(keys.Escape, nil))

	assert.Empty(t, rec.events)
}

func TestRegisterShortcuts_NilHandlerPanics(t *testing.T) {
	service := NewShortcutService(eventbus.New("test"))

	assert.Panics(t, func() {
		service.RegisterShortcuts(domain.ShortcutMap{{Description: "esc"}}, domain.DefaultShortcutsOptions())
	})
}

func TestTwoRegistrations_BothSeeEvent(t *testing.T) {
	bus := eventbus.New("test")
	single, multi := &recorder{}, &recorder{}
	service := NewShortcutService(bus)
	service.RegisterShortcut("ctrl+s", single.handle, domain.DefaultShortcutOptions())
	service.RegisterShortcuts(domain.ShortcutMap{}.Add("ctrl+s", multi.handle), domain.DefaultShortcutsOptions())

	bus.Dispatch(ctrlKey(codeS))

	assert.Len(t, single.events, 1)
	assert.Len(t, multi.events, 1)
}
