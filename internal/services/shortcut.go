package services

import (
	"sync"
	"sync/atomic"

	"github.com/renato0307/chord/internal/domain"
	"github.com/renato0307/chord/internal/logging"
	"github.com/renato0307/chord/internal/ports"
	"github.com/renato0307/chord/internal/shortcut"
)

// ShortcutService registers shortcut handlers on a key event source
type ShortcutService struct {
	source ports.EventSource
}

// NewShortcutService creates a new ShortcutService
func NewShortcutService(source ports.EventSource) *ShortcutService {
	return &ShortcutService{
		source: source,
	}
}

// RegisterShortcut parses description once and subscribes a listener that invokes
// handler on the first matching combination.
// A nil handler is a programming error and panics.
func (s *ShortcutService) RegisterShortcut(
	description string,
	handler domain.Handler,
	opts domain.ShortcutOptions,
) *ShortcutRegistration {
	mustHandler(handler, description)

	r := &ShortcutRegistration{source: s.source}
	r.handler.Store(&handler)
	r.state.Store(newSingleState(description, opts))

	s.source.AddListener(r)
	logging.Logger.Debug("Shortcut registered",
		"shortcut", description,
		"combinations", len(r.Combinations()),
		"prevent_default", opts.PreventDefault,
		"stop_propagation", opts.StopPropagation,
		"enabled", opts.Enabled)

	return r
}

// RegisterShortcuts flattens mapping into bindings, in mapping order and then alternative
// order, and subscribes a listener that invokes the first matching binding's handler.
// A matched event always has its default action prevented.
func (s *ShortcutService) RegisterShortcuts(
	mapping domain.ShortcutMap,
	opts domain.ShortcutsOptions,
) *ShortcutsRegistration {
	for _, e := range mapping {
		mustHandler(e.Handler, e.Description)
	}

	r := &ShortcutsRegistration{source: s.source}
	r.state.Store(newMultiState(mapping, nil, opts))

	s.source.AddListener(r)
	logging.Logger.Debug("Shortcuts registered",
		"shortcuts", len(mapping),
		"bindings", len(r.Bindings()),
		"enabled", opts.Enabled)

	return r
}

func mustHandler(handler domain.Handler, description string) {
	if handler == nil {
		panic("shortcut: nil handler for " + description)
	}
}

// singleState is swapped as a whole whenever the description or options change
type singleState struct {
	combos      []domain.KeyCombination
	description string
	opts        domain.ShortcutOptions
}

func newSingleState(description string, opts domain.ShortcutOptions) *singleState {
	return &singleState{
		combos:      shortcut.Parse(description),
		description: description,
		opts:        opts,
	}
}

// ShortcutRegistration is the listener behind RegisterShortcut.
// The handler lives in its own slot so it can be replaced without re-subscribing.
type ShortcutRegistration struct {
	detachOnce sync.Once
	detached   atomic.Bool
	handler    atomic.Pointer[domain.Handler]
	source     ports.EventSource
	state      atomic.Pointer[singleState]
}

// Verify interface compliance at compile time
var _ ports.KeyListener = (*ShortcutRegistration)(nil)

// HandleKeyEvent implements ports.KeyListener
func (r *ShortcutRegistration) HandleKeyEvent(event domain.KeyEvent) {
	if r.detached.Load() {
		return
	}
	st := r.state.Load()
	if !st.opts.Enabled {
		return
	}
	if shortcut.Suppressed(event.Target()) {
		return
	}

	combo, ok := shortcut.Match(st.combos, event, st.opts.Policy)
	if !ok {
		return
	}

	if st.opts.PreventDefault {
		event.PreventDefault()
	}
	if st.opts.StopPropagation {
		event.StopPropagation()
	}

	logging.Logger.Debug("Shortcut matched", "shortcut", combo.Source, "key", int(combo.Key))
	(*r.handler.Load())(event)
}

// SetHandler replaces the handler invoked on the next match
func (r *ShortcutRegistration) SetHandler(handler domain.Handler) {
	mustHandler(handler, r.Description())
	r.handler.Store(&handler)
}

// SetDescription re-parses only when the description text changed
func (r *ShortcutRegistration) SetDescription(description string) {
	cur := r.state.Load()
	if cur.description == description {
		return
	}
	r.state.Store(newSingleState(description, cur.opts))
}

// SetOptions replaces the options, keeping the parsed combinations
func (r *ShortcutRegistration) SetOptions(opts domain.ShortcutOptions) {
	cur := r.state.Load()
	r.state.Store(&singleState{combos: cur.combos, description: cur.description, opts: opts})
}

// SetEnabled toggles matching without detaching
func (r *ShortcutRegistration) SetEnabled(enabled bool) {
	opts := r.Options()
	opts.Enabled = enabled
	r.SetOptions(opts)
}

// Description returns the current description
func (r *ShortcutRegistration) Description() string {
	return r.state.Load().description
}

// Combinations returns the parsed combinations
func (r *ShortcutRegistration) Combinations() []domain.KeyCombination {
	combos := r.state.Load().combos
	out := make([]domain.KeyCombination, len(combos))
	copy(out, combos)
	return out
}

// Options returns the current options
func (r *ShortcutRegistration) Options() domain.ShortcutOptions {
	return r.state.Load().opts
}

// Detach unsubscribes the listener. Safe to call more than once.
func (r *ShortcutRegistration) Detach() {
	r.detachOnce.Do(func() {
		r.detached.Store(true)
		r.source.RemoveListener(r)
		logging.Logger.Debug("Shortcut detached", "shortcut", r.Description())
	})
}

// multiState keeps per-entry combinations so handler-only changes skip re-parsing
type multiState struct {
	bindings []domain.ShortcutBinding
	combos   [][]domain.KeyCombination
	mapping  domain.ShortcutMap
	opts     domain.ShortcutsOptions
}

func newMultiState(mapping domain.ShortcutMap, combos [][]domain.KeyCombination, opts domain.ShortcutsOptions) *multiState {
	if combos == nil {
		combos = make([][]domain.KeyCombination, len(mapping))
		for i, e := range mapping {
			combos[i] = shortcut.Parse(e.Description)
		}
	}

	var bindings []domain.ShortcutBinding
	for i, e := range mapping {
		for _, c := range combos[i] {
			bindings = append(bindings, domain.ShortcutBinding{KeyCombination: c, Handler: e.Handler})
		}
	}

	return &multiState{
		bindings: bindings,
		combos:   combos,
		mapping:  mapping,
		opts:     opts,
	}
}

// ShortcutsRegistration is the listener behind RegisterShortcuts
type ShortcutsRegistration struct {
	detachOnce sync.Once
	detached   atomic.Bool
	source     ports.EventSource
	state      atomic.Pointer[multiState]
}

// Verify interface compliance at compile time
var _ ports.KeyListener = (*ShortcutsRegistration)(nil)

// HandleKeyEvent implements ports.KeyListener
func (r *ShortcutsRegistration) HandleKeyEvent(event domain.KeyEvent) {
	if r.detached.Load() {
		return
	}
	st := r.state.Load()
	if !st.opts.Enabled {
		return
	}
	if shortcut.Suppressed(event.Target()) {
		return
	}

	binding, ok := shortcut.MatchBinding(st.bindings, event, st.opts.Policy)
	if !ok {
		return
	}

	event.PreventDefault()
	logging.Logger.Debug("Shortcut matched", "shortcut", binding.Source, "key", int(binding.Key))
	binding.Handler(event)
}

// SetMapping replaces the mapping used on the next event. Combinations are reused when
// the descriptions are unchanged, so swapping handlers never re-parses.
func (r *ShortcutsRegistration) SetMapping(mapping domain.ShortcutMap) {
	for _, e := range mapping {
		mustHandler(e.Handler, e.Description)
	}

	cur := r.state.Load()
	if cur.mapping.SameDescriptions(mapping) {
		r.state.Store(newMultiState(mapping, cur.combos, cur.opts))
		return
	}
	r.state.Store(newMultiState(mapping, nil, cur.opts))
	logging.Logger.Debug("Shortcut mapping replaced", "shortcuts", len(mapping))
}

// SetEnabled toggles matching without detaching
func (r *ShortcutsRegistration) SetEnabled(enabled bool) {
	cur := r.state.Load()
	opts := cur.opts
	opts.Enabled = enabled
	r.state.Store(&multiState{bindings: cur.bindings, combos: cur.combos, mapping: cur.mapping, opts: opts})
}

// Bindings returns the flattened bindings in match order
func (r *ShortcutsRegistration) Bindings() []domain.ShortcutBinding {
	bindings := r.state.Load().bindings
	out := make([]domain.ShortcutBinding, len(bindings))
	copy(out, bindings)
	return out
}

// Options returns the current options
func (r *ShortcutsRegistration) Options() domain.ShortcutsOptions {
	return r.state.Load().opts
}

// Detach unsubscribes the listener. Safe to call more than once.
func (r *ShortcutsRegistration) Detach() {
	r.detachOnce.Do(func() {
		r.detached.Store(true)
		r.source.RemoveListener(r)
		logging.Logger.Debug("Shortcuts detached", "bindings", len(r.Bindings()))
	})
}
