package services

import (
	"fmt"
	"sync"

	"github.com/renato0307/chord/internal/domain"
)

// ActionRegistry resolves keymap action names to handlers.
// Registration order is kept so listings are stable.
type ActionRegistry struct {
	actions  map[string]registeredAction
	mu       sync.RWMutex
	ordering []string
}

type registeredAction struct {
	action  domain.Action
	handler domain.Handler
}

// NewActionRegistry creates an empty registry
func NewActionRegistry() *ActionRegistry {
	return &ActionRegistry{
		actions: make(map[string]registeredAction),
	}
}

// Register adds or replaces an action. Replacing keeps the original position.
func (r *ActionRegistry) Register(name, description string, handler domain.Handler) {
	mustHandler(handler, name)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.actions[name]; !exists {
		r.ordering = append(r.ordering, name)
	}
	r.actions[name] = registeredAction{
		action:  domain.Action{Name: name, Description: description},
		handler: handler,
	}
}

// Handler returns the handler registered under name
func (r *ActionRegistry) Handler(name string) (domain.Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.actions[name]
	if !ok {
		return nil, false
	}
	return a.handler, true
}

// Actions returns the registered actions in registration order
func (r *ActionRegistry) Actions() []domain.Action {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Action, 0, len(r.ordering))
	for _, name := range r.ordering {
		out = append(out, r.actions[name].action)
	}
	return out
}

// Compile turns a keymap into a ShortcutMap, keeping entry order.
// Every entry must name a registered action.
func (r *ActionRegistry) Compile(keymap domain.Keymap) (domain.ShortcutMap, error) {
	mapping := make(domain.ShortcutMap, 0, len(keymap.Entries))
	for _, e := range keymap.Entries {
		handler, ok := r.Handler(e.Action)
		if !ok {
			return nil, fmt.Errorf("%w: %q (shortcut %q)", domain.ErrUnknownAction, e.Action, e.Shortcut)
		}
		mapping = mapping.Add(e.Shortcut, handler)
	}
	return mapping, nil
}
