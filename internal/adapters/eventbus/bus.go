// Package eventbus is an in-process key event stream that plays the host role for
// shortcut registrations: listeners are added and removed by identity and every
// dispatched event is delivered to them in registration order.
package eventbus

import (
	"sync"

	"github.com/renato0307/chord/internal/domain"
	"github.com/renato0307/chord/internal/logging"
	"github.com/renato0307/chord/internal/ports"
)

// Bus delivers key events to its listeners, then to an optional parent bus
type Bus struct {
	listeners []ports.KeyListener
	mu        sync.Mutex
	name      string
	parent    *Bus
}

// Verify interface compliance at compile time
var _ ports.EventSource = (*Bus)(nil)

// New creates a Bus. The name only appears in logs.
func New(name string) *Bus {
	return &Bus{name: name}
}

// NewChild creates a Bus whose events continue to b unless propagation is stopped
func (b *Bus) NewChild(name string) *Bus {
	return &Bus{name: name, parent: b}
}

// AddListener subscribes a listener. Adding the same listener twice is a no-op.
func (b *Bus) AddListener(listener ports.KeyListener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, l := range b.listeners {
		if l == listener {
			return
		}
	}
	b.listeners = append(b.listeners, listener)
	logging.Logger.Debug("Key listener added", "bus", b.name, "listeners", len(b.listeners))
}

// RemoveListener unsubscribes exactly the given listener, if present
func (b *Bus) RemoveListener(listener ports.KeyListener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, l := range b.listeners {
		if l == listener {
			b.listeners = append(b.listeners[:i:i], b.listeners[i+1:]...)
			logging.Logger.Debug("Key listener removed", "bus", b.name, "listeners", len(b.listeners))
			return
		}
	}
}

// ListenerCount returns the number of subscribed listeners
func (b *Bus) ListenerCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners)
}

// Dispatch delivers the event synchronously and returns it once processing finished.
// After Dispatch returns, PreventDefault and StopPropagation no longer have any effect.
func (b *Bus) Dispatch(event *Event) *Event {
	b.deliver(event)
	event.finish()
	return event
}

func (b *Bus) deliver(event *Event) {
	b.mu.Lock()
	snapshot := make([]ports.KeyListener, len(b.listeners))
	copy(snapshot, b.listeners)
	b.mu.Unlock()

	// All listeners on the same bus see the event; stopPropagation only cuts the parent
	for _, l := range snapshot {
		l.HandleKeyEvent(event)
	}

	if b.parent != nil && !event.PropagationStopped() {
		b.parent.deliver(event)
	}
}

// ListenerFunc adapts a function to ports.KeyListener. Use a pointer so identity holds.
type ListenerFunc struct {
	Fn func(event *Event)
}

// HandleKeyEvent implements ports.KeyListener
func (f *ListenerFunc) HandleKeyEvent(event domain.KeyEvent) {
	if e, ok := event.(*Event); ok {
		f.Fn(e)
	}
}
