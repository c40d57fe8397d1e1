package eventbus

import (
	"sync"

	"github.com/renato0307/chord/internal/domain"
)

// Event is a key press travelling through a Bus.
// PreventDefault and StopPropagation latch once and are ignored after dispatch completes.
type Event struct {
	Alt    bool
	Code   domain.KeyCode
	Ctrl   bool
	Meta   bool
	Origin domain.Element
	Shift  bool

	mu                 sync.Mutex
	defaultPrevented   bool
	dispatched         bool
	propagationStopped bool
}

// Verify interface compliance at compile time
var _ domain.KeyEvent = (*Event)(nil)

// NewEvent creates an event for code originating from origin
func NewEvent(code domain.KeyCode, origin domain.Element) *Event {
	return &Event{Code: code, Origin: origin}
}

// WithModifiers sets the held modifier flags and returns the event
func (e *Event) WithModifiers(shift, ctrl, alt, meta bool) *Event {
	e.Shift, e.Ctrl, e.Alt, e.Meta = shift, ctrl, alt, meta
	return e
}

func (e *Event) KeyCode() domain.KeyCode { return e.Code }
func (e *Event) ShiftKey() bool          { return e.Shift }
func (e *Event) CtrlKey() bool           { return e.Ctrl }
func (e *Event) AltKey() bool            { return e.Alt }
func (e *Event) MetaKey() bool           { return e.Meta }
func (e *Event) Target() domain.Element  { return e.Origin }

// PreventDefault marks the host's default action as cancelled
func (e *Event) PreventDefault() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.dispatched {
		e.defaultPrevented = true
	}
}

// StopPropagation keeps the event from reaching the parent stage
func (e *Event) StopPropagation() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.dispatched {
		e.propagationStopped = true
	}
}

// DefaultPrevented reports whether a listener cancelled the default action
func (e *Event) DefaultPrevented() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.defaultPrevented
}

// PropagationStopped reports whether a listener stopped propagation
func (e *Event) PropagationStopped() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.propagationStopped
}

func (e *Event) finish() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.dispatched = true
}
