package domain

import "strings"

// Element is the origin of a key event, classified by its tag name
type Element interface {
	TagName() string
}

// Tag is a minimal Element carrying only a tag name
type Tag string

// Common origin tags
const (
	TagBody     Tag = "BODY"
	TagDiv      Tag = "DIV"
	TagInput    Tag = "INPUT"
	TagSelect   Tag = "SELECT"
	TagTextArea Tag = "TEXTAREA"
)

// TagName implements Element
func (t Tag) TagName() string {
	return strings.ToUpper(string(t))
}

// KeyEvent is a key press delivered by the host event stream.
//
// PreventDefault and StopPropagation may be called at most once each; calls after the
// event finished dispatching have no effect.
type KeyEvent interface {
	KeyCode() KeyCode
	ShiftKey() bool
	CtrlKey() bool
	AltKey() bool
	MetaKey() bool
	Target() Element
	PreventDefault()
	StopPropagation()
}

// Handler is invoked with the event that triggered a shortcut
type Handler func(event KeyEvent)
