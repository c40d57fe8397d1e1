package shortcut

import "github.com/renato0307/chord/internal/domain"

type testEvent struct {
	alt    bool
	code   domain.KeyCode
	ctrl   bool
	meta   bool
	shift  bool
	target domain.Element
}

func (e testEvent) KeyCode() domain.KeyCode { return e.code }
func (e testEvent) ShiftKey() bool          { return e.shift }
func (e testEvent) CtrlKey() bool           { return e.ctrl }
func (e testEvent) AltKey() bool            { return e.alt }
func (e testEvent) MetaKey() bool           { return e.meta }
func (e testEvent) Target() domain.Element  { return e.target }
func (e testEvent) PreventDefault()         {}
func (e testEvent) StopPropagation()        {}
