// Package terminal turns bubbletea key messages into key events for the shortcut engine.
package terminal

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/chord/internal/adapters/eventbus"
	"github.com/renato0307/chord/internal/domain"
	"github.com/renato0307/chord/internal/keys"
)

// press is a key code plus the modifiers the terminal encoded into the key type
type press struct {
	code  domain.KeyCode
	ctrl  bool
	shift bool
}

// specialKeys covers the non-rune key types bubbletea reports
var specialKeys = map[tea.KeyType]press{
	tea.KeyEsc:       {code: keys.Escape},
	tea.KeyBackspace: {code: keys.Backspace},
	tea.KeySpace:     {code: keys.Space},
	tea.KeyDelete:    {code: keys.Delete},
	tea.KeyInsert:    {code: keys.Insert},
	tea.KeyHome:      {code: keys.Home},
	tea.KeyEnd:       {code: keys.End},
	tea.KeyPgUp:      {code: keys.PageUp},
	tea.KeyPgDown:    {code: keys.PageDown},
	tea.KeyUp:        {code: keys.Up},
	tea.KeyDown:      {code: keys.Down},
	tea.KeyLeft:      {code: keys.Left},
	tea.KeyRight:     {code: keys.Right},
	tea.KeyShiftTab:  {code: keys.Tab, shift: true},

	tea.KeyShiftUp:    {code: keys.Up, shift: true},
	tea.KeyShiftDown:  {code: keys.Down, shift: true},
	tea.KeyShiftLeft:  {code: keys.Left, shift: true},
	tea.KeyShiftRight: {code: keys.Right, shift: true},
	tea.KeyShiftHome:  {code: keys.Home, shift: true},
	tea.KeyShiftEnd:   {code: keys.End, shift: true},

	tea.KeyCtrlUp:     {code: keys.Up, ctrl: true},
	tea.KeyCtrlDown:   {code: keys.Down, ctrl: true},
	tea.KeyCtrlLeft:   {code: keys.Left, ctrl: true},
	tea.KeyCtrlRight:  {code: keys.Right, ctrl: true},
	tea.KeyCtrlHome:   {code: keys.Home, ctrl: true},
	tea.KeyCtrlEnd:    {code: keys.End, ctrl: true},
	tea.KeyCtrlPgUp:   {code: keys.PageUp, ctrl: true},
	tea.KeyCtrlPgDown: {code: keys.PageDown, ctrl: true},

	tea.KeyCtrlShiftUp:    {code: keys.Up, ctrl: true, shift: true},
	tea.KeyCtrlShiftDown:  {code: keys.Down, ctrl: true, shift: true},
	tea.KeyCtrlShiftLeft:  {code: keys.Left, ctrl: true, shift: true},
	tea.KeyCtrlShiftRight: {code: keys.Right, ctrl: true, shift: true},
	tea.KeyCtrlShiftHome:  {code: keys.Home, ctrl: true, shift: true},
	tea.KeyCtrlShiftEnd:   {code: keys.End, ctrl: true, shift: true},

	tea.KeyF1:  {code: keys.FunctionKeyBase + 1},
	tea.KeyF2:  {code: keys.FunctionKeyBase + 2},
	tea.KeyF3:  {code: keys.FunctionKeyBase + 3},
	tea.KeyF4:  {code: keys.FunctionKeyBase + 4},
	tea.KeyF5:  {code: keys.FunctionKeyBase + 5},
	tea.KeyF6:  {code: keys.FunctionKeyBase + 6},
	tea.KeyF7:  {code: keys.FunctionKeyBase + 7},
	tea.KeyF8:  {code: keys.FunctionKeyBase + 8},
	tea.KeyF9:  {code: keys.FunctionKeyBase + 9},
	tea.KeyF10: {code: keys.FunctionKeyBase + 10},
	tea.KeyF11: {code: keys.FunctionKeyBase + 11},
	tea.KeyF12: {code: keys.FunctionKeyBase + 12},
	tea.KeyF13: {code: keys.FunctionKeyBase + 13},
	tea.KeyF14: {code: keys.FunctionKeyBase + 14},
	tea.KeyF15: {code: keys.FunctionKeyBase + 15},
	tea.KeyF16: {code: keys.FunctionKeyBase + 16},
	tea.KeyF17: {code: keys.FunctionKeyBase + 17},
	tea.KeyF18: {code: keys.FunctionKeyBase + 18},
	tea.KeyF19: {code: keys.FunctionKeyBase + 19},
	tea.KeyF20: {code: keys.FunctionKeyBase + 20},
}

// shiftedSymbols maps symbols typed with shift on a US layout to their unshifted key,
// so pressing "!" arrives like a browser keydown for shift+1
var shiftedSymbols = map[rune]rune{
	'!': '1', '@': '2', '#': '3', '$': '4', '%': '5',
	'^': '6', '&': '7', '*': '8', '(': '9', ')': '0',
	'_': '-', '+': '=', '{': '[', '}': ']', '|': '\\',
	':': ';', '"': '\'', '<': ',', '>': '.', '?': '/', '~': '`',
}

// Translate converts a key message into an event originating from origin.
// It reports false for messages with no single key code, such as pastes or
// multi-rune input.
//
// Terminals cannot report the meta (Cmd) key, so MetaKey is always false and
// alt is taken from the escape prefix bubbletea records in msg.Alt.
func Translate(msg tea.KeyMsg, origin domain.Element) (*eventbus.Event, bool) {
	if msg.Paste {
		return nil, false
	}

	p, ok := resolve(msg)
	if !ok {
		return nil, false
	}

	event := eventbus.NewEvent(p.code, origin).WithModifiers(p.shift, p.ctrl, msg.Alt, false)
	return event, true
}

func resolve(msg tea.KeyMsg) (press, bool) {
	switch {
	case msg.Type == tea.KeyRunes:
		return resolveRunes(msg.Runes)
	case msg.Type == tea.KeyTab:
		return press{code: keys.Tab}, true
	case msg.Type == tea.KeyEnter:
		return press{code: keys.Enter}, true
	case msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ:
		return press{code: domain.KeyCode('A' + int(msg.Type-tea.KeyCtrlA)), ctrl: true}, true
	}

	p, ok := specialKeys[msg.Type]
	return p, ok
}

func resolveRunes(runes []rune) (press, bool) {
	if len(runes) != 1 {
		return press{}, false
	}
	r := runes[0]
	if r == ' ' {
		return press{code: keys.Space}, true
	}

	shift := unicode.IsUpper(r)
	if base, ok := shiftedSymbols[r]; ok {
		r, shift = base, true
	}

	code := keys.Resolve(string(r))
	if code == domain.KeyNone {
		return press{}, false
	}
	return press{code: code, shift: shift}, true
}

// Describe renders an event in shortcut syntax, e.g. "ctrl+shift+s"
func Describe(event domain.KeyEvent) string {
	set := domain.NewModifierSet()
	if event.CtrlKey() {
		set = set.With(domain.ModCtrl)
	}
	if event.AltKey() {
		set = set.With(domain.ModAlt)
	}
	if event.ShiftKey() {
		set = set.With(domain.ModShift)
	}
	if event.MetaKey() {
		set = set.With(domain.ModMeta)
	}

	name := keys.Name(event.KeyCode())
	if set.IsEmpty() {
		return name
	}
	return set.String() + "+" + name
}
