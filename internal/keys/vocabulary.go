// Package keys holds the static tables that turn key and modifier names into numeric codes.
package keys

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/renato0307/chord/internal/domain"
)

// Named key codes
const (
	Backspace domain.KeyCode = 8
	Tab       domain.KeyCode = 9
	Clear     domain.KeyCode = 12
	Enter     domain.KeyCode = 13
	Escape    domain.KeyCode = 27
	Space     domain.KeyCode = 32
	PageUp    domain.KeyCode = 33
	PageDown  domain.KeyCode = 34
	End       domain.KeyCode = 35
	Home      domain.KeyCode = 36
	Left      domain.KeyCode = 37
	Up        domain.KeyCode = 38
	Right     domain.KeyCode = 39
	Down      domain.KeyCode = 40
	Insert    domain.KeyCode = 45
	Delete    domain.KeyCode = 46

	Semicolon    domain.KeyCode = 186
	Equal        domain.KeyCode = 187
	Comma        domain.KeyCode = 188
	Minus        domain.KeyCode = 189
	Period       domain.KeyCode = 190
	Slash        domain.KeyCode = 191
	Backquote    domain.KeyCode = 192
	BracketLeft  domain.KeyCode = 219
	Backslash    domain.KeyCode = 220
	BracketRight domain.KeyCode = 221
	Quote        domain.KeyCode = 222
)

// FunctionKeyBase is the code preceding f1 (f1 = base+1)
const FunctionKeyBase domain.KeyCode = 111

// FunctionKeyCount is the number of generated function keys
const FunctionKeyCount = 20

// namedKeys maps lowercase key names to codes
var namedKeys = map[string]domain.KeyCode{
	"backspace": Backspace,
	"tab":       Tab,
	"clear":     Clear,
	"enter":     Enter,
	"return":    Enter,
	"esc":       Escape,
	"escape":    Escape,
	"space":     Space,
	"left":      Left,
	"up":        Up,
	"right":     Right,
	"down":      Down,
	"ins":       Insert,
	"insert":    Insert,
	"del":       Delete,
	"delete":    Delete,
	"home":      Home,
	"end":       End,
	"pageup":    PageUp,
	"pgup":      PageUp,
	"pagedown":  PageDown,
	"pgdown":    PageDown,
	",":         Comma,
	"comma":     Comma,
	".":         Period,
	"/":         Slash,
	"`":         Backquote,
	"-":         Minus,
	"=":         Equal,
	"plus":      Equal,
	";":         Semicolon,
	"'":         Quote,
	"[":         BracketLeft,
	"]":         BracketRight,
	"\\":        Backslash,
}

// functionKeys is generated once for f1..f20
var functionKeys = buildFunctionKeys()

func buildFunctionKeys() map[string]domain.KeyCode {
	table := make(map[string]domain.KeyCode, FunctionKeyCount)
	for i := 1; i <= FunctionKeyCount; i++ {
		table[fmt.Sprintf("f%d", i)] = FunctionKeyBase + domain.KeyCode(i)
	}
	return table
}

// modifierNames maps modifier names and symbols to identifiers
var modifierNames = map[string]domain.Modifier{
	"⇧":       domain.ModShift,
	"shift":   domain.ModShift,
	"⌥":       domain.ModAlt,
	"alt":     domain.ModAlt,
	"option":  domain.ModAlt,
	"⌃":       domain.ModCtrl,
	"ctrl":    domain.ModCtrl,
	"control": domain.ModCtrl,
	"⌘":       domain.ModMeta,
	"cmd":     domain.ModMeta,
	"command": domain.ModMeta,
	"meta":    domain.ModMeta,
}

// canonicalNames is the preferred display name per code
var canonicalNames = map[domain.KeyCode]string{
	Backspace:    "backspace",
	Tab:          "tab",
	Clear:        "clear",
	Enter:        "enter",
	Escape:       "esc",
	Space:        "space",
	PageUp:       "pageup",
	PageDown:     "pagedown",
	End:          "end",
	Home:         "home",
	Left:         "left",
	Up:           "up",
	Right:        "right",
	Down:         "down",
	Insert:       "insert",
	Delete:       "delete",
	Semicolon:    ";",
	Equal:        "=",
	Comma:        "comma",
	Minus:        "-",
	Period:       ".",
	Slash:        "/",
	Backquote:    "`",
	BracketLeft:  "[",
	Backslash:    "\\",
	BracketRight: "]",
	Quote:        "'",
}

// Resolve converts a key name into its code.
// Lookup order: named keys, function keys, then the uppercase code of a single character.
// Anything else resolves to domain.KeyNone.
func Resolve(name string) domain.KeyCode {
	lower := strings.ToLower(name)
	if code, ok := namedKeys[lower]; ok {
		return code
	}
	if code, ok := functionKeys[lower]; ok {
		return code
	}
	if utf8.RuneCountInString(name) != 1 {
		return domain.KeyNone
	}
	r, _ := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError || !unicode.IsPrint(r) {
		return domain.KeyNone
	}
	return domain.KeyCode(unicode.ToUpper(r))
}

// ResolveModifier converts a modifier name or symbol into its identifier
func ResolveModifier(name string) (domain.Modifier, bool) {
	mod, ok := modifierNames[strings.ToLower(name)]
	return mod, ok
}

// Name returns a human readable name for a code, or its decimal value when unknown
func Name(code domain.KeyCode) string {
	if name, ok := canonicalNames[code]; ok {
		return name
	}
	if code > FunctionKeyBase && code <= FunctionKeyBase+FunctionKeyCount {
		return fmt.Sprintf("f%d", int(code-FunctionKeyBase))
	}
	if code > ' ' && code < unicode.MaxRune && unicode.IsPrint(rune(code)) {
		return strings.ToLower(string(rune(code)))
	}
	return code.String()
}

// Entry is one row of a vocabulary table
type Entry struct {
	Code domain.KeyCode
	Name string
}

// NamedKeys returns the named-key table sorted by code then name
func NamedKeys() []Entry {
	return sortedEntries(namedKeys)
}

// FunctionKeys returns the function-key table in code order
func FunctionKeys() []Entry {
	return sortedEntries(functionKeys)
}

// ModifierEntry is one row of the modifier table
type ModifierEntry struct {
	Modifier domain.Modifier
	Name     string
}

// Modifiers returns the modifier table sorted by identifier then name
func Modifiers() []ModifierEntry {
	out := make([]ModifierEntry, 0, len(modifierNames))
	for name, mod := range modifierNames {
		out = append(out, ModifierEntry{Modifier: mod, Name: name})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Modifier != out[j].Modifier {
			return out[i].Modifier < out[j].Modifier
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func sortedEntries(table map[string]domain.KeyCode) []Entry {
	out := make([]Entry, 0, len(table))
	for name, code := range table {
		out = append(out, Entry{Code: code, Name: name})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Code != out[j].Code {
			return out[i].Code < out[j].Code
		}
		return out[i].Name < out[j].Name
	})
	return out
}
