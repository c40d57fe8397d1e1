// Package shortcut parses shortcut descriptions such as "ctrl+shift+s, cmd+s" into key
// combinations and matches key events against them.
//
// Matching is exact: a combination fires only when the primary key is equal and the set of
// held modifiers equals the required set. "ctrl+s" does not fire while shift is also held.
//
// Events whose origin is a text input, text area or select element are suppressed before
// any comparison so shortcuts never hijack typing.
package shortcut
