package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/renato0307/chord/internal/theme"
)

// Tip holds a tip format string and the keys to highlight
type Tip struct {
	Format string
	Keys   []string
}

// newTip builds a tip; Format uses %s placeholders for keys, e.g. newTip("press %s to type", "tab")
func newTip(format string, keys ...string) Tip {
	return Tip{Format: format, Keys: keys}
}

// IsZero reports whether the tip is empty
func (t Tip) IsZero() bool {
	return t.Format == ""
}

// String returns the tip as plain text
func (t Tip) String() string {
	args := make([]any, len(t.Keys))
	for i, k := range t.Keys {
		args[i] = k
	}
	return fmt.Sprintf(t.Format, args...)
}

// RenderTip formats a tip with highlighted keys and gray text
func RenderTip(tip Tip) string {
	parts := strings.Split(tip.Format, "%s")
	var result strings.Builder
	result.WriteString(theme.ShortcutDescStyle.Render("ℹ  tip: "))
	for i, part := range parts {
		result.WriteString(theme.ShortcutDescStyle.Render(part))
		if i < len(tip.Keys) {
			result.WriteString(theme.LabelStyle.Render(tip.Keys[i]))
		}
	}
	return result.String()
}

// KeyWithTip wraps a key.Binding with an optional tip
type KeyWithTip struct {
	Binding key.Binding
	Tip     Tip
}
