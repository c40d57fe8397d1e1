package shortcut

import (
	"strings"

	"github.com/renato0307/chord/internal/domain"
)

var suppressedTags = map[string]bool{
	"INPUT":    true,
	"SELECT":   true,
	"TEXTAREA": true,
}

// Suppressed reports whether events from this origin must be ignored
func Suppressed(target domain.Element) bool {
	if target == nil {
		return false
	}
	return suppressedTags[strings.ToUpper(target.TagName())]
}
