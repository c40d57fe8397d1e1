package domain

import "fmt"

// KeyCode is the numeric identifier of a physical key as reported by the host
type KeyCode int

// KeyNone marks a primary key that could not be resolved. It never matches an event.
const KeyNone KeyCode = 0

// String returns the decimal code
func (k KeyCode) String() string {
	return fmt.Sprintf("%d", int(k))
}
