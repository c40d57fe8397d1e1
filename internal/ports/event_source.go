package ports

import "github.com/renato0307/chord/internal/domain"

// KeyListener receives key-press events
type KeyListener interface {
	HandleKeyEvent(event domain.KeyEvent)
}

// EventSource is the host key-press stream.
// Removal is by listener identity; removing an unknown listener is a no-op.
type EventSource interface {
	AddListener(listener KeyListener)
	RemoveListener(listener KeyListener)
}
