package ports

import (
	"context"

	"github.com/renato0307/chord/internal/domain"
)

// KeymapFile reads and writes keymaps as files
type KeymapFile interface {
	Read(path string) (*domain.Keymap, error)
	Write(path string, keymap domain.Keymap) error
}

// KeymapWatcher reports every successful reload of a keymap file until ctx is done
type KeymapWatcher interface {
	Watch(ctx context.Context, path string, onChange func(domain.Keymap)) error
}
