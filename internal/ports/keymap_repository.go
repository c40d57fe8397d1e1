package ports

import (
	"context"

	"github.com/renato0307/chord/internal/domain"
)

// KeymapReader reads stored keymaps
type KeymapReader interface {
	Get(ctx context.Context, name string) (*domain.Keymap, error)
	List(ctx context.Context) ([]domain.Keymap, error)
}

// KeymapWriter creates, replaces and deletes keymaps
type KeymapWriter interface {
	Create(ctx context.Context, keymap domain.Keymap) error
	Delete(ctx context.Context, name string) error
	Save(ctx context.Context, keymap domain.Keymap) error
}

// KeymapRepository is the composite interface
type KeymapRepository interface {
	KeymapReader
	KeymapWriter
	Close() error
}
