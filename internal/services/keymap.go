package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/chord/internal/domain"
	"github.com/renato0307/chord/internal/logging"
	"github.com/renato0307/chord/internal/ports"
	"github.com/renato0307/chord/internal/shortcut"
)

// ErrInvalidKeymap is returned when a keymap fails validation
var ErrInvalidKeymap = errors.New("invalid keymap")

// KeymapService manages stored keymaps and their file form
type KeymapService struct {
	files ports.KeymapFile
	repo  ports.KeymapRepository
}

// NewKeymapService creates a new KeymapService
func NewKeymapService(repo ports.KeymapRepository, files ports.KeymapFile) *KeymapService {
	return &KeymapService{
		files: files,
		repo:  repo,
	}
}

// ValidateKeymap checks the name and every entry's shortcut and action
func ValidateKeymap(keymap domain.Keymap) error {
	if keymap.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidKeymap)
	}
	for i, e := range keymap.Entries {
		if e.Action == "" {
			return fmt.Errorf("%w: entry %d has no action", ErrInvalidKeymap, i+1)
		}
		if err := shortcut.Validate(e.Shortcut); err != nil {
			return fmt.Errorf("%w: entry %d: %w", ErrInvalidKeymap, i+1, err)
		}
	}
	return nil
}

// Create stores a new keymap
func (s *KeymapService) Create(ctx context.Context, keymap domain.Keymap) error {
	logging.Logger.Info("Creating keymap", "name", keymap.Name, "entries", len(keymap.Entries))

	if err := ValidateKeymap(keymap); err != nil {
		return err
	}

	now := time.Now().UTC()
	keymap.CreatedAt = now
	keymap.UpdatedAt = now

	if err := s.repo.Create(ctx, keymap); err != nil {
		logging.Logger.Error("Failed to create keymap", "name", keymap.Name, "error", err)
		return fmt.Errorf("failed to create keymap: %w", err)
	}

	logging.Logger.Info("Keymap created", "name", keymap.Name)
	return nil
}

// Save creates or replaces a keymap, keeping the original creation time
func (s *KeymapService) Save(ctx context.Context, keymap domain.Keymap) error {
	logging.Logger.Info("Saving keymap", "name", keymap.Name, "entries", len(keymap.Entries))

	if err := ValidateKeymap(keymap); err != nil {
		return err
	}

	now := time.Now().UTC()
	existing, err := s.repo.Get(ctx, keymap.Name)
	switch {
	case err == nil:
		keymap.CreatedAt = existing.CreatedAt
	case errors.Is(err, domain.ErrKeymapNotFound):
		keymap.CreatedAt = now
	default:
		return fmt.Errorf("failed to load keymap: %w", err)
	}
	keymap.UpdatedAt = now

	if err := s.repo.Save(ctx, keymap); err != nil {
		logging.Logger.Error("Failed to save keymap", "name", keymap.Name, "error", err)
		return fmt.Errorf("failed to save keymap: %w", err)
	}
	return nil
}

// AddEntry appends one entry to an existing keymap
func (s *KeymapService) AddEntry(ctx context.Context, name string, entry domain.KeymapEntry) error {
	keymap, err := s.repo.Get(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to load keymap: %w", err)
	}
	keymap.Entries = append(keymap.Entries, entry)
	return s.Save(ctx, *keymap)
}

// Delete removes a keymap
func (s *KeymapService) Delete(ctx context.Context, name string) error {
	logging.Logger.Info("Deleting keymap", "name", name)

	if err := s.repo.Delete(ctx, name); err != nil {
		logging.Logger.Error("Failed to delete keymap", "name", name, "error", err)
		return fmt.Errorf("failed to delete keymap: %w", err)
	}
	return nil
}

// Get returns one keymap
func (s *KeymapService) Get(ctx context.Context, name string) (*domain.Keymap, error) {
	keymap, err := s.repo.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get keymap: %w", err)
	}
	return keymap, nil
}

// List returns all keymaps ordered by name
func (s *KeymapService) List(ctx context.Context) ([]domain.Keymap, error) {
	keymaps, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list keymaps: %w", err)
	}
	return keymaps, nil
}

// Import reads each file and saves the keymap it holds.
// Files are read concurrently; nothing is saved unless every file is valid.
func (s *KeymapService) Import(ctx context.Context, paths ...string) ([]domain.Keymap, error) {
	keymaps := make([]domain.Keymap, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			keymap, err := s.files.Read(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			if err := ValidateKeymap(*keymap); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			keymaps[i] = *keymap
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logging.Logger.Error("Keymap import failed", "error", err)
		return nil, err
	}

	for _, keymap := range keymaps {
		if err := s.Save(ctx, keymap); err != nil {
			return nil, err
		}
	}

	logging.Logger.Info("Keymaps imported", "count", len(keymaps))
	return keymaps, nil
}

// Export writes a stored keymap to path
func (s *KeymapService) Export(ctx context.Context, name, path string) error {
	keymap, err := s.Get(ctx, name)
	if err != nil {
		return err
	}
	if err := s.files.Write(path, *keymap); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logging.Logger.Info("Keymap exported", "name", name, "path", path)
	return nil
}
