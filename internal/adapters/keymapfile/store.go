package keymapfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/renato0307/chord/internal/config"
	"github.com/renato0307/chord/internal/domain"
	"github.com/renato0307/chord/internal/logging"
	"github.com/renato0307/chord/internal/ports"
)

// Store implements ports.KeymapFile on the local filesystem
type Store struct{}

// Verify interface compliance at compile time
var _ ports.KeymapFile = (*Store)(nil)

// NewStore creates a new Store
func NewStore() *Store {
	return &Store{}
}

// Read implements ports.KeymapFile.Read
func (s *Store) Read(path string) (*domain.Keymap, error) {
	path = config.ExpandPath(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	keymap, err := Decode(data)
	if err != nil {
		return nil, err
	}
	if keymap.Name == "" {
		keymap.Name = nameFromPath(path)
	}
	return keymap, nil
}

// Write implements ports.KeymapFile.Write.
// The file is written to a temp file and renamed while holding a lock next to it,
// so a watcher never observes a partial document.
func (s *Store) Write(path string, keymap domain.Keymap) (err error) {
	path = config.ExpandPath(path)
	data, err := Encode(keymap)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	lock, err := os.OpenFile(path+".lock", os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open lock file: %w", err)
	}
	defer lock.Close()

	if err := lockFile(lock); err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	defer unlockFile(lock)

	tmp, err := os.CreateTemp(dir, ".keymap.yaml.tmp.*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			if removeErr := os.Remove(tmpPath); removeErr != nil && !errors.Is(removeErr, os.ErrNotExist) {
				logging.Logger.Warn("Failed to remove temp file", "path", tmpPath, "error", removeErr)
			}
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write keymap: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename keymap file: %w", err)
	}

	logging.Logger.Debug("Keymap file written", "path", path, "entries", len(keymap.Entries))
	return nil
}

func nameFromPath(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}
