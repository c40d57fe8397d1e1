package keymapfile

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/renato0307/chord/internal/config"
	"github.com/renato0307/chord/internal/domain"
	"github.com/renato0307/chord/internal/logging"
	"github.com/renato0307/chord/internal/ports"
)

// DefaultDebounce is how long the watcher waits for writes to settle
const DefaultDebounce = 100 * time.Millisecond

// Watcher implements ports.KeymapWatcher with fsnotify
type Watcher struct {
	debounce time.Duration
	store    *Store
}

// Verify interface compliance at compile time
var _ ports.KeymapWatcher = (*Watcher)(nil)

// NewWatcher creates a watcher that reloads through store
func NewWatcher(store *Store, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		debounce: debounce,
		store:    store,
	}
}

// Watch implements ports.KeymapWatcher.Watch.
// The parent directory is watched so editors that replace the file by rename keep
// triggering reloads. Files that fail to parse are logged and skipped.
func (w *Watcher) Watch(ctx context.Context, path string, onChange func(domain.Keymap)) error {
	path, err := filepath.Abs(config.ExpandPath(path))
	if err != nil {
		return err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}
	logging.Logger.Info("Watching keymap file", "path", path)

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(w.debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logging.Logger.Warn("Keymap watcher error", "path", path, "error", err)

		case <-timer.C:
			keymap, err := w.store.Read(path)
			if err != nil {
				logging.Logger.Warn("Keymap reload failed", "path", path, "error", err)
				continue
			}
			logging.Logger.Info("Keymap reloaded", "path", path, "entries", len(keymap.Entries))
			onChange(*keymap)
		}
	}
}
