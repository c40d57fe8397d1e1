package keymapfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/chord/internal/domain"
)

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "default.yaml")
	store := NewStore()
	require.NoError(t, store.Write(path, domain.Keymap{
		Name:    "default",
		Entries: []domain.KeymapEntry{{Shortcut: "ctrl+s", Action: "save"}},
	}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan domain.Keymap, 4)
	done := make(chan error, 1)
	go func() {
		done <- NewWatcher(store, 20*time.Millisecond).Watch(ctx, path, func(k domain.Keymap) {
			reloaded <- k
		})
	}()

	// Give the watcher time to register before writing
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("name: other\n"), 0644))
	require.NoError(t, store.Write(path, domain.Keymap{
		Name:    "default",
		Entries: []domain.KeymapEntry{{Shortcut: "ctrl+o", Action: "open"}},
	}))

	select {
	case k := <-reloaded:
		assert.Equal(t, "default", k.Name)
		require.Len(t, k.Entries, 1)
		assert.Equal(t, "open", k.Entries[0].Action)
	case <-time.After(5 * time.Second):
		t.Fatal("keymap was not reloaded")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcher_SkipsBrokenFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "default.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: default\n"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan domain.Keymap, 4)
	go func() {
		_ = NewWatcher(NewStore(), 20*time.Millisecond).Watch(ctx, path, func(k domain.Keymap) {
			reloaded <- k
		})
	}()
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("shortcuts: [broken"), 0644))

	select {
	case <-reloaded:
		t.Fatal("broken file should not be delivered")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	err := NewWatcher(NewStore(), 0).Watch(context.Background(),
		filepath.Join(t.TempDir(), "nope", "default.yaml"), func(domain.Keymap) {})

	assert.Error(t, err)
}
