package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/chord/internal/domain"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "chord.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func testKeymap(name string, entries ...domain.KeymapEntry) domain.Keymap {
	now := time.Now().UTC().Truncate(time.Second)
	return domain.Keymap{
		CreatedAt:   now,
		Description: "keymap " + name,
		Entries:     entries,
		Name:        name,
		UpdatedAt:   now,
	}
}

func TestSQLiteRepository_CreateAndGet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	keymap := testKeymap("default",
		domain.KeymapEntry{Shortcut: "ctrl+z", Action: "undo"},
		domain.KeymapEntry{Shortcut: "ctrl+s, cmd+s", Action: "save"},
		domain.KeymapEntry{Shortcut: "esc", Action: "clear"},
	)
	require.NoError(t, repo.Create(ctx, keymap))

	got, err := repo.Get(ctx, "default")
	require.NoError(t, err)
	assert.Equal(t, "keymap default", got.Description)
	assert.Equal(t, keymap.Entries, got.Entries)
	assert.True(t, keymap.CreatedAt.Equal(got.CreatedAt))
}

func TestSQLiteRepository_CreateDuplicate(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testKeymap("default")))
	err := repo.Create(ctx, testKeymap("default"))

	assert.ErrorIs(t, err, domain.ErrKeymapExists)
}

func TestSQLiteRepository_GetMissing(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Get(context.Background(), "ghost")

	assert.ErrorIs(t, err, domain.ErrKeymapNotFound)
}

func TestSQLiteRepository_SaveReplacesEntries(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testKeymap("default",
		domain.KeymapEntry{Shortcut: "ctrl+s", Action: "save"},
		domain.KeymapEntry{Shortcut: "ctrl+z", Action: "undo"},
	)))

	updated := testKeymap("default",
		domain.KeymapEntry{Shortcut: "ctrl+y", Action: "redo"},
	)
	updated.Description = "changed"
	require.NoError(t, repo.Save(ctx, updated))

	got, err := repo.Get(ctx, "default")
	require.NoError(t, err)
	assert.Equal(t, "changed", got.Description)
	assert.Equal(t, updated.Entries, got.Entries)
}

func TestSQLiteRepository_SaveCreatesMissing(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testKeymap("fresh", domain.KeymapEntry{Shortcut: "f1", Action: "help"})))

	got, err := repo.Get(ctx, "fresh")
	require.NoError(t, err)
	require.Len(t, got.Entries, 1)
	assert.Equal(t, "help", got.Entries[0].Action)
}

func TestSQLiteRepository_ListOrderedByName(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testKeymap("vim", domain.KeymapEntry{Shortcut: "esc", Action: "clear"})))
	require.NoError(t, repo.Create(ctx, testKeymap("emacs", domain.KeymapEntry{Shortcut: "ctrl+x", Action: "save"})))

	keymaps, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, keymaps, 2)
	assert.Equal(t, "emacs", keymaps[0].Name)
	assert.Equal(t, "vim", keymaps[1].Name)
	assert.Len(t, keymaps[1].Entries, 1)
}

func TestSQLiteRepository_Delete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testKeymap("default", domain.KeymapEntry{Shortcut: "esc", Action: "clear"})))
	require.NoError(t, repo.Delete(ctx, "default"))

	_, err := repo.Get(ctx, "default")
	assert.ErrorIs(t, err, domain.ErrKeymapNotFound)

	err = repo.Delete(ctx, "default")
	assert.ErrorIs(t, err, domain.ErrKeymapNotFound)

	var orphans int64
	require.NoError(t, repo.db.Model(&KeymapEntryModel{}).Count(&orphans).Error)
	assert.Zero(t, orphans)
}

func TestSQLiteRepository_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chord.db")
	ctx := context.Background()

	repo, err := NewSQLiteRepository(path)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, testKeymap("default", domain.KeymapEntry{Shortcut: "esc", Action: "clear"})))
	require.NoError(t, repo.Close())

	repo, err = NewSQLiteRepository(path)
	require.NoError(t, err)
	defer repo.Close()

	got, err := repo.Get(ctx, "default")
	require.NoError(t, err)
	assert.Len(t, got.Entries, 1)
}
