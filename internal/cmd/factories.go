package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/chord/internal/adapters/keymapfile"
	adapterstorage "github.com/renato0307/chord/internal/adapters/storage"
	"github.com/renato0307/chord/internal/domain"
	"github.com/renato0307/chord/internal/logging"
	"github.com/renato0307/chord/internal/ports"
	"github.com/renato0307/chord/internal/services"
	"github.com/renato0307/chord/internal/ui"
)

// Container holds all dependencies for the application
type Container struct {
	// Adapters
	KeymapFiles   *keymapfile.Store
	KeymapWatcher ports.KeymapWatcher

	// Services
	KeymapService *services.KeymapService

	// Internal - for cleanup only
	keymapRepo *adapterstorage.SQLiteRepository
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(dbPath string) (*Container, error) {
	keymapRepo, err := adapterstorage.NewSQLiteRepository(dbPath)
	if err != nil {
		return nil, err
	}

	files := keymapfile.NewStore()

	return &Container{
		KeymapFiles:   files,
		KeymapWatcher: keymapfile.NewWatcher(files, keymapfile.DefaultDebounce),
		KeymapService: services.NewKeymapService(keymapRepo, files),
		keymapRepo:    keymapRepo,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.keymapRepo != nil {
		return c.keymapRepo.Close()
	}
	return nil
}

// LoadKeymap resolves the keymap a tester should start with: a YAML file wins over a
// stored keymap name, and the built-in demo keymap is used when neither is given
func (c *Container) LoadKeymap(ctx context.Context, name, file string) (domain.Keymap, error) {
	switch {
	case file != "":
		keymap, err := c.KeymapFiles.Read(file)
		if err != nil {
			return domain.Keymap{}, err
		}
		logging.Logger.Info("Keymap loaded from file", "path", file, "keymap", keymap.Name)
		return *keymap, nil
	case name != "":
		keymap, err := c.KeymapService.Get(ctx, name)
		if err != nil {
			return domain.Keymap{}, err
		}
		logging.Logger.Info("Keymap loaded from store", "keymap", name)
		return *keymap, nil
	default:
		return ui.DefaultKeymap(), nil
	}
}

// testerActions returns a registry with the tester's actions bound to no-op handlers.
// Compiling a keymap against it proves every action name is known.
func testerActions() *services.ActionRegistry {
	registry := services.NewActionRegistry()
	for _, a := range ui.DemoActions() {
		registry.Register(a.Name, a.Description, func(domain.KeyEvent) {})
	}
	return registry
}

// checkActions reports an unknown action in keymap
func checkActions(keymap domain.Keymap) error {
	if _, err := testerActions().Compile(keymap); err != nil {
		return fmt.Errorf("keymap %s: %w", keymap.Name, err)
	}
	return nil
}
