package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/renato0307/chord/internal/domain"
	"github.com/renato0307/chord/internal/logging"
	"github.com/renato0307/chord/internal/ui"
)

// KeymapAddCmd creates a keymap, or appends shortcuts to an existing one
type KeymapAddCmd struct {
	Bind        []string `help:"Binding as shortcut=action (repeatable), e.g. --bind 'ctrl+z=undo'" short:"b"`
	Description string   `help:"Keymap description"`
	Name        string   `arg:"" optional:"" help:"Name of the keymap (omit to use the interactive form)"`
}

// Run executes the add command
func (k *KeymapAddCmd) Run(cli *CLI) error {
	ctx := context.Background()
	service := cli.Container.KeymapService

	if k.Name == "" {
		return k.runForm(ctx, cli)
	}

	entries := make([]domain.KeymapEntry, 0, len(k.Bind))
	for _, b := range k.Bind {
		entry, err := parseBinding(b)
		if err != nil {
			return err
		}
		entries = append(entries, entry)
	}

	existing, err := service.Get(ctx, k.Name)
	switch {
	case err == nil:
		if err := checkActions(domain.Keymap{Name: k.Name, Entries: entries}); err != nil {
			return err
		}
		for _, entry := range entries {
			if err := service.AddEntry(ctx, existing.Name, entry); err != nil {
				return fmt.Errorf("failed to add shortcut: %w", err)
			}
		}
		fmt.Fprintf(stdout, "Added %d shortcut(s) to keymap '%s'\n", len(entries), k.Name)
		return nil

	case errors.Is(err, domain.ErrKeymapNotFound):
		keymap := domain.Keymap{
			Description: k.Description,
			Entries:     entries,
			Name:        k.Name,
		}
		return createKeymap(ctx, cli, keymap)

	default:
		return err
	}
}

func (k *KeymapAddCmd) runForm(ctx context.Context, cli *CLI) error {
	exists := func(name string) bool {
		_, err := cli.Container.KeymapService.Get(ctx, name)
		return err == nil
	}

	keymap, err := ui.NewKeymapForm(ui.DemoActions(), exists).Run()
	if err != nil {
		if errors.Is(err, ui.ErrFormCancelled) {
			fmt.Fprintln(stdout, "Cancelled")
			return nil
		}
		return err
	}

	return createKeymap(ctx, cli, *keymap)
}

func createKeymap(ctx context.Context, cli *CLI, keymap domain.Keymap) error {
	if err := checkActions(keymap); err != nil {
		return err
	}
	if err := cli.Container.KeymapService.Create(ctx, keymap); err != nil {
		logging.Logger.Error("Failed to create keymap", "keymap", keymap.Name, "error", err)
		return fmt.Errorf("failed to create keymap: %w", err)
	}
	fmt.Fprintf(stdout, "Keymap '%s' created with %d shortcut(s)\n", keymap.Name, len(keymap.Entries))
	return nil
}
