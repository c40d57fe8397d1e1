package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/renato0307/chord/internal/config"
)

// KeymapImportCmd loads keymaps from YAML files into the store
type KeymapImportCmd struct {
	Paths []string `arg:"" help:"YAML keymap files" type:"path"`
}

// KeymapExportCmd writes a stored keymap to a YAML file
type KeymapExportCmd struct {
	Name string `arg:"" help:"Name of the keymap"`
	Path string `arg:"" optional:"" help:"Destination file (default: $CHORD_HOME/keymaps/<name>.yaml)" type:"path"`
}

// Run executes the import command
func (k *KeymapImportCmd) Run(cli *CLI) error {
	ctx := context.Background()

	// Reading every file first means a broken file leaves the store untouched
	for _, path := range k.Paths {
		keymap, err := cli.Container.KeymapFiles.Read(path)
		if err != nil {
			return err
		}
		if err := checkActions(*keymap); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	keymaps, err := cli.Container.KeymapService.Import(ctx, k.Paths...)
	if err != nil {
		return fmt.Errorf("failed to import keymaps: %w", err)
	}

	for _, km := range keymaps {
		fmt.Fprintf(stdout, "Imported keymap '%s' (%d shortcut(s))\n", km.Name, len(km.Entries))
	}
	return nil
}

// Run executes the export command
func (k *KeymapExportCmd) Run(cli *CLI) error {
	path := k.Path
	if path == "" {
		path = filepath.Join(config.GetKeymapsDir(), k.Name+".yaml")
	}

	if err := cli.Container.KeymapService.Export(context.Background(), k.Name, path); err != nil {
		return fmt.Errorf("failed to export keymap: %w", err)
	}

	fmt.Fprintf(stdout, "Keymap '%s' exported to %s\n", k.Name, path)
	return nil
}
