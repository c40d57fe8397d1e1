package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/renato0307/chord/internal/domain"
)

// KeymapCmd manages stored keymaps
type KeymapCmd struct {
	Add    KeymapAddCmd    `cmd:"add" help:"Create a keymap or append shortcuts to one (interactive without arguments)"`
	Del    KeymapDelCmd    `cmd:"del" help:"Delete a keymap"`
	Export KeymapExportCmd `cmd:"export" help:"Write a keymap to a YAML file"`
	Import KeymapImportCmd `cmd:"import" help:"Load keymaps from YAML files"`
	List   KeymapListCmd   `cmd:"list" help:"List all keymaps" default:"1"`
	Show   KeymapShowCmd   `cmd:"show" help:"Show the shortcuts of a keymap"`
}

// KeymapListCmd lists stored keymaps
type KeymapListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// KeymapShowCmd shows one keymap
type KeymapShowCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Name   string `arg:"" help:"Name of the keymap"`
}

type keymapJSON struct {
	CreatedAt   string            `json:"created_at"`
	Description string            `json:"description,omitempty"`
	Entries     []keymapEntryJSON `json:"entries"`
	Name        string            `json:"name"`
	UpdatedAt   string            `json:"updated_at"`
}

type keymapEntryJSON struct {
	Action   string `json:"action"`
	Shortcut string `json:"shortcut"`
}

func toKeymapJSON(k domain.Keymap) keymapJSON {
	entries := make([]keymapEntryJSON, len(k.Entries))
	for i, e := range k.Entries {
		entries[i] = keymapEntryJSON{Action: e.Action, Shortcut: e.Shortcut}
	}
	return keymapJSON{
		CreatedAt:   k.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		Description: k.Description,
		Entries:     entries,
		Name:        k.Name,
		UpdatedAt:   k.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// Run executes the list command
func (k *KeymapListCmd) Run(cli *CLI) error {
	keymaps, err := cli.Container.KeymapService.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list keymaps: %w", err)
	}

	if k.Format == "json" {
		out := make([]keymapJSON, len(keymaps))
		for i, km := range keymaps {
			out[i] = toKeymapJSON(km)
		}
		return printJSON(out)
	}

	if len(keymaps) == 0 {
		fmt.Fprintln(stdout, "No keymaps found. Use 'chord keymap add' or 'chord keymap import' to create one.")
		return nil
	}

	rows := make([][]string, len(keymaps))
	for i, km := range keymaps {
		rows[i] = []string{
			km.Name,
			fmt.Sprintf("%d", len(km.Entries)),
			km.UpdatedAt.Local().Format("2006-01-02 15:04"),
			km.Description,
		}
	}
	printTable([]string{"Name", "Shortcuts", "Updated", "Description"}, rows)
	return nil
}

// Run executes the show command
func (k *KeymapShowCmd) Run(cli *CLI) error {
	keymap, err := cli.Container.KeymapService.Get(context.Background(), k.Name)
	if err != nil {
		return err
	}

	if k.Format == "json" {
		return printJSON(toKeymapJSON(*keymap))
	}

	fmt.Fprintf(stdout, "Keymap: %s\n", keymap.Name)
	if keymap.Description != "" {
		fmt.Fprintf(stdout, "Description: %s\n", keymap.Description)
	}
	fmt.Fprintln(stdout)

	descriptions := make(map[string]string)
	for _, a := range testerActions().Actions() {
		descriptions[a.Name] = a.Description
	}

	rows := make([][]string, len(keymap.Entries))
	for i, e := range keymap.Entries {
		description, ok := descriptions[e.Action]
		if !ok {
			description = "(unknown action)"
		}
		rows[i] = []string{fmt.Sprintf("%d", i+1), e.Shortcut, e.Action, description}
	}
	printTable([]string{"#", "Shortcut", "Action", "Does"}, rows)
	return nil
}

// parseBinding splits "shortcut=action". The last '=' separates them since '=' is also a key.
func parseBinding(value string) (domain.KeymapEntry, error) {
	i := strings.LastIndex(value, "=")
	if i <= 0 || i == len(value)-1 {
		return domain.KeymapEntry{}, fmt.Errorf("invalid binding %q, expected shortcut=action", value)
	}
	return domain.KeymapEntry{
		Action:   strings.TrimSpace(value[i+1:]),
		Shortcut: strings.TrimSpace(value[:i]),
	}, nil
}
