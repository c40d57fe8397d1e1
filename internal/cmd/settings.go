package cmd

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/renato0307/chord/internal/config"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Keys SettingsKeysCmd `cmd:"keys" help:"Manage the tester's own key bindings"`
	Meta SettingsMetaCmd `cmd:"meta" help:"Show settings file location and available options" default:"1"`
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	settingsFile := config.GetSettingsFilePath()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		return printJSON(map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		})
	}

	fmt.Fprintf(stdout, "Settings file: %s\n\n", settingsFile)
	fmt.Fprintln(stdout, "Example settings.json:")
	fmt.Fprintln(stdout)

	names := make([]string, 0, len(example))
	for name := range example {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]string, len(names))
	for i, name := range names {
		var valueStr string
		switch v := example[name].(type) {
		case string:
			valueStr = v
		case bool:
			valueStr = fmt.Sprintf("%t", v)
		case int:
			valueStr = fmt.Sprintf("%d", v)
		default:
			data, _ := json.Marshal(v)
			valueStr = string(data)
		}
		rows[i] = []string{name, valueStr}
	}
	printTable([]string{"Setting", "Example"}, rows)

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Create or edit this file to configure chord.")
	fmt.Fprintln(stdout, "All settings are optional and have sensible defaults.")
	fmt.Fprintln(stdout, "Command-line flags and CHORD_* environment variables take precedence.")
	return nil
}
