package cmd

import (
	"fmt"
	"strings"

	"github.com/renato0307/chord/internal/config"
	"github.com/renato0307/chord/internal/logging"
	"github.com/renato0307/chord/internal/ui"
)

// SettingsKeysCmd manages the tester's own keys (quit, help, focus...), not shortcuts
type SettingsKeysCmd struct {
	List SettingsKeysListCmd `cmd:"list" help:"List all key bindings (defaults and custom)" default:"1"`
	Set  SettingsKeysSetCmd  `cmd:"set" help:"Set a key binding"`
}

// SettingsKeysListCmd lists all key bindings
type SettingsKeysListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// SettingsKeysSetCmd sets a key binding
type SettingsKeysSetCmd struct {
	Key   string `arg:"" help:"Key name (e.g. help, quit, focus_input)"`
	Value string `arg:"" help:"Key binding (e.g. q, ctrl+q, or comma-separated for multiple: tab,i)"`
}

// Run executes the list command
func (s *SettingsKeysListCmd) Run(cli *CLI) error {
	defaults := ui.GetDefaultKeyBindings()
	names := ui.GetValidKeyNames()

	var customKeys config.KeyBindingsConfig
	if cli.settings != nil && cli.settings.Keys != nil {
		customKeys = cli.settings.Keys
	}

	if s.Format == "json" {
		result := make(map[string]map[string]any)
		for _, name := range names {
			entry := map[string]any{"default": defaults[name]}
			if custom, ok := customKeys[name]; ok && len(custom) > 0 {
				entry["custom"] = custom
			}
			result[name] = entry
		}
		return printJSON(result)
	}

	fmt.Fprintf(stdout, "Key Bindings (settings file: %s)\n\n", config.GetSettingsPath())

	rows := make([][]string, len(names))
	for i, name := range names {
		customStr := "-"
		if custom, ok := customKeys[name]; ok && len(custom) > 0 {
			customStr = strings.Join(custom, ", ")
		}
		rows[i] = []string{name, strings.Join(defaults[name], ", "), customStr}
	}
	printTable([]string{"Name", "Default", "Custom"}, rows)

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Use 'chord settings keys set <name> <value>' to customize.")
	return nil
}

// Run executes the set command
func (s *SettingsKeysSetCmd) Run(cli *CLI) error {
	if !ui.IsValidKeyName(s.Key) {
		return fmt.Errorf("unknown key '%s'. Valid keys: %s",
			s.Key, strings.Join(ui.GetValidKeyNames(), ", "))
	}

	// Parse value (comma-separated for multiple keys)
	values := parseKeyValues(s.Value)
	if len(values) == 0 {
		return fmt.Errorf("value cannot be empty")
	}

	logging.Logger.Debug("Setting key binding", "key", s.Key, "values", values)

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if settings.Keys == nil {
		settings.Keys = make(config.KeyBindingsConfig)
	}
	settings.Keys[s.Key] = values

	if err := settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return fmt.Errorf("conflict: %w", err)
	}

	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Fprintf(stdout, "Set '%s' to: %s\n", s.Key, strings.Join(values, ", "))
	return nil
}

// parseKeyValues parses comma-separated key values
func parseKeyValues(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
