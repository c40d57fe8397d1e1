package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/renato0307/chord/internal/config"
	"github.com/renato0307/chord/internal/domain"
	"github.com/renato0307/chord/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	Policy      string           `help:"Modifier policy: meta-as-control or strict" env:"CHORD_MODIFIER_POLICY" enum:",meta-as-control,strict" default:""`

	Run      RunCmd      `cmd:"" help:"Start the interactive shortcut tester (default)" default:"1"`
	Parse    ParseCmd    `cmd:"parse" help:"Show the key combinations of a shortcut description"`
	Match    MatchCmd    `cmd:"match" help:"Evaluate one synthetic key event against a shortcut"`
	Keys     KeysCmd     `cmd:"keys" help:"Print the key vocabulary tables"`
	Keymap   KeymapCmd   `cmd:"keymap" help:"Manage stored keymaps (list, show, add, del, import, export)"`
	Serve    ServeCmd    `cmd:"serve" help:"Serve the shortcut tester over SSH"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings (meta, keys)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Apply settings with proper precedence: CLI flags > env vars > settings.json > defaults
	// Only apply if flag is at default value and env var is not set

	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("CHORD_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("CHORD_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}

		// kong already resolved the env var into c.Policy
		if c.Policy == "" {
			c.Policy = c.settings.ModifierPolicy
		}
	}

	if _, err := domain.ParseModifierPolicy(c.Policy); err != nil {
		return err
	}

	// Initialize logging first and get the log file path
	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Export debug settings so the GORM logger and any child chord process share the log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("CHORD_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("CHORD_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv("CHORD_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// Create container AFTER logging is initialized so GORM logs through the right logger
	container, err := NewContainer(config.GetDBPath())
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// modifierPolicy returns the command's own policy flag when set, the global one otherwise
func (c *CLI) modifierPolicy(override string) domain.ModifierPolicy {
	policy := c.Policy
	if override != "" {
		policy = override
	}
	// Both values were validated by kong's enum or by AfterApply
	p, _ := domain.ParseModifierPolicy(policy)
	return p
}

// keyBindings returns the validated custom tester keys from settings.json
func (c *CLI) keyBindings(validNames []string) (config.KeyBindingsConfig, error) {
	if c.settings == nil || c.settings.Keys == nil {
		return nil, nil
	}
	if err := c.settings.Keys.Validate(validNames); err != nil {
		return nil, fmt.Errorf("invalid key bindings in settings.json: %w", err)
	}
	logging.Logger.Debug("Custom key bindings loaded and validated")
	return c.settings.Keys, nil
}
