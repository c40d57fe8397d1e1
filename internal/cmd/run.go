package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/chord/internal/domain"
	"github.com/renato0307/chord/internal/logging"
	"github.com/renato0307/chord/internal/ui"
)

// RunCmd starts the interactive shortcut tester
type RunCmd struct {
	Keymap          string `help:"Stored keymap to load" env:"CHORD_KEYMAP" xor:"source"`
	KeymapFile      string `help:"YAML keymap file to load" env:"CHORD_KEYMAP_FILE" xor:"source" type:"path"`
	StopPropagation bool   `help:"Stop propagation when the save shortcut fires"`
	Watch           bool   `help:"Reload --keymap-file whenever it changes"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	// Apply RunCmd-specific settings with proper precedence
	if cli.settings != nil {
		if r.Keymap == "" && r.KeymapFile == "" {
			r.Keymap = cli.settings.Keymap
			r.KeymapFile = cli.settings.KeymapFile
			if r.Keymap != "" && r.KeymapFile != "" {
				// settings.json may name both; the file wins as it does on the command line
				r.Keymap = ""
			}
		}
		if !r.Watch {
			if _, hasEnv := os.LookupEnv("CHORD_WATCH"); !hasEnv {
				if cli.settings.Watch != nil && *cli.settings.Watch {
					r.Watch = true
				}
			}
		}
	}

	if r.Watch && r.KeymapFile == "" {
		return errors.New("--watch requires --keymap-file")
	}

	keysConfig, err := cli.keyBindings(ui.GetValidKeyNames())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	keymap, err := cli.Container.LoadKeymap(ctx, r.Keymap, r.KeymapFile)
	if err != nil {
		return err
	}

	model, err := ui.NewModel(ui.ModelConfig{
		Keymap:          keymap,
		Keys:            keysConfig,
		Policy:          cli.modifierPolicy(""),
		StopPropagation: r.StopPropagation,
	})
	if err != nil {
		return fmt.Errorf("failed to start tester: %w", err)
	}
	defer model.Close()

	logging.Logger.Info("Starting shortcut tester",
		"session_id", model.SessionID(),
		"keymap", keymap.Name,
		"watch", r.Watch)

	p := tea.NewProgram(model, tea.WithAltScreen())

	if r.Watch {
		go func() {
			err := cli.Container.KeymapWatcher.Watch(ctx, r.KeymapFile, func(k domain.Keymap) {
				p.Send(ui.KeymapChangedMsg{Keymap: k})
			})
			if err != nil {
				logging.Logger.Error("Keymap watcher stopped", "path", r.KeymapFile, "error", err)
			}
		}()
	}

	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}
