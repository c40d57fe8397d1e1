package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/renato0307/chord/internal/logging"
)

// stdin is where confirmations are read from; tests swap it
var stdin io.Reader = os.Stdin

// KeymapDelCmd deletes a keymap
type KeymapDelCmd struct {
	Force bool   `help:"Force deletion without confirmation" short:"f"`
	Name  string `arg:"" help:"Name of the keymap to delete"`
}

// Run executes the del command
func (k *KeymapDelCmd) Run(cli *CLI) error {
	ctx := context.Background()
	logging.Logger.Info("Executing keymap del command", "keymap", k.Name, "force", k.Force)

	keymap, err := cli.Container.KeymapService.Get(ctx, k.Name)
	if err != nil {
		return err
	}

	if !k.Force {
		fmt.Fprintf(stdout, "WARNING: This will delete keymap '%s' and its %d shortcut(s)\n", keymap.Name, len(keymap.Entries))
		fmt.Fprint(stdout, "\nContinue? (y/N): ")
		response, _ := bufio.NewReader(stdin).ReadString('\n')
		response = strings.TrimSpace(response)
		if response != "y" && response != "Y" {
			logging.Logger.Info("User cancelled keymap deletion", "keymap", k.Name)
			fmt.Fprintln(stdout, "Cancelled")
			return nil
		}
	}

	if err := cli.Container.KeymapService.Delete(ctx, k.Name); err != nil {
		return fmt.Errorf("failed to delete keymap: %w", err)
	}

	fmt.Fprintf(stdout, "Keymap '%s' deleted successfully\n", k.Name)
	return nil
}
