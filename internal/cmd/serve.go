package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/renato0307/chord/internal/config"
	"github.com/renato0307/chord/internal/server"
	"github.com/renato0307/chord/internal/ui"
)

// ServeCmd serves the shortcut tester over SSH
type ServeCmd struct {
	AuthorizedKeys string `help:"authorized_keys file checked for client keys (default: ~/.ssh/authorized_keys)" type:"path"`
	Host           string `help:"Address to listen on" default:"localhost"`
	Keymap         string `help:"Stored keymap every session starts with" xor:"source"`
	KeymapFile     string `help:"YAML keymap file every session starts with" xor:"source" type:"path"`
	Port           int    `help:"Port to listen on" default:"23234"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	if cli.settings != nil {
		if s.Host == "localhost" && cli.settings.SSHHost != "" {
			s.Host = cli.settings.SSHHost
		}
		if s.Port == config.DefaultSSHPort && cli.settings.SSHPort != nil {
			s.Port = *cli.settings.SSHPort
		}
		if s.AuthorizedKeys == "" {
			s.AuthorizedKeys = cli.settings.AuthorizedKeys
		}
		if s.Keymap == "" && s.KeymapFile == "" {
			s.Keymap = cli.settings.Keymap
			if cli.settings.KeymapFile != "" {
				s.Keymap = ""
				s.KeymapFile = cli.settings.KeymapFile
			}
		}
	}

	keysConfig, err := cli.keyBindings(ui.GetValidKeyNames())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	keymap, err := cli.Container.LoadKeymap(ctx, s.Keymap, s.KeymapFile)
	if err != nil {
		return err
	}
	if err := checkActions(keymap); err != nil {
		return err
	}

	srv, err := server.NewServer(server.Config{
		AuthorizedKeysPath: s.AuthorizedKeys,
		Host:               s.Host,
		Keymap:             keymap,
		Keys:               keysConfig,
		Policy:             cli.modifierPolicy(""),
		Port:               s.Port,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "SSH server listening on %s (keymap %s)\n", srv.Address(), keymap.Name)
	return srv.Start(ctx)
}
