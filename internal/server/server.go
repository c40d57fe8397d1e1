// Package server exposes the shortcut tester over SSH. Every session gets its own tester
// with its own event buses, so sessions never observe each other's key presses.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"
	"golang.org/x/sync/errgroup"

	"github.com/renato0307/chord/internal/config"
	"github.com/renato0307/chord/internal/domain"
	"github.com/renato0307/chord/internal/logging"
)

const shutdownTimeout = 30 * time.Second

// Config holds what the server needs to build a tester per session
type Config struct {
	AuthorizedKeysPath string
	Host               string
	HostKeyPath        string
	Keymap             domain.Keymap
	Keys               config.KeyBindingsConfig
	Policy             domain.ModifierPolicy
	Port               int
}

// Server represents the SSH server for chord
type Server struct {
	cfg        Config
	wishServer *ssh.Server
}

// DefaultHostKeyPath returns $CHORD_HOME/ssh/id_ed25519
func DefaultHostKeyPath() string {
	return filepath.Join(config.GetChordHome(), "ssh", "id_ed25519")
}

// DefaultAuthorizedKeysPath returns ~/.ssh/authorized_keys
func DefaultAuthorizedKeysPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".ssh", "authorized_keys"), nil
}

// NewServer creates a new SSH server instance
func NewServer(cfg Config) (*Server, error) {
	if cfg.HostKeyPath == "" {
		cfg.HostKeyPath = DefaultHostKeyPath()
	}
	if cfg.AuthorizedKeysPath == "" {
		path, err := DefaultAuthorizedKeysPath()
		if err != nil {
			return nil, err
		}
		cfg.AuthorizedKeysPath = path
	}
	if cfg.Port == 0 {
		cfg.Port = config.DefaultSSHPort
	}

	if err := os.MkdirAll(filepath.Dir(cfg.HostKeyPath), 0700); err != nil {
		return nil, fmt.Errorf("failed to create SSH directory: %w", err)
	}

	s := &Server{cfg: cfg}

	// Middleware executes in reverse order (last to first)
	wishServer, err := wish.NewServer(
		wish.WithAddress(s.Address()),
		wish.WithHostKeyPath(cfg.HostKeyPath),
		wish.WithPublicKeyAuth(s.authorize),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(), // Require PTY
			wishlogging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// Address returns host:port
func (s *Server) Address() string {
	return net.JoinHostPort(s.cfg.Host, fmt.Sprintf("%d", s.cfg.Port))
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	logging.Logger.Info("Starting SSH server",
		"address", s.Address(),
		"keymap", s.cfg.Keymap.Name,
		"authorized_keys", s.cfg.AuthorizedKeysPath)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := s.wishServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logging.Logger.Error("SSH server error", "error", err)
			return fmt.Errorf("SSH server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logging.Logger.Info("Shutting down SSH server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := s.wishServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown SSH server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logging.Logger.Info("SSH server stopped")
	return nil
}
