package server

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"github.com/renato0307/chord/internal/logging"
	"github.com/renato0307/chord/internal/ui"
)

// teaHandler creates a tester for each SSH session
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	model, err := ui.NewModel(ui.ModelConfig{
		Keymap: s.cfg.Keymap,
		Keys:   s.cfg.Keys,
		Policy: s.cfg.Policy,
	})
	if err != nil {
		logging.Logger.Error("Failed to create tester for SSH session",
			"error", err,
			"session_id", sessionID)
		return errorModel{err}, nil
	}

	startTime := time.Now()
	go func() {
		<-sess.Context().Done()
		model.Close()
		logging.Logger.Info("SSH session ended",
			"session_id", sessionID,
			"tester_id", model.SessionID(),
			"duration", time.Since(startTime).String())
	}()

	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// errorModel shows a setup error and quits
type errorModel struct {
	err error
}

func (e errorModel) Init() tea.Cmd {
	return nil
}

func (e errorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return e, tea.Quit
}

func (e errorModel) View() string {
	return fmt.Sprintf("Error: %v\n", e.err)
}
