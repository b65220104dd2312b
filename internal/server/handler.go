package server

import (
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/renato0307/revue/internal/adapters/system"
	"github.com/renato0307/revue/internal/logging"
	"github.com/renato0307/revue/internal/ui"
)

// sessionModel wraps ui.Model to release the session's pollers
type sessionModel struct {
	*ui.Model
	closeOnce sync.Once
	sessionID string
	startTime time.Time
}

func (s *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.QuitMsg); ok {
		s.close()
	}

	updated, cmd := s.Model.Update(msg)
	if m, ok := updated.(*ui.Model); ok {
		s.Model = m
	}
	return s, cmd
}

func (s *sessionModel) close() {
	s.closeOnce.Do(func() {
		s.Model.Close()
		logging.Logger.Info("SSH session ended",
			"session_id", s.sessionID,
			"duration", time.Since(s.startTime).String())
	})
}

// teaHandler creates a dashboard for each SSH session.
// Every session gets its own pollers and color profile; services are shared.
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	cfg, err := s.modelConfig(bubbletea.MakeRenderer(sess), system.NewTerminalClipboard(sess))
	if err != nil {
		logging.Logger.Error("Failed to prepare SSH session", "error", err, "session_id", sessionID)
		return errorModel{err}, nil
	}
	// Links cannot be opened on the server's desktop
	cfg.Opener = nil

	model := &sessionModel{
		Model:     ui.NewModel(cfg),
		sessionID: sessionID,
		startTime: time.Now(),
	}

	// Dropped connections never deliver a quit message
	go func() {
		<-sess.Context().Done()
		model.close()
	}()

	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// errorModel is a simple model that displays an error
type errorModel struct {
	err error
}

func (e errorModel) Init() tea.Cmd {
	return nil
}

func (e errorModel) Update(tea.Msg) (tea.Model, tea.Cmd) {
	return e, tea.Quit
}

func (e errorModel) View() string {
	return fmt.Sprintf("Error: %v\n", e.err)
}
