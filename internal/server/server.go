package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"

	"github.com/renato0307/revue/internal/logging"
	"github.com/renato0307/revue/internal/ports"
	"github.com/renato0307/revue/internal/ui"
)

const shutdownTimeout = 30 * time.Second

// ModelConfigFunc builds the UI config of one SSH session from its renderer and clipboard
type ModelConfigFunc func(renderer *lipgloss.Renderer, clipboard ports.Clipboard) (ui.ModelConfig, error)

// Config holds the SSH server options
type Config struct {
	AuthorizedKeysPath string
	Host               string
	HostKeyPath        string
	ModelConfig        ModelConfigFunc
	Port               int
}

// Server serves the dashboard over SSH
type Server struct {
	address            string
	authorizedKeysPath string
	modelConfig        ModelConfigFunc
	wishServer         *ssh.Server
}

// NewServer creates a new SSH server instance
func NewServer(cfg Config) (*Server, error) {
	if cfg.ModelConfig == nil {
		return nil, errors.New("model config is required")
	}

	if err := os.MkdirAll(filepath.Dir(cfg.HostKeyPath), 0700); err != nil {
		return nil, fmt.Errorf("failed to create host key directory: %w", err)
	}

	s := &Server{
		address:            net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		authorizedKeysPath: cfg.AuthorizedKeysPath,
		modelConfig:        cfg.ModelConfig,
	}

	// Middleware executes in reverse order (last to first)
	wishServer, err := wish.NewServer(
		wish.WithAddress(s.address),
		wish.WithHostKeyPath(cfg.HostKeyPath),
		wish.WithPublicKeyAuth(s.publicKeyHandler),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(),
			wishlogging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// Address returns the listen address
func (s *Server) Address() string {
	return s.address
}

// Start starts the SSH server and blocks until SIGINT or SIGTERM
func (s *Server) Start() error {
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	logging.Logger.Info("Starting SSH server", "address", s.address)

	go func() {
		if err := s.wishServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logging.Logger.Error("SSH server error", "error", err)
			errCh <- err
		}
	}()

	select {
	case <-done:
	case err := <-errCh:
		return fmt.Errorf("SSH server failed: %w", err)
	}

	logging.Logger.Info("Shutting down SSH server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.wishServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown SSH server: %w", err)
	}

	logging.Logger.Info("SSH server stopped")
	return nil
}
