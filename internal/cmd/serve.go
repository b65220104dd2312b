package cmd

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/revue/internal/config"
	"github.com/renato0307/revue/internal/logging"
	"github.com/renato0307/revue/internal/ports"
	"github.com/renato0307/revue/internal/server"
	"github.com/renato0307/revue/internal/ui"
)

const defaultAuthorizedKeys = "~/.ssh/authorized_keys"

// ServeCmd serves the dashboard over SSH
type ServeCmd struct {
	AuthorizedKeys  string `help:"Path to the authorized_keys file (default ~/.ssh/authorized_keys)"`
	ErrorClearDelay int    `help:"Seconds before error messages auto-clear" default:"10"`
	Host            string `help:"Address to listen on" default:"localhost"`
	HostKey         string `help:"Path to the SSH host key, created if missing (default $REVUE_HOME/ssh_host_ed25519)"`
	Port            int    `help:"Port to listen on" default:"23234"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	s.applySettings(cli.settings)

	keys, err := cli.keyBindings()
	if err != nil {
		return err
	}

	errorClearDelay := time.Duration(s.ErrorClearDelay) * time.Second
	srv, err := server.NewServer(server.Config{
		AuthorizedKeysPath: s.AuthorizedKeys,
		Host:               s.Host,
		HostKeyPath:        s.HostKey,
		Port:               s.Port,
		ModelConfig: func(renderer *lipgloss.Renderer, clipboard ports.Clipboard) (ui.ModelConfig, error) {
			return ui.ModelConfig{
				Clipboard:       clipboard,
				Clock:           cli.Container.Clock,
				Dashboard:       cli.Container.NewDashboard(),
				ErrorClearDelay: errorClearDelay,
				Keys:            keys,
				Renderer:        renderer,
				Settings:        cli.Container.SettingsService,
				Verifier:        cli.Container.Verifier,
			}, nil
		},
	})
	if err != nil {
		return err
	}

	fmt.Printf("Serving revue on ssh://%s (authorized keys: %s)\n", srv.Address(), s.AuthorizedKeys)
	logging.Logger.Info("Serving dashboard over SSH",
		"address", srv.Address(),
		"authorized_keys", s.AuthorizedKeys,
		"host_key", s.HostKey)

	return srv.Start()
}

// applySettings fills flags left at their defaults from settings.json
func (s *ServeCmd) applySettings(settings *config.Settings) {
	if settings != nil {
		if s.Host == config.DefaultSSHHost && settings.SSHHost != "" {
			s.Host = settings.SSHHost
		}
		if s.Port == config.DefaultSSHPort && settings.SSHPort != nil {
			s.Port = *settings.SSHPort
		}
		if s.AuthorizedKeys == "" {
			s.AuthorizedKeys = settings.AuthorizedKeys
		}
		if s.HostKey == "" {
			s.HostKey = settings.HostKeyPath
		}
	}
	if s.ErrorClearDelay == config.DefaultErrorClearDelay {
		s.ErrorClearDelay = settings.ErrorClearDelayOrDefault()
	}

	if s.AuthorizedKeys == "" {
		s.AuthorizedKeys = defaultAuthorizedKeys
	}
	s.AuthorizedKeys = config.ExpandPath(s.AuthorizedKeys)

	if s.HostKey == "" {
		s.HostKey = config.GetHostKeyPath()
	}
	s.HostKey = config.ExpandPath(s.HostKey)
}
