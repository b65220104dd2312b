package cmd

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/revue/internal/adapters/browser"
	"github.com/renato0307/revue/internal/adapters/system"
	"github.com/renato0307/revue/internal/config"
	"github.com/renato0307/revue/internal/logging"
	"github.com/renato0307/revue/internal/ui"
)

// RunCmd starts the TUI application
type RunCmd struct {
	Dev             bool `help:"Enable development mode (shows version info in dialogs)"`
	ErrorClearDelay int  `help:"Seconds before error messages auto-clear" default:"10"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	if r.ErrorClearDelay == config.DefaultErrorClearDelay {
		r.ErrorClearDelay = cli.settings.ErrorClearDelayOrDefault()
	}

	keys, err := cli.keyBindings()
	if err != nil {
		return err
	}

	logging.Logger.Info("Starting revue TUI")

	model := ui.NewModel(ui.ModelConfig{
		Clipboard:       system.Clipboard{},
		Clock:           cli.Container.Clock,
		Dashboard:       cli.Container.NewDashboard(),
		DevMode:         r.Dev,
		ErrorClearDelay: time.Duration(r.ErrorClearDelay) * time.Second,
		Keys:            keys,
		Opener:          browser.NewOpener(),
		Settings:        cli.Container.SettingsService,
		Verifier:        cli.Container.Verifier,
	})
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())

	logging.Logger.Info("Starting TUI program")
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}
