package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/renato0307/revue/internal/config"
	"github.com/renato0307/revue/internal/logging"
	"github.com/renato0307/revue/internal/ui"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Run      RunCmd      `cmd:"" help:"Start the revue TUI (default)" default:"1"`
	PRs      PRsCmd      `cmd:"prs" help:"Print the pull request queue"`
	Builds   BuildsCmd   `cmd:"builds" help:"Print the latest EAS builds per profile"`
	Serve    ServeCmd    `cmd:"serve" help:"Serve the dashboard over SSH"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings (meta, show, set, keys)"`

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
	// Credentials in $REVUE_HOME/.env behave like exported variables
	if err := config.LoadEnvFile(); err != nil {
		return err
	}

	// Precedence: CLI flags > env vars > settings.json > defaults
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("REVUE_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("REVUE_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	if c.Debug || c.DebugFile != "" {
		os.Setenv("REVUE_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("REVUE_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv("REVUE_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// The GORM logger writes through logging.Logger, so the container comes last
	container, err := NewContainer(c.settings)
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

// keyBindings returns the validated custom key bindings from settings.json
func (c *CLI) keyBindings() (config.KeyBindingsConfig, error) {
	if c.settings == nil || c.settings.Keys == nil {
		return nil, nil
	}
	if err := c.settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return nil, fmt.Errorf("invalid key bindings in settings.json: %w", err)
	}
	return c.settings.Keys, nil
}
