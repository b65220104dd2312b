package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/renato0307/revue/internal/config"
	"github.com/renato0307/revue/internal/logging"
	"github.com/renato0307/revue/internal/services"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Meta SettingsMetaCmd `cmd:"meta" help:"Show settings file location and available options" default:"1"`
	Show SettingsShowCmd `cmd:"show" help:"Show dashboard preferences stored in the database"`
	Set  SettingsSetCmd  `cmd:"set" help:"Set a dashboard preference"`
	Keys SettingsKeysCmd `cmd:"keys" help:"Manage keyboard shortcuts"`
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		return writeJSON(os.Stdout, map[string]any{
			"database":      config.GetDBPath(),
			"env_file":      config.GetEnvFilePath(),
			"format":        example,
			"settings_file": settingsFile,
		})
	}

	fmt.Printf("Settings file: %s\n", settingsFile)
	fmt.Printf("Preferences database: %s\n", config.GetDBPath())
	fmt.Printf("Environment file: %s\n\n", config.GetEnvFilePath())
	fmt.Println("Example settings.json:")
	fmt.Println()

	names := make([]string, 0, len(example))
	for name := range example {
		names = append(names, name)
	}
	slices.Sort(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%v\n", name, example[name])
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Create or edit this file to configure revue.")
	fmt.Println("All settings are optional and have sensible defaults.")
	return nil
}

// SettingsShowCmd prints the dashboard preferences
type SettingsShowCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// settingRow is one preference as printed by settings show
type settingRow struct {
	Key      string `json:"key"`
	Override string `json:"override,omitempty"` // environment variable taking precedence
	Value    string `json:"value"`
}

// Run executes the show command
func (s *SettingsShowCmd) Run(cli *CLI) error {
	settings, err := cli.Container.SettingsService.Load(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	rows := settingRows(services.DisplayValues(settings))
	if s.Format == "json" {
		return writeJSON(os.Stdout, rows)
	}
	return writeSettingsTable(os.Stdout, rows)
}

// settingRows lists every preference in key order. Secrets arrive masked.
func settingRows(values map[string]string) []settingRow {
	keys := services.Keys()
	rows := make([]settingRow, 0, len(keys))
	for _, key := range keys {
		env, _ := services.EnvOverride(key)
		rows = append(rows, settingRow{Key: key, Override: env, Value: values[key]})
	}
	return rows
}

func writeSettingsTable(out io.Writer, rows []settingRow) error {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Key\tValue\tSource")
	fmt.Fprintln(w, "───\t─────\t──────")
	for _, row := range rows {
		source := "database"
		if row.Override != "" {
			source = "$" + row.Override
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", row.Key, orDash(row.Value), source)
	}
	return w.Flush()
}

// SettingsSetCmd stores a single dashboard preference
type SettingsSetCmd struct {
	Key   string `arg:"" help:"Preference key (see 'revue settings show')"`
	Value string `arg:"" help:"New value"`
}

// Run executes the set command
func (s *SettingsSetCmd) Run(cli *CLI) error {
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	logging.Logger.Debug("Setting preference", "key", s.Key)
	if err := cli.Container.SettingsService.SetValue(ctx, s.Key, s.Value); err != nil {
		return err
	}

	// The pull request queue is searched by login, so a new token needs its username
	if s.Key == services.KeyToken {
		login, err := cli.Container.GitHub.CurrentUser(ctx, s.Value)
		if err != nil {
			return fmt.Errorf("token saved but GitHub rejected it: %w", err)
		}
		if err := cli.Container.SettingsService.SetValue(ctx, services.KeyUsername, login); err != nil {
			return err
		}
		fmt.Printf("Signed in to GitHub as %s\n", login)
	}

	fmt.Printf("Set '%s'\n", s.Key)
	if env, overridden := services.EnvOverride(s.Key); overridden {
		fmt.Printf("Note: $%s is set and takes precedence over the stored value.\n", env)
	}
	return nil
}
