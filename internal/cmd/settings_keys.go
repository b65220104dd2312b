package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/renato0307/revue/internal/config"
	"github.com/renato0307/revue/internal/logging"
	"github.com/renato0307/revue/internal/ui"
)

// SettingsKeysCmd manages keyboard shortcuts
type SettingsKeysCmd struct {
	List SettingsKeysListCmd `cmd:"list" help:"List all key bindings (defaults and custom)" default:"1"`
	Set  SettingsKeysSetCmd  `cmd:"set" help:"Set a key binding"`
}

// SettingsKeysListCmd lists all key bindings
type SettingsKeysListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// SettingsKeysSetCmd sets a key binding
type SettingsKeysSetCmd struct {
	Key   string `arg:"" help:"Key name (e.g., refresh, open, copy_url)"`
	Value string `arg:"" help:"Key binding (e.g., a, ctrl+r, or comma-separated for multiple: up,k)"`
}

// keyBindingRow is one shortcut as printed by settings keys list
type keyBindingRow struct {
	Custom  []string `json:"custom,omitempty"`
	Default []string `json:"default"`
	Help    string   `json:"help"`
	Name    string   `json:"name"`
}

// Run executes the list command
func (s *SettingsKeysListCmd) Run(cli *CLI) error {
	var custom config.KeyBindingsConfig
	if cli.settings != nil {
		custom = cli.settings.Keys
	}

	rows := keyBindingRows(custom)
	if s.Format == "json" {
		return writeJSON(os.Stdout, rows)
	}

	fmt.Printf("Key Bindings (settings file: %s)\n\n", config.GetSettingsPath())
	if err := writeKeyBindingTable(os.Stdout, rows); err != nil {
		return err
	}
	fmt.Println()
	fmt.Println("Use 'revue settings keys set <name> <value>' to customize.")
	return nil
}

// keyBindingRows lists every shortcut in name order with its custom override
func keyBindingRows(custom config.KeyBindingsConfig) []keyBindingRow {
	names := ui.GetValidKeyNames()
	rows := make([]keyBindingRow, 0, len(names))
	for _, name := range names {
		def := ui.GetKeyDefinition(name)
		row := keyBindingRow{Default: def.Defaults, Help: def.Help, Name: name}
		if keys, ok := custom[name]; ok && len(keys) > 0 {
			row.Custom = keys
		}
		rows = append(rows, row)
	}
	return rows
}

func writeKeyBindingTable(out io.Writer, rows []keyBindingRow) error {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Name\tDefault\tCustom\tAction")
	fmt.Fprintln(w, "────\t───────\t──────\t──────")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			row.Name,
			strings.Join(row.Default, ", "),
			orDash(strings.Join(row.Custom, ", ")),
			row.Help,
		)
	}
	return w.Flush()
}

// Run executes the set command
func (s *SettingsKeysSetCmd) Run(cli *CLI) error {
	values := parseKeyValues(s.Value)

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if err := setKeyBinding(settings, s.Key, values); err != nil {
		return err
	}

	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Printf("Set '%s' to: %s\n", s.Key, strings.Join(values, ", "))
	return nil
}

// setKeyBinding validates name and values and stores them in settings
func setKeyBinding(settings *config.Settings, name string, values []string) error {
	if !ui.IsValidKeyName(name) {
		return fmt.Errorf("unknown key '%s'. Valid keys: %s",
			name, strings.Join(ui.GetValidKeyNames(), ", "))
	}
	if len(values) == 0 {
		return fmt.Errorf("value cannot be empty")
	}

	logging.Logger.Debug("Setting key binding", "key", name, "values", values)

	if settings.Keys == nil {
		settings.Keys = make(config.KeyBindingsConfig)
	}
	settings.Keys[name] = values

	if err := settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return fmt.Errorf("conflict: %w", err)
	}
	return nil
}

// parseKeyValues splits a comma-separated binding, dropping blanks
func parseKeyValues(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
