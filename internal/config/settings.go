package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// KeyBindingValue supports "a" or ["up", "k"] in JSON
type KeyBindingValue []string

// UnmarshalJSON implements custom unmarshaling for KeyBindingValue
func (kv *KeyBindingValue) UnmarshalJSON(data []byte) error {
	// Try array format first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*kv = arr
		return nil
	}

	// Fall back to single string
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str != "" {
		*kv = []string{str}
	}
	return nil
}

// MarshalJSON implements custom marshaling for KeyBindingValue
func (kv KeyBindingValue) MarshalJSON() ([]byte, error) {
	if len(kv) == 1 {
		return json.Marshal(kv[0])
	}
	return json.Marshal([]string(kv))
}

// KeyBindingsConfig holds custom key binding overrides as a map.
// Keys are binding names (e.g., "archive", "help"), values are the key sequences.
type KeyBindingsConfig map[string]KeyBindingValue

// Validate checks for configuration errors in key bindings.
// The validNames parameter should come from ui.GetValidKeyNames().
func (k KeyBindingsConfig) Validate(validNames []string) error {
	if k == nil {
		return nil
	}

	// Build set of valid names for quick lookup
	validSet := make(map[string]bool, len(validNames))
	for _, name := range validNames {
		validSet[name] = true
	}

	// Track all keys to detect duplicates
	keyToAction := make(map[string]string)

	// Validate each configured binding
	for name, keys := range k {
		// Check if the key name is valid
		if !validSet[name] {
			return fmt.Errorf("unknown key binding '%s'", name)
		}

		// Check for empty values and duplicates
		if len(keys) == 0 {
			continue // Not configured, will use default
		}

		for _, key := range keys {
			if key == "" {
				return fmt.Errorf("key binding for '%s' contains empty value", name)
			}
			if existing, found := keyToAction[key]; found {
				return fmt.Errorf("key '%s' is assigned to both '%s' and '%s'", key, existing, name)
			}
			keyToAction[key] = name
		}
	}

	return nil
}

// Defaults for runtime options not set in settings.json
const (
	DefaultErrorClearDelay = 10
	DefaultSSHHost         = "localhost"
	DefaultSSHPort         = 23234
)

// Settings represents the structure of ~/.revue/settings.json.
// Dashboard preferences (tokens, polling interval, toggles) live in state.db.
type Settings struct {
	AuthorizedKeys  string            `json:"authorized_keys,omitempty"`
	Debug           *bool             `json:"debug,omitempty"`
	ErrorClearDelay *int              `json:"error_clear_delay,omitempty"`
	ExpoAPIURL      string            `json:"expo_api_url,omitempty"`
	GitHubAPIURL    string            `json:"github_api_url,omitempty"`
	HostKeyPath     string            `json:"host_key_path,omitempty"`
	Keys            KeyBindingsConfig `json:"keys,omitempty"`
	MaxLogFiles     *int              `json:"max_log_files,omitempty"`
	SSHHost         string            `json:"ssh_host,omitempty"`
	SSHPort         *int              `json:"ssh_port,omitempty"`
}

// LoadSettings loads settings from $REVUE_HOME/settings.json (or ~/.revue/settings.json if not set)
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	// Expand key paths if they start with ~
	if settings.AuthorizedKeys != "" {
		settings.AuthorizedKeys = ExpandPath(settings.AuthorizedKeys)
	}
	if settings.HostKeyPath != "" {
		settings.HostKeyPath = ExpandPath(settings.HostKeyPath)
	}

	return &settings, nil
}

// SaveSettings saves settings to $REVUE_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// LoadEnvFile loads $REVUE_HOME/.env into the process environment.
// Variables already set are not overridden. A missing file is not an error.
func LoadEnvFile() error {
	path := GetEnvFilePath()
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ErrorClearDelayOrDefault returns the configured error banner lifetime in seconds
func (s *Settings) ErrorClearDelayOrDefault() int {
	if s == nil || s.ErrorClearDelay == nil || *s.ErrorClearDelay <= 0 {
		return DefaultErrorClearDelay
	}
	return *s.ErrorClearDelay
}
