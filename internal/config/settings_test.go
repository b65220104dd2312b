package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_MissingFile(t *testing.T) {
	t.Setenv("REVUE_HOME", t.TempDir())

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, &Settings{}, settings)
	assert.Equal(t, DefaultErrorClearDelay, settings.ErrorClearDelayOrDefault())
}

func TestSaveAndLoadSettings(t *testing.T) {
	home := filepath.Join(t.TempDir(), "nested")
	t.Setenv("REVUE_HOME", home)

	debug := true
	port := 2222
	require.NoError(t, SaveSettings(&Settings{
		Debug:        &debug,
		GitHubAPIURL: "https://ghe.example.com/api/v3",
		Keys:         KeyBindingsConfig{"refresh": {"r", "R"}},
		SSHPort:      &port,
	}))

	loaded, err := LoadSettings()
	require.NoError(t, err)
	require.NotNil(t, loaded.Debug)
	assert.True(t, *loaded.Debug)
	require.NotNil(t, loaded.SSHPort)
	assert.Equal(t, 2222, *loaded.SSHPort)
	assert.Equal(t, "https://ghe.example.com/api/v3", loaded.GitHubAPIURL)
	assert.Equal(t, KeyBindingValue{"r", "R"}, loaded.Keys["refresh"])
}

func TestLoadSettings_Invalid(t *testing.T) {
	home := t.TempDir()
	t.Setenv("REVUE_HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte("{"), 0644))

	_, err := LoadSettings()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid settings.json")
}

func TestKeyBindingValue_JSON(t *testing.T) {
	var cfg KeyBindingsConfig
	require.NoError(t, json.Unmarshal([]byte(`{"refresh":"r","search":["/","f"]}`), &cfg))

	assert.Equal(t, KeyBindingValue{"r"}, cfg["refresh"])
	assert.Equal(t, KeyBindingValue{"/", "f"}, cfg["search"])

	data, err := json.Marshal(cfg["refresh"])
	require.NoError(t, err)
	assert.Equal(t, `"r"`, string(data))
}

func TestKeyBindingsConfig_Validate(t *testing.T) {
	valid := []string{"refresh", "search", "quit"}

	assert.NoError(t, KeyBindingsConfig(nil).Validate(valid))
	assert.NoError(t, KeyBindingsConfig{"refresh": {"r"}}.Validate(valid))

	err := KeyBindingsConfig{"explode": {"x"}}.Validate(valid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown key binding")

	err = KeyBindingsConfig{"refresh": {"x"}, "quit": {"x"}}.Validate(valid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "assigned to both")

	err = KeyBindingsConfig{"refresh": {""}}.Validate(valid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty value")
}

func TestLoadEnvFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("REVUE_HOME", home)
	t.Setenv("REVUE_GITHUB_USERNAME", "")
	t.Setenv("REVUE_EXPO_PROJECT", "from-shell/app")

	// Missing file is fine
	require.NoError(t, LoadEnvFile())

	content := "REVUE_GITHUB_USERNAME=octo\nREVUE_EXPO_PROJECT=from-file/app\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, ".env"), []byte(content), 0600))
	require.NoError(t, LoadEnvFile())

	assert.Equal(t, "from-shell/app", os.Getenv("REVUE_EXPO_PROJECT"))
}

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, homeDir, ExpandPath("~"))
	assert.Equal(t, filepath.Join(homeDir, ".ssh", "keys"), ExpandPath("~/.ssh/keys"))
	assert.Equal(t, "/abs/path", ExpandPath("/abs/path"))
}

func TestGetSettingsExample(t *testing.T) {
	example := GetSettingsExample()

	assert.Equal(t, true, example["debug"])
	assert.Equal(t, DefaultSSHPort, example["ssh_port"])
	assert.Equal(t, "~/.ssh/authorized_keys", example["authorized_keys"])
	assert.Contains(t, example, "keys")
	assert.Len(t, example, 10)
}
