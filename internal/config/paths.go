package config

import (
	"os"
	"path/filepath"
)

// GetRevueHome returns REVUE_HOME or ~/.revue default
func GetRevueHome() string {
	revueHome := os.Getenv("REVUE_HOME")
	if revueHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".revue"
		}
		return filepath.Join(homeDir, ".revue")
	}
	return ExpandPath(revueHome)
}

// GetDBPath returns $REVUE_HOME/state.db
func GetDBPath() string {
	return filepath.Join(GetRevueHome(), "state.db")
}

// GetSettingsPath returns $REVUE_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetRevueHome(), "settings.json")
}

// GetEnvFilePath returns $REVUE_HOME/.env
func GetEnvFilePath() string {
	return filepath.Join(GetRevueHome(), ".env")
}

// GetHostKeyPath returns $REVUE_HOME/ssh_host_ed25519 used by revue serve
func GetHostKeyPath() string {
	return filepath.Join(GetRevueHome(), "ssh_host_ed25519")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
