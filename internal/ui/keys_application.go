package ui

import (
	"github.com/renato0307/revue/internal/config"
)

// ApplicationKeys defines key bindings for application-level actions
type ApplicationKeys struct {
	ForceQuit   KeyWithTip
	Help        KeyWithTip
	Quit        KeyWithTip
	Refresh     KeyWithTip
	Settings    KeyWithTip
	ToggleTheme KeyWithTip
}

func newApplicationKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) ApplicationKeys {
	return ApplicationKeys{
		ForceQuit:   buildBinding("force_quit", defaults, customKeys),
		Help:        buildBinding("help", defaults, customKeys),
		Quit:        buildBinding("quit", defaults, customKeys),
		Refresh:     buildBinding("refresh", defaults, customKeys),
		Settings:    buildBinding("settings", defaults, customKeys),
		ToggleTheme: buildBinding("toggle_theme", defaults, customKeys),
	}
}
