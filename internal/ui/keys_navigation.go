package ui

import (
	"github.com/renato0307/revue/internal/config"
)

// NavigationKeys defines key bindings for moving around the dashboard
type NavigationKeys struct {
	BuildsTab   KeyWithTip
	ClearSearch KeyWithTip
	Down        KeyWithTip
	NextTab     KeyWithTip
	PRsTab      KeyWithTip
	Search      KeyWithTip
	Up          KeyWithTip
}

func newNavigationKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) NavigationKeys {
	return NavigationKeys{
		BuildsTab:   buildBinding("builds_tab", defaults, customKeys),
		ClearSearch: buildBinding("clear_search", defaults, customKeys),
		Down:        buildBinding("down", defaults, customKeys),
		NextTab:     buildBinding("next_tab", defaults, customKeys),
		PRsTab:      buildBinding("prs_tab", defaults, customKeys),
		Search:      buildBinding("search", defaults, customKeys),
		Up:          buildBinding("up", defaults, customKeys),
	}
}
