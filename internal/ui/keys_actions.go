package ui

import (
	"github.com/renato0307/revue/internal/config"
)

// ActionKeys defines key bindings acting on the selected pull request or build
type ActionKeys struct {
	CopyURL      KeyWithTip
	Open         KeyWithTip
	OpenArtifact KeyWithTip
	OpenNotion   KeyWithTip
}

func newActionKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) ActionKeys {
	return ActionKeys{
		CopyURL:      buildBinding("copy_url", defaults, customKeys),
		Open:         buildBinding("open", defaults, customKeys),
		OpenArtifact: buildBinding("open_artifact", defaults, customKeys),
		OpenNotion:   buildBinding("open_notion", defaults, customKeys),
	}
}
