package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/renato0307/revue/internal/config"
)

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Actions     ActionKeys
	Application ApplicationKeys
	Navigation  NavigationKeys
}

// NewKeyMap creates a KeyMap from the defaults, overridden by customKeys
func NewKeyMap(customKeys config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	return KeyMap{
		Actions:     newActionKeys(defaults, customKeys),
		Application: newApplicationKeys(defaults, customKeys),
		Navigation:  newNavigationKeys(defaults, customKeys),
	}
}

// ShortHelp returns the bindings shown in the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Actions.Open.Binding,
		k.Application.Refresh.Binding,
		k.Navigation.Search.Binding,
		k.Navigation.NextTab.Binding,
		k.Application.Settings.Binding,
		k.Application.Help.Binding,
		k.Application.Quit.Binding,
	}
}

// Tips returns every tip of the key map, in definition order
func (k KeyMap) Tips() []Tip {
	all := []KeyWithTip{
		k.Application.Help, k.Application.Refresh, k.Application.Settings, k.Application.ToggleTheme,
		k.Navigation.NextTab, k.Navigation.Search,
		k.Actions.CopyURL, k.Actions.OpenArtifact, k.Actions.OpenNotion,
	}

	var tips []Tip
	for _, kt := range all {
		if kt.Tip != nil {
			tips = append(tips, *kt.Tip)
		}
	}
	return tips
}

// buildBinding creates a KeyWithTip from the key definition, using custom keys if provided
func buildBinding(name string, defaults map[string][]string, customKeys config.KeyBindingsConfig) KeyWithTip {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	keys := defaults[name]
	if custom, ok := customKeys[name]; ok && len(custom) > 0 {
		keys = custom
	}

	result := KeyWithTip{
		Binding: key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(keys, "/"), def.Help),
		),
	}

	if def.TipFormat != "" && len(keys) > 0 {
		tip := newTip(def.TipFormat, keys[0])
		result.Tip = &tip
	}

	return result
}
