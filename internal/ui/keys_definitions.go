package ui

import (
	"sort"
	"sync"
)

// KeyDefinition defines the metadata for a configurable key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults  []string
	Help      string
	Name      string
	TipFormat string
}

// AllKeyDefinitions contains all configurable key bindings.
// Names are the keys accepted under "keys" in settings.json.
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "help", Defaults: []string{"?"}, Help: "show keyboard shortcuts", TipFormat: "press %s to see all shortcuts"},
	{Name: "quit", Defaults: []string{"q"}, Help: "exit application"},
	{Name: "refresh", Defaults: []string{"r"}, Help: "refresh now", TipFormat: "press %s to refresh without waiting for the next poll"},
	{Name: "settings", Defaults: []string{","}, Help: "open settings", TipFormat: "press %s to change tokens, interval and display options"},
	{Name: "toggle_theme", Defaults: []string{"D"}, Help: "toggle dark mode", TipFormat: "press %s to switch between dark and light mode"},

	// Navigation keys
	{Name: "builds_tab", Defaults: []string{"2"}, Help: "show builds"},
	{Name: "clear_search", Defaults: []string{"esc"}, Help: "clear search"},
	{Name: "down", Defaults: []string{"down", "j"}, Help: "select next item"},
	{Name: "next_tab", Defaults: []string{"tab"}, Help: "switch tab", TipFormat: "press %s to switch between pull requests and builds"},
	{Name: "prs_tab", Defaults: []string{"1"}, Help: "show pull requests"},
	{Name: "search", Defaults: []string{"/"}, Help: "search pull requests", TipFormat: "press %s to filter by title, repository or author"},
	{Name: "up", Defaults: []string{"up", "k"}, Help: "select previous item"},

	// Item actions
	{Name: "copy_url", Defaults: []string{"y"}, Help: "copy pull request link", TipFormat: "press %s to copy the pull request link"},
	{Name: "open", Defaults: []string{"enter", "o"}, Help: "open in browser"},
	{Name: "open_artifact", Defaults: []string{"a"}, Help: "download build artifact", TipFormat: "press %s to download the selected build"},
	{Name: "open_notion", Defaults: []string{"n"}, Help: "open Notion link", TipFormat: "press %s to open the linked Notion page"},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetDefaultKeyBindings returns the default key bindings as a map.
// The result is cached after the first call.
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for a key by name.
// Returns nil if not found.
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns all valid key binding names in sorted order
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}

// IsValidKeyName checks if a key name is valid
func IsValidKeyName(name string) bool {
	return GetKeyDefinition(name) != nil
}
