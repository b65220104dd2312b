package services

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/renato0307/revue/internal/domain"
	"github.com/renato0307/revue/internal/logging"
	"github.com/renato0307/revue/internal/ports"
)

// Preference keys in the settings store
const (
	KeyActiveTab       = "activeTab"
	KeyDarkMode        = "darkMode"
	KeyExpoProjectSlug = "expoProjectSlug"
	KeyExpoToken       = "expoToken"
	KeyPollingInterval = "pollingInterval"
	KeyShowCIBadge     = "showCIBadge"
	KeyShowCopyButton  = "showCopyButton"
	KeyShowNotionLink  = "showNotionLink"
	KeyToken           = "token"
	KeyUsername        = "username"
)

// Environment variables overriding stored credentials
const (
	EnvExpoProject    = "REVUE_EXPO_PROJECT"
	EnvExpoToken      = "REVUE_EXPO_TOKEN"
	EnvGitHubToken    = "REVUE_GITHUB_TOKEN"
	EnvGitHubUsername = "REVUE_GITHUB_USERNAME"
)

var envOverrides = map[string]string{
	KeyExpoProjectSlug: EnvExpoProject,
	KeyExpoToken:       EnvExpoToken,
	KeyToken:           EnvGitHubToken,
	KeyUsername:        EnvGitHubUsername,
}

// secretKeys are masked by DisplayValues
var secretKeys = map[string]bool{
	KeyExpoToken: true,
	KeyToken:     true,
}

// SettingsService loads and stores dashboard preferences
type SettingsService struct {
	repo ports.SettingsRepository
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(repo ports.SettingsRepository) *SettingsService {
	return &SettingsService{
		repo: repo,
	}
}

// Keys returns every preference key, sorted
func Keys() []string {
	keys := []string{
		KeyActiveTab,
		KeyDarkMode,
		KeyExpoProjectSlug,
		KeyExpoToken,
		KeyPollingInterval,
		KeyShowCIBadge,
		KeyShowCopyButton,
		KeyShowNotionLink,
		KeyToken,
		KeyUsername,
	}
	slices.Sort(keys)
	return keys
}

// EnvOverride returns the environment variable currently overriding key
func EnvOverride(key string) (string, bool) {
	env, ok := envOverrides[key]
	if !ok || os.Getenv(env) == "" {
		return "", false
	}
	return env, true
}

// Load reads the stored preferences, filling defaults and applying environment overrides
func (s *SettingsService) Load(ctx context.Context) (domain.Settings, error) {
	values, err := s.repo.All(ctx)
	if err != nil {
		return domain.DefaultSettings(), fmt.Errorf("failed to load settings: %w", err)
	}
	if values == nil {
		values = make(map[string]string)
	}

	for key, env := range envOverrides {
		if v := os.Getenv(env); v != "" {
			logging.Logger.Debug("Setting overridden by environment", "key", key, "env", env)
			values[key] = v
		}
	}

	return decodeSettings(values), nil
}

// Save clamps the polling interval and writes every preference.
// Keys currently overridden by the environment are left untouched.
func (s *SettingsService) Save(ctx context.Context, settings domain.Settings) (domain.Settings, error) {
	settings.PollingInterval = domain.ClampPollingInterval(settings.PollingInterval)

	values := encodeSettings(settings)
	for key, env := range envOverrides {
		if os.Getenv(env) != "" {
			delete(values, key)
		}
	}

	if err := s.repo.SetMany(ctx, values); err != nil {
		logging.Logger.Error("Failed to save settings", "error", err)
		return settings, fmt.Errorf("failed to save settings: %w", err)
	}

	logging.Logger.Info("Settings saved", "keys", len(values))
	return settings, nil
}

// SetValue validates and stores a single preference given as text
func (s *SettingsService) SetValue(ctx context.Context, key, raw string) error {
	if !slices.Contains(Keys(), key) {
		return fmt.Errorf("unknown setting %q", key)
	}

	value, err := normalizeValue(key, raw)
	if err != nil {
		return err
	}

	if err := s.repo.Set(ctx, key, value); err != nil {
		return fmt.Errorf("failed to save setting %s: %w", key, err)
	}
	return nil
}

// SetActiveTab persists the selected tab
func (s *SettingsService) SetActiveTab(ctx context.Context, settings domain.Settings, tab domain.Tab) (domain.Settings, error) {
	settings.ActiveTab = tab
	if err := s.repo.Set(ctx, KeyActiveTab, string(tab)); err != nil {
		return settings, fmt.Errorf("failed to save active tab: %w", err)
	}
	return settings, nil
}

// ToggleDarkMode flips and persists the theme preference
func (s *SettingsService) ToggleDarkMode(ctx context.Context, settings domain.Settings) (domain.Settings, error) {
	settings.DarkMode = !settings.DarkMode
	if err := s.repo.Set(ctx, KeyDarkMode, strconv.FormatBool(settings.DarkMode)); err != nil {
		return settings, fmt.Errorf("failed to save dark mode: %w", err)
	}
	return settings, nil
}

// DisplayValues renders settings as key/value text with secrets masked
func DisplayValues(settings domain.Settings) map[string]string {
	values := encodeSettings(settings)
	for key := range secretKeys {
		values[key] = maskSecret(values[key])
	}
	return values
}

func maskSecret(v string) string {
	if v == "" {
		return ""
	}
	if len(v) <= 4 {
		return "****"
	}
	return "****" + v[len(v)-4:]
}

func encodeSettings(s domain.Settings) map[string]string {
	return map[string]string{
		KeyActiveTab:       string(s.ActiveTab),
		KeyDarkMode:        strconv.FormatBool(s.DarkMode),
		KeyExpoProjectSlug: s.ExpoProjectSlug,
		KeyExpoToken:       s.ExpoToken,
		KeyPollingInterval: strconv.Itoa(s.PollingInterval),
		KeyShowCIBadge:     strconv.FormatBool(s.ShowCIBadge),
		KeyShowCopyButton:  strconv.FormatBool(s.ShowCopyButton),
		KeyShowNotionLink:  strconv.FormatBool(s.ShowNotionLink),
		KeyToken:           s.Token,
		KeyUsername:        s.Username,
	}
}

// decodeSettings falls back to the default for missing or malformed values
func decodeSettings(values map[string]string) domain.Settings {
	s := domain.DefaultSettings()

	s.Token = values[KeyToken]
	s.Username = values[KeyUsername]
	s.ExpoToken = values[KeyExpoToken]
	s.ExpoProjectSlug = values[KeyExpoProjectSlug]

	if n, err := strconv.Atoi(values[KeyPollingInterval]); err == nil && n != 0 {
		s.PollingInterval = n
	}
	s.PollingInterval = domain.ClampPollingInterval(s.PollingInterval)

	s.DarkMode = parseBool(values[KeyDarkMode], s.DarkMode)
	s.ShowCIBadge = parseBool(values[KeyShowCIBadge], s.ShowCIBadge)
	s.ShowCopyButton = parseBool(values[KeyShowCopyButton], s.ShowCopyButton)
	s.ShowNotionLink = parseBool(values[KeyShowNotionLink], s.ShowNotionLink)

	if tab := domain.Tab(values[KeyActiveTab]); tab == domain.TabPRs || tab == domain.TabBuilds {
		s.ActiveTab = tab
	}
	return s
}

func parseBool(raw string, fallback bool) bool {
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return b
}

func normalizeValue(key, raw string) (string, error) {
	switch key {
	case KeyDarkMode, KeyShowCIBadge, KeyShowCopyButton, KeyShowNotionLink:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return "", fmt.Errorf("setting %s expects true or false, got %q", key, raw)
		}
		return strconv.FormatBool(b), nil
	case KeyPollingInterval:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return "", fmt.Errorf("setting %s expects minutes, got %q", key, raw)
		}
		return strconv.Itoa(domain.ClampPollingInterval(n)), nil
	case KeyActiveTab:
		if tab := domain.Tab(raw); tab != domain.TabPRs && tab != domain.TabBuilds {
			return "", fmt.Errorf("setting %s expects %q or %q, got %q", key, domain.TabPRs, domain.TabBuilds, raw)
		}
		return raw, nil
	}
	return raw, nil
}
