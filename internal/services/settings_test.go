package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/revue/internal/domain"
	portsmocks "github.com/renato0307/revue/internal/ports/mocks"
)

func clearCredentialEnv(t *testing.T) {
	t.Helper()
	for _, env := range []string{EnvExpoProject, EnvExpoToken, EnvGitHubToken, EnvGitHubUsername} {
		t.Setenv(env, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearCredentialEnv(t)
	repo := portsmocks.NewMockSettingsRepository(t)
	repo.EXPECT().All(mock.Anything).Return(nil, nil)

	s, err := NewSettingsService(repo).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), s)
	assert.False(t, s.IsConfigured())
}

func TestLoad_StoredValues(t *testing.T) {
	clearCredentialEnv(t)
	repo := portsmocks.NewMockSettingsRepository(t)
	repo.EXPECT().All(mock.Anything).Return(map[string]string{
		KeyActiveTab:       "builds",
		KeyDarkMode:        "false",
		KeyExpoProjectSlug: "acme/app",
		KeyExpoToken:       "expo",
		KeyPollingInterval: "120",
		KeyShowCIBadge:     "false",
		KeyShowNotionLink:  "not-a-bool",
		KeyToken:           "tok",
		KeyUsername:        "octo",
	}, nil)

	s, err := NewSettingsService(repo).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.TabBuilds, s.ActiveTab)
	assert.False(t, s.DarkMode)
	assert.Equal(t, 60, s.PollingInterval)
	assert.False(t, s.ShowCIBadge)
	assert.True(t, s.ShowCopyButton)
	assert.True(t, s.ShowNotionLink)
	assert.True(t, s.IsConfigured())
	assert.True(t, s.IsExpoConfigured())
}

func TestLoad_ZeroIntervalFallsBackToDefault(t *testing.T) {
	clearCredentialEnv(t)
	repo := portsmocks.NewMockSettingsRepository(t)
	repo.EXPECT().All(mock.Anything).Return(map[string]string{KeyPollingInterval: "0", KeyActiveTab: "bogus"}, nil)

	s, err := NewSettingsService(repo).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPollingInterval, s.PollingInterval)
	assert.Equal(t, domain.TabPRs, s.ActiveTab)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearCredentialEnv(t)
	t.Setenv(EnvGitHubToken, "env-token")
	t.Setenv(EnvExpoProject, "env/project")

	repo := portsmocks.NewMockSettingsRepository(t)
	repo.EXPECT().All(mock.Anything).Return(map[string]string{KeyToken: "stored", KeyUsername: "octo"}, nil)

	s, err := NewSettingsService(repo).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "env-token", s.Token)
	assert.Equal(t, "octo", s.Username)
	assert.Equal(t, "env/project", s.ExpoProjectSlug)
}

func TestLoad_RepositoryError(t *testing.T) {
	clearCredentialEnv(t)
	repo := portsmocks.NewMockSettingsRepository(t)
	repo.EXPECT().All(mock.Anything).Return(nil, errors.New("disk full"))

	s, err := NewSettingsService(repo).Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, domain.DefaultSettings(), s)
}

func TestSave_ClampsAndSkipsOverriddenKeys(t *testing.T) {
	clearCredentialEnv(t)
	t.Setenv(EnvGitHubToken, "env-token")

	repo := portsmocks.NewMockSettingsRepository(t)
	repo.EXPECT().SetMany(mock.Anything, mock.MatchedBy(func(values map[string]string) bool {
		_, hasToken := values[KeyToken]
		return !hasToken && values[KeyPollingInterval] == "1" && values[KeyUsername] == "octo" && len(values) == 9
	})).Return(nil)

	in := domain.DefaultSettings()
	in.PollingInterval = 0
	in.Token = "env-token"
	in.Username = "octo"

	saved, err := NewSettingsService(repo).Save(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 1, saved.PollingInterval)
}

func TestSetValue(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		raw      string
		stored   string
		contains string
	}{
		{name: "bool", key: KeyDarkMode, raw: "0", stored: "false"},
		{name: "interval clamped", key: KeyPollingInterval, raw: "500", stored: "60"},
		{name: "tab", key: KeyActiveTab, raw: "builds", stored: "builds"},
		{name: "string", key: KeyUsername, raw: "octo", stored: "octo"},
		{name: "unknown key", key: "colour", raw: "red", contains: "unknown setting"},
		{name: "bad bool", key: KeyShowCIBadge, raw: "maybe", contains: "expects true or false"},
		{name: "bad interval", key: KeyPollingInterval, raw: "soon", contains: "expects minutes"},
		{name: "bad tab", key: KeyActiveTab, raw: "settings", contains: "expects"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := portsmocks.NewMockSettingsRepository(t)
			if tt.contains == "" {
				repo.EXPECT().Set(mock.Anything, tt.key, tt.stored).Return(nil)
			}

			err := NewSettingsService(repo).SetValue(context.Background(), tt.key, tt.raw)
			if tt.contains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.contains)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestSetActiveTabAndToggleDarkMode(t *testing.T) {
	repo := portsmocks.NewMockSettingsRepository(t)
	repo.EXPECT().Set(mock.Anything, KeyActiveTab, "builds").Return(nil)
	repo.EXPECT().Set(mock.Anything, KeyDarkMode, "false").Return(nil)

	svc := NewSettingsService(repo)
	s, err := svc.SetActiveTab(context.Background(), domain.DefaultSettings(), domain.TabBuilds)
	require.NoError(t, err)
	assert.Equal(t, domain.TabBuilds, s.ActiveTab)

	s, err = svc.ToggleDarkMode(context.Background(), s)
	require.NoError(t, err)
	assert.False(t, s.DarkMode)
}

func TestDisplayValues_MasksSecrets(t *testing.T) {
	s := domain.DefaultSettings()
	s.Token = "ghp_abcdefgh1234"
	s.ExpoToken = "abc"

	values := DisplayValues(s)
	assert.Equal(t, "****1234", values[KeyToken])
	assert.Equal(t, "****", values[KeyExpoToken])
	assert.Equal(t, "true", values[KeyDarkMode])
	assert.Len(t, values, len(Keys()))
}

func TestEnvOverride(t *testing.T) {
	clearCredentialEnv(t)

	_, ok := EnvOverride(KeyToken)
	assert.False(t, ok)

	t.Setenv(EnvGitHubToken, "from-env")
	env, ok := EnvOverride(KeyToken)
	assert.True(t, ok)
	assert.Equal(t, EnvGitHubToken, env)

	_, ok = EnvOverride(KeyDarkMode)
	assert.False(t, ok)
}
