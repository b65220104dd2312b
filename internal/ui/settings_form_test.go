package ui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/revue/internal/domain"
	"github.com/renato0307/revue/internal/services"
)

func TestSettingsForm_VerificationFailureKeepsFormOpen(t *testing.T) {
	form := NewSettingsForm(nil, nil, testStyles(), domain.DefaultSettings())
	form.Init()
	form.verifying = true

	form.Update(settingsVerifiedMsg{err: services.ErrInvalidGitHubToken})

	assert.False(t, form.Completed)
	assert.False(t, form.verifying)
	assert.Contains(t, ansi.Strip(form.View()), "Error: GitHub token is invalid or expired")
}

func TestSettingsForm_Cancel(t *testing.T) {
	form := NewSettingsForm(nil, nil, testStyles(), domain.DefaultSettings())
	form.Init()

	form.Update(keyPress("esc"))

	require.True(t, form.Completed)
	assert.True(t, form.Result().Cancelled)
}

func TestSettingsForm_Edited(t *testing.T) {
	current := domain.DefaultSettings()
	current.ActiveTab = domain.TabBuilds
	form := NewSettingsForm(nil, nil, testStyles(), current)

	form.values.token = "tok"
	form.values.interval = " 15 "
	form.values.expoProject = "acme/app"
	form.values.showCIBadge = false

	edited := form.edited()
	assert.Equal(t, "tok", edited.Token)
	assert.Equal(t, 15, edited.PollingInterval)
	assert.Equal(t, "acme/app", edited.ExpoProjectSlug)
	assert.False(t, edited.ShowCIBadge)
	assert.Equal(t, domain.TabBuilds, edited.ActiveTab)
}

func TestFieldDescription_EnvOverride(t *testing.T) {
	t.Setenv(services.EnvGitHubToken, "")
	assert.Equal(t, "plain", fieldDescription(services.KeyToken, "plain"))

	t.Setenv(services.EnvGitHubToken, "from-env")
	assert.Contains(t, fieldDescription(services.KeyToken, "plain"), services.EnvGitHubToken)
}
