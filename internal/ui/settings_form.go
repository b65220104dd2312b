package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/renato0307/revue/internal/domain"
	"github.com/renato0307/revue/internal/logging"
	"github.com/renato0307/revue/internal/services"
	"github.com/renato0307/revue/internal/theme"
)

const verifyTimeout = 20 * time.Second

// settingsVerifiedMsg carries the outcome of verifying and saving the form
type settingsVerifiedMsg struct {
	err      error
	settings domain.Settings
}

// SettingsFormResult contains the result of the settings dialog
type SettingsFormResult struct {
	Cancelled bool
	Settings  domain.Settings
}

// settingsValues are the editable fields bound to the huh inputs
type settingsValues struct {
	expoProject    string
	expoToken      string
	interval       string
	showCIBadge    bool
	showCopyButton bool
	showNotionLink bool
	token          string
}

// SettingsForm edits credentials and display options.
// Submitting verifies the tokens; on failure the form stays open with the error.
type SettingsForm struct {
	Completed bool
	err       error
	form      *huh.Form
	initial   domain.Settings
	result    SettingsFormResult
	service   *services.SettingsService
	styles    *theme.Styles
	values    settingsValues
	verifier  *services.CredentialVerifier
	verifying bool
}

// NewSettingsForm creates a settings form prefilled from current
func NewSettingsForm(service *services.SettingsService, verifier *services.CredentialVerifier, styles *theme.Styles, current domain.Settings) *SettingsForm {
	sf := &SettingsForm{
		initial:  current,
		service:  service,
		styles:   styles,
		verifier: verifier,
		values: settingsValues{
			expoProject:    current.ExpoProjectSlug,
			expoToken:      current.ExpoToken,
			interval:       strconv.Itoa(current.PollingInterval),
			showCIBadge:    current.ShowCIBadge,
			showCopyButton: current.ShowCopyButton,
			showNotionLink: current.ShowNotionLink,
			token:          current.Token,
		},
	}
	sf.form = sf.buildForm()
	return sf
}

// fieldDescription notes when a field is overridden by the environment
func fieldDescription(key, description string) string {
	if env, ok := services.EnvOverride(key); ok {
		return fmt.Sprintf("set by %s, changes here are not saved", env)
	}
	return description
}

func (sf *SettingsForm) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("GitHub token").
				Description(fieldDescription(services.KeyToken, "Personal access token with repo scope")).
				EchoMode(huh.EchoModePassword).
				Value(&sf.values.token).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("GitHub token is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Polling interval (minutes)").
				Description(fmt.Sprintf("Between %d and %d", domain.MinPollingInterval, domain.MaxPollingInterval)).
				Value(&sf.values.interval).
				Validate(func(s string) error {
					if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
						return errors.New("enter a number of minutes")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Expo token").
				Description(fieldDescription(services.KeyExpoToken, "Optional, enables the builds tab")).
				EchoMode(huh.EchoModePassword).
				Value(&sf.values.expoToken),
			huh.NewInput().
				Title("Expo project").
				Description(fieldDescription(services.KeyExpoProjectSlug, "account/project")).
				Placeholder("acme/app").
				Value(&sf.values.expoProject),
		),
		huh.NewGroup(
			huh.NewConfirm().Title("Show CI status").Value(&sf.values.showCIBadge),
			huh.NewConfirm().Title("Show Notion links").Value(&sf.values.showNotionLink),
			huh.NewConfirm().Title("Allow copying pull request links").Value(&sf.values.showCopyButton),
		),
	)
}

// Init implements tea.Model
func (sf *SettingsForm) Init() tea.Cmd {
	return sf.form.Init()
}

// Update implements tea.Model
func (sf *SettingsForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case settingsVerifiedMsg:
		sf.verifying = false
		if msg.err != nil {
			sf.err = msg.err
			sf.form = sf.buildForm()
			return sf, sf.form.Init()
		}
		sf.result.Settings = msg.settings
		sf.Completed = true
		return sf, nil

	case tea.KeyMsg:
		if msg.String() == "esc" || msg.String() == "ctrl+c" {
			sf.result.Cancelled = true
			sf.Completed = true
			return sf, nil
		}
		if sf.verifying {
			return sf, nil
		}
	}

	form, cmd := sf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		sf.form = f
	}

	if sf.form.State == huh.StateCompleted && !sf.verifying {
		sf.verifying = true
		sf.err = nil
		return sf, sf.verifyAndSave(sf.edited())
	}

	return sf, cmd
}

// View implements tea.Model
func (sf *SettingsForm) View() string {
	if sf.verifying {
		return "\n" + sf.styles.SearchHint.Render("Verifying tokens...")
	}
	view := sf.form.View()
	if sf.err != nil {
		view += "\n" + sf.styles.Error.Render(formatErrorForDisplay(sf.err, 60))
	}
	return view
}

// Result returns the form result
func (sf *SettingsForm) Result() SettingsFormResult {
	return sf.result
}

// edited merges the form values into the initial settings
func (sf *SettingsForm) edited() domain.Settings {
	s := sf.initial
	s.Token = sf.values.token
	s.ExpoToken = sf.values.expoToken
	s.ExpoProjectSlug = sf.values.expoProject
	s.ShowCIBadge = sf.values.showCIBadge
	s.ShowCopyButton = sf.values.showCopyButton
	s.ShowNotionLink = sf.values.showNotionLink
	if n, err := strconv.Atoi(strings.TrimSpace(sf.values.interval)); err == nil {
		s.PollingInterval = n
	}
	return s
}

func (sf *SettingsForm) verifyAndSave(edited domain.Settings) tea.Cmd {
	verifier, service := sf.verifier, sf.service
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), verifyTimeout)
		defer cancel()

		verified, err := verifier.Verify(ctx, edited)
		if err != nil {
			return settingsVerifiedMsg{err: err}
		}

		saved, err := service.Save(ctx, verified)
		if err != nil {
			logging.Logger.Error("Failed to save settings from form", "error", err)
			return settingsVerifiedMsg{err: err}
		}
		return settingsVerifiedMsg{settings: saved}
	}
}
