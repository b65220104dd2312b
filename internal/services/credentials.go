package services

import (
	"context"
	"errors"
	"strings"

	"github.com/renato0307/revue/internal/domain"
	"github.com/renato0307/revue/internal/logging"
	"github.com/renato0307/revue/internal/ports"
)

var (
	ErrGitHubTokenRequired = errors.New("GitHub token is required")
	ErrInvalidExpoToken    = errors.New("Expo token is invalid or expired")
	ErrInvalidGitHubToken  = errors.New("GitHub token is invalid or expired")
)

// CredentialVerifier checks tokens before settings are saved
type CredentialVerifier struct {
	expo   ports.ExpoGateway
	github ports.GitHubGateway
}

// NewCredentialVerifier creates a new CredentialVerifier
func NewCredentialVerifier(github ports.GitHubGateway, expo ports.ExpoGateway) *CredentialVerifier {
	return &CredentialVerifier{
		expo:   expo,
		github: github,
	}
}

// Verify trims the credentials, resolves the GitHub username from the token and,
// when both Expo fields are set, checks that EAS accepts the Expo token.
// The polling interval is clamped to 1..60 minutes.
func (v *CredentialVerifier) Verify(ctx context.Context, s domain.Settings) (domain.Settings, error) {
	s.Token = strings.TrimSpace(s.Token)
	s.ExpoToken = strings.TrimSpace(s.ExpoToken)
	s.ExpoProjectSlug = strings.TrimSpace(s.ExpoProjectSlug)

	if s.Token == "" {
		return s, ErrGitHubTokenRequired
	}

	login, err := v.github.CurrentUser(ctx, s.Token)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return s, ctxErr
		}
		logging.Logger.Warn("GitHub token rejected", "error", err)
		return s, ErrInvalidGitHubToken
	}
	s.Username = login

	if s.ExpoToken != "" && s.ExpoProjectSlug != "" {
		if _, err := v.expo.ViewerID(ctx, s.ExpoToken); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return s, ctxErr
			}
			logging.Logger.Warn("Expo token rejected", "error", err)
			return s, ErrInvalidExpoToken
		}
	}

	s.PollingInterval = domain.ClampPollingInterval(s.PollingInterval)

	logging.Logger.Info("Credentials verified", "username", login, "expo", s.IsExpoConfigured())
	return s, nil
}
