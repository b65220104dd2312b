package services

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/revue/internal/domain"
	portsmocks "github.com/renato0307/revue/internal/ports/mocks"
)

func TestCredentialVerifier_Verify(t *testing.T) {
	tests := []struct {
		name        string
		input       domain.Settings
		setup       func(gh *portsmocks.MockGitHubGateway, expo *portsmocks.MockExpoGateway)
		expectedErr error
		expected    domain.Settings
	}{
		{
			name:        "missing token",
			input:       domain.Settings{Token: "   "},
			setup:       func(*portsmocks.MockGitHubGateway, *portsmocks.MockExpoGateway) {},
			expectedErr: ErrGitHubTokenRequired,
		},
		{
			name:  "username resolved from token",
			input: domain.Settings{Token: " ghp_x ", Username: "stale", PollingInterval: 0},
			setup: func(gh *portsmocks.MockGitHubGateway, _ *portsmocks.MockExpoGateway) {
				gh.EXPECT().CurrentUser(mock.Anything, "ghp_x").Return("octo", nil)
			},
			expected: domain.Settings{Token: "ghp_x", Username: "octo", PollingInterval: domain.MinPollingInterval},
		},
		{
			name:  "negative interval clamped to minimum",
			input: domain.Settings{Token: "ghp_x", PollingInterval: -3},
			setup: func(gh *portsmocks.MockGitHubGateway, _ *portsmocks.MockExpoGateway) {
				gh.EXPECT().CurrentUser(mock.Anything, "ghp_x").Return("octo", nil)
			},
			expected: domain.Settings{Token: "ghp_x", Username: "octo", PollingInterval: domain.MinPollingInterval},
		},
		{
			name:  "interval clamped",
			input: domain.Settings{Token: "ghp_x", PollingInterval: 500},
			setup: func(gh *portsmocks.MockGitHubGateway, _ *portsmocks.MockExpoGateway) {
				gh.EXPECT().CurrentUser(mock.Anything, "ghp_x").Return("octo", nil)
			},
			expected: domain.Settings{Token: "ghp_x", Username: "octo", PollingInterval: domain.MaxPollingInterval},
		},
		{
			name:  "rejected GitHub token",
			input: domain.Settings{Token: "bad"},
			setup: func(gh *portsmocks.MockGitHubGateway, _ *portsmocks.MockExpoGateway) {
				gh.EXPECT().CurrentUser(mock.Anything, "bad").Return("", &domain.FetchError{Source: "GitHub", StatusCode: 401})
			},
			expectedErr: ErrInvalidGitHubToken,
		},
		{
			name:  "Expo token checked when project set",
			input: domain.Settings{Token: "ghp_x", ExpoToken: "expo", ExpoProjectSlug: "acme/app", PollingInterval: 5},
			setup: func(gh *portsmocks.MockGitHubGateway, expo *portsmocks.MockExpoGateway) {
				gh.EXPECT().CurrentUser(mock.Anything, "ghp_x").Return("octo", nil)
				expo.EXPECT().ViewerID(mock.Anything, "expo").Return("viewer", nil)
			},
			expected: domain.Settings{Token: "ghp_x", Username: "octo", ExpoToken: "expo", ExpoProjectSlug: "acme/app", PollingInterval: 5},
		},
		{
			name:  "rejected Expo token",
			input: domain.Settings{Token: "ghp_x", ExpoToken: "expo", ExpoProjectSlug: "acme/app"},
			setup: func(gh *portsmocks.MockGitHubGateway, expo *portsmocks.MockExpoGateway) {
				gh.EXPECT().CurrentUser(mock.Anything, "ghp_x").Return("octo", nil)
				expo.EXPECT().ViewerID(mock.Anything, "expo").Return("", errors.New("EAS API error: 401 Unauthorized"))
			},
			expectedErr: ErrInvalidExpoToken,
		},
		{
			name:  "Expo token ignored without project",
			input: domain.Settings{Token: "ghp_x", ExpoToken: "expo", PollingInterval: 5},
			setup: func(gh *portsmocks.MockGitHubGateway, _ *portsmocks.MockExpoGateway) {
				gh.EXPECT().CurrentUser(mock.Anything, "ghp_x").Return("octo", nil)
			},
			expected: domain.Settings{Token: "ghp_x", Username: "octo", ExpoToken: "expo", PollingInterval: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gh := portsmocks.NewMockGitHubGateway(t)
			expo := portsmocks.NewMockExpoGateway(t)
			tt.setup(gh, expo)

			got, err := NewCredentialVerifier(gh, expo).Verify(context.Background(), tt.input)
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCredentialVerifier_Cancelled(t *testing.T) {
	gh := portsmocks.NewMockGitHubGateway(t)
	expo := portsmocks.NewMockExpoGateway(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	gh.EXPECT().CurrentUser(mock.Anything, "ghp_x").Return("", context.Canceled)

	_, err := NewCredentialVerifier(gh, expo).Verify(ctx, domain.Settings{Token: "ghp_x"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCredentialVerifier_IntervalMatchesSetValue(t *testing.T) {
	for _, raw := range []int{0, 1, 30, 61} {
		gh := portsmocks.NewMockGitHubGateway(t)
		expo := portsmocks.NewMockExpoGateway(t)
		gh.EXPECT().CurrentUser(mock.Anything, "ghp_x").Return("octo", nil)

		got, err := NewCredentialVerifier(gh, expo).Verify(context.Background(), domain.Settings{Token: "ghp_x", PollingInterval: raw})
		require.NoError(t, err)

		stored, err := normalizeValue(KeyPollingInterval, strconv.Itoa(raw))
		require.NoError(t, err)
		assert.Equal(t, stored, strconv.Itoa(got.PollingInterval), "interval %d", raw)
	}
}
