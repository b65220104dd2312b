package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/revue/internal/domain"
	portsmocks "github.com/renato0307/revue/internal/ports/mocks"
)

var base = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func build(id string, profile *string, platform domain.Platform, ageMinutes int) domain.Build {
	return domain.Build{
		BuildProfile: profile,
		CreatedAt:    base.Add(-time.Duration(ageMinutes) * time.Minute),
		ID:           id,
		Platform:     platform,
		Status:       domain.BuildFinished,
	}
}

func TestNormalizeSlug(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"acme/app", "@acme/app"},
		{"@acme/app", "@acme/app"},
		{"  acme/app  ", "@acme/app"},
		{" @acme/app", "@acme/app"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeSlug(tt.input))
		})
	}
}

func TestGroupByProfile(t *testing.T) {
	builds := []domain.Build{
		build("p-ios-old", strPtr("production"), domain.PlatformIOS, 60),
		build("local-android", nil, domain.PlatformAndroid, 5),
		build("p-ios-new", strPtr("production"), domain.PlatformIOS, 10),
		build("p-android", strPtr("production"), domain.PlatformAndroid, 30),
		build("empty-profile", strPtr(""), domain.PlatformIOS, 1),
		build("dev-ios", strPtr("development"), domain.PlatformIOS, 2),
	}

	groups := GroupByProfile(builds)

	require.Len(t, groups, 3)
	assert.Equal(t, []string{"development", "local", "production"},
		[]string{groups[0].Profile, groups[1].Profile, groups[2].Profile})

	assert.Equal(t, []string{"dev-ios"}, buildIDs(groups[0].Builds))
	assert.Equal(t, []string{"empty-profile", "local-android"}, buildIDs(groups[1].Builds))
	assert.Equal(t, []string{"p-ios-new", "p-android"}, buildIDs(groups[2].Builds))

	for _, g := range groups {
		platforms := map[domain.Platform]bool{}
		for _, b := range g.Builds {
			assert.False(t, platforms[b.Platform], "duplicate platform in %s", g.Profile)
			platforms[b.Platform] = true
		}
	}
}

func TestGroupByProfile_Empty(t *testing.T) {
	assert.Empty(t, GroupByProfile(nil))
}

func buildIDs(builds []domain.Build) []string {
	out := make([]string, 0, len(builds))
	for _, b := range builds {
		out = append(out, b.ID)
	}
	return out
}

func TestFetchBuilds_ResolvesSlugOnce(t *testing.T) {
	expo := portsmocks.NewMockExpoGateway(t)
	creds := domain.ExpoCredentials{ProjectSlug: "acme/app", Token: "expo"}

	expo.EXPECT().AppByFullName(mock.Anything, "expo", "@acme/app").
		Return(&domain.ExpoApp{AccountName: "acme", ID: "app-1", Slug: "app"}, nil).Once()
	expo.EXPECT().ViewBuilds(mock.Anything, "expo", "app-1", 0, BuildsPageSize).
		Return([]domain.Build{build("b1", nil, domain.PlatformIOS, 1)}, nil).Times(2)

	svc := NewBuildService(expo, NewAppIDCache())

	for range 2 {
		groups, err := svc.FetchBuilds(context.Background(), creds)
		require.NoError(t, err)
		require.Len(t, groups, 1)
		assert.Equal(t, domain.DefaultBuildProfile, groups[0].Profile)
	}
}

func TestFetchBuilds_SlugChangeResolvesAgain(t *testing.T) {
	expo := portsmocks.NewMockExpoGateway(t)

	expo.EXPECT().AppByFullName(mock.Anything, "expo", "@acme/app").
		Return(&domain.ExpoApp{ID: "app-1"}, nil).Once()
	expo.EXPECT().AppByFullName(mock.Anything, "expo", "@acme/other").
		Return(&domain.ExpoApp{ID: "app-2"}, nil).Once()
	expo.EXPECT().ViewBuilds(mock.Anything, "expo", mock.Anything, 0, BuildsPageSize).Return(nil, nil)

	cache := NewAppIDCache()
	svc := NewBuildService(expo, cache)

	_, err := svc.FetchBuilds(context.Background(), domain.ExpoCredentials{ProjectSlug: "acme/app", Token: "expo"})
	require.NoError(t, err)
	_, err = svc.FetchBuilds(context.Background(), domain.ExpoCredentials{ProjectSlug: "acme/other", Token: "expo"})
	require.NoError(t, err)

	_, ok := cache.Get("acme/app")
	assert.False(t, ok)
	app, ok := cache.Get("acme/other")
	assert.True(t, ok)
	assert.Equal(t, "app-2", app.ID)
}

func TestFetchBuilds_ResolveError(t *testing.T) {
	expo := portsmocks.NewMockExpoGateway(t)
	fetchErr := &domain.FetchError{Source: "EAS", StatusCode: 401}

	expo.EXPECT().AppByFullName(mock.Anything, "expo", "@acme/app").Return(nil, fetchErr)

	groups, err := NewBuildService(expo, nil).FetchBuilds(context.Background(), domain.ExpoCredentials{ProjectSlug: "acme/app", Token: "expo"})
	require.Error(t, err)
	assert.Nil(t, groups)
	assert.Equal(t, "EAS API error: 401 Unauthorized", err.Error())
}

func TestFetchBuilds_ListError(t *testing.T) {
	expo := portsmocks.NewMockExpoGateway(t)
	fetchErr := &domain.FetchError{Message: "EAS GraphQL error: boom", Source: "EAS", StatusCode: 200}

	expo.EXPECT().AppByFullName(mock.Anything, "expo", "@acme/app").Return(&domain.ExpoApp{ID: "app-1"}, nil)
	expo.EXPECT().ViewBuilds(mock.Anything, "expo", "app-1", 0, BuildsPageSize).Return(nil, fetchErr)

	groups, err := NewBuildService(expo, nil).FetchBuilds(context.Background(), domain.ExpoCredentials{ProjectSlug: "acme/app", Token: "expo"})
	require.Error(t, err)
	assert.Nil(t, groups)
	assert.Equal(t, "EAS GraphQL error: boom", err.Error())
}

func TestFetchBuilds_NotConfigured(t *testing.T) {
	expo := portsmocks.NewMockExpoGateway(t)

	_, err := NewBuildService(expo, nil).FetchBuilds(context.Background(), domain.ExpoCredentials{Token: "expo"})
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
}

func TestAppIDCache_Invalidate(t *testing.T) {
	cache := NewAppIDCache()
	cache.Set("acme/app", domain.ExpoApp{ID: "app-1"})

	app, ok := cache.Get("acme/app")
	require.True(t, ok)
	assert.Equal(t, "app-1", app.ID)

	_, ok = cache.Get("@acme/app")
	assert.False(t, ok, "keys are exact slugs")

	cache.Invalidate()
	_, ok = cache.Get("acme/app")
	assert.False(t, ok)
}

func TestBuildDetailsURL(t *testing.T) {
	assert.Equal(t, "https://expo.dev/accounts/acme/projects/app/builds/b-1", BuildDetailsURL("acme", "app", "b-1"))
}

func TestSplitProjectSlug(t *testing.T) {
	account, project := SplitProjectSlug("@acme/app")
	assert.Equal(t, "acme", account)
	assert.Equal(t, "app", project)

	account, project = SplitProjectSlug("acme")
	assert.Equal(t, "acme", account)
	assert.Empty(t, project)
}
