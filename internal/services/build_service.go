package services

import (
	"cmp"
	"context"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/renato0307/revue/internal/domain"
	"github.com/renato0307/revue/internal/logging"
	"github.com/renato0307/revue/internal/ports"
)

// BuildsPageSize is how many recent builds are grouped per poll
const BuildsPageSize = 20

const expoWebURL = "https://expo.dev"

// BuildService fetches EAS builds and groups them by profile
type BuildService struct {
	cache *AppIDCache
	expo  ports.ExpoGateway
}

// NewBuildService creates a new BuildService
func NewBuildService(expo ports.ExpoGateway, cache *AppIDCache) *BuildService {
	if cache == nil {
		cache = NewAppIDCache()
	}
	return &BuildService{
		cache: cache,
		expo:  expo,
	}
}

// ResolveApp returns the app behind a project slug, resolving it at most once per slug
func (s *BuildService) ResolveApp(ctx context.Context, creds domain.ExpoCredentials) (domain.ExpoApp, error) {
	if !creds.Configured() {
		return domain.ExpoApp{}, domain.ErrNotConfigured
	}

	if app, ok := s.cache.Get(creds.ProjectSlug); ok {
		return app, nil
	}

	fullName := NormalizeSlug(creds.ProjectSlug)
	logging.Logger.Info("Resolving EAS project", "full_name", fullName)

	app, err := s.expo.AppByFullName(ctx, creds.Token, fullName)
	if err != nil {
		return domain.ExpoApp{}, err
	}

	s.cache.Set(creds.ProjectSlug, *app)
	return *app, nil
}

// FetchBuilds resolves the project and returns its latest builds grouped by profile
func (s *BuildService) FetchBuilds(ctx context.Context, creds domain.ExpoCredentials) ([]domain.BuildGroup, error) {
	app, err := s.ResolveApp(ctx, creds)
	if err != nil {
		return nil, err
	}

	builds, err := s.expo.ViewBuilds(ctx, creds.Token, app.ID, 0, BuildsPageSize)
	if err != nil {
		return nil, err
	}

	groups := GroupByProfile(builds)
	logging.Logger.Debug("Builds grouped", "app_id", app.ID, "builds", len(builds), "groups", len(groups))
	return groups, nil
}

// InvalidateApp forgets the resolved project
func (s *BuildService) InvalidateApp() {
	s.cache.Invalidate()
}

// NormalizeSlug turns "account/project" or " @account/project " into "@account/project"
func NormalizeSlug(slug string) string {
	return "@" + strings.TrimPrefix(strings.TrimSpace(slug), "@")
}

// GroupByProfile keeps the newest build per platform for each profile.
// Groups are sorted by profile name, builds inside a group newest first.
func GroupByProfile(builds []domain.Build) []domain.BuildGroup {
	byProfile := make(map[string][]domain.Build)
	for _, b := range builds {
		byProfile[b.Profile()] = append(byProfile[b.Profile()], b)
	}

	groups := make([]domain.BuildGroup, 0, len(byProfile))
	for profile, profileBuilds := range byProfile {
		slices.SortStableFunc(profileBuilds, func(a, b domain.Build) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})

		seen := make(map[domain.Platform]bool)
		latest := make([]domain.Build, 0, 2)
		for _, b := range profileBuilds {
			if seen[b.Platform] {
				continue
			}
			seen[b.Platform] = true
			latest = append(latest, b)
		}

		groups = append(groups, domain.BuildGroup{Builds: latest, Profile: profile})
	}

	slices.SortFunc(groups, func(a, b domain.BuildGroup) int {
		return cmp.Compare(a.Profile, b.Profile)
	})
	return groups
}

// BuildDetailsURL is the expo.dev page of a build
func BuildDetailsURL(accountName, projectName, buildID string) string {
	return fmt.Sprintf("%s/accounts/%s/projects/%s/builds/%s",
		expoWebURL, url.PathEscape(accountName), url.PathEscape(projectName), url.PathEscape(buildID))
}

// SplitProjectSlug splits "account/project" into its parts; missing parts are empty
func SplitProjectSlug(slug string) (string, string) {
	account, project, _ := strings.Cut(strings.TrimPrefix(strings.TrimSpace(slug), "@"), "/")
	return account, project
}
