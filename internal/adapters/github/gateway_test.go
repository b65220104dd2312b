package github

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/revue/internal/domain"
)

const apiHost = "https://api.github.com"

func newTestGateway(t *testing.T) *Gateway {
	t.Helper()
	g, err := NewGateway("")
	require.NoError(t, err)
	return g
}

func TestSearchPullRequests(t *testing.T) {
	defer gock.Off()

	gock.New(apiHost).
		Get("/search/issues").
		MatchParam("q", "review-requested:octo is:pr is:open").
		MatchParam("sort", "updated").
		MatchParam("order", "desc").
		MatchParam("per_page", "50").
		MatchHeader("Authorization", "Bearer tok").
		Reply(200).
		JSON(map[string]any{
			"total_count":        1,
			"incomplete_results": false,
			"items": []map[string]any{
				{
					"id":             int64(1001),
					"number":         42,
					"title":          "Add login screen",
					"html_url":       "https://github.com/acme/app/pull/42",
					"repository_url": "https://api.github.com/repos/acme/app",
					"created_at":     "2024-05-01T10:00:00Z",
					"updated_at":     "2024-05-02T10:00:00Z",
					"draft":          true,
					"user":           map[string]any{"login": "alice", "avatar_url": "https://avatars/alice"},
					"labels":         []map[string]any{{"name": "feature", "color": "00ff00"}},
				},
			},
		})

	prs, err := newTestGateway(t).SearchPullRequests(context.Background(), "tok", "review-requested:octo is:pr is:open")
	require.NoError(t, err)
	require.Len(t, prs, 1)

	pr := prs[0]
	assert.Equal(t, int64(1001), pr.ID)
	assert.Equal(t, 42, pr.Number)
	assert.Equal(t, "Add login screen", pr.Title)
	assert.Equal(t, "alice", pr.Author.Login)
	assert.Equal(t, "https://api.github.com/repos/acme/app", pr.RepositoryURL)
	assert.True(t, pr.Draft)
	assert.Equal(t, []domain.Label{{Color: "00ff00", Name: "feature"}}, pr.Labels)
	assert.Equal(t, 2024, pr.CreatedAt.Year())
	assert.True(t, gock.IsDone())
}

func TestSearchPullRequests_ErrorWithMessage(t *testing.T) {
	defer gock.Off()

	gock.New(apiHost).
		Get("/search/issues").
		Reply(401).
		JSON(map[string]any{"message": "Bad credentials"})

	_, err := newTestGateway(t).SearchPullRequests(context.Background(), "bad", "author:octo is:pr is:open")
	require.Error(t, err)

	var fetchErr *domain.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, 401, fetchErr.StatusCode)
	assert.Equal(t, "GitHub", fetchErr.Source)
	assert.Equal(t, "Bad credentials", err.Error())
}

func TestSearchPullRequests_ErrorWithoutMessage(t *testing.T) {
	defer gock.Off()

	gock.New(apiHost).
		Get("/search/issues").
		Reply(500)

	_, err := newTestGateway(t).SearchPullRequests(context.Background(), "tok", "author:octo is:pr is:open")
	require.Error(t, err)
	assert.Equal(t, "GitHub API error: 500 Internal Server Error", err.Error())
}

func TestGetPullRequestDetail(t *testing.T) {
	defer gock.Off()

	gock.New(apiHost).
		Get("/repos/acme/app/pulls/42").
		Reply(200).
		JSON(map[string]any{
			"number":    42,
			"head":      map[string]any{"sha": "abc123"},
			"additions": 10,
			"deletions": 3,
		})

	detail, err := newTestGateway(t).GetPullRequestDetail(context.Background(), "tok", "acme/app", 42)
	require.NoError(t, err)
	assert.Equal(t, "abc123", detail.HeadSHA)
	require.NotNil(t, detail.DiffStats)
	assert.Equal(t, domain.DiffStats{Additions: 10, Deletions: 3}, *detail.DiffStats)
}

func TestGetPullRequestDetail_NoCounts(t *testing.T) {
	defer gock.Off()

	gock.New(apiHost).
		Get("/repos/acme/app/pulls/7").
		Reply(200).
		JSON(map[string]any{"number": 7, "head": map[string]any{"sha": "def"}})

	detail, err := newTestGateway(t).GetPullRequestDetail(context.Background(), "tok", "acme/app", 7)
	require.NoError(t, err)
	assert.Equal(t, "def", detail.HeadSHA)
	assert.Nil(t, detail.DiffStats)
}

func TestGetPullRequestDetail_InvalidRepo(t *testing.T) {
	_, err := newTestGateway(t).GetPullRequestDetail(context.Background(), "tok", "no-slash", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid repository name")
}

func TestListCheckRuns(t *testing.T) {
	defer gock.Off()

	gock.New(apiHost).
		Get("/repos/acme/app/commits/abc123/check-runs").
		MatchParam("per_page", "100").
		Reply(200).
		JSON(map[string]any{
			"total_count": 2,
			"check_runs": []map[string]any{
				{"status": "completed", "conclusion": "success"},
				{"status": "in_progress"},
			},
		})

	runs, err := newTestGateway(t).ListCheckRuns(context.Background(), "tok", "acme/app", "abc123")
	require.NoError(t, err)
	assert.Equal(t, []domain.CheckRun{
		{Conclusion: "success", Status: "completed"},
		{Conclusion: "", Status: "in_progress"},
	}, runs)
}

func TestListIssueComments(t *testing.T) {
	defer gock.Off()

	gock.New(apiHost).
		Get("/repos/acme/app/issues/42/comments").
		MatchParam("per_page", "30").
		MatchHeader("Accept", regexp.QuoteMeta(fullMediaType)).
		Reply(200).
		JSON([]map[string]any{
			{
				"body":      "see doc",
				"body_html": `<p><a href="https://www.notion.so/acme/Spec-1">Spec</a></p>`,
				"user":      map[string]any{"login": "notion-workspace[bot]"},
			},
		})

	comments, err := newTestGateway(t).ListIssueComments(context.Background(), "tok", "acme/app", 42)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "notion-workspace[bot]", comments[0].AuthorLogin)
	assert.Contains(t, comments[0].BodyHTML, "notion.so")
	assert.True(t, gock.IsDone())
}

func TestNewGateway_BaseURL(t *testing.T) {
	defer gock.Off()

	gock.New("https://ghe.example.com").
		Get("/api/v3/repos/acme/app/pulls/1").
		Reply(200).
		JSON(map[string]any{"number": 1, "head": map[string]any{"sha": "s"}})

	g, err := NewGateway("https://ghe.example.com/api/v3")
	require.NoError(t, err)

	detail, err := g.GetPullRequestDetail(context.Background(), "tok", "acme/app", 1)
	require.NoError(t, err)
	assert.Equal(t, "s", detail.HeadSHA)
}

func TestClientFor_ReusesClientPerToken(t *testing.T) {
	g := newTestGateway(t)

	first := g.clientFor("a")
	assert.Same(t, first, g.clientFor("a"))
	assert.NotSame(t, first, g.clientFor("b"))
}

func TestCurrentUser(t *testing.T) {
	defer gock.Off()

	gock.New(apiHost).
		Get("/user").
		MatchHeader("Authorization", "Bearer tok").
		Reply(200).
		JSON(map[string]any{"login": "octo", "id": 1})

	login, err := newTestGateway(t).CurrentUser(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "octo", login)
}

func TestCurrentUser_BadToken(t *testing.T) {
	defer gock.Off()

	gock.New(apiHost).
		Get("/user").
		Reply(401).
		JSON(map[string]any{"message": "Bad credentials"})

	_, err := newTestGateway(t).CurrentUser(context.Background(), "bad")
	require.Error(t, err)

	var fetchErr *domain.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, 401, fetchErr.StatusCode)
}
