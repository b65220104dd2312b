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

var testCreds = domain.GitHubCredentials{Token: "tok", Username: "octo"}

func newTestPRService(gh *portsmocks.MockGitHubGateway) *PRService {
	return NewPRService(gh, NewEnricher(gh, DefaultEnrichmentConcurrency))
}

// stubEnrichment makes every enrichment sub-request fail, leaving fields nil
func stubEnrichment(gh *portsmocks.MockGitHubGateway) {
	gh.EXPECT().GetPullRequestDetail(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("skip")).Maybe()
	gh.EXPECT().ListIssueComments(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("skip")).Maybe()
}

func TestRepoNameFromURL(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"https://api.github.com/repos/acme/app", "acme/app"},
		{"https://ghe.example.com/api/v3/repos/team/svc/", "team/svc"},
		{"app", "app"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, RepoNameFromURL(tt.input))
		})
	}
}

func TestFetchReviewRequests(t *testing.T) {
	gh := portsmocks.NewMockGitHubGateway(t)
	stubEnrichment(gh)

	gh.EXPECT().SearchPullRequests(mock.Anything, "tok", "review-requested:octo is:pr is:open").
		Return([]domain.PullRequest{
			{ID: 10, Number: 1, RepositoryURL: "https://api.github.com/repos/acme/app"},
			{ID: 11, Number: 2, RepositoryURL: "https://api.github.com/repos/acme/web"},
		}, nil)

	prs, err := newTestPRService(gh).FetchReviewRequests(context.Background(), testCreds)
	require.NoError(t, err)
	require.Len(t, prs, 2)
	assert.Equal(t, "acme/app", prs[0].RepoName)
	assert.Equal(t, "acme/web", prs[1].RepoName)
	assert.Nil(t, prs[0].CIStatus)
}

func TestFetchMyPRs_SearchError(t *testing.T) {
	gh := portsmocks.NewMockGitHubGateway(t)
	fetchErr := &domain.FetchError{Message: "Bad credentials", Source: "GitHub", StatusCode: 401}

	gh.EXPECT().SearchPullRequests(mock.Anything, "tok", "author:octo is:pr is:open").Return(nil, fetchErr)

	_, err := newTestPRService(gh).FetchMyPRs(context.Background(), testCreds)
	require.Error(t, err)

	var target *domain.FetchError
	assert.True(t, errors.As(err, &target))
	assert.Equal(t, "Bad credentials", err.Error())
}

func TestFetchQueue(t *testing.T) {
	gh := portsmocks.NewMockGitHubGateway(t)
	stubEnrichment(gh)

	gh.EXPECT().SearchPullRequests(mock.Anything, "tok", "review-requested:octo is:pr is:open").
		Return([]domain.PullRequest{{ID: 1, RepositoryURL: "https://api.github.com/repos/a/b"}}, nil)
	gh.EXPECT().SearchPullRequests(mock.Anything, "tok", "author:octo is:pr is:open").
		Return([]domain.PullRequest{{ID: 2, RepositoryURL: "https://api.github.com/repos/a/b"}, {ID: 3, RepositoryURL: "https://api.github.com/repos/a/c"}}, nil)

	queue, err := newTestPRService(gh).FetchQueue(context.Background(), testCreds)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, ids(queue.ReviewRequests))
	assert.Equal(t, []int64{2, 3}, ids(queue.MyPRs))
}

func TestFetchQueue_FirstFailureWins(t *testing.T) {
	gh := portsmocks.NewMockGitHubGateway(t)
	stubEnrichment(gh)
	fetchErr := &domain.FetchError{Source: "GitHub", StatusCode: 500}

	gh.EXPECT().SearchPullRequests(mock.Anything, "tok", "review-requested:octo is:pr is:open").Return(nil, fetchErr)
	gh.EXPECT().SearchPullRequests(mock.Anything, "tok", "author:octo is:pr is:open").
		Return([]domain.PullRequest{{ID: 2, RepositoryURL: "https://api.github.com/repos/a/b"}}, nil).Maybe()

	_, err := newTestPRService(gh).FetchQueue(context.Background(), testCreds)
	require.Error(t, err)
	assert.Equal(t, "GitHub API error: 500 Internal Server Error", err.Error())
}

func TestFetchQueue_Cancelled(t *testing.T) {
	gh := portsmocks.NewMockGitHubGateway(t)

	ctx, cancel := context.WithCancel(context.Background())
	gh.EXPECT().SearchPullRequests(mock.Anything, "tok", mock.Anything).
		RunAndReturn(func(ctx context.Context, token, query string) ([]domain.PullRequest, error) {
			cancel()
			return nil, ctx.Err()
		})

	_, err := newTestPRService(gh).FetchQueue(ctx, testCreds)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFetchQueue_NotConfigured(t *testing.T) {
	gh := portsmocks.NewMockGitHubGateway(t)

	_, err := newTestPRService(gh).FetchQueue(context.Background(), domain.GitHubCredentials{Token: "tok"})
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
}
