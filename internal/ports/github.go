package ports

import (
	"context"

	"github.com/renato0307/revue/internal/domain"
)

// GitHubGateway is the subset of the GitHub REST API the dashboard consumes.
// Every call takes the token so credentials can change between poll cycles.
type GitHubGateway interface {
	CurrentUser(ctx context.Context, token string) (string, error)
	GetPullRequestDetail(ctx context.Context, token, repo string, number int) (*domain.PullRequestDetail, error)
	ListCheckRuns(ctx context.Context, token, repo, sha string) ([]domain.CheckRun, error)
	ListIssueComments(ctx context.Context, token, repo string, number int) ([]domain.IssueComment, error)
	SearchPullRequests(ctx context.Context, token, query string) ([]domain.PullRequest, error)
}
