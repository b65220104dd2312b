package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	gh "github.com/google/go-github/v71/github"
	"golang.org/x/oauth2"

	"github.com/renato0307/revue/internal/domain"
	"github.com/renato0307/revue/internal/logging"
	"github.com/renato0307/revue/internal/ports"
)

const (
	checkRunsPerPage = 100
	commentsPerPage  = 30
	searchPerPage    = 50

	// Returns body_html next to the markdown body
	fullMediaType = "application/vnd.github.v3.full+json"

	sourceName = "GitHub"
)

// Gateway implements ports.GitHubGateway on top of go-github
type Gateway struct {
	baseURL *url.URL // nil means the public api.github.com

	mu          sync.Mutex
	client      *gh.Client
	clientToken string
}

// Verify interface compliance at compile time
var _ ports.GitHubGateway = (*Gateway)(nil)

// NewGateway creates a Gateway. An empty baseURL targets api.github.com.
func NewGateway(baseURL string) (*Gateway, error) {
	g := &Gateway{}
	if baseURL == "" {
		return g, nil
	}

	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid GitHub API URL %q: %w", baseURL, err)
	}
	g.baseURL = u
	return g, nil
}

// clientFor returns a client authenticated with token, reusing the last one when the token is unchanged
func (g *Gateway) clientFor(token string) *gh.Client {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.client != nil && g.clientToken == token {
		return g.client
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	client := gh.NewClient(oauth2.NewClient(context.Background(), ts))
	if g.baseURL != nil {
		base := *g.baseURL
		client.BaseURL = &base
	}

	g.client = client
	g.clientToken = token
	return client
}

// CurrentUser returns the login the token belongs to
func (g *Gateway) CurrentUser(ctx context.Context, token string) (string, error) {
	user, _, err := g.clientFor(token).Users.Get(ctx, "")
	if err != nil {
		return "", toFetchError(ctx, err)
	}
	return user.GetLogin(), nil
}

// SearchPullRequests runs an issue search ordered by last update, newest first
func (g *Gateway) SearchPullRequests(ctx context.Context, token, query string) ([]domain.PullRequest, error) {
	logging.Logger.Debug("Searching pull requests", "query", query)

	result, _, err := g.clientFor(token).Search.Issues(ctx, query, &gh.SearchOptions{
		Sort:        "updated",
		Order:       "desc",
		ListOptions: gh.ListOptions{PerPage: searchPerPage},
	})
	if err != nil {
		return nil, toFetchError(ctx, err)
	}

	prs := make([]domain.PullRequest, 0, len(result.Issues))
	for _, issue := range result.Issues {
		prs = append(prs, mapIssue(issue))
	}

	logging.Logger.Debug("Search returned pull requests", "query", query, "count", len(prs))
	return prs, nil
}

// GetPullRequestDetail fetches the head commit and diff size of a pull request
func (g *Gateway) GetPullRequestDetail(ctx context.Context, token, repo string, number int) (*domain.PullRequestDetail, error) {
	owner, name, err := splitRepo(repo)
	if err != nil {
		return nil, err
	}

	pr, _, err := g.clientFor(token).PullRequests.Get(ctx, owner, name, number)
	if err != nil {
		return nil, toFetchError(ctx, err)
	}

	detail := &domain.PullRequestDetail{
		HeadSHA: pr.GetHead().GetSHA(),
	}
	if pr.Additions != nil && pr.Deletions != nil {
		detail.DiffStats = &domain.DiffStats{
			Additions: pr.GetAdditions(),
			Deletions: pr.GetDeletions(),
		}
	}
	return detail, nil
}

// ListCheckRuns lists the check runs reported for a commit
func (g *Gateway) ListCheckRuns(ctx context.Context, token, repo, sha string) ([]domain.CheckRun, error) {
	owner, name, err := splitRepo(repo)
	if err != nil {
		return nil, err
	}

	result, _, err := g.clientFor(token).Checks.ListCheckRunsForRef(ctx, owner, name, sha, &gh.ListCheckRunsOptions{
		ListOptions: gh.ListOptions{PerPage: checkRunsPerPage},
	})
	if err != nil {
		return nil, toFetchError(ctx, err)
	}

	runs := make([]domain.CheckRun, 0, len(result.CheckRuns))
	for _, run := range result.CheckRuns {
		runs = append(runs, domain.CheckRun{
			Conclusion: run.GetConclusion(),
			Status:     run.GetStatus(),
		})
	}
	return runs, nil
}

// issueCommentHTML is an issue comment in the "full" media type.
// go-github's IssueComment does not carry body_html.
type issueCommentHTML struct {
	BodyHTML string `json:"body_html"`
	User     struct {
		Login string `json:"login"`
	} `json:"user"`
}

// ListIssueComments lists the conversation comments of a pull request with rendered HTML bodies
func (g *Gateway) ListIssueComments(ctx context.Context, token, repo string, number int) ([]domain.IssueComment, error) {
	owner, name, err := splitRepo(repo)
	if err != nil {
		return nil, err
	}

	client := g.clientFor(token)
	u := fmt.Sprintf("repos/%v/%v/issues/%d/comments?per_page=%d", owner, name, number, commentsPerPage)
	req, err := client.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build comments request: %w", err)
	}
	req.Header.Set("Accept", fullMediaType)

	var raw []*issueCommentHTML
	if _, err := client.Do(ctx, req, &raw); err != nil {
		return nil, toFetchError(ctx, err)
	}

	comments := make([]domain.IssueComment, 0, len(raw))
	for _, c := range raw {
		if c == nil {
			continue
		}
		comments = append(comments, domain.IssueComment{
			AuthorLogin: c.User.Login,
			BodyHTML:    c.BodyHTML,
		})
	}
	return comments, nil
}

func mapIssue(issue *gh.Issue) domain.PullRequest {
	labels := make([]domain.Label, 0, len(issue.Labels))
	for _, l := range issue.Labels {
		labels = append(labels, domain.Label{Color: l.GetColor(), Name: l.GetName()})
	}

	return domain.PullRequest{
		Author: domain.Author{
			AvatarURL: issue.GetUser().GetAvatarURL(),
			Login:     issue.GetUser().GetLogin(),
		},
		CreatedAt:     issue.GetCreatedAt().Time,
		Draft:         issue.GetDraft(),
		HTMLURL:       issue.GetHTMLURL(),
		ID:            issue.GetID(),
		Labels:        labels,
		Number:        issue.GetNumber(),
		RepositoryURL: issue.GetRepositoryURL(),
		Title:         issue.GetTitle(),
		UpdatedAt:     issue.GetUpdatedAt().Time,
	}
}

// toFetchError keeps cancellation distinguishable and turns API error responses into FetchErrors
func toFetchError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) {
		return &domain.FetchError{
			Err:        err,
			Message:    rateErr.Message,
			Source:     sourceName,
			StatusCode: statusOf(rateErr.Response),
		}
	}

	var respErr *gh.ErrorResponse
	if errors.As(err, &respErr) {
		return &domain.FetchError{
			Err:        err,
			Message:    respErr.Message,
			Source:     sourceName,
			StatusCode: statusOf(respErr.Response),
		}
	}

	return fmt.Errorf("github request failed: %w", err)
}

func statusOf(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}

func splitRepo(repo string) (string, string, error) {
	owner, name, ok := strings.Cut(repo, "/")
	if !ok || owner == "" || name == "" {
		return "", "", fmt.Errorf("invalid repository name %q", repo)
	}
	return owner, name, nil
}
