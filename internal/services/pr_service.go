package services

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/revue/internal/domain"
	"github.com/renato0307/revue/internal/logging"
	"github.com/renato0307/revue/internal/ports"
)

// PRService fetches the review queue and the user's own pull requests
type PRService struct {
	enricher *Enricher
	github   ports.GitHubGateway
}

// NewPRService creates a new PRService
func NewPRService(github ports.GitHubGateway, enricher *Enricher) *PRService {
	return &PRService{
		enricher: enricher,
		github:   github,
	}
}

// FetchReviewRequests returns open pull requests awaiting the user's review
func (s *PRService) FetchReviewRequests(ctx context.Context, creds domain.GitHubCredentials) ([]domain.ReviewRequest, error) {
	return s.search(ctx, creds, fmt.Sprintf("review-requested:%s is:pr is:open", creds.Username))
}

// FetchMyPRs returns open pull requests authored by the user
func (s *PRService) FetchMyPRs(ctx context.Context, creds domain.GitHubCredentials) ([]domain.ReviewRequest, error) {
	return s.search(ctx, creds, fmt.Sprintf("author:%s is:pr is:open", creds.Username))
}

// FetchQueue runs both searches concurrently. The first failure wins.
func (s *PRService) FetchQueue(ctx context.Context, creds domain.GitHubCredentials) (domain.PRQueue, error) {
	if !creds.Configured() {
		return domain.PRQueue{}, domain.ErrNotConfigured
	}

	var queue domain.PRQueue
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		reviews, err := s.FetchReviewRequests(gctx, creds)
		if err != nil {
			return err
		}
		queue.ReviewRequests = reviews
		return nil
	})

	g.Go(func() error {
		mine, err := s.FetchMyPRs(gctx, creds)
		if err != nil {
			return err
		}
		queue.MyPRs = mine
		return nil
	})

	if err := g.Wait(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.PRQueue{}, ctxErr
		}
		return domain.PRQueue{}, err
	}

	return queue, nil
}

func (s *PRService) search(ctx context.Context, creds domain.GitHubCredentials, query string) ([]domain.ReviewRequest, error) {
	if !creds.Configured() {
		return nil, domain.ErrNotConfigured
	}

	prs, err := s.github.SearchPullRequests(ctx, creds.Token, query)
	if err != nil {
		return nil, err
	}

	records := make([]domain.ReviewRequest, 0, len(prs))
	for _, pr := range prs {
		pr.RepoName = RepoNameFromURL(pr.RepositoryURL)
		records = append(records, domain.ReviewRequest{PullRequest: pr})
	}

	enriched := s.enricher.Enrich(ctx, creds.Token, records)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logging.Logger.Debug("Pull requests fetched", "query", query, "count", len(enriched))
	return enriched, nil
}

// RepoNameFromURL returns "owner/name" from a repository API URL
// such as https://api.github.com/repos/owner/name
func RepoNameFromURL(repositoryURL string) string {
	parts := strings.Split(strings.TrimSuffix(repositoryURL, "/"), "/")
	if len(parts) < 2 {
		return repositoryURL
	}
	return parts[len(parts)-2] + "/" + parts[len(parts)-1]
}
