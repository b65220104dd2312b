package services

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/renato0307/revue/internal/domain"
	"github.com/renato0307/revue/internal/logging"
	"github.com/renato0307/revue/internal/ports"
)

// DefaultEnrichmentConcurrency caps outstanding enrichment sub-requests
const DefaultEnrichmentConcurrency = 5

// Enricher adds diff stats, CI status and Notion links to pull requests.
// Every sub-request of every record goes through one shared limiter.
type Enricher struct {
	github  ports.GitHubGateway
	limiter *semaphore.Weighted
}

// NewEnricher creates an Enricher allowing at most concurrency outstanding sub-requests
func NewEnricher(github ports.GitHubGateway, concurrency int64) *Enricher {
	if concurrency < 1 {
		concurrency = DefaultEnrichmentConcurrency
	}
	return &Enricher{
		github:  github,
		limiter: semaphore.NewWeighted(concurrency),
	}
}

// task is one limited sub-request. It may return a follow-up sub-request,
// which is queued after the task's slot is released.
type task func() task

// Enrich returns one enriched record per input, in input order.
// Failures only clear the affected field; the batch never fails.
// Sub-requests take limiter slots in submission order: record by record,
// detail before comments, CI once its head commit is known.
func (e *Enricher) Enrich(ctx context.Context, token string, records []domain.ReviewRequest) []domain.ReviewRequest {
	out := make([]domain.ReviewRequest, len(records))
	copy(out, records)

	var wg sync.WaitGroup
	for i := range out {
		rec := &out[i]
		log := logging.Logger.With("repo", rec.RepoName, "number", rec.Number)

		if !e.submit(ctx, &wg, e.detailTask(ctx, token, rec, log)) {
			break
		}
		if !e.submit(ctx, &wg, e.commentsTask(ctx, token, rec, log)) {
			break
		}
	}
	wg.Wait()

	return out
}

// submit waits for a limiter slot, then runs t on its own goroutine.
// It reports false when ctx ended before a slot was granted.
func (e *Enricher) submit(ctx context.Context, wg *sync.WaitGroup, t task) bool {
	if err := e.limiter.Acquire(ctx, 1); err != nil {
		return false
	}

	wg.Add(1)
	go func() {
		defer wg.Done()

		next := t()
		e.limiter.Release(1)

		if next != nil {
			e.submit(ctx, wg, next)
		}
	}()
	return true
}

// detailTask sets the diff stats and queues the CI lookup for the head commit
func (e *Enricher) detailTask(ctx context.Context, token string, rec *domain.ReviewRequest, log *slog.Logger) task {
	return func() task {
		detail, err := e.github.GetPullRequestDetail(ctx, token, rec.RepoName, rec.Number)
		if err != nil {
			log.Debug("PR detail unavailable", "error", err)
			return nil // Non-fatal
		}

		rec.DiffStats = detail.DiffStats
		if detail.HeadSHA == "" {
			return nil
		}
		return e.checksTask(ctx, token, rec, detail.HeadSHA, log)
	}
}

func (e *Enricher) checksTask(ctx context.Context, token string, rec *domain.ReviewRequest, sha string, log *slog.Logger) task {
	return func() task {
		runs, err := e.github.ListCheckRuns(ctx, token, rec.RepoName, sha)
		if err != nil {
			log.Debug("Check runs unavailable", "sha", sha, "error", err)
			return nil // Non-fatal
		}

		rec.CIStatus = AggregateCIStatus(runs)
		return nil
	}
}

// commentsTask writes only NotionLink, disjoint from the detail chain
func (e *Enricher) commentsTask(ctx context.Context, token string, rec *domain.ReviewRequest, log *slog.Logger) task {
	return func() task {
		comments, err := e.github.ListIssueComments(ctx, token, rec.RepoName, rec.Number)
		if err != nil {
			log.Debug("Comments unavailable", "error", err)
			return nil // Non-fatal
		}

		rec.NotionLink = ExtractNotionLink(comments)
		return nil
	}
}
