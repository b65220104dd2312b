package services

import (
	"strings"

	"github.com/renato0307/revue/internal/domain"
)

// PRView is what the pull request tab renders
type PRView struct {
	MyPRs        []domain.ReviewRequest
	Reviews      []domain.ReviewRequest
	TotalMyPRs   int // after dedup, before filtering
	TotalReviews int // before filtering
}

// DedupMyPRs drops from mine every pull request that is also a review request
func DedupMyPRs(reviews, mine []domain.ReviewRequest) []domain.ReviewRequest {
	reviewIDs := make(map[int64]struct{}, len(reviews))
	for _, r := range reviews {
		reviewIDs[r.ID] = struct{}{}
	}

	out := make([]domain.ReviewRequest, 0, len(mine))
	for _, pr := range mine {
		if _, dup := reviewIDs[pr.ID]; dup {
			continue
		}
		out = append(out, pr)
	}
	return out
}

// FilterPRs keeps pull requests whose title, repository or author contains query, ignoring case.
// A blank query keeps everything.
func FilterPRs(prs []domain.ReviewRequest, query string) []domain.ReviewRequest {
	if strings.TrimSpace(query) == "" {
		return prs
	}

	q := strings.ToLower(query)
	out := make([]domain.ReviewRequest, 0, len(prs))
	for _, pr := range prs {
		if strings.Contains(strings.ToLower(pr.Title), q) ||
			strings.Contains(strings.ToLower(pr.RepoName), q) ||
			strings.Contains(strings.ToLower(pr.Author.Login), q) {
			out = append(out, pr)
		}
	}
	return out
}

// BuildPRView dedups and filters a queue for display
func BuildPRView(queue domain.PRQueue, query string) PRView {
	mine := DedupMyPRs(queue.ReviewRequests, queue.MyPRs)
	return PRView{
		MyPRs:        FilterPRs(mine, query),
		Reviews:      FilterPRs(queue.ReviewRequests, query),
		TotalMyPRs:   len(mine),
		TotalReviews: len(queue.ReviewRequests),
	}
}
