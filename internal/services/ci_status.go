package services

import "github.com/renato0307/revue/internal/domain"

var failedConclusions = map[string]bool{
	"action_required": true,
	"cancelled":       true,
	"failure":         true,
	"timed_out":       true,
}

var neutralConclusions = map[string]bool{
	"neutral": true,
	"skipped": true,
}

// AggregateCIStatus folds the check runs of a commit into one status.
// Returns nil when there are no runs.
func AggregateCIStatus(runs []domain.CheckRun) *domain.CIStatus {
	if len(runs) == 0 {
		return nil
	}

	status := aggregate(runs)
	return &status
}

func aggregate(runs []domain.CheckRun) domain.CIStatus {
	for _, run := range runs {
		if run.Status == "in_progress" || run.Status == "queued" {
			return domain.CIPending
		}
	}

	for _, run := range runs {
		if failedConclusions[run.Conclusion] {
			return domain.CIFailure
		}
	}

	for _, run := range runs {
		if !neutralConclusions[run.Conclusion] {
			return domain.CISuccess
		}
	}
	return domain.CINeutral
}
