package domain

import "time"

// PollPhase is the state of a poller instance
type PollPhase string

const (
	PhaseIdle     PollPhase = "idle"
	PhaseFetching PollPhase = "fetching"
	PhaseError    PollPhase = "error"
)

// QueueState is what the presentation layer sees of one polled queue
type QueueState[T any] struct {
	Error       string // empty when the last fetch succeeded
	IsLoading   bool
	Items       T
	LastUpdated time.Time // zero until the first successful fetch
	Phase       PollPhase
}

// HasError reports whether the last fetch failed
func (q QueueState[T]) HasError() bool {
	return q.Error != ""
}
