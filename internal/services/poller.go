package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/renato0307/revue/internal/domain"
	"github.com/renato0307/revue/internal/logging"
	"github.com/renato0307/revue/internal/ports"
)

// PollConfig is the credentials tuple a poller fetches with.
// Changing any field restarts the poller.
type PollConfig interface {
	comparable
	Configured() bool
}

// FetchFunc performs one poll cycle
type FetchFunc[C PollConfig, T any] func(ctx context.Context, cfg C) (T, error)

// Poller periodically fetches T and keeps the last result for the UI.
//
// At most one fetch runs at a time; triggers arriving while a fetch is in
// flight are dropped. Every Configure or Stop starts a new generation:
// the running cycle is cancelled and results from older generations are
// discarded, so a late completion cannot clear the in-flight flag of the
// current generation.
type Poller[C PollConfig, T any] struct {
	clock ports.Clock
	fetch FetchFunc[C, T]
	name  string

	mu         sync.Mutex
	active     bool // Configure has been called and not stopped
	cancel     context.CancelFunc
	cfg        C
	enabled    bool
	generation uint64
	inFlight   bool
	interval   time.Duration
	state      domain.QueueState[T]

	notifyMu    sync.Mutex
	nextSubID   int
	subscribers map[int]func(domain.QueueState[T])
}

// NewPoller creates an idle poller. name is used in logs only.
func NewPoller[C PollConfig, T any](name string, fetch FetchFunc[C, T], clock ports.Clock) *Poller[C, T] {
	return &Poller[C, T]{
		clock:       clock,
		fetch:       fetch,
		name:        name,
		state:       domain.QueueState[T]{Phase: domain.PhaseIdle},
		subscribers: make(map[int]func(domain.QueueState[T])),
	}
}

// Configure applies a config tuple. Any change stops the current cycle;
// when enabled a fetch starts immediately and then every interval.
func (p *Poller[C, T]) Configure(cfg C, enabled bool, interval time.Duration) {
	p.mu.Lock()
	if p.active && p.cfg == cfg && p.enabled == enabled && p.interval == interval {
		p.mu.Unlock()
		return
	}

	p.stopLocked()
	p.active = true
	p.cfg = cfg
	p.enabled = enabled
	p.interval = interval

	if !enabled || interval <= 0 {
		p.mu.Unlock()
		go p.notify()
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	gen := p.generation
	p.mu.Unlock()

	logging.Logger.Info("Poller started", "poller", p.name, "interval", interval)
	go p.loop(ctx, gen, interval)
}

// Refresh triggers a fetch outside the schedule. It is not cancelled by
// the poll cycle, but its result is dropped if the poller is reconfigured.
func (p *Poller[C, T]) Refresh() {
	p.mu.Lock()
	gen := p.generation
	p.mu.Unlock()

	p.trigger(context.Background(), gen)
}

// Stop cancels the running cycle and disarms the timer. Items and the last error are kept.
func (p *Poller[C, T]) Stop() {
	p.mu.Lock()
	p.stopLocked()
	p.active = false
	p.mu.Unlock()

	go p.notify()
}

// Snapshot returns the current state
func (p *Poller[C, T]) Snapshot() domain.QueueState[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Subscribe registers fn to receive every state change. fn is called from a
// background goroutine, one notification at a time.
func (p *Poller[C, T]) Subscribe(fn func(domain.QueueState[T])) (unsubscribe func()) {
	p.notifyMu.Lock()
	defer p.notifyMu.Unlock()

	id := p.nextSubID
	p.nextSubID++
	p.subscribers[id] = fn

	return func() {
		p.notifyMu.Lock()
		defer p.notifyMu.Unlock()
		delete(p.subscribers, id)
	}
}

func (p *Poller[C, T]) stopLocked() {
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.generation++
	p.inFlight = false
	p.state.IsLoading = false
	if p.state.Phase == domain.PhaseFetching {
		p.state.Phase = domain.PhaseIdle
	}
}

func (p *Poller[C, T]) loop(ctx context.Context, gen uint64, interval time.Duration) {
	p.trigger(ctx, gen)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.Logger.Debug("Poller loop stopped", "poller", p.name)
			return
		case <-ticker.C:
			p.trigger(ctx, gen)
		}
	}
}

// trigger starts a fetch unless one is in flight, the generation moved on,
// or the credentials are incomplete
func (p *Poller[C, T]) trigger(ctx context.Context, gen uint64) {
	p.mu.Lock()
	if gen != p.generation || p.inFlight || !p.cfg.Configured() {
		p.mu.Unlock()
		return
	}

	p.inFlight = true
	cfg := p.cfg
	p.state.Error = ""
	p.state.IsLoading = true
	p.state.Phase = domain.PhaseFetching
	p.mu.Unlock()

	go p.execute(ctx, gen, cfg)
}

func (p *Poller[C, T]) execute(ctx context.Context, gen uint64, cfg C) {
	p.notify()

	cycleID := uuid.NewString()
	log := logging.Logger.With("poller", p.name, "cycle_id", cycleID)
	log.Debug("Poll cycle started")

	items, err := p.fetch(ctx, cfg)

	p.mu.Lock()
	if gen != p.generation {
		p.mu.Unlock()
		log.Debug("Discarding result of a superseded poll cycle")
		return
	}

	p.inFlight = false
	p.state.IsLoading = false

	switch {
	case ctx.Err() != nil || errors.Is(err, context.Canceled):
		p.state.Phase = domain.PhaseIdle
		log.Debug("Poll cycle cancelled")
	case err != nil:
		p.state.Error = err.Error()
		p.state.Phase = domain.PhaseError
		log.Warn("Poll cycle failed", "error", err)
	default:
		p.state.Items = items
		p.state.LastUpdated = p.clock.Now()
		p.state.Phase = domain.PhaseIdle
		log.Debug("Poll cycle finished")
	}
	p.mu.Unlock()

	p.notify()
}

// notify delivers the latest snapshot to every subscriber
func (p *Poller[C, T]) notify() {
	p.notifyMu.Lock()
	defer p.notifyMu.Unlock()

	if len(p.subscribers) == 0 {
		return
	}

	snapshot := p.Snapshot()
	for _, fn := range p.subscribers {
		fn(snapshot)
	}
}
