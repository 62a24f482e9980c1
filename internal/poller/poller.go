package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// FetchFunc produces one payload, typically via the fetch package.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// Listener receives a state snapshot after every transition.
type Listener[T any] func(State[T])

// State is what subscribers observe.
//
// Invariants:
//   - After a successful fetch, Previous is either nil (first fetch) or the
//     prior Current.
//   - A failure sets Err only; Current and Previous are retained so views
//     can keep showing last-known data.
type State[T any] struct {
	Current  *T
	Previous *T
	Loading  bool
	Err      string
}

// Config holds poller configuration.
type Config struct {
	Interval time.Duration // Poll cadence
}

// Poller drives a FetchFunc on a fixed cadence and publishes results.
type Poller[T any] struct {
	cfg    Config
	fetch  FetchFunc[T]
	notify Listener[T]
	logger *slog.Logger

	mu      sync.Mutex
	state   State[T]
	active  bool
	seq     uint64 // fetches started
	applied uint64 // newest fetch whose result was applied

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a Poller. The listener may be nil; state is then observable
// via Snapshot only.
func New[T any](cfg Config, fetch FetchFunc[T], notify Listener[T], logger *slog.Logger) *Poller[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Poller[T]{
		cfg:    cfg,
		fetch:  fetch,
		notify: notify,
		logger: logger,
	}
}

// Start performs an immediate fetch and then begins the interval loop.
func (p *Poller[T]) Start(ctx context.Context) error {
	p.ctx, p.cancel = context.WithCancel(ctx)

	p.mu.Lock()
	p.active = true
	p.mu.Unlock()

	p.wg.Add(1)
	go p.run()

	p.logger.Debug("poller started", "interval", p.cfg.Interval)
	return nil
}

// Stop deactivates the poller: the schedule is cancelled and any in-flight
// fetch completion becomes a no-op. Once Stop returns, no further state
// mutation or listener call occurs.
func (p *Poller[T]) Stop(ctx context.Context) error {
	p.mu.Lock()
	p.active = false
	p.mu.Unlock()

	if p.cancel != nil {
		p.cancel()
	}

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.logger.Debug("poller stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Snapshot returns a copy of the current state.
func (p *Poller[T]) Snapshot() State[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// run is the scheduling loop: one immediate fetch, then one per tick.
func (p *Poller[T]) run() {
	defer p.wg.Done()

	p.launch()

	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			p.launch()
		}
	}
}

// launch starts one fetch in its own goroutine so a slow response never
// delays the schedule. Overlapping fetches are resolved by sequence number
// at apply time.
func (p *Poller[T]) launch() {
	p.mu.Lock()
	if !p.active {
		p.mu.Unlock()
		return
	}
	p.seq++
	seq := p.seq
	p.state.Loading = true
	snapshot := p.state
	p.mu.Unlock()

	p.publish(snapshot)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		value, err := p.fetch(p.ctx)
		p.apply(seq, value, err)
	}()
}

// apply records a fetch outcome unless the poller was stopped or a newer
// outcome has already been applied.
func (p *Poller[T]) apply(seq uint64, value T, err error) {
	p.mu.Lock()

	if !p.active || seq <= p.applied {
		p.mu.Unlock()
		return
	}
	p.applied = seq

	if err != nil {
		// Keep Current/Previous: stale-but-known data beats a blank view.
		p.state.Err = err.Error()
		p.state.Loading = false
		snapshot := p.state
		p.mu.Unlock()

		p.logger.Warn("poll failed", "seq", seq, "error", err)
		p.publish(snapshot)
		return
	}

	p.state.Previous = p.state.Current
	p.state.Current = &value
	p.state.Err = ""
	p.state.Loading = false
	snapshot := p.state
	p.mu.Unlock()

	p.publish(snapshot)
}

func (p *Poller[T]) publish(s State[T]) {
	if p.notify != nil {
		p.notify(s)
	}
}
