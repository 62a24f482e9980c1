package copytrade

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Processor drains the order queue on a fixed cadence and replays orders
// for followers.
type Processor struct {
	interval time.Duration
	svc      *Service
	logger   *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewProcessor creates a processor over the given service.
func NewProcessor(interval time.Duration, svc *Service, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		interval: interval,
		svc:      svc,
		logger:   logger,
	}
}

// Start begins the processing loop.
func (p *Processor) Start(ctx context.Context) error {
	p.ctx, p.cancel = context.WithCancel(ctx)

	p.wg.Add(1)
	go p.run()

	p.logger.Info("order processor started", "interval", p.interval)
	return nil
}

// Stop gracefully shuts down the processor. Remaining queued orders are
// drained before returning.
func (p *Processor) Stop(ctx context.Context) error {
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
	case <-ctx.Done():
		return ctx.Err()
	}

	// Final drain so submitted orders are not lost on shutdown.
	p.svc.ProcessOrders()
	p.logger.Info("order processor stopped")
	return nil
}

func (p *Processor) run() {
	defer p.wg.Done()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			if results := p.svc.ProcessOrders(); len(results) > 0 {
				p.logger.Debug("processing cycle complete", "executions", len(results))
			}
		}
	}
}
