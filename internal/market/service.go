package market

import (
	"context"
	"log/slog"
	"sync"

	"github.com/quantfeed/tradeboard/internal/exchange"
	"github.com/quantfeed/tradeboard/internal/model"
)

// PriceSource fetches a live price point for a trading pair.
type PriceSource interface {
	Ticker24h(ctx context.Context, base, quote string) (*model.PricePoint, error)
}

// Service serves live prices and retains per-symbol history.
type Service struct {
	source      PriceSource
	historySize int
	logger      *slog.Logger

	mu      sync.RWMutex
	history map[string]*Ring // keyed by "BASE/QUOTE"
	latest  map[string]model.PricePoint
}

// NewService creates a market data service backed by the given price source.
func NewService(source PriceSource, historySize int, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		source:      source,
		historySize: historySize,
		logger:      logger,
		history:     make(map[string]*Ring),
		latest:      make(map[string]model.PricePoint),
	}
}

// LivePrice fetches the current price for base/quote from the exchange and
// records it into the symbol's history ring.
func (s *Service) LivePrice(ctx context.Context, base, quote string) (*model.PricePoint, error) {
	pp, err := s.source.Ticker24h(ctx, base, quote)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	ring, ok := s.history[pp.Symbol]
	if !ok {
		ring = NewRing(s.historySize)
		s.history[pp.Symbol] = ring
	}
	ring.Add(pp.Price)
	s.latest[pp.Symbol] = *pp
	s.mu.Unlock()

	s.logger.Debug("live price fetched",
		"symbol", pp.Symbol,
		"price", pp.Price,
	)

	return pp, nil
}

// History returns recorded prices for a symbol, oldest first. The second
// return value is false when the symbol has never been fetched.
func (s *Service) History(symbol string) ([]float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ring, ok := s.history[symbol]
	if !ok {
		return nil, false
	}
	return ring.Values(), true
}

// Latest returns the most recently fetched price point for a symbol.
func (s *Service) Latest(symbol string) (model.PricePoint, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pp, ok := s.latest[symbol]
	return pp, ok
}

var _ PriceSource = (*exchange.Client)(nil)
