package copytrade

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/quantfeed/tradeboard/internal/model"
)

// QueueCapacity is the initial capacity of the order queue.
const QueueCapacity = 64

// Fee applied on simulated follower fills (0.1% of trade value).
const feeRate = 0.001

var (
	// ErrTraderNotFound is returned when a trader id is unknown.
	ErrTraderNotFound = errors.New("trader not found")

	// ErrLeaderNotFound is returned when an order names an unknown leader.
	ErrLeaderNotFound = errors.New("leader not found")

	// ErrInvalidSide is returned for an order side other than BUY or SELL.
	ErrInvalidSide = errors.New("order side must be BUY or SELL")
)

// Service manages traders, the ROI leaderboard, follower links and the
// order queue.
type Service struct {
	logger *slog.Logger

	mu        sync.RWMutex
	traders   map[string]*model.Trader
	followers map[string][]string // leader id -> follower ids
	board     *LeaderboardHeap

	queue *OrderQueue[model.Order]
}

// NewService creates an empty copy-trading service.
func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		logger:    logger,
		traders:   make(map[string]*model.Trader),
		followers: make(map[string][]string),
		board:     &LeaderboardHeap{},
		queue:     NewOrderQueue[model.Order](QueueCapacity),
	}
}

// RegisterTrader registers a new trader or updates an existing one. When
// the id is empty a uuid is assigned. Updating an existing trader rebuilds
// the leaderboard heap.
func (s *Service) RegisterTrader(t model.Trader) model.Trader {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.TraderID == "" {
		t.TraderID = uuid.NewString()
	}

	_, existed := s.traders[t.TraderID]
	s.traders[t.TraderID] = &t

	if existed {
		s.rebuildLocked()
	} else {
		s.board.Insert(t)
	}

	s.logger.Info("trader registered",
		"trader_id", t.TraderID,
		"name", t.Name,
		"roi", t.ROI,
		"updated", existed,
	)
	return t
}

// Trader returns a trader by id.
func (s *Service) Trader(id string) (model.Trader, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.traders[id]
	if !ok {
		return model.Trader{}, false
	}
	return *t, true
}

// AddFollower links follower to leader. Both must be registered; adding the
// same link twice is a no-op.
func (s *Service) AddFollower(leaderID, followerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.traders[leaderID]; !ok {
		return ErrTraderNotFound
	}
	if _, ok := s.traders[followerID]; !ok {
		return ErrTraderNotFound
	}

	for _, id := range s.followers[leaderID] {
		if id == followerID {
			return nil
		}
	}
	s.followers[leaderID] = append(s.followers[leaderID], followerID)
	return nil
}

// TopTraders returns up to n traders ordered by ROI descending.
func (s *Service) TopTraders(n int) []model.Trader {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sorted := s.board.Sorted()
	if n < len(sorted) {
		sorted = sorted[:n]
	}

	// Heap entries are copies; re-read portfolio values from the registry so
	// follower fills show up without a rebuild.
	for i, t := range sorted {
		if cur, ok := s.traders[t.TraderID]; ok {
			sorted[i] = *cur
		}
	}
	return sorted
}

// SubmitOrder validates and enqueues a leader order for follower replay.
// The order id and timestamp are server-assigned.
func (s *Service) SubmitOrder(o model.Order) (model.Order, error) {
	if !o.Side.Valid() {
		return model.Order{}, ErrInvalidSide
	}

	s.mu.RLock()
	_, ok := s.traders[o.LeaderID]
	s.mu.RUnlock()
	if !ok {
		return model.Order{}, ErrLeaderNotFound
	}

	o.OrderID = uuid.NewString()
	o.Timestamp = time.Now().UnixMilli()
	s.queue.Push(o)

	s.logger.Info("order queued",
		"order_id", o.OrderID,
		"leader_id", o.LeaderID,
		"side", o.Side,
		"symbol", o.Symbol,
	)
	return o, nil
}

// QueuedOrders returns the number of orders awaiting processing.
func (s *Service) QueuedOrders() int {
	return s.queue.Len()
}

// ProcessOrders drains the queue and executes each order for the leader's
// followers, returning all execution results.
func (s *Service) ProcessOrders() []model.Execution {
	var results []model.Execution

	for {
		order, ok := s.queue.TryPop()
		if !ok {
			return results
		}

		s.mu.Lock()
		followerIDs := append([]string(nil), s.followers[order.LeaderID]...)
		for _, fid := range followerIDs {
			results = append(results, s.executeLocked(fid, order))
		}
		s.mu.Unlock()

		s.logger.Info("order processed",
			"order_id", order.OrderID,
			"leader_id", order.LeaderID,
			"followers", len(followerIDs),
		)
	}
}

// executeLocked replays an order for one follower, adjusting portfolio
// value by trade value net of fees. Caller must hold mu.
func (s *Service) executeLocked(followerID string, order model.Order) model.Execution {
	follower, ok := s.traders[followerID]
	if !ok {
		return model.Execution{
			FollowerID: followerID,
			OrderID:    order.OrderID,
			Status:     "failed",
			Reason:     "follower not found",
			Symbol:     order.Symbol,
			Side:       order.Side,
		}
	}

	value := order.Quantity * order.Price
	switch order.Side {
	case model.Buy:
		follower.PortfolioValue -= value * feeRate
	case model.Sell:
		follower.PortfolioValue += value * (1 - feeRate)
	}

	return model.Execution{
		FollowerID:   followerID,
		FollowerName: follower.Name,
		OrderID:      order.OrderID,
		Status:       "executed",
		Symbol:       order.Symbol,
		Side:         order.Side,
		Quantity:     order.Quantity,
		Price:        order.Price,
	}
}

// rebuildLocked reconstructs the heap from the trader map. Caller must
// hold mu.
func (s *Service) rebuildLocked() {
	s.board = &LeaderboardHeap{}
	for _, t := range s.traders {
		s.board.Insert(*t)
	}
}
