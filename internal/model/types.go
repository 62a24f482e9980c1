package model

// -----------------------------------------------------------------------------
// Market Data Types
// -----------------------------------------------------------------------------

// PricePoint is a live price snapshot for one trading pair.
//
// A PricePoint is immutable once produced; the next successful fetch
// supersedes it wholesale rather than mutating individual fields.
type PricePoint struct {
	Symbol    string  `json:"symbol"`    // Trading pair (e.g., "BTC/USDT")
	Price     float64 `json:"price"`     // Last traded price
	Bid       float64 `json:"bid"`       // Best bid
	Ask       float64 `json:"ask"`       // Best ask
	High      float64 `json:"high"`      // 24h high
	Low       float64 `json:"low"`       // 24h low
	Volume    float64 `json:"volume"`    // 24h base volume
	Timestamp int64   `json:"timestamp"` // Server-assigned (ms since epoch)
}

// -----------------------------------------------------------------------------
// Copy-Trading Types
// -----------------------------------------------------------------------------

// Trader holds a trader's identity and performance numbers.
type Trader struct {
	TraderID       string  `json:"trader_id"`       // Opaque unique id
	Name           string  `json:"name"`            // Display name
	ROI            float64 `json:"roi"`             // Signed percentage
	PortfolioValue float64 `json:"portfolio_value"` // Non-negative, in USDT
}

// LeaderboardResponse is the payload of GET /api/leaderboard.
//
// TopTraders is ordered by the server (ROI descending); clients must
// preserve this order and never re-sort.
type LeaderboardResponse struct {
	TopTraders []Trader `json:"top_traders"`
	Count      int      `json:"count"`
}

// Side is the direction of an order.
type Side string

const (
	Buy  Side = "BUY"
	Sell Side = "SELL"
)

// Valid reports whether s is a known order side.
func (s Side) Valid() bool {
	return s == Buy || s == Sell
}

// Order is a leader trade queued for follower execution.
type Order struct {
	OrderID   string  `json:"order_id"`
	LeaderID  string  `json:"leader_id"`
	Side      Side    `json:"side"`
	Symbol    string  `json:"symbol"`
	Quantity  float64 `json:"quantity"`
	Price     float64 `json:"price"`
	Timestamp int64   `json:"timestamp"` // ms since epoch
}

// Execution is the result of replaying an order for one follower.
type Execution struct {
	FollowerID   string  `json:"follower_id"`
	FollowerName string  `json:"follower_name,omitempty"`
	OrderID      string  `json:"order_id"`
	Status       string  `json:"status"` // "executed" or "failed"
	Reason       string  `json:"reason,omitempty"`
	Symbol       string  `json:"symbol"`
	Side         Side    `json:"side"`
	Quantity     float64 `json:"quantity"`
	Price        float64 `json:"price"`
}
