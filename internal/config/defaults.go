package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultAddr                = ":8000"
	DefaultShutdownTimeout     = 10 * time.Second
	DefaultExchangeURL         = "https://api.binance.com/api/v3"
	DefaultExchangeTimeout     = 10 * time.Second
	DefaultMaxRetries          = 3
	DefaultHistorySize         = 50
	DefaultLeaderboardTopN     = 5
	DefaultProcessorInterval   = time.Second
	DefaultDashboardURL        = "http://localhost:8000"
	DefaultPair                = "BTC/USDT"
	DefaultPriceInterval       = 2 * time.Second
	DefaultLeaderboardInterval = 5 * time.Second
)

// DefaultAllowedOrigins is applied when no CORS origins are configured.
var DefaultAllowedOrigins = []string{"http://localhost:5173"}

func (c *ServerConfig) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if len(c.Server.AllowedOrigins) == 0 {
		c.Server.AllowedOrigins = DefaultAllowedOrigins
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	if c.Exchange.BaseURL == "" {
		c.Exchange.BaseURL = DefaultExchangeURL
	}
	if c.Exchange.Timeout == 0 {
		c.Exchange.Timeout = DefaultExchangeTimeout
	}
	if c.Exchange.MaxRetries == 0 {
		c.Exchange.MaxRetries = DefaultMaxRetries
	}

	if c.History.Size == 0 {
		c.History.Size = DefaultHistorySize
	}
	if c.Leaderboard.TopN == 0 {
		c.Leaderboard.TopN = DefaultLeaderboardTopN
	}
	if c.Processor.Interval == 0 {
		c.Processor.Interval = DefaultProcessorInterval
	}
}

func (c *DashboardConfig) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultDashboardURL
	}
	if c.Pair == "" {
		c.Pair = DefaultPair
	}
	if c.PriceInterval == 0 {
		c.PriceInterval = DefaultPriceInterval
	}
	if c.LeaderboardInterval == 0 {
		c.LeaderboardInterval = DefaultLeaderboardInterval
	}
}
