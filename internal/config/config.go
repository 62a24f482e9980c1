package config

import "time"

// ServerConfig is the root configuration for the API server.
type ServerConfig struct {
	Server      HTTPConfig        `yaml:"server"`
	Exchange    ExchangeConfig    `yaml:"exchange"`
	History     HistoryConfig     `yaml:"history"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
	Processor   ProcessorConfig   `yaml:"processor"`
}

// HTTPConfig holds the listen address and CORS settings.
type HTTPConfig struct {
	Addr            string        `yaml:"addr"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// ExchangeConfig holds upstream exchange API settings.
type ExchangeConfig struct {
	BaseURL    string        `yaml:"base_url"`
	Timeout    time.Duration `yaml:"timeout"`
	MaxRetries int           `yaml:"max_retries"`
}

// HistoryConfig holds price history buffer settings.
type HistoryConfig struct {
	Size int `yaml:"size"` // Prices retained per symbol
}

// LeaderboardConfig holds leaderboard settings.
type LeaderboardConfig struct {
	TopN int `yaml:"top_n"` // Traders returned by GET /api/leaderboard
}

// ProcessorConfig holds order processor settings.
type ProcessorConfig struct {
	Interval time.Duration `yaml:"interval"`
}

// DashboardConfig is the root configuration for the dashboard client.
type DashboardConfig struct {
	BaseURL             string        `yaml:"base_url"`             // API server base URL
	Pair                string        `yaml:"pair"`                 // Trading pair to watch (e.g., "BTC/USDT")
	PriceInterval       time.Duration `yaml:"price_interval"`       // Price poll cadence
	LeaderboardInterval time.Duration `yaml:"leaderboard_interval"` // Leaderboard poll cadence
}
