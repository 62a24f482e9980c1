package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks that all required fields are set and values are valid.
func (c *ServerConfig) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server.addr is required")
	}
	if c.Exchange.BaseURL == "" {
		return errors.New("exchange.base_url is required")
	}
	if c.Exchange.MaxRetries < 0 {
		return fmt.Errorf("exchange.max_retries must be >= 0, got %d", c.Exchange.MaxRetries)
	}
	if c.History.Size < 1 {
		return fmt.Errorf("history.size must be >= 1, got %d", c.History.Size)
	}
	if c.Leaderboard.TopN < 1 {
		return fmt.Errorf("leaderboard.top_n must be >= 1, got %d", c.Leaderboard.TopN)
	}
	if c.Processor.Interval <= 0 {
		return errors.New("processor.interval must be positive")
	}
	return nil
}

// Validate checks that all required fields are set and values are valid.
func (c *DashboardConfig) Validate() error {
	if c.BaseURL == "" {
		return errors.New("base_url is required")
	}
	if !strings.Contains(c.Pair, "/") {
		return fmt.Errorf("pair must be BASE/QUOTE, got %q", c.Pair)
	}
	if c.PriceInterval <= 0 {
		return errors.New("price_interval must be positive")
	}
	if c.LeaderboardInterval <= 0 {
		return errors.New("leaderboard_interval must be positive")
	}
	return nil
}
