package exchange

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/quantfeed/tradeboard/internal/model"
)

// ticker24hResponse from GET /ticker/24hr. Binance encodes all decimal
// fields as JSON strings.
type ticker24hResponse struct {
	Symbol    string `json:"symbol"`
	LastPrice string `json:"lastPrice"`
	BidPrice  string `json:"bidPrice"`
	AskPrice  string `json:"askPrice"`
	HighPrice string `json:"highPrice"`
	LowPrice  string `json:"lowPrice"`
	Volume    string `json:"volume"`
	CloseTime int64  `json:"closeTime"` // ms since epoch
}

// Ticker24h fetches 24-hour ticker statistics for a trading pair and maps
// them into a PricePoint. The pair keeps its "BASE/QUOTE" form in the
// returned Symbol field.
func (c *Client) Ticker24h(ctx context.Context, base, quote string) (*model.PricePoint, error) {
	pair := base + "/" + quote

	query := url.Values{}
	query.Set("symbol", PairToSymbol(base, quote))

	var resp ticker24hResponse
	if err := c.get(ctx, "/ticker/24hr", query, &resp); err != nil {
		return nil, fmt.Errorf("get ticker %s: %w", pair, err)
	}

	return &model.PricePoint{
		Symbol:    pair,
		Price:     ParseDecimal(resp.LastPrice),
		Bid:       ParseDecimal(resp.BidPrice),
		Ask:       ParseDecimal(resp.AskPrice),
		High:      ParseDecimal(resp.HighPrice),
		Low:       ParseDecimal(resp.LowPrice),
		Volume:    ParseDecimal(resp.Volume),
		Timestamp: resp.CloseTime,
	}, nil
}

// PairToSymbol converts "BTC", "USDT" to the exchange symbol "BTCUSDT".
func PairToSymbol(base, quote string) string {
	return strings.ToUpper(strings.TrimSpace(base)) + strings.ToUpper(strings.TrimSpace(quote))
}
