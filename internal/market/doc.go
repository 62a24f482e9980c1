// Package market implements the Market Data Service.
//
// The Market Data Service:
//   - Fetches live prices from the upstream exchange on demand
//   - Records every observed price into a per-symbol ring of the last N values
//   - Serves chronological price history without hitting the exchange
package market
