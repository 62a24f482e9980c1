// Package exchange provides the upstream exchange REST client used to source
// live market data.
//
// Endpoints (Binance public API, no credentials required):
//   - Production: https://api.binance.com/api/v3
//   - Testnet: https://testnet.binance.vision/api/v3
//
// Only public market-data endpoints are used; the client never signs requests.
package exchange
