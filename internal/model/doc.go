// Package model defines shared data types used across the Tradeboard services.
//
// Conventions:
//   - Prices, volumes and portfolio values: float64 in quote-currency units
//   - Timestamps: int64 milliseconds since Unix epoch, server-assigned
//   - IDs: uuid strings for traders and orders, "BASE/QUOTE" strings for symbols
package model
