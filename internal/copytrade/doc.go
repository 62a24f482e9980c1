// Package copytrade implements the Copy-Trading Service.
//
// The Copy-Trading Service:
//   - Registers traders and ranks them by ROI in a max-heap leaderboard
//   - Queues leader orders FIFO for follower replay
//   - Runs a background processor that executes queued orders for followers
//   - Applies a simulated fee model on follower fills
package copytrade
