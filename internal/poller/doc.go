// Package poller implements the fixed-cadence fetch loop behind every live
// view on the dashboard.
//
// A Poller:
//   - Performs one immediate fetch on Start, then one per interval tick
//   - Publishes State snapshots: current payload, previous payload, loading
//     flag and error message
//   - Keeps last-known data visible across transient failures
//   - Discards out-of-order completions so a slow stale response never
//     overwrites a newer one
//   - Guarantees no state mutation after Stop returns
package poller
