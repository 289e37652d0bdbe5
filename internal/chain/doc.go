// Package chain attaches temporal facts to enumerated dependency paths
// and audits recorded schedule dates against dependency ordering.
//
// The package supports:
//   - Aggregating per-node start/target/closed dates into a temporal
//     envelope per path (PathInfo)
//   - Ranking paths by recency of their latest target date
//   - Auditing paths for five categories of date inconsistency
//
// All computation is one-shot and in-memory; results are derived views
// over a single snapshot and are never persisted.
package chain
