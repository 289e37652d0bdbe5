// Package graph builds the directed dependency graph of work items and
// provides structural analysis over it.
//
// The package supports:
//   - Building a directed graph from a relation mapping, with implicit
//     node creation for identifiers that only appear as references
//   - Enumerating all simple paths between every ordered node pair
//   - Network metrics: acyclicity, topological order, degree centrality,
//     and type/state category counts
//
// The graph is immutable once built. Path enumeration and metrics only
// carry their clean dependency-ordering interpretation when the graph is
// in fact acyclic; acyclicity is reported as a metric, not enforced.
package graph
