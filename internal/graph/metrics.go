package graph

import "sort"

// UnknownCategory is the fallback bucket for nodes whose type or state
// attribute was never recorded (typically nodes created implicitly from
// predecessor/successor references).
const UnknownCategory = "Unknown"

// Metrics summarizes the structural properties of a dependency graph.
type Metrics struct {
	// TotalNodes is the number of nodes in the graph.
	TotalNodes int
	// TotalEdges is the number of distinct directed edges.
	TotalEdges int
	// IsDAG reports whether the graph is acyclic.
	IsDAG bool
	// NodeTypes counts nodes per work-item type, with UnknownCategory
	// for nodes missing the attribute.
	NodeTypes map[string]int
	// NodeStates counts nodes per state, with UnknownCategory for nodes
	// missing the attribute.
	NodeStates map[string]int
	// InDegreeCentrality maps node ID to in-degree / (|V|-1), 0 when
	// the graph has at most one node.
	InDegreeCentrality map[string]float64
	// OutDegreeCentrality maps node ID to out-degree / (|V|-1).
	OutDegreeCentrality map[string]float64
	// TopologicalOrder lists every node once with each edge's source
	// before its target. It is nil when the graph is cyclic (no order
	// exists), and empty but non-nil for an empty graph.
	TopologicalOrder []string
}

// ComputeMetrics calculates the full metrics record for the graph.
func (g *Graph) ComputeMetrics() *Metrics {
	m := &Metrics{
		TotalNodes:          g.NodeCount(),
		TotalEdges:          g.EdgeCount(),
		IsDAG:               g.IsDAG(),
		NodeTypes:           make(map[string]int),
		NodeStates:          make(map[string]int),
		InDegreeCentrality:  make(map[string]float64),
		OutDegreeCentrality: make(map[string]float64),
	}

	for id, node := range g.nodes {
		m.NodeTypes[categoryOrUnknown(node.Type)]++
		m.NodeStates[categoryOrUnknown(node.State)]++

		m.InDegreeCentrality[id] = g.centrality(g.InDegree(id))
		m.OutDegreeCentrality[id] = g.centrality(g.OutDegree(id))
	}

	if m.IsDAG {
		m.TopologicalOrder = g.topologicalOrder()
	}

	return m
}

// categoryOrUnknown applies the fallback for missing categorical values.
func categoryOrUnknown(value string) string {
	if value == "" {
		return UnknownCategory
	}
	return value
}

// centrality normalizes a degree by the maximum possible degree |V|-1.
func (g *Graph) centrality(degree int) float64 {
	if len(g.nodes) <= 1 {
		return 0
	}
	return float64(degree) / float64(len(g.nodes)-1)
}

// IsDAG reports whether the graph contains no directed cycle, using DFS
// with white/gray/black coloring.
func (g *Graph) IsDAG() bool {
	const (
		white = 0
		gray  = 1
		black = 2
	)

	color := make(map[string]int)

	var dfs func(node string) bool
	dfs = func(node string) bool {
		color[node] = gray
		for _, next := range g.adj[node] {
			if color[next] == gray {
				return false
			}
			if color[next] == white && !dfs(next) {
				return false
			}
		}
		color[node] = black
		return true
	}

	for _, id := range g.NodeIDs() {
		if color[id] == white && !dfs(id) {
			return false
		}
	}
	return true
}

// topologicalOrder produces a topological ordering using Kahn's
// algorithm, breaking ties in sorted ID order for determinism. Callers
// must only invoke it on an acyclic graph.
func (g *Graph) topologicalOrder() []string {
	inDegree := make(map[string]int, len(g.nodes))
	var ready []string
	for _, id := range g.NodeIDs() {
		inDegree[id] = g.InDegree(id)
		if inDegree[id] == 0 {
			ready = append(ready, id)
		}
	}

	order := make([]string, 0, len(g.nodes))
	for len(ready) > 0 {
		sort.Strings(ready)
		id := ready[0]
		ready = ready[1:]
		order = append(order, id)

		for _, next := range g.adj[id] {
			inDegree[next]--
			if inDegree[next] == 0 {
				ready = append(ready, next)
			}
		}
	}

	return order
}
