package graph

// Relation describes one work item as recorded in the ingested export:
// its categorical attributes and the identifiers it is linked to.
type Relation struct {
	// Type is the work-item type name (e.g., "Feature", "Task").
	Type string
	// State is the work-item relationship state name (e.g., "Active").
	State string
	// Predecessors lists work items that must finish before this one.
	Predecessors []string
	// Successors lists work items that depend on this one.
	Successors []string
}

// Node is a vertex of the dependency graph. Type and State are empty for
// nodes that were only seen as predecessor/successor references; the
// "Unknown" fallback is applied at metrics aggregation, not here.
type Node struct {
	ID    string
	Type  string
	State string
}

// Graph is a directed graph of work-item dependencies. An edge runs from
// a predecessor to its successor. At most one edge exists per ordered
// pair. The graph is immutable after Build returns.
type Graph struct {
	nodes   map[string]*Node
	adj     map[string][]string
	revAdj  map[string][]string
	edgeSet map[[2]string]bool
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of distinct directed edges.
func (g *Graph) EdgeCount() int {
	return len(g.edgeSet)
}

// Node returns the node with the given ID, or nil if absent.
func (g *Graph) Node(id string) *Node {
	return g.nodes[id]
}

// HasEdge reports whether a directed edge from -> to exists.
func (g *Graph) HasEdge(from, to string) bool {
	return g.edgeSet[[2]string{from, to}]
}

// Successors returns the IDs reachable from id by one edge, in sorted order.
func (g *Graph) Successors(id string) []string {
	return g.adj[id]
}

// Predecessors returns the IDs with an edge into id, in sorted order.
func (g *Graph) Predecessors(id string) []string {
	return g.revAdj[id]
}

// InDegree returns the number of edges into id.
func (g *Graph) InDegree(id string) int {
	return len(g.revAdj[id])
}

// OutDegree returns the number of edges out of id.
func (g *Graph) OutDegree(id string) int {
	return len(g.adj[id])
}
