package graph

import "sort"

// Build constructs a Graph from a relation mapping. Construction is two
// phase: first the union of every referenced identifier is collected and
// all nodes are created, then edges are inserted. Identifiers that only
// appear inside a predecessor or successor list still become nodes, with
// empty type and state. Duplicate edges collapse and self-references are
// kept without error.
func Build(relations map[string]Relation) *Graph {
	g := &Graph{
		nodes:   make(map[string]*Node),
		adj:     make(map[string][]string),
		revAdj:  make(map[string][]string),
		edgeSet: make(map[[2]string]bool),
	}

	for _, id := range collectNodeIDs(relations) {
		node := &Node{ID: id}
		if rel, ok := relations[id]; ok {
			node.Type = rel.Type
			node.State = rel.State
		}
		g.nodes[id] = node
	}

	for id, rel := range relations {
		for _, pred := range rel.Predecessors {
			g.addEdge(pred, id)
		}
		for _, succ := range rel.Successors {
			g.addEdge(id, succ)
		}
	}

	// Sort adjacency lists for deterministic traversal ordering
	for k := range g.adj {
		sort.Strings(g.adj[k])
	}
	for k := range g.revAdj {
		sort.Strings(g.revAdj[k])
	}

	return g
}

// collectNodeIDs returns the sorted union of all identifiers referenced
// anywhere in the relation mapping.
func collectNodeIDs(relations map[string]Relation) []string {
	seen := make(map[string]bool)
	for id, rel := range relations {
		seen[id] = true
		for _, pred := range rel.Predecessors {
			seen[pred] = true
		}
		for _, succ := range rel.Successors {
			seen[succ] = true
		}
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// addEdge inserts a directed edge, collapsing duplicates.
func (g *Graph) addEdge(from, to string) {
	key := [2]string{from, to}
	if g.edgeSet[key] {
		return
	}
	g.edgeSet[key] = true
	g.adj[from] = append(g.adj[from], to)
	g.revAdj[to] = append(g.revAdj[to], from)
}

// NodeIDs returns every node identifier in sorted order.
func (g *Graph) NodeIDs() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
