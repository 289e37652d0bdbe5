package graph

// Path is an ordered, non-repeating sequence of node IDs where each
// consecutive pair is joined by a directed edge.
type Path []string

// AllSimplePaths enumerates every simple path between every ordered pair
// of distinct nodes. Pairs with no connecting walk contribute nothing; a
// graph with no paths at all yields an empty (non-nil) result.
//
// The pairwise loop is O(|V|^2) in enumerator invocations and each
// invocation is potentially exponential in the number of paths on densely
// connected graphs. That cost is accepted deliberately: downstream
// analysis needs every distinct simple path, so reachability or
// shortest-path shortcuts are not a substitute. Inputs are expected to be
// small dependency exports.
func (g *Graph) AllSimplePaths() []Path {
	paths := make([]Path, 0)
	nodeIDs := g.NodeIDs()

	for _, source := range nodeIDs {
		paths = append(paths, g.simplePathsFrom(source, nodeIDs)...)
	}

	return paths
}

// simplePathsFrom enumerates simple paths from source to every other node,
// one pairwise invocation per target, in sorted target order.
func (g *Graph) simplePathsFrom(source string, nodeIDs []string) []Path {
	var paths []Path
	for _, target := range nodeIDs {
		if source == target {
			continue
		}
		paths = append(paths, g.SimplePathsBetween(source, target)...)
	}
	return paths
}

// SimplePathsBetween enumerates all simple paths from source to target
// using depth-first search with backtracking. Neighbor expansion follows
// the sorted adjacency order, so the result is deterministic. Returns nil
// when no path exists or either endpoint is missing from the graph.
func (g *Graph) SimplePathsBetween(source, target string) []Path {
	if g.nodes[source] == nil || g.nodes[target] == nil || source == target {
		return nil
	}

	var (
		paths   []Path
		current = Path{source}
		onPath  = map[string]bool{source: true}
	)

	var walk func(node string)
	walk = func(node string) {
		if node == target {
			found := make(Path, len(current))
			copy(found, current)
			paths = append(paths, found)
			return
		}
		for _, next := range g.adj[node] {
			if onPath[next] {
				continue
			}
			onPath[next] = true
			current = append(current, next)
			walk(next)
			current = current[:len(current)-1]
			onPath[next] = false
		}
	}

	walk(source)
	return paths
}
