package chain

import (
	"time"

	"github.com/raveheart1/workgraph/internal/graph"
)

// AnnotateDegrees copies each node's current in-degree and out-degree
// from the graph into its timeline. It runs once, before aggregation, so
// the timeline map is read-only for the rest of the analysis. Nodes
// without a timeline entry are left alone.
func AnnotateDegrees(g *graph.Graph, timelines map[string]*Timeline) {
	for id, tl := range timelines {
		if tl == nil {
			continue
		}
		tl.InDegree = g.InDegree(id)
		tl.OutDegree = g.OutDegree(id)
	}
}

// Aggregate produces one PathInfo per enumerated path. For every node on
// a path that has a timeline entry, its recorded dates join the
// candidate sets; the envelope is the minimum start, maximum target, and
// maximum close of those candidates, or nil when a set stays empty.
// Nodes absent from the timeline map contribute nothing and raise no
// error. The input order is preserved.
func Aggregate(paths []graph.Path, timelines map[string]*Timeline) []PathInfo {
	infos := make([]PathInfo, 0, len(paths))
	for _, path := range paths {
		infos = append(infos, aggregatePath(path, timelines))
	}
	return infos
}

// aggregatePath computes the temporal envelope for a single path.
func aggregatePath(path graph.Path, timelines map[string]*Timeline) PathInfo {
	info := PathInfo{Nodes: path}

	for _, id := range path {
		tl := timelines[id]
		if tl == nil {
			continue
		}
		info.Start = earliest(info.Start, tl.Start)
		info.Target = latest(info.Target, tl.Target)
		info.Closed = latest(info.Closed, tl.Closed)
	}

	return info
}

// earliest returns the earlier of two optional instants.
func earliest(current, candidate *time.Time) *time.Time {
	if candidate == nil {
		return current
	}
	if current == nil || candidate.Before(*current) {
		return candidate
	}
	return current
}

// latest returns the later of two optional instants.
func latest(current, candidate *time.Time) *time.Time {
	if candidate == nil {
		return current
	}
	if current == nil || candidate.After(*current) {
		return candidate
	}
	return current
}
