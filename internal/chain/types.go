package chain

import (
	"time"

	"github.com/raveheart1/workgraph/internal/graph"
)

// Timeline holds the recorded schedule dates for one work item. Each
// date is optional: nil means the field was never recorded (or failed to
// parse during ingestion). InDegree and OutDegree are filled in from the
// graph by AnnotateDegrees before analysis.
type Timeline struct {
	// Start is when work on the item began.
	Start *time.Time
	// Target is the planned finish date.
	Target *time.Time
	// Closed is when the item was actually closed.
	Closed *time.Time
	// Opportunity is a free-text label carried through from the export.
	Opportunity string
	// InDegree is the number of items this one depends on.
	InDegree int
	// OutDegree is the number of items depending on this one.
	OutDegree int
}

// PathInfo wraps an enumerated path with its aggregated temporal
// envelope: the earliest start, latest target, and latest close among
// the path's nodes. Each field is nil when no node on the path has that
// date recorded. PathInfo is a derived, read-only view computed fresh on
// every analysis run.
type PathInfo struct {
	// Nodes is the path, in edge direction from source to target.
	Nodes graph.Path
	// Start is the minimum start date among the path's nodes.
	Start *time.Time
	// Target is the maximum target date among the path's nodes.
	Target *time.Time
	// Closed is the maximum closed date among the path's nodes.
	Closed *time.Time
}

// Len returns the number of nodes on the path.
func (p PathInfo) Len() int {
	return len(p.Nodes)
}
