package chain

import "time"

// Bucket keys used in reports and in the Buckets map view.
const (
	BucketMissingStartDates         = "missing_start_dates"
	BucketMissingCloseDates         = "missing_close_dates"
	BucketTargetPassedWithoutClose  = "target_passed_without_close"
	BucketEndBeforePredecessorEnd   = "end_before_predecessor_end"
	BucketStartBeforePredecessorEnd = "start_before_predecessor_end"
)

// Finding records one date inconsistency: the offending node, the path
// it was observed on, and the date values involved. Predecessor fields
// are only set for the two predecessor-relative buckets.
type Finding struct {
	// NodeID is the offending work item.
	NodeID string
	// Path is the chain the node was audited on.
	Path []string
	// Index is the node's position within Path.
	Index int
	// Start, Target, Closed echo the node's recorded dates.
	Start  *time.Time
	Target *time.Time
	Closed *time.Time
	// PredecessorID is the immediately preceding path node, when the
	// finding compares against it.
	PredecessorID string
	// PredecessorTarget is that predecessor's target date.
	PredecessorTarget *time.Time
}

// Findings groups audit results into the five issue buckets. Findings
// are recorded per (path, node) occurrence: a node shared by many paths
// contributes one entry per path it appears on.
type Findings struct {
	// MissingStartDates lists nodes with no recorded start date.
	MissingStartDates []Finding
	// MissingCloseDates lists nodes with no recorded close date. Older
	// reports labeled this bucket "missing target dates", but the check
	// has always been on the close date; the name here matches the
	// condition.
	MissingCloseDates []Finding
	// TargetPassedWithoutClose lists nodes whose target date is in the
	// past with no close recorded.
	TargetPassedWithoutClose []Finding
	// EndBeforePredecessorEnd lists nodes planned to finish before the
	// preceding node on the chain finishes.
	EndBeforePredecessorEnd []Finding
	// StartBeforePredecessorEnd lists nodes that started before the
	// preceding node on the chain was planned to finish.
	StartBeforePredecessorEnd []Finding
}

// Total returns the number of findings across all buckets.
func (f *Findings) Total() int {
	return len(f.MissingStartDates) + len(f.MissingCloseDates) +
		len(f.TargetPassedWithoutClose) + len(f.EndBeforePredecessorEnd) +
		len(f.StartBeforePredecessorEnd)
}

// Buckets returns the findings keyed by bucket name, for reporting
// collaborators that consume a category mapping.
func (f *Findings) Buckets() map[string][]Finding {
	return map[string][]Finding{
		BucketMissingStartDates:         f.MissingStartDates,
		BucketMissingCloseDates:         f.MissingCloseDates,
		BucketTargetPassedWithoutClose:  f.TargetPassedWithoutClose,
		BucketEndBeforePredecessorEnd:   f.EndBeforePredecessorEnd,
		BucketStartBeforePredecessorEnd: f.StartBeforePredecessorEnd,
	}
}

// Audit scans every node of every path, with predecessor checks applied
// only to non-initial positions, and sorts each qualifying occurrence
// into its bucket. Nodes absent from the timeline map are skipped
// entirely. "Now" is captured once per call, so every
// target-passed-without-close check in one audit uses the same reference
// instant. Auditing zero paths yields all-empty buckets.
func Audit(infos []PathInfo, timelines map[string]*Timeline, now time.Time) *Findings {
	findings := &Findings{}

	for _, info := range infos {
		auditPath(info, timelines, now, findings)
	}

	return findings
}

// auditPath applies the five checks along one path.
func auditPath(info PathInfo, timelines map[string]*Timeline, now time.Time, findings *Findings) {
	for i, id := range info.Nodes {
		tl := timelines[id]
		if tl == nil {
			continue
		}

		base := Finding{
			NodeID: id,
			Path:   info.Nodes,
			Index:  i,
			Start:  tl.Start,
			Target: tl.Target,
			Closed: tl.Closed,
		}

		if tl.Start == nil {
			findings.MissingStartDates = append(findings.MissingStartDates, base)
		}
		if tl.Closed == nil {
			findings.MissingCloseDates = append(findings.MissingCloseDates, base)
		}
		if tl.Target != nil && tl.Target.Before(now) && tl.Closed == nil {
			findings.TargetPassedWithoutClose = append(findings.TargetPassedWithoutClose, base)
		}

		if i == 0 {
			continue
		}
		prev := timelines[info.Nodes[i-1]]
		if prev == nil || prev.Target == nil {
			continue
		}

		withPred := base
		withPred.PredecessorID = info.Nodes[i-1]
		withPred.PredecessorTarget = prev.Target

		if tl.Target != nil && tl.Target.Before(*prev.Target) {
			findings.EndBeforePredecessorEnd = append(findings.EndBeforePredecessorEnd, withPred)
		}
		if tl.Start != nil && tl.Start.Before(*prev.Target) {
			findings.StartBeforePredecessorEnd = append(findings.StartBeforePredecessorEnd, withPred)
		}
	}
}
