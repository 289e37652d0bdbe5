package ingest

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/raveheart1/workgraph/internal/chain"
	"github.com/raveheart1/workgraph/internal/graph"
)

// Snapshot is one ingested view of the work-item export: the relation
// mapping the graph is built from, plus the timeline mapping shared with
// the temporal aggregator and timing auditor. Lifetime is one analysis
// run.
type Snapshot struct {
	// Relations maps work-item ID to its type, state, and recorded
	// predecessor/successor references.
	Relations map[string]graph.Relation
	// Timelines maps work-item ID to its recorded schedule dates.
	// Items without any date row may be absent from this map.
	Timelines map[string]*chain.Timeline
}

// NewSnapshot returns an empty snapshot with initialized maps.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Relations: make(map[string]graph.Relation),
		Timelines: make(map[string]*chain.Timeline),
	}
}

// ReadFile reads a snapshot, selecting the reader by file extension:
// .yml/.yaml use the YAML fixture format, everything else is treated as
// a CSV export.
func ReadFile(path string, opts Options) (*Snapshot, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return ReadYAMLFile(path, opts)
	default:
		return ReadCSVFile(path, opts)
	}
}

// Describe returns a short summary line for logging.
func (s *Snapshot) Describe() string {
	return fmt.Sprintf("%d work items, %d with timelines", len(s.Relations), len(s.Timelines))
}
