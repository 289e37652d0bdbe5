package ingest

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/raveheart1/workgraph/internal/chain"
	"github.com/raveheart1/workgraph/internal/graph"
)

// yamlSnapshot is the on-disk shape of a YAML snapshot fixture. Dates
// are plain strings run through the same lenient parsing as CSV cells.
type yamlSnapshot struct {
	Items map[string]yamlItem `yaml:"items"`
}

type yamlItem struct {
	Type         string   `yaml:"type,omitempty"`
	State        string   `yaml:"state,omitempty"`
	Predecessors []string `yaml:"predecessors,omitempty"`
	Successors   []string `yaml:"successors,omitempty"`
	StartDate    string   `yaml:"start_date,omitempty"`
	TargetDate   string   `yaml:"target_date,omitempty"`
	ClosedDate   string   `yaml:"closed_date,omitempty"`
	Opportunity  string   `yaml:"opportunity,omitempty"`
}

// ReadYAMLFile reads a snapshot from a YAML fixture file. The format
// mirrors the in-memory mappings and exists for hand-written fixtures
// and tests rather than production exports.
func ReadYAMLFile(path string, opts Options) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening data file: %w", err)
	}

	snap, err := ReadYAMLBytes(data, opts)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return snap, nil
}

// ReadYAMLBytes parses a YAML snapshot document.
func ReadYAMLBytes(data []byte, opts Options) (*Snapshot, error) {
	var doc yamlSnapshot
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if doc.Items == nil {
		return nil, fmt.Errorf("parsing YAML: missing 'items' mapping")
	}

	snap := NewSnapshot()
	for id, item := range doc.Items {
		snap.Relations[id] = graph.Relation{
			Type:         item.Type,
			State:        item.State,
			Predecessors: item.Predecessors,
			Successors:   item.Successors,
		}

		tl := &chain.Timeline{Opportunity: item.Opportunity}
		setYAMLDate(&tl.Start, item.StartDate, id, "start_date", opts)
		setYAMLDate(&tl.Target, item.TargetDate, id, "target_date", opts)
		setYAMLDate(&tl.Closed, item.ClosedDate, id, "closed_date", opts)
		snap.Timelines[id] = tl
	}

	return snap, nil
}

// setYAMLDate parses an item's date field with CSV-equivalent leniency.
func setYAMLDate(dest **time.Time, value, itemID, field string, opts Options) {
	t, err := ParseDate(value, opts.DateFormats)
	if err != nil {
		fmt.Fprintf(opts.warnWriter(), "warning: item %s: %s: %v\n", itemID, field, err)
		return
	}
	*dest = t
}
