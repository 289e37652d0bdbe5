package output

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/raveheart1/workgraph/internal/chain"
	"github.com/raveheart1/workgraph/internal/graph"
)

func date(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestPrintMetrics(t *testing.T) {
	t.Parallel()

	g := graph.Build(map[string]graph.Relation{
		"a": {Type: "Feature", State: "Active", Successors: []string{"b"}},
		"b": {Type: "Task", State: "Closed"},
	})

	var buf bytes.Buffer
	PrintMetrics(&buf, g.ComputeMetrics())
	out := buf.String()

	wants := []string{
		"Network Analysis Results",
		"Total Nodes: 2",
		"Total Edges: 1",
		"Is DAG: true",
		"Feature: 1",
		"Task: 1",
		"Active: 1",
		"Node b: 1.000",
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("metrics output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintChains(t *testing.T) {
	t.Parallel()

	all := []chain.PathInfo{
		{Nodes: graph.Path{"a", "b"}, Start: date(2026, 1, 1), Target: date(2026, 2, 1)},
		{Nodes: graph.Path{"a", "b", "c"}, Target: date(2026, 3, 1)},
	}
	ranked := []chain.PathInfo{all[1], all[0]}

	var buf bytes.Buffer
	PrintChains(&buf, ranked, all)
	out := buf.String()

	wants := []string{
		"Chains enumerated: 2 (showing 2)",
		" 1. a -> b -> c",
		"    start=-  target=2026-03-01  closed=-",
		" 2. a -> b",
		"    start=2026-01-01  target=2026-02-01  closed=-",
		"Longest chain: a -> b -> c",
		"Nodes in longest chain: 3 (edges: 2)",
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("chains output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintChains_NoPaths(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	PrintChains(&buf, nil, nil)

	if !strings.Contains(buf.String(), "No dependency chains found") {
		t.Errorf("missing no-paths message:\n%s", buf.String())
	}
}

func TestPrintAudit(t *testing.T) {
	t.Parallel()

	findings := &chain.Findings{
		MissingCloseDates: []chain.Finding{{
			NodeID: "b",
			Path:   []string{"a", "b"},
			Start:  date(2026, 1, 5),
			Target: date(2026, 1, 9),
		}},
		EndBeforePredecessorEnd: []chain.Finding{{
			NodeID:            "b",
			Path:              []string{"a", "b"},
			Target:            date(2026, 1, 9),
			PredecessorID:     "a",
			PredecessorTarget: date(2026, 1, 10),
		}},
	}

	var buf bytes.Buffer
	PrintAudit(&buf, findings)
	out := buf.String()

	wants := []string{
		"Timing Audit",
		"2 timing issue(s) found",
		"Missing close dates (1):",
		"Planned to end before predecessor ends (1):",
		"vs a target=2026-01-10",
		"chain: a -> b",
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("audit output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Missing start dates") {
		t.Errorf("empty bucket rendered:\n%s", out)
	}
}

func TestPrintAudit_Clean(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	PrintAudit(&buf, &chain.Findings{})

	if !strings.Contains(buf.String(), "No timing issues found") {
		t.Errorf("missing clean-audit message:\n%s", buf.String())
	}
}
