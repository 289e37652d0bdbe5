// Package output provides terminal report formatting for workgraph.
// This package is designed to have minimal dependencies to avoid import
// cycles.
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/raveheart1/workgraph/internal/chain"
	"github.com/raveheart1/workgraph/internal/graph"
)

// centralityTop is the number of nodes shown in the centrality tables.
const centralityTop = 5

// PrintMetrics writes the network analysis section of the report.
func PrintMetrics(out io.Writer, m *graph.Metrics) {
	header := color.New(color.FgCyan, color.Bold).SprintFunc()

	fmt.Fprintf(out, "\n%s\n", header("Network Analysis Results"))
	fmt.Fprintln(out, strings.Repeat("=", 50))
	fmt.Fprintf(out, "Total Nodes: %d\n", m.TotalNodes)
	fmt.Fprintf(out, "Total Edges: %d\n", m.TotalEdges)
	fmt.Fprintf(out, "Is DAG: %v\n", m.IsDAG)

	printCategoryCounts(out, "Node Types", m.NodeTypes)
	printCategoryCounts(out, "Node States", m.NodeStates)
	printCentrality(out, "Top Most Central Nodes (In-Degree)", m.InDegreeCentrality)
	printCentrality(out, "Top Most Central Nodes (Out-Degree)", m.OutDegreeCentrality)
}

// printCategoryCounts writes one category table sorted by key.
func printCategoryCounts(out io.Writer, title string, counts map[string]int) {
	fmt.Fprintf(out, "\n%s:\n", title)
	fmt.Fprintln(out, strings.Repeat("-", 20))

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(out, "%s: %d\n", k, counts[k])
	}
}

// printCentrality writes the top-N centrality table, sorted descending
// with ties broken by node ID.
func printCentrality(out io.Writer, title string, centrality map[string]float64) {
	fmt.Fprintf(out, "\n%s:\n", title)
	fmt.Fprintln(out, strings.Repeat("-", 30))

	type entry struct {
		id    string
		value float64
	}
	entries := make([]entry, 0, len(centrality))
	for id, v := range centrality {
		entries = append(entries, entry{id, v})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].value != entries[j].value {
			return entries[i].value > entries[j].value
		}
		return entries[i].id < entries[j].id
	})

	limit := centralityTop
	if len(entries) < limit {
		limit = len(entries)
	}
	for _, e := range entries[:limit] {
		fmt.Fprintf(out, "Node %s: %.3f\n", e.id, e.value)
	}
}

// PrintChains writes the ranked dependency chains with their temporal
// envelopes, followed by the longest chain.
func PrintChains(out io.Writer, ranked []chain.PathInfo, all []chain.PathInfo) {
	header := color.New(color.FgCyan, color.Bold).SprintFunc()

	fmt.Fprintf(out, "\n%s\n", header("Dependency Chains"))
	fmt.Fprintln(out, strings.Repeat("=", 50))

	if len(all) == 0 {
		PrintNoPaths(out)
		return
	}

	fmt.Fprintf(out, "Chains enumerated: %d (showing %d)\n\n", len(all), len(ranked))
	for i, info := range ranked {
		fmt.Fprintf(out, "%2d. %s\n", i+1, strings.Join(info.Nodes, " -> "))
		fmt.Fprintf(out, "    start=%s  target=%s  closed=%s\n",
			formatDate(info.Start), formatDate(info.Target), formatDate(info.Closed))
	}

	if longest, ok := chain.Longest(all); ok {
		fmt.Fprintf(out, "\nLongest chain: %s\n", strings.Join(longest.Nodes, " -> "))
		fmt.Fprintf(out, "Nodes in longest chain: %d (edges: %d)\n", longest.Len(), longest.Len()-1)
	}
}

// PrintNoPaths reports the valid no-path outcome.
func PrintNoPaths(out io.Writer) {
	yellow := color.New(color.FgYellow).SprintFunc()
	fmt.Fprintf(out, "%s\n", yellow("No dependency chains found in the graph."))
}

// PrintAudit writes the timing audit section, one block per bucket.
func PrintAudit(out io.Writer, findings *chain.Findings) {
	header := color.New(color.FgCyan, color.Bold).SprintFunc()
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	red := color.New(color.FgRed, color.Bold).SprintFunc()

	fmt.Fprintf(out, "\n%s\n", header("Timing Audit"))
	fmt.Fprintln(out, strings.Repeat("=", 50))

	if findings.Total() == 0 {
		fmt.Fprintf(out, "%s No timing issues found.\n", green("✓"))
		return
	}

	fmt.Fprintf(out, "%s %d timing issue(s) found.\n", red("✗"), findings.Total())

	printBucket(out, "Missing start dates", findings.MissingStartDates, describeMissing)
	printBucket(out, "Missing close dates", findings.MissingCloseDates, describeMissing)
	printBucket(out, "Target passed without close", findings.TargetPassedWithoutClose, describeTargetPassed)
	printBucket(out, "Planned to end before predecessor ends", findings.EndBeforePredecessorEnd, describePredecessorClash)
	printBucket(out, "Started before predecessor ends", findings.StartBeforePredecessorEnd, describePredecessorClash)
}

// printBucket writes the findings of one bucket.
func printBucket(out io.Writer, title string, findings []chain.Finding, describe func(chain.Finding) string) {
	if len(findings) == 0 {
		return
	}

	fmt.Fprintf(out, "\n%s (%d):\n", title, len(findings))
	for _, f := range findings {
		fmt.Fprintf(out, "  %s: %s\n    chain: %s\n",
			f.NodeID, describe(f), strings.Join(f.Path, " -> "))
	}
}

// describeMissing summarizes a missing-date finding.
func describeMissing(f chain.Finding) string {
	return fmt.Sprintf("start=%s target=%s closed=%s",
		formatDate(f.Start), formatDate(f.Target), formatDate(f.Closed))
}

// describeTargetPassed summarizes a passed-target finding.
func describeTargetPassed(f chain.Finding) string {
	return fmt.Sprintf("target %s has passed with no close date", formatDate(f.Target))
}

// describePredecessorClash summarizes a predecessor-relative finding.
func describePredecessorClash(f chain.Finding) string {
	return fmt.Sprintf("start=%s target=%s vs %s target=%s",
		formatDate(f.Start), formatDate(f.Target), f.PredecessorID, formatDate(f.PredecessorTarget))
}

// formatDate renders an optional instant, "-" when absent.
func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02")
}
