package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raveheart1/workgraph/internal/graph"
	"github.com/raveheart1/workgraph/internal/output"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics [file]",
	Short: "Compute network metrics for the dependency graph",
	Long: `Build the dependency graph from a snapshot and print its network
metrics: node and edge totals, acyclicity, type and state category
counts, normalized degree centrality, and (when acyclic) a topological
ordering.

Exit codes:
  0 - Metrics computed
  1 - Ingestion failure`,
	Example: `  # Print metrics for a CSV export
  workgraph metrics data/working.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMetrics,
}

func init() {
	rootCmd.AddCommand(metricsCmd)
}

func runMetrics(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path, err := resolveInputPath(args, cfg)
	if err != nil {
		return err
	}

	snap, err := readSnapshot(path, cfg)
	if err != nil {
		return err
	}

	g := graph.Build(snap.Relations)
	m := g.ComputeMetrics()

	out := cmd.OutOrStdout()
	output.PrintMetrics(out, m)
	printTopologicalOrder(out, m)
	return nil
}

// printTopologicalOrder writes the topological order, or why it is absent.
func printTopologicalOrder(out io.Writer, m *graph.Metrics) {
	fmt.Fprintf(out, "\nTopological Order:\n")
	fmt.Fprintln(out, strings.Repeat("-", 20))
	if m.TopologicalOrder == nil {
		fmt.Fprintln(out, "(none: graph is cyclic)")
		return
	}
	if len(m.TopologicalOrder) == 0 {
		fmt.Fprintln(out, "(empty graph)")
		return
	}
	fmt.Fprintln(out, strings.Join(m.TopologicalOrder, " -> "))
}
