package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raveheart1/workgraph/internal/errors"
	"github.com/raveheart1/workgraph/internal/graph"
	"github.com/raveheart1/workgraph/internal/render"
)

var visualizeCmd = &cobra.Command{
	Use:   "visualize [file]",
	Short: "Generate a visualization of the dependency graph",
	Long: `Generate a visualization of the snapshot's dependency graph.

Formats:
  ascii    portable terminal diagram grouped by dependency level
  dot      Graphviz DOT for rendering with dot/neato
  mermaid  Mermaid flowchart for embedding in markdown

Exit codes:
  0 - Visualization generated
  1 - Ingestion failure
  3 - Unknown format
  4 - Missing input file`,
	Example: `  # Terminal diagram
  workgraph visualize data/working.csv

  # Graphviz pipeline
  workgraph visualize --format dot data/working.csv | dot -Tsvg -o deps.svg`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVisualize,
}

var visualizeFormat string

func init() {
	visualizeCmd.Flags().StringVar(&visualizeFormat, "format", "ascii", "output format: ascii | dot | mermaid")
	rootCmd.AddCommand(visualizeCmd)
}

func runVisualize(cmd *cobra.Command, args []string) error {
	format := render.Format(visualizeFormat)
	switch format {
	case render.FormatASCII, render.FormatDOT, render.FormatMermaid:
	default:
		return errors.InvalidVisualizeFormat(visualizeFormat)
	}

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
	rendered, err := render.Render(g, format)
	if err != nil {
		return errors.InvalidVisualizeFormat(visualizeFormat)
	}

	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}
