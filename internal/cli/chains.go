package cli

import (
	"github.com/spf13/cobra"

	"github.com/raveheart1/workgraph/internal/output"
)

var chainsCmd = &cobra.Command{
	Use:   "chains [file]",
	Short: "Enumerate and rank dependency chains",
	Long: `Enumerate all simple dependency chains in the snapshot graph and
print the ranked subset with each chain's temporal envelope (earliest
start, latest target, latest close among its nodes).

Ranking orders chains by latest target date descending, with chains
missing a target date last; ties keep enumeration order.

Exit codes:
  0 - Enumeration completed (including the no-chains outcome)
  1 - Ingestion or analysis failure
  4 - Missing input file`,
	Example: `  # Show the top 20 chains
  workgraph chains data/working.csv

  # Show every chain, enumerated with 4 workers
  workgraph chains --all --parallel 4 data/working.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runChains,
}

var (
	chainsTop      int
	chainsAll      bool
	chainsParallel int
)

func init() {
	chainsCmd.Flags().IntVar(&chainsTop, "top", 0, "ranked chains to keep (overrides config)")
	chainsCmd.Flags().BoolVar(&chainsAll, "all", false, "print every enumerated chain, unranked limit")
	chainsCmd.Flags().IntVar(&chainsParallel, "parallel", -1, "concurrent enumeration workers (overrides config)")
	rootCmd.AddCommand(chainsCmd)
}

func runChains(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if chainsTop > 0 {
		cfg.TopPaths = chainsTop
	}
	if chainsParallel >= 0 {
		cfg.Parallel = chainsParallel
	}

	path, err := resolveInputPath(args, cfg)
	if err != nil {
		return err
	}

	result, err := runPipeline(cmd.Context(), path, cfg)
	if err != nil {
		return err
	}

	shown := result.ranked
	if chainsAll {
		shown = result.all
	}
	output.PrintChains(cmd.OutOrStdout(), shown, result.all)
	return nil
}
