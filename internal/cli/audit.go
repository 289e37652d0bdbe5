package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/raveheart1/workgraph/internal/chain"
	"github.com/raveheart1/workgraph/internal/config"
	"github.com/raveheart1/workgraph/internal/errors"
	"github.com/raveheart1/workgraph/internal/output"
)

var auditCmd = &cobra.Command{
	Use:   "audit [file]",
	Short: "Audit recorded schedule dates along dependency chains",
	Long: `Audit the snapshot's recorded schedule dates against dependency
ordering. Five issue categories are checked per chain node:

  missing_start_dates          no start date recorded
  missing_close_dates          no close date recorded
  target_passed_without_close  target date passed, item never closed
  end_before_predecessor_end   planned to finish before its predecessor
  start_before_predecessor_end started before its predecessor finishes

Findings are per (chain, node) occurrence: a node shared by many chains
is reported once per chain.

Exit codes:
  0 - Audit completed (with or without findings)
  1 - Ingestion or analysis failure
  3 - Invalid arguments or configuration
  4 - Missing input file`,
	Example: `  # Audit the ranked top-20 chains
  workgraph audit data/working.csv

  # Audit every enumerated chain
  workgraph audit --scope full data/working.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAudit,
}

var (
	auditScope string
	auditTop   int
)

func init() {
	auditCmd.Flags().StringVar(&auditScope, "scope", "", "audit scope: ranked | full (overrides config)")
	auditCmd.Flags().IntVar(&auditTop, "top", 0, "ranked chains to audit when scope is ranked (overrides config)")
	rootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if auditScope != "" {
		cfg.AuditScope = auditScope
	}
	if auditTop > 0 {
		cfg.TopPaths = auditTop
	}
	if err := config.Validate(cfg); err != nil {
		return errors.Wrap(err, errors.Argument,
			"Check the --scope and --top values")
	}

	path, err := resolveInputPath(args, cfg)
	if err != nil {
		return err
	}

	result, err := runPipeline(cmd.Context(), path, cfg)
	if err != nil {
		return err
	}

	findings := chain.Audit(result.auditInput(cfg.AuditScope), result.snapshot.Timelines, time.Now())
	output.PrintAudit(cmd.OutOrStdout(), findings)
	return nil
}
