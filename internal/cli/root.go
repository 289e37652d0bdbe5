// Package cli implements the workgraph command-line interface.
package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/raveheart1/workgraph/internal/config"
	"github.com/raveheart1/workgraph/internal/errors"
	"github.com/raveheart1/workgraph/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "workgraph",
	Short: "Analyze work-item dependency graphs from tabular exports",
	Long: `Workgraph rebuilds the dependency DAG from a tabular export of
work-item relationships, enumerates and ranks dependency chains, audits
recorded schedule dates against dependency ordering, and reports network
metrics.

Input is a CSV relationship export (WORK_ITEM_* columns) or a YAML
snapshot fixture; the analysis is one-shot and in-memory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       fmt.Sprintf("%s (commit %s, built %s)", version.Version, version.Commit, version.BuildDate),
}

var (
	flagConfigPath string
	flagNoColor    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "",
		"path to project config file (default .workgraph/config.yml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false,
		"disable colored output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig loads configuration honoring the --config flag and applies
// the color mode.
func loadConfig() (*config.Configuration, error) {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return nil, errors.ConfigLoadError(err)
	}

	switch {
	case flagNoColor || cfg.Color == "never":
		color.NoColor = true
	case cfg.Color == "always":
		color.NoColor = false
	}

	return cfg, nil
}
