package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/raveheart1/workgraph/internal/config"
	"github.com/raveheart1/workgraph/internal/errors"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage workgraph configuration",
	Long:  `Commands for inspecting and initializing workgraph configuration files.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented project config template",
	Long: `Write a fully commented configuration template to
.workgraph/config.yml. Refuses to overwrite an existing file.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.ProjectConfigPath()
	if _, err := os.Stat(path); err == nil {
		return errors.ConfigExists(path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.WrapWithMessage(err, errors.Configuration, "creating "+filepath.Dir(path))
	}
	if err := os.WriteFile(path, []byte(config.GetDefaultConfigTemplate()), 0o644); err != nil {
		return errors.WrapWithMessage(err, errors.Configuration, "writing "+path)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "data_file:    %s\n", valueOrNone(cfg.DataFile))
	fmt.Fprintf(out, "top_paths:    %d\n", cfg.TopPaths)
	fmt.Fprintf(out, "audit_scope:  %s\n", cfg.AuditScope)
	fmt.Fprintf(out, "parallel:     %d\n", cfg.Parallel)
	fmt.Fprintf(out, "color:        %s\n", cfg.Color)
	if len(cfg.DateFormats) == 0 {
		fmt.Fprintf(out, "date_formats: (built-in defaults)\n")
	} else {
		fmt.Fprintf(out, "date_formats: %v\n", cfg.DateFormats)
	}
	return nil
}

// valueOrNone renders an optional string setting.
func valueOrNone(v string) string {
	if v == "" {
		return "(none)"
	}
	return v
}
