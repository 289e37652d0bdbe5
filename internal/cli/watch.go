package cli

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/raveheart1/workgraph/internal/chain"
	"github.com/raveheart1/workgraph/internal/config"
	"github.com/raveheart1/workgraph/internal/output"
)

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Rerun the analysis whenever the snapshot file changes",
	Long: `Watch the snapshot file and rerun the full analysis on every
write. Useful while a data export is being refreshed or a YAML fixture
is being edited.

The watch registers on the file's directory so editors that replace the
file on save (rename + create) are still detected. Press Ctrl+C to stop.

Exit codes:
  0 - Watch stopped by the user
  1 - Watcher setup or initial analysis failure`,
	Example: `  # Reanalyze on every change
  workgraph watch data/working.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

// watchDebounce coalesces bursts of writes into one rerun.
const watchDebounce = 250 * time.Millisecond

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path, err := resolveInputPath(args, cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}

	if err := rerunAnalysis(ctx, cmd, path, cfg); err != nil {
		return err
	}

	return watchLoop(ctx, cmd, watcher, path, cfg)
}

// watchLoop reruns the analysis on relevant file events until the
// context is cancelled. Analysis failures after the first successful run
// are reported and the watch continues.
func watchLoop(ctx context.Context, cmd *cobra.Command, watcher *fsnotify.Watcher, path string, cfg *config.Configuration) error {
	var timer *time.Timer
	pending := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(cmd.OutOrStdout(), "\nwatch stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})

		case <-pending:
			if err := rerunAnalysis(ctx, cmd, path, cfg); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "analysis failed: %v\n", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "watch error: %v\n", err)
		}
	}
}

// rerunAnalysis runs one full analyze pass and prints the report.
func rerunAnalysis(ctx context.Context, cmd *cobra.Command, path string, cfg *config.Configuration) error {
	result, err := runPipeline(ctx, path, cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	output.PrintRunSeparator(out)
	fmt.Fprintf(out, "[%s] %s: %s\n", time.Now().Format("15:04:05"), path, result.snapshot.Describe())

	output.PrintMetrics(out, result.metrics)
	output.PrintChains(out, result.ranked, result.all)

	findings := chain.Audit(result.auditInput(cfg.AuditScope), result.snapshot.Timelines, time.Now())
	output.PrintAudit(out, findings)
	return nil
}
