package cli

import (
	"context"
	"os"

	"github.com/raveheart1/workgraph/internal/chain"
	"github.com/raveheart1/workgraph/internal/config"
	"github.com/raveheart1/workgraph/internal/errors"
	"github.com/raveheart1/workgraph/internal/graph"
	"github.com/raveheart1/workgraph/internal/ingest"
	"github.com/raveheart1/workgraph/internal/progress"
)

// resolveInputPath picks the snapshot path from the argument list or the
// configured data_file, and verifies the file exists.
func resolveInputPath(args []string, cfg *config.Configuration) (string, error) {
	path := cfg.DataFile
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return "", errors.NoInputConfigured()
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.InputFileNotFound(path)
		}
		return "", errors.InputUnreadable(path, err)
	}
	if info.IsDir() {
		return "", errors.InputIsDirectory(path)
	}
	return path, nil
}

// readSnapshot reads the snapshot with the configured date layouts.
func readSnapshot(path string, cfg *config.Configuration) (*ingest.Snapshot, error) {
	snap, err := ingest.ReadFile(path, ingest.Options{
		DateFormats: cfg.DateFormats,
		Warn:        os.Stderr,
	})
	if err != nil {
		return nil, errors.SnapshotParseError(err)
	}
	return snap, nil
}

// enumeratePaths runs path enumeration with a spinner on TTYs, fanning
// out per source when parallel workers are configured.
func enumeratePaths(ctx context.Context, g *graph.Graph, parallel int) ([]graph.Path, error) {
	caps := progress.DetectTerminalCapabilities()
	sp := progress.NewSpinner("enumerating dependency chains", caps)
	sp.Start()
	defer sp.Stop()

	if parallel > 0 {
		paths, err := g.AllSimplePathsParallel(ctx, parallel)
		if err != nil {
			return nil, errors.EnumerationFailed(err)
		}
		return paths, nil
	}
	return g.AllSimplePaths(), nil
}

// analysisResult bundles everything the reporting commands consume.
type analysisResult struct {
	snapshot *ingest.Snapshot
	graph    *graph.Graph
	metrics  *graph.Metrics
	all      []chain.PathInfo
	ranked   []chain.PathInfo
}

// runPipeline executes the shared portion of the analysis: ingest, graph
// build, enumeration, temporal aggregation, and ranking.
func runPipeline(ctx context.Context, path string, cfg *config.Configuration) (*analysisResult, error) {
	snap, err := readSnapshot(path, cfg)
	if err != nil {
		return nil, err
	}

	g := graph.Build(snap.Relations)

	paths, err := enumeratePaths(ctx, g, cfg.Parallel)
	if err != nil {
		return nil, err
	}

	chain.AnnotateDegrees(g, snap.Timelines)
	infos := chain.Aggregate(paths, snap.Timelines)
	ranked := chain.RankByTarget(infos, cfg.TopPaths)

	return &analysisResult{
		snapshot: snap,
		graph:    g,
		metrics:  g.ComputeMetrics(),
		all:      infos,
		ranked:   ranked,
	}, nil
}

// auditInput selects the auditor's input set per the configured scope.
func (r *analysisResult) auditInput(scope string) []chain.PathInfo {
	if scope == config.AuditScopeFull {
		return r.all
	}
	return r.ranked
}
