package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/raveheart1/workgraph/internal/config"
	"github.com/raveheart1/workgraph/internal/errors"
)

func testConfig() *config.Configuration {
	return &config.Configuration{
		TopPaths:   20,
		AuditScope: config.AuditScopeRanked,
		Color:      "never",
	}
}

func writeSnapshot(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolveInputPath(t *testing.T) {
	t.Parallel()

	existing := writeSnapshot(t, "data.csv", "WORK_ITEM_ID\n")
	dir := t.TempDir()

	tests := map[string]struct {
		args     []string
		dataFile string
		wantPath string
		wantExit int
	}{
		"argument wins": {
			args:     []string{existing},
			dataFile: "ignored.csv",
			wantPath: existing,
		},
		"config data_file fallback": {
			dataFile: existing,
			wantPath: existing,
		},
		"nothing configured": {
			wantExit: ExitInvalidArguments,
		},
		"missing file": {
			args:     []string{filepath.Join(dir, "absent.csv")},
			wantExit: ExitMissingInput,
		},
		"directory": {
			args:     []string{dir},
			wantExit: ExitMissingInput,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := testConfig()
			cfg.DataFile = tc.dataFile

			path, err := resolveInputPath(tc.args, cfg)
			if tc.wantExit != 0 {
				if err == nil {
					t.Fatalf("expected error, got path %q", path)
				}
				if got := ExitCode(err); got != tc.wantExit {
					t.Errorf("ExitCode = %d, want %d", got, tc.wantExit)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveInputPath: %v", err)
			}
			if path != tc.wantPath {
				t.Errorf("path = %q, want %q", path, tc.wantPath)
			}
		})
	}
}

func TestRunPipeline(t *testing.T) {
	t.Parallel()

	csvData := "WORK_ITEM_ID,WORK_ITEM_RELATIONSHIP_ID,WORK_ITEM_RELATIONSHIP_TYPE,WORK_ITEM_TYPE_NAME,WORK_ITEM_RELATIONSHIP_STATE_NAME,TARGET_DATE\n" +
		"a,b,Successor,Feature,Active,2026-03-01\n" +
		"b,c,Successor,Task,Active,2026-02-01\n"
	path := writeSnapshot(t, "data.csv", csvData)

	result, err := runPipeline(context.Background(), path, testConfig())
	if err != nil {
		t.Fatalf("runPipeline: %v", err)
	}

	if result.graph.NodeCount() != 3 || result.graph.EdgeCount() != 2 {
		t.Errorf("graph = (%d nodes, %d edges), want (3, 2)",
			result.graph.NodeCount(), result.graph.EdgeCount())
	}
	// a->b, a->b->c, b->c
	if len(result.all) != 3 {
		t.Errorf("enumerated %d chains, want 3", len(result.all))
	}
	if len(result.ranked) != 3 {
		t.Errorf("ranked %d chains, want 3 under the default top", len(result.ranked))
	}
	if !result.metrics.IsDAG {
		t.Error("metrics report a cycle in an acyclic fixture")
	}

	// Degrees were annotated before aggregation.
	if tl := result.snapshot.Timelines["b"]; tl.InDegree != 1 || tl.OutDegree != 1 {
		t.Errorf("b degrees = (%d, %d), want (1, 1)", tl.InDegree, tl.OutDegree)
	}
}

func TestRunPipeline_ParallelMatchesSequential(t *testing.T) {
	t.Parallel()

	csvData := "WORK_ITEM_ID,WORK_ITEM_RELATIONSHIP_ID,WORK_ITEM_RELATIONSHIP_TYPE,WORK_ITEM_TYPE_NAME,WORK_ITEM_RELATIONSHIP_STATE_NAME\n" +
		"a,b,Successor,Feature,Active\n" +
		"a,c,Successor,Feature,Active\n" +
		"b,d,Successor,Task,Active\n" +
		"c,d,Successor,Task,Active\n"
	path := writeSnapshot(t, "data.csv", csvData)

	seq, err := runPipeline(context.Background(), path, testConfig())
	if err != nil {
		t.Fatal(err)
	}

	parCfg := testConfig()
	parCfg.Parallel = 4
	par, err := runPipeline(context.Background(), path, parCfg)
	if err != nil {
		t.Fatal(err)
	}

	if len(seq.all) != len(par.all) {
		t.Fatalf("sequential %d chains, parallel %d", len(seq.all), len(par.all))
	}
	for i := range seq.all {
		a, b := seq.all[i].Nodes, par.all[i].Nodes
		if fmt.Sprint(a) != fmt.Sprint(b) {
			t.Errorf("chain %d differs: %v vs %v", i, a, b)
		}
	}
}

func TestRunPipeline_BadSnapshot(t *testing.T) {
	t.Parallel()

	path := writeSnapshot(t, "data.csv", "WRONG,HEADER\n1,2\n")

	_, err := runPipeline(context.Background(), path, testConfig())
	if err == nil {
		t.Fatal("expected error for a snapshot without relationship columns")
	}
	if got := ExitCode(err); got != ExitAnalysisFailed {
		t.Errorf("ExitCode = %d, want %d", got, ExitAnalysisFailed)
	}
}

func TestAuditInputScopes(t *testing.T) {
	t.Parallel()

	csvData := "WORK_ITEM_ID,WORK_ITEM_RELATIONSHIP_ID,WORK_ITEM_RELATIONSHIP_TYPE,WORK_ITEM_TYPE_NAME,WORK_ITEM_RELATIONSHIP_STATE_NAME\n" +
		"a,b,Successor,Feature,Active\n" +
		"b,c,Successor,Task,Active\n"
	path := writeSnapshot(t, "data.csv", csvData)

	cfg := testConfig()
	cfg.TopPaths = 1

	result, err := runPipeline(context.Background(), path, cfg)
	if err != nil {
		t.Fatal(err)
	}

	if got := len(result.auditInput(config.AuditScopeRanked)); got != 1 {
		t.Errorf("ranked scope audits %d chains, want 1", got)
	}
	if got := len(result.auditInput(config.AuditScopeFull)); got != 3 {
		t.Errorf("full scope audits %d chains, want 3", got)
	}
}

func TestExitCode_PlainError(t *testing.T) {
	t.Parallel()

	if got := ExitCode(fmt.Errorf("boom")); got != ExitAnalysisFailed {
		t.Errorf("ExitCode = %d, want %d", got, ExitAnalysisFailed)
	}
	if got := ExitCode(nil); got != ExitSuccess {
		t.Errorf("ExitCode(nil) = %d, want %d", got, ExitSuccess)
	}
	if got := ExitCode(errors.NewInputError("gone")); got != ExitMissingInput {
		t.Errorf("ExitCode = %d, want %d", got, ExitMissingInput)
	}
}
