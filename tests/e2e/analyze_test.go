//go:build e2e

package e2e

import (
	"testing"

	"github.com/raveheart1/workgraph/internal/testutil"
	"github.com/stretchr/testify/require"
)

// chainFixtureRows is a three-node chain a -> b -> c with schedule
// dates arranged so the audit reports predecessor clashes for b and c.
var chainFixtureRows = []string{
	"a,b,Successor,Feature,Closed,2026-01-01,2026-01-10,2026-01-10,",
	"b,c,Successor,Task,Active,2026-01-05,2026-01-09,,",
	"c,b,Predecessor,Task,Active,2026-01-08,2026-01-20,,",
}

func TestE2E_Analyze(t *testing.T) {
	env := testutil.NewE2EEnv(t)
	snapshot := env.WriteCSVSnapshot("working.csv", chainFixtureRows...)

	result := env.Run("analyze", snapshot)

	require.Equal(t, 0, result.ExitCode,
		"stdout: %s\nstderr: %s", result.Stdout, result.Stderr)

	wantSections := []string{
		"Network Analysis Results",
		"Total Nodes: 3",
		"Total Edges: 2",
		"Is DAG: true",
		"Dependency Chains",
		"a -> b -> c",
		"Longest chain: a -> b -> c",
		"Timing Audit",
		"Missing close dates (",
		"Planned to end before predecessor ends (2):",
		"Started before predecessor ends (4):",
	}
	for _, want := range wantSections {
		require.Contains(t, result.Stdout, want)
	}
}

func TestE2E_Analyze_DataFileFromConfig(t *testing.T) {
	env := testutil.NewE2EEnv(t)
	env.WriteCSVSnapshot("working.csv", chainFixtureRows...)
	env.WriteProjectConfig("data_file: working.csv\ntop_paths: 2\n")

	result := env.Run("analyze")

	require.Equal(t, 0, result.ExitCode,
		"stdout: %s\nstderr: %s", result.Stdout, result.Stderr)
	require.Contains(t, result.Stdout, "showing 2")
}

func TestE2E_Analyze_EnvOverride(t *testing.T) {
	env := testutil.NewE2EEnv(t)
	snapshot := env.WriteCSVSnapshot("working.csv", chainFixtureRows...)
	env.Setenv("WORKGRAPH_TOP_PATHS", "1")

	result := env.Run("analyze", snapshot)

	require.Equal(t, 0, result.ExitCode)
	require.Contains(t, result.Stdout, "showing 1")
}

func TestE2E_Analyze_EmptyGraphNoChains(t *testing.T) {
	env := testutil.NewE2EEnv(t)
	// Two isolated items: nodes but no edges, so no chains exist.
	snapshot := env.WriteCSVSnapshot("working.csv",
		"a,,Related,Feature,Active,,,,",
		"b,,Related,Task,Active,,,,",
	)

	result := env.Run("analyze", snapshot)

	require.Equal(t, 0, result.ExitCode,
		"stdout: %s\nstderr: %s", result.Stdout, result.Stderr)
	require.Contains(t, result.Stdout, "No dependency chains found")
}

func TestE2E_Analyze_YAMLSnapshot(t *testing.T) {
	env := testutil.NewE2EEnv(t)
	snapshot := env.WriteFile("working.yml", `items:
  a:
    type: Feature
    successors: [b]
    target_date: "2026-03-01"
  b:
    type: Task
`)

	result := env.Run("analyze", snapshot)

	require.Equal(t, 0, result.ExitCode,
		"stdout: %s\nstderr: %s", result.Stdout, result.Stderr)
	require.Contains(t, result.Stdout, "a -> b")
}

func TestE2E_Analyze_UnparseableDateWarns(t *testing.T) {
	env := testutil.NewE2EEnv(t)
	snapshot := env.WriteCSVSnapshot("working.csv",
		"a,b,Successor,Feature,Active,someday,,,")

	result := env.Run("analyze", snapshot)

	require.Equal(t, 0, result.ExitCode, "a bad date must degrade, not fail")
	require.Contains(t, result.Stderr, "someday")
}
