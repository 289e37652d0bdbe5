//go:build e2e

package e2e

import (
	"testing"

	"github.com/raveheart1/workgraph/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestE2E_Visualize(t *testing.T) {
	tests := map[string]struct {
		format        string
		wantStdoutSub []string
	}{
		"ascii": {
			format: "ascii",
			wantStdoutSub: []string{
				"Dependency Graph",
				"[level 0]",
				"a (Feature)",
				"b (Task) *",
				"Legend:",
			},
		},
		"dot": {
			format: "dot",
			wantStdoutSub: []string{
				"digraph workitems {",
				`"a" -> "b";`,
			},
		},
		"mermaid": {
			format: "mermaid",
			wantStdoutSub: []string{
				"graph LR",
				"n_a --> n_b",
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			env := testutil.NewE2EEnv(t)
			snapshot := env.WriteCSVSnapshot("working.csv", chainFixtureRows...)

			result := env.Run("visualize", "--format", tt.format, snapshot)

			require.Equal(t, 0, result.ExitCode,
				"stdout: %s\nstderr: %s", result.Stdout, result.Stderr)
			for _, want := range tt.wantStdoutSub {
				require.Contains(t, result.Stdout, want)
			}
		})
	}
}

func TestE2E_Metrics(t *testing.T) {
	env := testutil.NewE2EEnv(t)
	snapshot := env.WriteCSVSnapshot("working.csv", chainFixtureRows...)

	result := env.Run("metrics", snapshot)

	require.Equal(t, 0, result.ExitCode,
		"stdout: %s\nstderr: %s", result.Stdout, result.Stderr)
	require.Contains(t, result.Stdout, "Total Nodes: 3")
	require.Contains(t, result.Stdout, "Topological Order:")
	require.Contains(t, result.Stdout, "a -> b -> c")
}
