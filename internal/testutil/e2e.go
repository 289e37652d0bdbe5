// Package testutil provides test utilities and helpers for workgraph tests.
package testutil

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"
)

var (
	// workgraphBinaryPath caches the built workgraph binary path.
	workgraphBinaryPath string
	workgraphBuildOnce  sync.Once
	workgraphBuildErr   error
)

// E2EEnv provides an isolated environment for E2E testing. Each test
// gets its own working directory and a sanitized environment, so user
// configs and WORKGRAPH_* variables on the host cannot leak in.
type E2EEnv struct {
	t        *testing.T
	workDir  string
	extraEnv []string
}

// CommandResult captures the result of running a workgraph command.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// NewE2EEnv creates a new isolated E2E test environment.
func NewE2EEnv(t *testing.T) *E2EEnv {
	t.Helper()

	env := &E2EEnv{
		t:       t,
		workDir: t.TempDir(),
	}
	env.buildWorkgraph()
	return env
}

// WorkDir returns the test's working directory.
func (e *E2EEnv) WorkDir() string {
	return e.workDir
}

// WriteFile writes a file relative to the working directory and returns
// its absolute path.
func (e *E2EEnv) WriteFile(name, content string) string {
	e.t.Helper()

	path := filepath.Join(e.workDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		e.t.Fatalf("creating %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		e.t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

// WriteCSVSnapshot writes a relationship export with the standard header
// and the given data rows.
func (e *E2EEnv) WriteCSVSnapshot(name string, rows ...string) string {
	e.t.Helper()

	header := "WORK_ITEM_ID,WORK_ITEM_RELATIONSHIP_ID,WORK_ITEM_RELATIONSHIP_TYPE," +
		"WORK_ITEM_TYPE_NAME,WORK_ITEM_RELATIONSHIP_STATE_NAME," +
		"START_DATE,TARGET_DATE,CLOSED_DATE,OPPORTUNITY"
	return e.WriteFile(name, header+"\n"+strings.Join(rows, "\n")+"\n")
}

// WriteProjectConfig writes .workgraph/config.yml in the working directory.
func (e *E2EEnv) WriteProjectConfig(content string) string {
	e.t.Helper()
	return e.WriteFile(filepath.Join(".workgraph", "config.yml"), content)
}

func (e *E2EEnv) buildWorkgraph() {
	e.t.Helper()

	workgraphBuildOnce.Do(func() {
		workgraphBinaryPath, workgraphBuildErr = buildWorkgraphBinary()
	})
	if workgraphBuildErr != nil {
		e.t.Fatalf("building workgraph: %v", workgraphBuildErr)
	}
}

func buildWorkgraphBinary() (string, error) {
	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("determining current file location")
	}
	repoRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")

	tmpDir, err := os.MkdirTemp("", "workgraph-build-*")
	if err != nil {
		return "", fmt.Errorf("creating temp dir for build: %w", err)
	}

	binaryPath := filepath.Join(tmpDir, "workgraph")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/workgraph")
	cmd.Dir = repoRoot
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("building workgraph: %w\nOutput: %s", err, output)
	}

	return binaryPath, nil
}

// Run executes a workgraph command in the isolated environment.
func (e *E2EEnv) Run(args ...string) CommandResult {
	e.t.Helper()

	cmd := exec.Command(workgraphBinaryPath, args...)
	cmd.Dir = e.workDir
	cmd.Env = e.sanitizedEnv()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	duration := time.Since(start)

	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("running workgraph %v: %v", args, err)
		}
	}

	return CommandResult{
		ExitCode: exitCode,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: duration,
	}
}

// sanitizedEnv builds the child environment: HOME points inside the
// temp dir so user configs cannot leak in, and inherited WORKGRAPH_*
// overrides are dropped.
func (e *E2EEnv) sanitizedEnv() []string {
	env := []string{
		"HOME=" + e.workDir,
		"XDG_CONFIG_HOME=" + filepath.Join(e.workDir, ".config"),
		"NO_COLOR=1",
	}
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		switch {
		case key == "HOME", key == "XDG_CONFIG_HOME", key == "NO_COLOR":
		case strings.HasPrefix(key, "WORKGRAPH_"):
		default:
			env = append(env, kv)
		}
	}
	return append(env, e.extraEnv...)
}

// Setenv adds an environment variable for subsequent Run calls.
func (e *E2EEnv) Setenv(key, value string) {
	e.extraEnv = append(e.extraEnv, key+"="+value)
}
