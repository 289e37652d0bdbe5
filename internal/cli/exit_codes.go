package cli

import (
	"fmt"
	"os"

	"github.com/raveheart1/workgraph/internal/errors"
)

// Exit codes for the workgraph CLI
// These codes support programmatic composition and CI/CD integration
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitAnalysisFailed indicates the analysis could not complete
	ExitAnalysisFailed = 1

	// ExitInvalidArguments indicates invalid command arguments or configuration
	ExitInvalidArguments = 3

	// ExitMissingInput indicates the input snapshot file is missing
	ExitMissingInput = 4
)

// ExitCode maps an error to its process exit code. Structured errors
// carry their category's code; anything else is an analysis failure.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if cliErr := errors.AsCLIError(err); cliErr != nil {
		return cliErr.Category.ExitCode()
	}
	return ExitAnalysisFailed
}

// PrintError writes an error to stderr, with category and remediation
// when the error is structured.
func PrintError(err error) {
	if err == nil {
		return
	}
	if cliErr := errors.AsCLIError(err); cliErr != nil {
		fmt.Fprint(os.Stderr, errors.FormatError(cliErr))
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
