package errors

import "fmt"

// Common error messages for the workgraph CLI.
// These templates ensure consistent, actionable error messages.

// NoInputConfigured creates an error for a command run without a
// snapshot path or a configured data_file.
func NoInputConfigured() *CLIError {
	return NewArgumentErrorWithUsage(
		"no input file given",
		"workgraph analyze <snapshot.csv>",
		"Pass the snapshot path as an argument",
		"Or set data_file in .workgraph/config.yml",
		"Or export WORKGRAPH_DATA_FILE=<path>",
	)
}

// InputFileNotFound creates an error for a missing snapshot file.
func InputFileNotFound(path string) *CLIError {
	return NewInputError(
		fmt.Sprintf("input file not found: %s", path),
		"Check the path for typos",
		"Export the relationship data to CSV first",
	)
}

// InputIsDirectory creates an error when the snapshot path is a directory.
func InputIsDirectory(path string) *CLIError {
	return NewInputError(
		fmt.Sprintf("path is a directory, not a file: %s", path),
		"Point at the CSV export or YAML snapshot inside it",
	)
}

// InputUnreadable creates an error when the snapshot file cannot be read.
func InputUnreadable(path string, err error) *CLIError {
	return WrapWithMessage(err, Input,
		fmt.Sprintf("cannot read input file: %s", path),
		"Check the file permissions",
	)
}

// SnapshotParseError creates an error for a snapshot that fails to parse.
func SnapshotParseError(err error) *CLIError {
	return Wrap(err, Analysis,
		"Check that the export carries the WORK_ITEM_* relationship columns",
		"YAML snapshots need a top-level 'items' mapping",
	)
}

// InvalidVisualizeFormat creates an error for an unknown --format value.
func InvalidVisualizeFormat(value string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("unknown format %q", value),
		"Valid formats are: ascii, dot, mermaid",
	)
}

// ConfigLoadError creates an error for configuration that fails to load.
func ConfigLoadError(err error) *CLIError {
	return Wrap(err, Configuration,
		"Check .workgraph/config.yml for syntax errors",
		"Run 'workgraph config show' to see the effective configuration",
	)
}

// ConfigExists creates an error when config init would overwrite a file.
func ConfigExists(path string) *CLIError {
	return NewConfigError(
		fmt.Sprintf("config file already exists: %s", path),
		"Edit the existing file instead",
		"Or remove it and rerun 'workgraph config init'",
	)
}

// EnumerationFailed creates an error for a failed or cancelled path
// enumeration.
func EnumerationFailed(err error) *CLIError {
	return WrapWithMessage(err, Analysis,
		"path enumeration failed",
		"Rerun without --parallel to rule out cancellation",
	)
}
