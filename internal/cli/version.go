package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/raveheart1/workgraph/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run:   runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "workgraph %s\n", version.Version)
	fmt.Fprintf(out, "  commit:  %s\n", version.Commit)
	fmt.Fprintf(out, "  built:   %s\n", version.BuildDate)
	fmt.Fprintf(out, "  go:      %s (%s/%s)\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	if version.IsDevBuild() {
		fmt.Fprintln(out, "  development build")
	}
}
