package cmd

import (
	"runtime"

	"github.com/spf13/cobra"
)

// versionCmd prints the build metadata stamped in by the release pipeline.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of mantra.",
	Long: `Display the release version, git commit, build timestamp and Go
runtime of this binary. Include this output when reporting bugs.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("mantra %s\n", version)
		cmd.Printf("  commit:  %s\n", commit)
		cmd.Printf("  built:   %s\n", date)
		cmd.Printf("  runtime: %s\n", runtime.Version())
	},
}
