package cmd

import (
	"github.com/JesusPetro/mantra/core"
	"github.com/JesusPetro/mantra/internal/contract"
	"github.com/spf13/cobra"
)

// edgesCmd persists visibility graphs as edge lists without fitting.
var edgesCmd = &cobra.Command{
	Use:   "edges <type>",
	Short: "Build and persist visibility-graph edge lists for a transient type.",
	Long: `Build a visibility graph per light curve and write each one as an
edge list under <data-dir>/transient/<type>/edgeList/<id>.

Edge lists decouple the expensive graph construction from the cheap
regression step: run 'mantra edges' once, then iterate on fit windows
with 'mantra fit' without rebuilding graphs.

Examples:
  # Build natural visibility edge lists for AGN
  mantra edges AGN

  # Horizontal variant
  mantra edges CV --variant horizontal`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteEdgeBuild(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot build edge lists", err)
		}
	},
}
