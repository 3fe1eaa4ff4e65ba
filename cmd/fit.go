package cmd

import (
	"github.com/JesusPetro/mantra/core"
	"github.com/JesusPetro/mantra/internal/contract"
	"github.com/JesusPetro/mantra/internal/runstore"
	"github.com/spf13/cobra"
)

// fitCmd fits exponents from previously persisted edge lists.
var fitCmd = &cobra.Command{
	Use:   "fit <type>",
	Short: "Fit power-law exponents from persisted edge lists.",
	Long: `Fit the power-law exponent per series by reading edge lists written
by 'mantra edges' instead of rebuilding visibility graphs.

Series without a persisted edge list are reported as warnings and
skipped. Use this to sweep fit windows cheaply:

  mantra edges AGN
  mantra fit AGN --li-fit 0.0 --ls-fit 2.0
  mantra fit AGN --li-fit 0.5 --ls-fit 1.5`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteFitRun(rootCtx, cfg, runstore.Store()); err != nil {
			contract.LogFatal("Cannot run fit analysis", err)
		}
	},
}
