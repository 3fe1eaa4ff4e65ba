package cmd

import (
	"github.com/JesusPetro/mantra/core"
	"github.com/JesusPetro/mantra/internal/contract"
	"github.com/JesusPetro/mantra/internal/runstore"
	"github.com/spf13/cobra"
)

// alphaCmd runs the full pipeline from light curves to fitted exponents.
var alphaCmd = &cobra.Command{
	Use:   "alpha <type>",
	Short: "Fit power-law exponents for every light curve of a transient type.",
	Long: `Build a visibility graph for every light curve of the given transient
type and fit the power-law exponent of its degree distribution.

For each series in <data-dir>/csv/<type>.csv the pipeline:
- Maps magnitude samples to a visibility graph (natural or horizontal)
- Computes the normalized degree distribution over nonzero-count degrees
- Fits log10 P(k) against log10 k inside the configured window
- Reports alpha as the negated, rounded regression slope

Series that produce empty graphs, invalid distributions or too few fit
points are reported as warnings and skipped; the run always continues.

Examples:
  # Fit every AGN light curve with the natural visibility rule
  mantra alpha AGN

  # Horizontal variant with a custom fit window
  mantra alpha CV --variant horizontal --li-fit 0.2 --ls-fit 1.6

  # Persist edge lists and plots alongside the fit
  mantra alpha Blazar --save-edges --plot

  # Export findings to CSV for tracking
  mantra alpha AGN --output csv --output-file agn-alpha.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteAlphaRun(rootCtx, cfg, runstore.Store()); err != nil {
			contract.LogFatal("Cannot run alpha analysis", err)
		}
	},
}
