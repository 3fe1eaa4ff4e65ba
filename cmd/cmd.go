// Package cmd defines the command-line interface for mantra.
package cmd

import (
	"github.com/JesusPetro/mantra/internal/contract"
	"github.com/JesusPetro/mantra/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(alphaCmd)
	rootCmd.AddCommand(edgesCmd)
	rootCmd.AddCommand(fitCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the results subcommands to the parent results command
	resultsCmd.AddCommand(resultsStatusCmd)
	resultsCmd.AddCommand(resultsExportCmd)
	resultsCmd.AddCommand(resultsClearCmd)
	resultsCmd.AddCommand(resultsMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("data-dir", "data", "Base directory holding csv/ and transient/ trees")
	rootCmd.PersistentFlags().String("variant", string(schema.NaturalVariant), "Visibility rule: natural or horizontal")
	rootCmd.PersistentFlags().Float64("li-fit", contract.DefaultLiFit, "Lower bound of the log10(k) fit window")
	rootCmd.PersistentFlags().Float64("ls-fit", contract.DefaultLsFit, "Upper bound of the log10(k) fit window")
	rootCmd.PersistentFlags().String("id-column", contract.DefaultIDColumn, "CSV column holding series identifiers")
	rootCmd.PersistentFlags().String("mag-column", contract.DefaultMagColumn, "CSV column holding magnitude samples")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent workers")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("store-backend", "", "Run tracking backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("store-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of alphaCmd to Viper
	alphaCmd.Flags().Bool("save-edges", false, "Persist an edge list per series while fitting")
	alphaCmd.Flags().Bool("plot", false, "Render a log-log fit plot per series")
	if err := viper.BindPFlags(alphaCmd.Flags()); err != nil {
		contract.LogFatal("Error binding alpha flags", err)
	}

	// Bind all flags of fitCmd to Viper
	fitCmd.Flags().Bool("plot", false, "Render a log-log fit plot per series")
	if err := viper.BindPFlags(fitCmd.Flags()); err != nil {
		contract.LogFatal("Error binding fit flags", err)
	}

	// Bind all flags of resultsMigrateCmd to Viper
	resultsMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(resultsMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding results migrate flags", err)
	}
}
