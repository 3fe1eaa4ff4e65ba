package cmd

import (
	"fmt"

	"github.com/JesusPetro/mantra/internal/contract"
	"github.com/JesusPetro/mantra/internal/runstore"
	"github.com/JesusPetro/mantra/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// resultsSetup loads minimal configuration needed for run store operations.
// This is used by commands that need store access without full shared setup.
func resultsSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get store-related config values
	backendStr := viper.GetString("store-backend")
	connStr := viper.GetString("store-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Get output-related config values (used by export command)
	outputFile := viper.GetString("output-file")

	// Initialize the store with the loaded config
	if err := runstore.InitStore(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize run tracking: %w", err)
	}

	cfg.StoreBackend = backend
	cfg.StoreDBConnect = connStr
	cfg.OutputFile = outputFile

	return nil
}

// resultsSetupWrapper wraps resultsSetup to provide PreRunE for results commands.
func resultsSetupWrapper(_ *cobra.Command, _ []string) error {
	return resultsSetup()
}

// resultsMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize the store or create
// tables, allowing migrations to run on a fresh database.
func resultsMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get store-related config values
	backendStr := viper.GetString("store-backend")
	connStr := viper.GetString("store-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetStoreDBFilePath()
	}

	cfg.StoreBackend = backend
	cfg.StoreDBConnect = connStr

	return nil
}

// resultsMigrateSetupWrapper wraps resultsMigrateSetup to provide PreRunE for migrate command.
func resultsMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return resultsMigrateSetup()
}

// resultsCmd focused on tracked run data management.
//
// Note: Results subcommands use minimal initialization (resultsSetup) instead
// of the full sharedSetup used by analysis commands. This avoids data
// directory validation and complex config processing for simple store
// operations.
var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Manage tracked run history and exports",
	Long: `Manage tracked run data used for longitudinal reporting.

When enabled, mantra tracks every fitting run, storing:
- Run metadata (timestamp, configuration, duration)
- The fitted exponent per series with raw regression terms

This enables comparing fit windows, variants and datasets over time, and
exporting the accumulated history for analytics tools.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show run tracking statistics
  export  - Export data to Parquet for analytics
  clear   - Remove all tracked run data
  migrate - Run database schema migrations

Examples:
  # Check tracking status
  mantra results status --store-backend sqlite

  # Export for analysis in pandas/DuckDB
  mantra results export --store-backend sqlite --output-file mantra-data.parquet`,
}

// resultsStatusCmd shows run store status.
var resultsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display run tracking statistics and connection details",
	Long: `Show detailed information about tracked fitting runs.

Displays:
- Backend type and connection status
- Total number of runs stored
- Last run identifier and timestamp
- Total series fitted across all runs
- Database table sizes

Examples:
  # Check run tracking status
  mantra results status --store-backend sqlite`,
	PreRunE: resultsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		s := runstore.Store()
		if s == nil {
			contract.LogFatal("Run tracking is disabled", fmt.Errorf("set --store-backend to enable"))
		}
		status, err := s.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get run store status", err)
		}
		runstore.PrintStoreStatus(status)
	},
}

// resultsExportCmd exports tracked run data to Parquet files.
var resultsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export tracked runs to Parquet for BI tools and analytics",
	Long: `Export all tracked run data to Parquet format for use with analytics tools.

Exports two datasets:
- Runs - metadata about each fitting run
- Alpha records - the fitted exponent and regression terms per series

Requires: --output-file parameter

Examples:
  # Export all data
  mantra results export --store-backend sqlite --output-file mantra-data.parquet

  # Use with DuckDB for analysis
  duckdb -c "SELECT * FROM read_parquet('mantra-data.parquet.alpha_records.parquet') LIMIT 10"`,
	PreRunE: resultsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runstore.ExecuteResultsExport(cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export run data", err)
		}
	},
}

// resultsClearCmd clears the tracked run data.
var resultsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all tracked run data",
	Long: `Delete all stored runs and fitted exponent history.

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  # Export before clearing
  mantra results export --store-backend sqlite --output-file backup.parquet
  mantra results clear --store-backend sqlite`,
	PreRunE: resultsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runstore.ClearRuns(cfg.StoreBackend, contract.GetStoreDBFilePath(), cfg.StoreDBConnect); err != nil {
			contract.LogFatal("Failed to clear run data", err)
		}
		fmt.Println("Run data cleared successfully.")
	},
}

// resultsMigrateCmd runs database migrations for the run store.
var resultsMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the run tracking store.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  mantra results migrate --store-backend sqlite

  # Migrate to specific version
  mantra results migrate --store-backend sqlite --target-version 1

  # Rollback to initial state
  mantra results migrate --store-backend sqlite --target-version 0`,
	PreRunE: resultsMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := runstore.MigrateRuns(cfg.StoreBackend, cfg.StoreDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
