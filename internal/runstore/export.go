package runstore

import (
	"errors"
	"fmt"

	"github.com/JesusPetro/mantra/internal/parquet"
)

// ExecuteResultsExport performs the actual export of tracked run data to Parquet files.
func ExecuteResultsExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	s := Store()
	if s == nil {
		return errors.New("run tracking is disabled; set --store-backend to export")
	}

	// Check if there's any data to export
	status, err := s.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get run store status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no tracked run data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total runs: %d\n", status.TotalRuns)
	fmt.Printf("Total alpha records: %d\n", status.TableSizes["mantra_alpha_records"])

	// Retrieve all tracked runs
	runs, err := s.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve runs: %w", err)
	}

	// Retrieve all fitted exponent records
	records, err := s.GetAllAlphaRecords()
	if err != nil {
		return fmt.Errorf("failed to retrieve alpha records: %w", err)
	}

	// Convert to Parquet format
	parquetRuns := parquet.ConvertRunRecords(runs)
	parquetRecords := parquet.ConvertAlphaRowRecords(records)

	// Write runs to Parquet
	runsFile := outputFile + ".runs.parquet"
	if err := parquet.WriteRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write runs: %w", err)
	}
	fmt.Printf("Exported %d runs to: %s\n", len(parquetRuns), runsFile)

	// Write alpha records to Parquet
	recordsFile := outputFile + ".alpha_records.parquet"
	if err := parquet.WriteAlphaRecordsParquet(parquetRecords, recordsFile); err != nil {
		return fmt.Errorf("failed to write alpha records: %w", err)
	}
	fmt.Printf("Exported %d alpha records to: %s\n", len(parquetRecords), recordsFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
