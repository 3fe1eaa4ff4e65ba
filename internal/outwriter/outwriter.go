// Package outwriter has output and writer logic.
package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/JesusPetro/mantra/internal/contract"
	"github.com/JesusPetro/mantra/internal/parquet"
	"github.com/JesusPetro/mantra/schema"
)

// WriteAlphaResults outputs the run results, dispatching based on the output
// format configured.
func WriteAlphaResults(output *schema.RunOutput, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFloatFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeAlphaJSONResults(output, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeAlphaCSVResults(output, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeAlphaParquetResults(output, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAlphaTable(output, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeAlphaJSONResults handles opening the file and calling the JSON writer.
func writeAlphaJSONResults(output *schema.RunOutput, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForAlpha(w, output)
	}, "Wrote JSON")
}

// writeAlphaCSVResults handles opening the file and calling the CSV writer.
func writeAlphaCSVResults(output *schema.RunOutput, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForAlpha(csvWriter, output, fmtFloat)
	}, "Wrote CSV")
}

// writeAlphaParquetResults writes the per-series records to a Parquet file.
// Parquet is a binary columnar format, so an output file is mandatory.
func writeAlphaParquetResults(output *schema.RunOutput, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return errors.New("--output-file is required for parquet output")
	}
	records := parquet.ConvertAlphaResults(output)
	if err := parquet.WriteAlphaRecordsParquet(records, cfg.OutputFile); err != nil {
		return err
	}
	fmt.Printf("Wrote %d alpha records to %s\n", len(records), cfg.OutputFile)
	return nil
}
