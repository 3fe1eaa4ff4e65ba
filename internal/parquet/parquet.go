// Package parquet provides data structures and functions for exporting
// analysis data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/JesusPetro/mantra/schema"
	"github.com/parquet-go/parquet-go"
)

// Run represents a single tracked analysis run with metadata.
// This struct maps to the mantra_runs database table.
type Run struct {
	// RunID is the unique identifier for this run
	RunID int64 `parquet:"run_id,snappy"`

	// StartTime is when the run began
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the run in milliseconds (nullable)
	RunDurationMs *int64 `parquet:"run_duration_ms,optional,snappy"`

	// TotalSeries is the number of series fitted in this run
	TotalSeries int32 `parquet:"total_series,snappy"`

	// ConfigParams contains the JSON-encoded configuration (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// AlphaRecord represents the fitted exponent for a single series.
// This struct maps to the mantra_alpha_records database table.
type AlphaRecord struct {
	// RunID references the parent run (0 for untracked exports)
	RunID int64 `parquet:"run_id,snappy"`

	// Name is the transient type label, e.g. "AGN"
	Name string `parquet:"name,snappy"`

	// SeriesID is the series identifier from the source CSV
	SeriesID int64 `parquet:"series_id,snappy"`

	// Alpha is the fitted power-law exponent
	Alpha float64 `parquet:"alpha,snappy"`

	// Slope is the raw OLS slope
	Slope float64 `parquet:"slope,snappy"`

	// Intercept is the raw OLS intercept
	Intercept float64 `parquet:"intercept,snappy"`

	// PointsFit is the number of points inside the fit window
	PointsFit int32 `parquet:"points_fit,snappy"`

	// FitTime is when the series was fitted
	FitTime time.Time `parquet:"fit_time,snappy"`
}

// WriteRunsParquet writes a slice of Run structs to a Parquet file.
func WriteRunsParquet(data []Run, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the Run struct tags
	writer := parquet.NewGenericWriter[Run](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteAlphaRecordsParquet writes a slice of AlphaRecord structs to a Parquet file.
func WriteAlphaRecordsParquet(data []AlphaRecord, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the AlphaRecord struct tags
	writer := parquet.NewGenericWriter[AlphaRecord](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertRunRecords converts schema.RunRecord to Run for Parquet export.
func ConvertRunRecords(records []schema.RunRecord) []Run {
	result := make([]Run, len(records))
	for i, record := range records {
		result[i] = Run{
			RunID:         record.RunID,
			StartTime:     record.StartTime,
			EndTime:       record.EndTime,
			RunDurationMs: record.RunDurationMs,
			TotalSeries:   record.TotalSeries,
			ConfigParams:  record.ConfigParams,
		}
	}
	return result
}

// ConvertAlphaRowRecords converts schema.AlphaRowRecord to AlphaRecord for Parquet export.
func ConvertAlphaRowRecords(records []schema.AlphaRowRecord) []AlphaRecord {
	result := make([]AlphaRecord, len(records))
	for i, record := range records {
		result[i] = AlphaRecord{
			RunID:     record.RunID,
			Name:      record.Name,
			SeriesID:  record.SeriesID,
			Alpha:     record.Alpha,
			Slope:     record.Slope,
			Intercept: record.Intercept,
			PointsFit: record.PointsFit,
			FitTime:   record.FitTime,
		}
	}
	return result
}

// ConvertAlphaResults converts in-memory run output to AlphaRecord rows for
// direct Parquet output without a tracking store.
func ConvertAlphaResults(output *schema.RunOutput) []AlphaRecord {
	now := time.Now()
	result := make([]AlphaRecord, len(output.Results))
	for i, r := range output.Results {
		result[i] = AlphaRecord{
			Name:      r.Name,
			SeriesID:  r.ID,
			Alpha:     r.Alpha,
			Slope:     r.Fit.Slope,
			Intercept: r.Fit.Intercept,
			PointsFit: int32(r.Fit.PointsFit),
			FitTime:   now,
		}
	}
	return result
}
