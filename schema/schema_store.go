package schema

import "time"

// RunRecord represents one tracked analysis run as stored in the run store.
type RunRecord struct {
	RunID         int64      // Unique identifier for this run
	StartTime     time.Time  // When the run began
	EndTime       *time.Time // When the run completed (nil while running)
	RunDurationMs *int64     // Duration in milliseconds (nil while running)
	TotalSeries   int32      // Number of series processed in this run
	ConfigParams  *string    // JSON-encoded configuration (nil if not stored)
}

// AlphaRowRecord represents one per-series row as stored in the run store.
type AlphaRowRecord struct {
	RunID     int64     // References the parent run
	Name      string    // Transient type label
	SeriesID  int64     // Series identifier from the source CSV
	Alpha     float64   // Fitted exponent
	Slope     float64   // Raw OLS slope
	Intercept float64   // Raw OLS intercept
	PointsFit int32     // Number of points inside the fit window
	FitTime   time.Time // When the series was fitted
}

// StoreStatus reports status information about the run store.
type StoreStatus struct {
	Backend     string           // Backend type in use
	Connected   bool             // Whether a live connection exists
	TotalRuns   int64            // Number of runs stored
	LastRunID   int64            // Most recent run identifier
	LastRunTime time.Time        // Start time of the most recent run
	TotalSeries int64            // Series processed across all runs
	TableSizes  map[string]int64 // Row counts per table
}
