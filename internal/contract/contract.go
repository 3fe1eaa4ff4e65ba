// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/JesusPetro/mantra/schema"
)

// SeriesSource supplies per-identifier magnitude sequences for a transient
// type. This allows the pipeline to be tested without on-disk CSV files.
type SeriesSource interface {
	// Load reads the series table for the configured path and returns
	// identifiers in first-appearance order plus their sample vectors.
	Load(ctx context.Context) (*SeriesTable, error)
}

// GraphSource resolves a series identifier to a graph. Implementations may
// build the graph in memory or read a persisted edge list.
type GraphSource interface {
	// Graph returns the graph for the identifier, or an error satisfying
	// errors.Is(err, graphio.ErrNotFound) when the source is missing.
	Graph(id int64) (*schema.Graph, error)
}

// RunStore tracks analysis runs and per-series alpha records.
// This allows the store layer to be mocked for testing.
type RunStore interface {
	// BeginRun creates a new run and returns its unique ID.
	BeginRun(startTime time.Time, configParams map[string]any) (int64, error)

	// EndRun updates the run with completion data.
	EndRun(runID int64, endTime time.Time, totalSeries int) error

	// RecordAlpha stores one fitted series for a run.
	RecordAlpha(runID int64, record schema.AlphaRowRecord) error

	// GetStatus returns status information about the store.
	GetStatus() (schema.StoreStatus, error)

	// GetAllRuns retrieves all run records.
	GetAllRuns() ([]schema.RunRecord, error)

	// GetAllAlphaRecords retrieves all per-series records.
	GetAllAlphaRecords() ([]schema.AlphaRowRecord, error)

	// Close closes the underlying connection.
	Close() error
}

// Renderer consumes already-computed fit data and produces a visual artifact.
// The pipeline exposes these fields as plain data, nothing more.
type Renderer interface {
	RenderFit(result schema.AlphaResult, window schema.FitWindow, outPath string) error
}

// SeriesTable is an ordered mapping from series identifier to its magnitude
// samples. IDs preserves first-appearance order from the source.
type SeriesTable struct {
	IDs    []int64
	Values map[int64][]float64
}

// Samples returns the magnitude vector for the identifier, or nil.
func (t *SeriesTable) Samples(id int64) []float64 {
	return t.Values[id]
}
