// Package series loads per-identifier magnitude sequences from CSV files.
package series

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/JesusPetro/mantra/internal/contract"
)

// ErrNotFound is returned when the series CSV file is missing.
var ErrNotFound = errors.New("series file not found")

// CSVSource is a contract.SeriesSource backed by a CSV file with an
// identifier column and a numeric magnitude column. Rows are grouped by
// identifier in first-appearance order.
type CSVSource struct {
	Path      string
	IDColumn  string
	MagColumn string
}

var _ contract.SeriesSource = &CSVSource{} // Compile-time check

// NewCSVSource returns a source for the given file using the configured
// column names.
func NewCSVSource(path, idColumn, magColumn string) *CSVSource {
	return &CSVSource{Path: path, IDColumn: idColumn, MagColumn: magColumn}
}

// Load reads the whole CSV into an ordered series table. A missing required
// column is a configuration error, not a per-series failure.
func (s *CSVSource) Load(ctx context.Context) (*contract.SeriesTable, error) {
	file, err := os.Open(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, s.Path)
		}
		return nil, fmt.Errorf("failed to open series file %s: %w", s.Path, err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", s.Path, err)
	}

	idIdx, magIdx := -1, -1
	for i, name := range header {
		switch name {
		case s.IDColumn:
			idIdx = i
		case s.MagColumn:
			magIdx = i
		}
	}
	if idIdx < 0 {
		return nil, fmt.Errorf("series file %s is missing required column %q", s.Path, s.IDColumn)
	}
	if magIdx < 0 {
		return nil, fmt.Errorf("series file %s is missing required column %q", s.Path, s.MagColumn)
	}

	table := &contract.SeriesTable{Values: make(map[int64][]float64)}
	rowNo := 1
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s row %d: %w", s.Path, rowNo, err)
		}
		rowNo++

		id, err := strconv.ParseInt(record[idIdx], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid identifier %q at %s row %d: %w", record[idIdx], s.Path, rowNo, err)
		}
		mag, err := strconv.ParseFloat(record[magIdx], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid magnitude %q at %s row %d: %w", record[magIdx], s.Path, rowNo, err)
		}

		if _, seen := table.Values[id]; !seen {
			table.IDs = append(table.IDs, id)
		}
		table.Values[id] = append(table.Values[id], mag)
	}

	return table, nil
}
