package series

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "AGN.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeCSV(t, `ID,MJD,Mag,Magerr
5,100.1,17.2,0.1
5,100.2,17.4,0.1
9,200.0,16.8,0.2
5,100.3,17.1,0.1
2,300.0,18.0,0.3
`)

	source := NewCSVSource(path, "ID", "Mag")
	table, err := source.Load(context.Background())
	require.NoError(t, err)

	// Identifiers keep first-appearance order, and interleaved rows group
	// by identifier in row order.
	assert.Equal(t, []int64{5, 9, 2}, table.IDs)
	assert.Equal(t, []float64{17.2, 17.4, 17.1}, table.Values[5])
	assert.Equal(t, []float64{16.8}, table.Values[9])
	assert.Equal(t, []float64{18.0}, table.Values[2])
}

func TestLoad_CustomColumns(t *testing.T) {
	path := writeCSV(t, `object_id,flux
1,0.5
1,0.7
`)

	source := NewCSVSource(path, "object_id", "flux")
	table, err := source.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.7}, table.Values[1])
}

func TestLoad_MissingFile(t *testing.T) {
	source := NewCSVSource(filepath.Join(t.TempDir(), "nope.csv"), "ID", "Mag")
	_, err := source.Load(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoad_MissingColumns(t *testing.T) {
	tests := []struct {
		name   string
		header string
		substr string
	}{
		{name: "missing id column", header: "Foo,Mag", substr: `"ID"`},
		{name: "missing mag column", header: "ID,Foo", substr: `"Mag"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCSV(t, tt.header+"\n1,2\n")
			source := NewCSVSource(path, "ID", "Mag")
			_, err := source.Load(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.substr)
		})
	}
}

func TestLoad_BadValues(t *testing.T) {
	tests := []struct {
		name string
		row  string
	}{
		{name: "non-integer id", row: "abc,17.0"},
		{name: "non-numeric magnitude", row: "1,bright"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCSV(t, "ID,Mag\n"+tt.row+"\n")
			source := NewCSVSource(path, "ID", "Mag")
			_, err := source.Load(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestLoad_CancelledContext(t *testing.T) {
	path := writeCSV(t, "ID,Mag\n1,17.0\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	source := NewCSVSource(path, "ID", "Mag")
	_, err := source.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
