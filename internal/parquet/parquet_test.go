package parquet

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	pq "github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JesusPetro/mantra/schema"
)

func TestRunStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	s := pq.SchemaOf(new(Run))
	require.NotNil(t, s)

	expectedColumns := []string{
		"run_id",
		"start_time",
		"end_time",
		"run_duration_ms",
		"total_series",
		"config_params",
	}

	for _, colName := range expectedColumns {
		col, ok := s.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestAlphaRecordStructTags(t *testing.T) {
	s := pq.SchemaOf(new(AlphaRecord))
	require.NotNil(t, s)

	expectedColumns := []string{
		"run_id",
		"name",
		"series_id",
		"alpha",
		"slope",
		"intercept",
		"points_fit",
		"fit_time",
	}

	for _, colName := range expectedColumns {
		col, ok := s.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestWriteAlphaRecordsParquet(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "alpha_records.parquet")

	data := []AlphaRecord{
		{RunID: 1, Name: "AGN", SeriesID: 5, Alpha: 2.5, Slope: -2.5, Intercept: -0.3, PointsFit: 12, FitTime: time.Now()},
		{RunID: 1, Name: "AGN", SeriesID: 9, Alpha: 1.8, Slope: -1.8, Intercept: -0.1, PointsFit: 7, FitTime: time.Now()},
	}

	require.NoError(t, WriteAlphaRecordsParquet(data, outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriteRunsParquet(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "runs.parquet")

	end := time.Now()
	durationMs := int64(1500)
	config := `{"type":"AGN"}`
	data := []Run{
		{RunID: 1, StartTime: end.Add(-2 * time.Second), EndTime: &end, RunDurationMs: &durationMs, TotalSeries: 42, ConfigParams: &config},
		{RunID: 2, StartTime: end}, // in-flight run with nullable fields unset
	}

	require.NoError(t, WriteRunsParquet(data, outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestConvertAlphaResults(t *testing.T) {
	output := &schema.RunOutput{
		Type: "AGN",
		Results: []schema.AlphaResult{
			{Name: "AGN", ID: 5, Alpha: 2.5, Fit: schema.FitResult{Slope: -2.5, Intercept: -0.3, PointsFit: 12}},
		},
	}

	records := ConvertAlphaResults(output)
	require.Len(t, records, 1)
	assert.Equal(t, int64(0), records[0].RunID) // untracked export
	assert.Equal(t, int64(5), records[0].SeriesID)
	assert.Equal(t, 2.5, records[0].Alpha)
	assert.Equal(t, int32(12), records[0].PointsFit)
	assert.False(t, records[0].FitTime.IsZero())
}

func TestConvertRunRecords(t *testing.T) {
	end := time.Now()
	records := []schema.RunRecord{
		{RunID: 7, StartTime: end.Add(-time.Minute), EndTime: &end, TotalSeries: 3},
	}

	converted := ConvertRunRecords(records)
	require.Len(t, converted, 1)
	assert.Equal(t, int64(7), converted[0].RunID)
	assert.Equal(t, int32(3), converted[0].TotalSeries)
	assert.Equal(t, &end, converted[0].EndTime)
}
