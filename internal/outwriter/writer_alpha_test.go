package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/JesusPetro/mantra/core/stats"
	"github.com/JesusPetro/mantra/internal/contract"
	"github.com/JesusPetro/mantra/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOutput() *schema.RunOutput {
	return &schema.RunOutput{
		Type: "AGN",
		Results: []schema.AlphaResult{
			{
				Name:  "AGN",
				ID:    5,
				Alpha: 2.5,
				Fit: schema.FitResult{
					Alpha:     2.5,
					Slope:     -2.504,
					Intercept: -0.3,
					PointsFit: 12,
				},
			},
			{
				Name:  "AGN",
				ID:    9,
				Alpha: 0.8,
				Fit: schema.FitResult{
					Alpha:     0.8,
					Slope:     -0.8,
					Intercept: -0.1,
					PointsFit: 4,
				},
			},
		},
		Failures: []schema.AlphaFailure{
			{ID: 7, Kind: schema.FailureEmptyGraph, Err: stats.ErrEmptyGraph},
		},
	}
}

func TestWriteCSVResultsForAlpha(t *testing.T) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	require.NoError(t, writeCSVResultsForAlpha(w, sampleOutput(), createFloatFormatter(2)))
	w.Flush()
	require.NoError(t, w.Error())

	reader := csv.NewReader(&buf)
	rows, err := reader.ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"name", "id", "alpha", "slope", "intercept", "points_fit", "label"}, rows[0])
	assert.Equal(t, []string{"AGN", "5", "2.50", "-2.50", "-0.30", "12", contract.ScaleFreeValue}, rows[1])
	assert.Equal(t, []string{"AGN", "9", "0.80", "-0.80", "-0.10", "4", contract.FlatValue}, rows[2])
}

func TestWriteJSONResultsForAlpha(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSONResultsForAlpha(&buf, sampleOutput()))

	var doc alphaJSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "AGN", doc.Type)
	require.Len(t, doc.Results, 2)
	assert.Equal(t, int64(5), doc.Results[0].ID)
	assert.Equal(t, 2.5, doc.Results[0].Alpha)
	assert.Equal(t, contract.ScaleFreeValue, doc.Results[0].Label)

	require.Len(t, doc.Failures, 1)
	assert.Equal(t, int64(7), doc.Failures[0].ID)
	assert.Equal(t, string(schema.FailureEmptyGraph), doc.Failures[0].Kind)
	assert.NotEmpty(t, doc.Failures[0].Reason)
}

func TestWriteAlphaTable_Wide(t *testing.T) {
	var buf bytes.Buffer
	cfg := &contract.Config{Precision: 2, Width: 120}

	require.NoError(t, writeAlphaTable(sampleOutput(), cfg, createFloatFormatter(cfg.Precision), 1500*time.Millisecond, &buf))

	out := buf.String()
	assert.Contains(t, out, "2.50")
	assert.Contains(t, out, "-2.50") // slope column present on wide terminals
	assert.Contains(t, out, "-0.30")
	assert.Contains(t, out, "Fitted 2 of 3 series for AGN in 1.5s")
	assert.Contains(t, out, "Skipped 1 series; see warnings above")
}

func TestWriteAlphaTable_Narrow(t *testing.T) {
	var buf bytes.Buffer
	cfg := &contract.Config{Precision: 2, Width: 40}

	require.NoError(t, writeAlphaTable(sampleOutput(), cfg, createFloatFormatter(cfg.Precision), time.Second, &buf))

	// Narrow terminals drop the raw regression columns.
	out := buf.String()
	assert.NotContains(t, out, "-2.50")
	assert.NotContains(t, out, "-0.30")
	assert.Contains(t, out, "2.50")
}

func TestCreateFloatFormatter(t *testing.T) {
	assert.Equal(t, "2.50", createFloatFormatter(2)(2.504))
	assert.Equal(t, "3", createFloatFormatter(0)(2.6))
	assert.Equal(t, "-0.1250", createFloatFormatter(4)(-0.125))
}

func TestGetTerminalWidth_Override(t *testing.T) {
	assert.Equal(t, 42, getTerminalWidth(&contract.Config{Width: 42}))
}
