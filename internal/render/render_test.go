package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/JesusPetro/mantra/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlotPath(t *testing.T) {
	assert.Equal(t, filepath.Join("out", "42.pdf"), PlotPath("out", 42))
}

func TestRenderFit(t *testing.T) {
	result := schema.AlphaResult{
		Name:  "AGN",
		ID:    5,
		Alpha: 2.5,
		Fit: schema.FitResult{
			Alpha:     2.5,
			Slope:     -2.5,
			Intercept: -0.3,
			XLog:      []float64{0, 0.301, 0.477, 0.602},
			YLog:      []float64{-0.3, -1.05, -1.49, -1.81},
			PointsFit: 4,
		},
	}

	outPath := PlotPath(t.TempDir(), result.ID)
	require.NoError(t, NewFitPlot().RenderFit(result, schema.FitWindow{Lower: 0, Upper: 2}, outPath))

	info, err := os.Stat(outPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
