package powerlaw

import (
	"math"
	"testing"

	"github.com/JesusPetro/mantra/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syntheticDistribution builds an exact power law p(k) = c * k^-gamma over
// degrees 1..n, normalized to sum to one.
func syntheticDistribution(gamma float64, n int) schema.DegreeDistribution {
	degrees := make([]int, n)
	probs := make([]float64, n)
	total := 0.0
	for i := range n {
		k := i + 1
		degrees[i] = k
		probs[i] = math.Pow(float64(k), -gamma)
		total += probs[i]
	}
	for i := range probs {
		probs[i] /= total
	}
	return schema.DegreeDistribution{Degrees: degrees, Probabilities: probs}
}

func TestFit_RecoversExponent(t *testing.T) {
	tests := []struct {
		name  string
		gamma float64
	}{
		{name: "scale-free regime", gamma: 2.5},
		{name: "shallow regime", gamma: 1.2},
		{name: "steep regime", gamma: 3.4},
	}

	window := schema.FitWindow{Lower: 0, Upper: 2}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dist := syntheticDistribution(tt.gamma, 100)
			result, err := Fit(dist, window)
			require.NoError(t, err)

			// The points lie exactly on a line in log-log space, so OLS
			// recovers the exponent up to rounding.
			assert.InDelta(t, tt.gamma, result.Alpha, 0.01)
			assert.InDelta(t, -tt.gamma, result.Slope, 1e-9)
			assert.Equal(t, 100, result.PointsFit)
			assert.Len(t, result.XLog, 100)
			assert.Len(t, result.YLog, 100)
		})
	}
}

func TestFit_WindowIsInclusive(t *testing.T) {
	// log10(1) = 0 and log10(10) = 1 sit exactly on the window bounds and
	// must both enter the regression.
	dist := schema.DegreeDistribution{
		Degrees:       []int{1, 10},
		Probabilities: []float64{0.9, 0.1},
	}
	result, err := Fit(dist, schema.FitWindow{Lower: 0, Upper: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, result.PointsFit)

	// Two points define the line exactly: slope = log10(0.1/0.9).
	assert.InDelta(t, math.Log10(0.1)-math.Log10(0.9), result.Slope, 1e-9)
}

func TestFit_WindowExcludesOutsidePoints(t *testing.T) {
	dist := syntheticDistribution(2.0, 100)

	// Degrees above 10 fall outside log10(k) <= 1.
	result, err := Fit(dist, schema.FitWindow{Lower: 0, Upper: 1})
	require.NoError(t, err)
	assert.Equal(t, 10, result.PointsFit)

	// The full log axes are retained for plotting regardless of the window.
	assert.Len(t, result.XLog, 100)
}

func TestFit_InsufficientData(t *testing.T) {
	tests := []struct {
		name   string
		dist   schema.DegreeDistribution
		window schema.FitWindow
	}{
		{
			name:   "empty distribution",
			dist:   schema.DegreeDistribution{},
			window: schema.FitWindow{Lower: 0, Upper: 2},
		},
		{
			name: "single point in window",
			dist: schema.DegreeDistribution{
				Degrees:       []int{1, 100},
				Probabilities: []float64{0.5, 0.5},
			},
			window: schema.FitWindow{Lower: 0, Upper: 1},
		},
		{
			name: "window misses all points",
			dist: schema.DegreeDistribution{
				Degrees:       []int{100, 1000},
				Probabilities: []float64{0.5, 0.5},
			},
			window: schema.FitWindow{Lower: 0, Upper: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Fit(tt.dist, tt.window)
			assert.ErrorIs(t, err, ErrInsufficientFitData)
		})
	}
}

func TestFit_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		dist schema.DegreeDistribution
	}{
		{
			name: "zero degree",
			dist: schema.DegreeDistribution{
				Degrees:       []int{0, 1},
				Probabilities: []float64{0.5, 0.5},
			},
		},
		{
			name: "zero probability",
			dist: schema.DegreeDistribution{
				Degrees:       []int{1, 2},
				Probabilities: []float64{1.0, 0.0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Fit(tt.dist, schema.FitWindow{Lower: 0, Upper: 2})
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestRoundTo(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected float64
	}{
		{name: "round down", value: 2.504, expected: 2.5},
		{name: "round up", value: 2.506, expected: 2.51},
		{name: "tie away from zero positive", value: 0.125, expected: 0.13},
		{name: "tie away from zero negative", value: -0.125, expected: -0.13},
		{name: "already exact", value: 1.25, expected: 1.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, roundTo(tt.value, 2), 1e-12)
		})
	}
}
