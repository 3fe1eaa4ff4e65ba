// Package powerlaw estimates the exponent of a power-law degree distribution
// via ordinary least squares on log-log coordinates.
package powerlaw

import (
	"errors"
	"fmt"
	"math"

	"github.com/JesusPetro/mantra/schema"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrInvalidInput means a zero or negative degree reached the log
	// transform. That indicates an upstream filtering bug and is never
	// silently coerced into -Inf/NaN coordinates.
	ErrInvalidInput = errors.New("degree distribution contains a non-positive degree")

	// ErrInsufficientFitData means the fit window selected fewer than two
	// distinct log-degree values, leaving the two-parameter regression
	// undefined.
	ErrInsufficientFitData = errors.New("fit window selects fewer than two distinct points")
)

// Fit estimates the power-law exponent of the given degree distribution.
//
// The full filtered distribution is log10-transformed and kept in the result
// for diagnostic plotting; only points whose log-degree lies inside the
// window (inclusive on both ends) enter the regression. The fitted model is
// yLog = slope*xLog + intercept with an explicit intercept term, and
// alpha = -slope rounded to two decimals, half away from zero.
func Fit(dist schema.DegreeDistribution, window schema.FitWindow) (schema.FitResult, error) {
	if dist.Len() == 0 {
		return schema.FitResult{}, fmt.Errorf("%w: empty distribution", ErrInsufficientFitData)
	}

	xLog := make([]float64, dist.Len())
	yLog := make([]float64, dist.Len())
	for i, k := range dist.Degrees {
		if k <= 0 {
			return schema.FitResult{}, fmt.Errorf("%w: degree %d at position %d", ErrInvalidInput, k, i)
		}
		p := dist.Probabilities[i]
		if p <= 0 {
			return schema.FitResult{}, fmt.Errorf("%w: probability %g at position %d", ErrInvalidInput, p, i)
		}
		xLog[i] = math.Log10(float64(k))
		yLog[i] = math.Log10(p)
	}

	var xs, ys []float64
	distinct := make(map[float64]struct{})
	for i, x := range xLog {
		if !window.Contains(x) {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, yLog[i])
		distinct[x] = struct{}{}
	}
	if len(distinct) < 2 {
		return schema.FitResult{}, fmt.Errorf("%w: %d distinct log-degree values in [%g, %g]",
			ErrInsufficientFitData, len(distinct), window.Lower, window.Upper)
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)

	return schema.FitResult{
		Alpha:     -roundTo(slope, 2),
		Intercept: intercept,
		Slope:     slope,
		XLog:      xLog,
		YLog:      yLog,
		PointsFit: len(xs),
	}, nil
}

// roundTo rounds v to the given number of decimal places, half away from
// zero. math.Round already ties away from zero, so 0.125 -> 0.13 at two
// places and -0.125 -> -0.13.
func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
