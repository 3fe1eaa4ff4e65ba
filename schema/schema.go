// Package schema has configs, models and typed constants for all parts of mantra.
package schema

// DegreePoint is one entry of the empirical degree distribution:
// the number of nodes observed with a given degree.
type DegreePoint struct {
	Degree int // Observed node degree k
	Count  int // Number of nodes with that degree
}

// DegreeDistribution pairs degree values with their empirical probability,
// positionally aligned. It is produced after zero-count filtering, so every
// degree is positive and every probability is in (0, 1].
type DegreeDistribution struct {
	Degrees       []int     // Degree axis, strictly positive after filtering
	Probabilities []float64 // count / sum(filtered counts), aligned with Degrees
}

// Len returns the number of points in the distribution.
func (d DegreeDistribution) Len() int {
	return len(d.Degrees)
}

// FitWindow is a closed interval on the log10(degree) axis. Only points whose
// log-degree falls within [Lower, Upper], inclusive on both ends, participate
// in the regression.
type FitWindow struct {
	Lower float64 `mapstructure:"li_fit"`
	Upper float64 `mapstructure:"ls_fit"`
}

// Contains reports whether the log-degree x lies inside the window.
func (w FitWindow) Contains(x float64) bool {
	return x >= w.Lower && x <= w.Upper
}

// FitResult is the output of one power-law estimation. It is created once per
// (series, graph) pair and never mutated afterwards.
type FitResult struct {
	Alpha     float64   // Negative slope, rounded half away from zero to 2 decimals
	Intercept float64   // Raw OLS intercept
	Slope     float64   // Raw OLS slope
	XLog      []float64 // Full (unwindowed) log10 degree axis, kept for plotting
	YLog      []float64 // Full (unwindowed) log10 probability axis, kept for plotting
	PointsFit int       // Number of points inside the fit window
}

// AlphaResult is one record of the result collection owned by the run
// orchestrator: transient name, series identifier and the fitted exponent.
type AlphaResult struct {
	Name  string    // Transient type label, e.g. "AGN"
	ID    int64     // Series identifier from the source CSV
	Alpha float64   // Fitted power-law exponent
	Fit   FitResult // Full fit diagnostics for plotting/export
}

// AlphaFailure records one series that could not be fitted. A series yields
// exactly one AlphaResult or one AlphaFailure, never both.
type AlphaFailure struct {
	ID   int64       // Series identifier
	Kind FailureKind // Failure taxonomy bucket
	Err  error       // Underlying cause
}

// RunOutput aggregates one analysis run. Results preserve the input order of
// the series identifiers; duplicate identifiers append duplicate records.
type RunOutput struct {
	Type     string         // Transient type label
	Results  []AlphaResult  // One record per successfully fitted series
	Failures []AlphaFailure // One record per skipped series
}
