// Package stats derives degree histograms and degree distributions from graphs.
package stats

import (
	"errors"

	"github.com/JesusPetro/mantra/schema"
)

// ErrEmptyGraph is returned when a graph has no nodes and therefore no
// degree histogram. Callers treat it as a skip condition for that series.
var ErrEmptyGraph = errors.New("graph has no nodes")

// DegreeHistogram counts, for every degree value 0..maxDegree inclusive, how
// many nodes have exactly that degree. Degrees with no nodes get count 0.
// The result is empty for a graph with zero nodes.
func DegreeHistogram(g *schema.Graph) []int {
	maxDeg := g.MaxDegree()
	if maxDeg < 0 {
		return nil
	}
	hist := make([]int, maxDeg+1)
	for _, n := range g.Nodes() {
		hist[g.Degree(n)]++
	}
	return hist
}

// DegreeAxis returns the degree values 0..len(hist)-1, positionally paired
// with the histogram.
func DegreeAxis(hist []int) []int {
	degrees := make([]int, len(hist))
	for i := range degrees {
		degrees[i] = i
	}
	return degrees
}

// FilterNonzero removes every position where the histogram count is zero,
// preserving relative order and the positional correspondence between counts
// and degrees. The filter is index-aligned: it never confuses distinct
// positions that hold the same count value, which matters because zero runs
// can be non-contiguous.
func FilterNonzero(hist, degrees []int) ([]int, []int) {
	counts := make([]int, 0, len(hist))
	kept := make([]int, 0, len(degrees))
	for i, c := range hist {
		if c == 0 {
			continue
		}
		counts = append(counts, c)
		kept = append(kept, degrees[i])
	}
	return counts, kept
}

// Normalize divides each filtered count by the sum of the filtered counts,
// yielding the probability axis used for the log-log fit. The returned
// probabilities sum to 1 when at least one nonzero count exists.
func Normalize(counts []int) ([]float64, error) {
	if len(counts) == 0 {
		return nil, ErrEmptyGraph
	}
	total := 0
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return nil, ErrEmptyGraph
	}
	probs := make([]float64, len(counts))
	for i, c := range counts {
		probs[i] = float64(c) / float64(total)
	}
	return probs, nil
}

// Distribution runs the full histogram-to-distribution derivation for a
// graph: histogram, zero filtering and normalization. Degree 0 is dropped
// alongside zero counts since log10(0) is undefined downstream; a graph of
// isolated nodes therefore reduces to ErrEmptyGraph rather than a bogus fit.
func Distribution(g *schema.Graph) (schema.DegreeDistribution, error) {
	hist := DegreeHistogram(g)
	if len(hist) == 0 {
		return schema.DegreeDistribution{}, ErrEmptyGraph
	}
	counts, degrees := FilterNonzero(hist, DegreeAxis(hist))
	if len(degrees) > 0 && degrees[0] == 0 {
		counts, degrees = counts[1:], degrees[1:]
	}
	probs, err := Normalize(counts)
	if err != nil {
		return schema.DegreeDistribution{}, err
	}
	return schema.DegreeDistribution{Degrees: degrees, Probabilities: probs}, nil
}
