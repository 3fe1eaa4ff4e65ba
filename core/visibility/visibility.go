// Package visibility builds visibility graphs from scalar time series.
package visibility

import "github.com/JesusPetro/mantra/schema"

// Build constructs a visibility graph for the sample sequence using the
// requested variant. Nodes are sample indices 0..len(values)-1; every sample
// becomes a node even when it ends up isolated.
func Build(values []float64, variant schema.GraphVariant) *schema.Graph {
	if variant == schema.HorizontalVariant {
		return Horizontal(values)
	}
	return Natural(values)
}

// Natural connects samples i < j when the straight line between
// (i, values[i]) and (j, values[j]) passes above every intermediate sample.
func Natural(values []float64) *schema.Graph {
	g := schema.NewGraph()
	n := len(values)
	for i := range n {
		g.AddNode(i)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if naturalVisible(values, i, j) {
				g.AddEdge(i, j)
			}
		}
	}
	return g
}

// Horizontal connects samples i < j when every intermediate sample lies
// strictly below both endpoints.
func Horizontal(values []float64) *schema.Graph {
	g := schema.NewGraph()
	n := len(values)
	for i := range n {
		g.AddNode(i)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if horizontalVisible(values, i, j) {
				g.AddEdge(i, j)
			}
		}
	}
	return g
}

// naturalVisible checks the natural visibility criterion:
// values[k] < values[j] + (values[i]-values[j]) * (j-k)/(j-i) for all i<k<j.
func naturalVisible(values []float64, i, j int) bool {
	for k := i + 1; k < j; k++ {
		limit := values[j] + (values[i]-values[j])*float64(j-k)/float64(j-i)
		if values[k] >= limit {
			return false
		}
	}
	return true
}

// horizontalVisible checks the horizontal visibility criterion:
// values[k] < min(values[i], values[j]) for all i<k<j.
func horizontalVisible(values []float64, i, j int) bool {
	for k := i + 1; k < j; k++ {
		if values[k] >= values[i] || values[k] >= values[j] {
			return false
		}
	}
	return true
}
