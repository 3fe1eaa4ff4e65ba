package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGraphBasics(t *testing.T) {
	g := NewGraph()
	assert.Equal(t, 0, g.NodeCount())
	assert.Equal(t, -1, g.MaxDegree())
	assert.Nil(t, g.Edges())

	g.AddNode(3)
	g.AddNode(3) // idempotent
	assert.Equal(t, 1, g.NodeCount())
	assert.Equal(t, 0, g.Degree(3))
	assert.Equal(t, 0, g.MaxDegree())

	g.AddEdge(1, 2)
	g.AddEdge(2, 1) // undirected, collapses
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.HasEdge(1, 2))
	assert.True(t, g.HasEdge(2, 1))
	assert.False(t, g.HasEdge(1, 3))
}

func TestGraphSelfLoopIgnored(t *testing.T) {
	g := NewGraph()
	g.AddEdge(1, 1)
	assert.Equal(t, 0, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
}

func TestGraphNodesSorted(t *testing.T) {
	g := NewGraph()
	for _, n := range []int{5, 1, 3, 2, 4} {
		g.AddNode(n)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, g.Nodes())
}

func TestGraphEdgesStable(t *testing.T) {
	g := NewGraph()
	g.AddEdge(4, 0)
	g.AddEdge(2, 1)
	g.AddEdge(0, 1)

	expected := [][2]int{{0, 1}, {0, 4}, {1, 2}}
	assert.Equal(t, expected, g.Edges())
	assert.Equal(t, expected, g.Edges()) // deterministic across calls
}

func TestFitWindowContains(t *testing.T) {
	w := FitWindow{Lower: 0, Upper: 2}
	assert.True(t, w.Contains(0))   // inclusive lower bound
	assert.True(t, w.Contains(2))   // inclusive upper bound
	assert.True(t, w.Contains(1.5))
	assert.False(t, w.Contains(-0.1))
	assert.False(t, w.Contains(2.1))
}
