package graphio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/JesusPetro/mantra/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadRoundTrip(t *testing.T) {
	g := schema.NewGraph()
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(0, 4)
	g.AddEdge(2, 4)

	path := EdgeListPath(t.TempDir(), 123)
	require.NoError(t, WriteEdgeList(g, path))

	loaded, err := ReadEdgeList(path)
	require.NoError(t, err)
	assert.Equal(t, g.Edges(), loaded.Edges())
	assert.Equal(t, g.EdgeCount(), loaded.EdgeCount())
}

func TestWriteEdgeList_Stable(t *testing.T) {
	g := schema.NewGraph()
	g.AddEdge(3, 1)
	g.AddEdge(0, 2)
	g.AddEdge(1, 0)

	dir := t.TempDir()
	first := filepath.Join(dir, "a")
	second := filepath.Join(dir, "b")
	require.NoError(t, WriteEdgeList(g, first))
	require.NoError(t, WriteEdgeList(g, second))

	b1, err := os.ReadFile(first)
	require.NoError(t, err)
	b2, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, b1, b2)
	assert.Equal(t, "0 1\n0 2\n1 3\n", string(b1))
}

func TestReadEdgeList_Missing(t *testing.T) {
	_, err := ReadEdgeList(filepath.Join(t.TempDir(), "9999"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReadEdgeList_BlankLinesIgnored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "1")
	require.NoError(t, os.WriteFile(path, []byte("0 1\n\n1 2\n"), 0o644))

	g, err := ReadEdgeList(path)
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())
}

func TestReadEdgeList_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "single field", content: "0\n"},
		{name: "non-integer node", content: "0 x\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "1")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := ReadEdgeList(path)
			assert.Error(t, err)
			assert.NotErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestDirSource(t *testing.T) {
	dir := t.TempDir()
	g := schema.NewGraph()
	g.AddEdge(0, 1)
	require.NoError(t, WriteEdgeList(g, EdgeListPath(dir, 7)))

	src := &DirSource{EdgeDir: dir}
	loaded, err := src.Graph(7)
	require.NoError(t, err)
	assert.True(t, loaded.HasEdge(0, 1))

	_, err = src.Graph(8)
	assert.ErrorIs(t, err, ErrNotFound)
}
