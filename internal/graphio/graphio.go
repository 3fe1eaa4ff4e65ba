// Package graphio reads and writes graphs as plain-text edge lists.
//
// The on-disk format is one edge per line: two whitespace-separated integer
// node identifiers, no header and no weights. Files are laid out one per
// series identifier inside a type's edgeList directory.
package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/JesusPetro/mantra/internal/contract"
	"github.com/JesusPetro/mantra/schema"
)

// ErrNotFound is returned when the edge list for an identifier is missing.
var ErrNotFound = errors.New("edge list not found")

// EdgeListPath returns the edge-list file path for a series identifier.
func EdgeListPath(edgeDir string, id int64) string {
	return filepath.Join(edgeDir, strconv.FormatInt(id, 10))
}

// WriteEdgeList persists the graph to path. Edges are emitted in stable
// (u, v) order with u < v so repeated writes are byte-identical.
func WriteEdgeList(g *schema.Graph, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create edge list %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	w := bufio.NewWriter(file)
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(w, "%d %d\n", e[0], e[1]); err != nil {
			return fmt.Errorf("failed to write edge list %s: %w", path, err)
		}
	}
	return w.Flush()
}

// ReadEdgeList loads a graph from path. A missing file maps to ErrNotFound
// so callers can skip the series without aborting the batch. Blank lines are
// ignored; malformed lines are an error.
func ReadEdgeList(path string) (*schema.Graph, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to open edge list %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	g := schema.NewGraph()
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("malformed edge at %s:%d: %q", path, lineNo, line)
		}
		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("malformed node id at %s:%d: %w", path, lineNo, err)
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("malformed node id at %s:%d: %w", path, lineNo, err)
		}
		g.AddEdge(u, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read edge list %s: %w", path, err)
	}
	return g, nil
}

// DirSource is a contract.GraphSource backed by an edge-list directory.
type DirSource struct {
	EdgeDir string
}

var _ contract.GraphSource = &DirSource{} // Compile-time check

// Graph reads the persisted edge list for the identifier.
func (s *DirSource) Graph(id int64) (*schema.Graph, error) {
	return ReadEdgeList(EdgeListPath(s.EdgeDir, id))
}
