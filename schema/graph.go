package schema

import "sort"

// Graph is a simple undirected graph over integer node identifiers.
// Self-loops are ignored and parallel edges collapse into one.
type Graph struct {
	adj map[int]map[int]struct{}
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{adj: make(map[int]map[int]struct{})}
}

// AddNode ensures the node exists, possibly with degree zero.
func (g *Graph) AddNode(n int) {
	if _, ok := g.adj[n]; !ok {
		g.adj[n] = make(map[int]struct{})
	}
}

// AddEdge connects u and v, creating both nodes as needed.
func (g *Graph) AddEdge(u, v int) {
	if u == v {
		return
	}
	g.AddNode(u)
	g.AddNode(v)
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
}

// HasEdge reports whether u and v are connected.
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.adj[u][v]
	return ok
}

// Degree returns the degree of node n, zero for unknown nodes.
func (g *Graph) Degree(n int) int {
	return len(g.adj[n])
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.adj)
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, nbrs := range g.adj {
		total += len(nbrs)
	}
	return total / 2
}

// Nodes returns all node identifiers in ascending order.
func (g *Graph) Nodes() []int {
	nodes := make([]int, 0, len(g.adj))
	for n := range g.adj {
		nodes = append(nodes, n)
	}
	sort.Ints(nodes)
	return nodes
}

// Edges returns every undirected edge exactly once as (u, v) with u < v,
// ordered lexicographically. The ordering makes edge-list output stable.
func (g *Graph) Edges() [][2]int {
	var edges [][2]int
	for _, u := range g.Nodes() {
		for v := range g.adj[u] {
			if u < v {
				edges = append(edges, [2]int{u, v})
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0] < edges[j][0]
		}
		return edges[i][1] < edges[j][1]
	})
	return edges
}

// MaxDegree returns the highest degree observed, or -1 for an empty graph.
func (g *Graph) MaxDegree() int {
	maxDeg := -1
	for _, nbrs := range g.adj {
		if len(nbrs) > maxDeg {
			maxDeg = len(nbrs)
		}
	}
	return maxDeg
}
