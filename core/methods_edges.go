// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges in first-insertion order.
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.
// AI-HINT (file):
//   - AddEdge canonicalises its endpoints; the returned Edge is what was stored.
//   - A duplicate unordered pair returns ErrMultiEdgeNotAllowed and leaves the graph unchanged.

package core

import "sort"

// AddEdge connects a and b with an undirected friendship.
//
// Steps:
//  1. Validate IDs and reject loops.
//  2. Ensure both endpoints exist via AddVertex.
//  3. Lock muEdgeAdj, reject an already-present pair.
//  4. Store the canonical edge, append to order, mirror adjacency.
//
// Errors:
//   - ErrEmptyVertexID: if a or b is "".
//   - ErrLoopNotAllowed: if a == b.
//   - ErrMultiEdgeNotAllowed: if {a, b} is already connected.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b string) (Edge, error) {
	// 1) Input validation
	if a == "" || b == "" {
		return Edge{}, ErrEmptyVertexID
	}
	if a == b {
		return Edge{}, ErrLoopNotAllowed
	}
	e := Canonical(a, b)

	// 2) Ensure vertices exist
	if err := g.AddVertex(e.A); err != nil {
		return Edge{}, err
	}
	if err := g.AddVertex(e.B); err != nil {
		return Edge{}, err
	}

	// 3) Insert edge under lock
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, dup := g.edges[e]; dup {
		return Edge{}, ErrMultiEdgeNotAllowed
	}

	// 4) Store and link adjacency in both directions
	g.edges[e] = struct{}{}
	g.order = append(g.order, e)
	ensureAdjacency(g, e.A)
	ensureAdjacency(g, e.B)
	g.adjacency[e.A][e.B] = struct{}{}
	g.adjacency[e.B][e.A] = struct{}{}

	return e, nil
}

// HasEdge reports whether a and b are connected, in either argument order.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.edges[Canonical(a, b)]

	return ok
}

// Edges returns a copy of all edges in first-insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]Edge, len(g.order))
	copy(out, g.order)

	return out
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// NeighborIDs returns the names adjacent to id, sorted lex asc.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	bucket := g.adjacency[id]
	out := make([]string, 0, len(bucket))
	var v string
	for v = range bucket {
		out = append(out, v)
	}
	g.muEdgeAdj.RUnlock()

	sort.Strings(out)

	return out, nil
}
