// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/HasVertex/Vertices/VertexCount/Degree.
// Determinism:
//   - Vertices() returns IDs sorted lex asc.
// Concurrency:
//   - Mutations under muVert write lock (and muEdgeAdj for the adjacency bootstrap).
//   - Read queries under read locks.

package core

import "sort"

// AddVertex inserts a vertex with the given ID. Re-adding an existing vertex
// is a no-op.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity: O(1) amortized.
// Notes:
//   - Lock order is muVert -> muEdgeAdj to avoid lock inversion with AddEdge.
func (g *Graph) AddVertex(id string) error {
	// AI-HINT: Empty ID returns ErrEmptyVertexID. Idempotent if vertex exists.
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = struct{}{}

	// Bootstrap the adjacency bucket so Degree() works for isolated vertices.
	g.muEdgeAdj.Lock()
	ensureAdjacency(g, id)
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs sorted lexicographically.
// Complexity: O(V log V) time, O(V) space.
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	var id string
	for id = range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of friendships incident to id.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[id]), nil
}

// ensureAdjacency allocates the adjacency bucket for id.
// Caller must hold muEdgeAdj write lock.
func ensureAdjacency(g *Graph, id string) {
	if g.adjacency[id] == nil {
		g.adjacency[id] = make(map[string]struct{})
	}
}
