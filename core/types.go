// File: types.go
// Role: Edge value type, canonicalisation, Graph storage and sentinel errors.
// AI-HINT (file):
//   - Edge is a value type; compare with ==. Canonical(a,b) is the only constructor callers need.
//   - Graph zero value is NOT usable; always call NewGraph().

package core

import (
	"errors"
	"strconv"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that an endpoint or vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates an edge whose two endpoints are equal.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates the unordered pair is already connected.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is an undirected friendship between two distinct names.
//
// A canonical Edge satisfies A < B (byte-wise lexicographic order), so the
// pair (x, y) and the pair (y, x) have exactly one representation.
type Edge struct {
	// A is the lexicographically smaller endpoint.
	A string `json:"a" yaml:"a"`

	// B is the lexicographically larger endpoint.
	B string `json:"b" yaml:"b"`
}

// Canonical returns the canonical form of the unordered pair {a, b}.
// It is idempotent: Canonical(e.A, e.B) == e for any canonical e.
// Complexity: O(len(a)+len(b)) for the comparison, no allocations.
func Canonical(a, b string) Edge {
	if b < a {
		a, b = b, a
	}

	return Edge{A: a, B: b}
}

// IsLoop reports whether both endpoints are the same name.
func (e Edge) IsLoop() bool { return e.A == e.B }

// IsCanonical reports whether e is already in canonical form (A <= B).
func (e Edge) IsCanonical() bool { return e.A <= e.B }

// String renders the edge as a quoted tuple, e.g. ("Ada Hill", "Leo Reed").
func (e Edge) String() string {
	return "(" + strconv.Quote(e.A) + ", " + strconv.Quote(e.B) + ")"
}

// Graph is an undirected simple graph over person names.
//
// muVert protects vertices; muEdgeAdj protects edges, order and adjacency.
// The edge catalog is keyed by canonical Edge, which makes duplicate
// detection a single map lookup.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges, order and adjacency

	// Storage
	vertices map[string]struct{} // vertex ID set
	edges    map[Edge]struct{}   // canonical edge set
	order    []Edge              // edges in first-insertion order

	// adjacency[(u)][(v)] = struct{}{} for both directions of every edge.
	adjacency map[string]map[string]struct{}
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]struct{}),
		edges:     make(map[Edge]struct{}),
		adjacency: make(map[string]map[string]struct{}),
	}
}

// NewGraphWithCapacity creates an empty Graph pre-sized for the expected
// number of vertices and edges. Negative hints are treated as zero.
// Complexity: O(1) plus allocation of the hinted buckets.
func NewGraphWithCapacity(vertices, edges int) *Graph {
	if vertices < 0 {
		vertices = 0
	}
	if edges < 0 {
		edges = 0
	}

	return &Graph{
		vertices:  make(map[string]struct{}, vertices),
		edges:     make(map[Edge]struct{}, edges),
		order:     make([]Edge, 0, edges),
		adjacency: make(map[string]map[string]struct{}, vertices),
	}
}
