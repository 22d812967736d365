// Package core defines the friendship graph primitives shared by the
// generator and export packages: the canonical undirected Edge and the
// thread-safe Graph that accumulates a unique edge set.
//
// 🚀 What is core?
//
//	A small, in-memory, undirected simple graph:
//		• Vertices are person names (opaque strings).
//		• Edges are unordered friendships stored in canonical form (A < B).
//		• Self-loops and parallel edges are rejected with sentinel errors.
//
// Canonical form:
//
//	Canonical("Leo Reed", "Ada Hill") == Edge{A: "Ada Hill", B: "Leo Reed"}
//	Canonical(e.A, e.B) == e for every canonical e (idempotent).
//
// Determinism:
//
//	Edges() returns edges in first-insertion order, Vertices() in lexicographic
//	order. Both are stable for a fixed sequence of mutations.
//
// Concurrency:
//
//	muVert guards the vertex catalog, muEdgeAdj guards the edge catalog and the
//	adjacency index. Lock order is always muVert -> muEdgeAdj.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrLoopNotAllowed      - both endpoints are the same vertex.
//	ErrMultiEdgeNotAllowed - the unordered pair is already connected.
package core
