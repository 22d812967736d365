// SPDX-License-Identifier: MIT
// Package: socialnet/generator
//
// impl_edges.go: Edge Sampler.
//
// Canonical model:
//   - Draw two distinct positions of the pool in one draw (no self-loops by
//     construction), canonicalise, insert into a core.Graph until it holds n edges.
//   - The graph rejects repeated unordered pairs with core.ErrMultiEdgeNotAllowed;
//     that rejection is the "retry" of the loop.
//
// Contract:
//   - n ≥ 0 (else ErrNegativeCount).
//   - n > 0 ⇒ len(names) ≥ MinEdgeNames (else ErrTooFewNames).
//   - names are non-empty and pairwise distinct (else ErrInvalidPool).
//   - n ≤ MaxEdges(len(names)) (else ErrTooManyEdges).
//   - Every name of the pool becomes a vertex, isolated or not.
//
// Determinism:
//   - Edges are returned in first-insertion order; identical for a fixed seed/strategy.

package generator

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/socialnet/core"
)

// SampleEdges returns exactly n distinct canonical friendships among names.
func SampleEdges(names []string, n int, opts ...Option) ([]core.Edge, error) {
	g, err := sampleEdges(newConfig(opts...), names, n)
	if err != nil {
		return nil, err
	}

	return g.Edges(), nil
}

// sampleEdges is SampleEdges over a resolved configuration; it returns the
// accumulated graph so Build can expose it.
func sampleEdges(cfg genConfig, names []string, n int) (*core.Graph, error) {
	// 1) Validate before touching the random stream.
	if err := validateEdges(names, n); err != nil {
		return nil, err
	}

	// 2) Every pool name is a vertex, in pool order.
	g := core.NewGraphWithCapacity(len(names), n)
	for _, name := range names {
		if err := g.AddVertex(name); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%q): %w", MethodSampleEdges, name, err)
		}
	}
	if n == 0 {
		return g, nil
	}

	// 3) Sample with the configured strategy.
	var err error
	if cfg.strategy == StrategyIndex {
		err = sampleEdgesIndex(cfg.src, g, names, n)
	} else {
		err = sampleEdgesRejection(cfg.src, g, names, n)
	}
	if err != nil {
		return nil, err
	}

	return g, nil
}

// validateEdges enforces the SampleEdges preconditions.
func validateEdges(names []string, n int) error {
	if n < 0 {
		return fmt.Errorf("%s: edge_count=%d: %w", MethodSampleEdges, n, ErrNegativeCount)
	}
	seen := make(map[string]struct{}, len(names))
	for i, name := range names {
		if name == "" {
			return fmt.Errorf("%s: names[%d] is empty: %w", MethodSampleEdges, i, ErrInvalidPool)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%s: names[%d]=%q repeats: %w", MethodSampleEdges, i, name, ErrInvalidPool)
		}
		seen[name] = struct{}{}
	}
	if n == 0 {
		return nil
	}
	if len(names) < MinEdgeNames {
		return fmt.Errorf("%s: |names|=%d < min=%d: %w",
			MethodSampleEdges, len(names), MinEdgeNames, ErrTooFewNames)
	}
	if limit := MaxEdges(len(names)); n > limit {
		return fmt.Errorf("%s: edge_count=%d > max=%d: %w", MethodSampleEdges, n, limit, ErrTooManyEdges)
	}

	return nil
}

// sampleEdgesRejection is the reference generate-and-check loop.
// Terminates because validateEdges bounded n by C(m,2).
func sampleEdgesRejection(src Source, g *core.Graph, names []string, n int) error {
	m := len(names)
	for g.EdgeCount() < n {
		i, j := sampleTwo(src, m)
		if _, err := g.AddEdge(names[i], names[j]); err != nil {
			if errors.Is(err, core.ErrMultiEdgeNotAllowed) {
				continue // already a friendship; draw again
			}
			return fmt.Errorf("%s: AddEdge(%q, %q): %w: %w", MethodSampleEdges, names[i], names[j], ErrSampleFailed, err)
		}
	}

	return nil
}

// sampleEdgesIndex picks n distinct pair indices of the upper triangle and
// unranks each into positions (i, j), i < j.
func sampleEdgesIndex(src Source, g *core.Graph, names []string, n int) error {
	m := len(names)
	for _, k := range floydSample(src, MaxEdges(m), n) {
		i, j := unrankPair(k, m)
		if _, err := g.AddEdge(names[i], names[j]); err != nil {
			return fmt.Errorf("%s: AddEdge(%q, %q): %w: %w", MethodSampleEdges, names[i], names[j], ErrSampleFailed, err)
		}
	}

	return nil
}
