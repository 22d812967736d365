package generator

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/socialnet/core"
)

// Verify checks that edges is a valid friendship list over names: every
// edge canonical (A < B), endpoints drawn from names, no pair repeated.
// It replays the edges into a fresh core.Graph and reports the first
// violation wrapped in ErrVerification.
//
// Complexity: O(|names| + |edges|).
func Verify(names []string, edges []core.Edge) error {
	g := core.NewGraphWithCapacity(len(names), len(edges))
	for _, name := range names {
		if err := g.AddVertex(name); err != nil {
			return fmt.Errorf("%s: name %q: %w: %w", MethodVerify, name, ErrVerification, err)
		}
	}

	for i, e := range edges {
		if !e.IsCanonical() {
			return fmt.Errorf("%s: edge %d %s: not canonical: %w", MethodVerify, i, e, ErrVerification)
		}
		if !g.HasVertex(e.A) || !g.HasVertex(e.B) {
			return fmt.Errorf("%s: edge %d %s: %w: %w", MethodVerify, i, e, ErrVerification, core.ErrVertexNotFound)
		}
		if _, err := g.AddEdge(e.A, e.B); err != nil {
			if errors.Is(err, core.ErrMultiEdgeNotAllowed) {
				err = fmt.Errorf("duplicate: %w", err)
			}

			return fmt.Errorf("%s: edge %d %s: %w: %w", MethodVerify, i, e, ErrVerification, err)
		}
	}

	return nil
}
