package generator

import (
	"fmt"

	"github.com/katalvlaran/socialnet/core"
)

// Params is the configuration surface of one generation run.
type Params struct {
	// PoolSize is the number of unique names to generate.
	PoolSize int `json:"pool_size" yaml:"pool_size"`
	// EdgeCount is the number of unique friendships to sample.
	EdgeCount int `json:"edge_count" yaml:"edge_count"`
	// FirstNames are the candidate first-name tokens.
	FirstNames []string `json:"first_names" yaml:"first_names"`
	// LastNames are the candidate last-name tokens.
	LastNames []string `json:"last_names" yaml:"last_names"`
}

// Network is the output of Build: the name pool and the friendship edges.
// Both slices are owned by the Network; treat them as read-only.
type Network struct {
	// Names is the pool in generation order.
	Names []string
	// Edges are canonical friendships in generation order.
	Edges []core.Edge

	graph *core.Graph
}

// Graph returns the friendship graph accumulated during sampling. Every
// pool name is a vertex.
func (n *Network) Graph() *core.Graph { return n.graph }

// Build runs NamePool then SampleEdges with one resolved configuration, so
// a fixed seed reproduces the whole network. Both targets are checked
// before any draw. Errors are wrapped as "Build: %w".
func Build(p Params, opts ...Option) (*Network, error) {
	cfg := newConfig(opts...)

	// Check both targets before the first draw.
	if err := validatePool(p.FirstNames, p.LastNames, p.PoolSize); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuild, err)
	}
	if err := validateEdgeTarget(p.PoolSize, p.EdgeCount); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuild, err)
	}

	names, err := namePool(cfg, p.FirstNames, p.LastNames, p.PoolSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuild, err)
	}

	g, err := sampleEdges(cfg, names, p.EdgeCount)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuild, err)
	}

	return &Network{Names: names, Edges: g.Edges(), graph: g}, nil
}

// validateEdgeTarget checks edge_count against the pool size alone.
func validateEdgeTarget(poolSize, edgeCount int) error {
	if edgeCount < 0 {
		return fmt.Errorf("%s: edge_count=%d: %w", MethodSampleEdges, edgeCount, ErrNegativeCount)
	}
	if edgeCount == 0 {
		return nil
	}
	if poolSize < MinEdgeNames {
		return fmt.Errorf("%s: pool_size=%d < min=%d: %w",
			MethodSampleEdges, poolSize, MinEdgeNames, ErrTooFewNames)
	}
	if limit := MaxEdges(poolSize); edgeCount > limit {
		return fmt.Errorf("%s: edge_count=%d > max=%d: %w",
			MethodSampleEdges, edgeCount, limit, ErrTooManyEdges)
	}

	return nil
}
