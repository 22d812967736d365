// Package generator synthesizes random undirected social graphs.
//
// It offers two uniqueness-constrained samplers and a thin composition:
//
//   - NamePool:    draws first/last name pairs until a target number of
//     distinct "First Last" names is reached.
//   - SampleEdges: draws pairs of distinct names until a target number of
//     distinct canonical friendships (core.Edge, A < B) is reached.
//   - Build:       runs NamePool then SampleEdges on one random stream and
//     returns the resulting Network.
//
// Randomness:
//
//	Every sampler consumes a Source (Intn). The default is a time-seeded
//	*rand.Rand; use WithSeed or WithRand to make runs reproducible. Build
//	resolves options once, so both stages share the same stream.
//
// Strategies:
//
//	StrategyRejection (default) is the generate-and-check loop: expected draws
//	grow as the target approaches the combinatorial maximum.
//	StrategyIndex samples distinct combination indices with Floyd's algorithm
//	and unranks them, using exactly n draws. Both honor the same contract.
//
// Preconditions:
//
//	Targets that can never be met (pool_size > |first|×|last|, edge_count >
//	C(|names|,2)) are rejected before the first draw with errors that match
//	ErrConfiguration via errors.Is. The samplers never loop forever.
//
// Complexity:
//
//	NamePool:    expected O(n · H) draws for rejection (H ≈ harmonic factor of
//	             the fill ratio), O(n) for index; O(n) space.
//	SampleEdges: same shape over C(m,2) pairs; O(m + n) space.
package generator
