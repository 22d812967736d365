package generator_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/katalvlaran/socialnet/core"
	"github.com/katalvlaran/socialnet/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// replaySource replays fixed values (mod n) and counts draws.
type replaySource struct {
	values []int
	calls  int
}

func (r *replaySource) Intn(n int) int {
	v := r.values[r.calls%len(r.values)]
	r.calls++
	return v % n
}

// assertEdgeSetShape checks cardinality, loops, canonical order, uniqueness
// and that both endpoints come from the pool.
func assertEdgeSetShape(t *testing.T, edges []core.Edge, n int, pool []string) {
	t.Helper()

	require.Len(t, edges, n)
	inPool := toSet(pool)
	seen := make(map[core.Edge]struct{}, n)
	for _, e := range edges {
		require.NotEqual(t, e.A, e.B, "self-loop %v", e)
		require.Less(t, e.A, e.B, "non-canonical %v", e)
		assert.Equal(t, e, core.Canonical(e.A, e.B), "canonicalisation must be a no-op")
		assert.Contains(t, inPool, e.A)
		assert.Contains(t, inPool, e.B)
		_, dup := seen[e]
		require.False(t, dup, "duplicate edge %v", e)
		seen[e] = struct{}{}
	}
}

func numberedPool(m int) []string {
	out := make([]string, m)
	for i := range out {
		out[i] = fmt.Sprintf("N%d", i+1)
	}
	return out
}

// TestSampleEdges_ScenarioTriangle: three names, three edges → every pair.
func TestSampleEdges_ScenarioTriangle(t *testing.T) {
	t.Parallel()

	for _, s := range strategies {
		edges, err := generator.SampleEdges([]string{"N1", "N2", "N3"}, 3,
			generator.WithSeed(5), generator.WithStrategy(s))
		require.NoError(t, err)
		assert.ElementsMatch(t, []core.Edge{
			{A: "N1", B: "N2"}, {A: "N1", B: "N3"}, {A: "N2", B: "N3"},
		}, edges, s.String())
	}
}

// TestSampleEdges_ScenarioSinglePair: two names admit exactly one edge.
func TestSampleEdges_ScenarioSinglePair(t *testing.T) {
	t.Parallel()

	for _, s := range strategies {
		edges, err := generator.SampleEdges([]string{"N2", "N1"}, 1, generator.WithStrategy(s))
		require.NoError(t, err)
		assert.Equal(t, []core.Edge{{A: "N1", B: "N2"}}, edges, s.String())
	}
}

// TestSampleEdges_RejectionRetriesDuplicates scripts a repeated pair and
// checks the loop draws again instead of counting it.
func TestSampleEdges_RejectionRetriesDuplicates(t *testing.T) {
	t.Parallel()

	// draws: (0,0)→(N1,N2); (1,0)→(N2,N1) duplicate; (2,0)→(N3,N1)
	src := &replaySource{values: []int{0, 0, 1, 0, 2, 0}}
	edges, err := generator.SampleEdges([]string{"N1", "N2", "N3"}, 2, generator.WithSource(src))
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{A: "N1", B: "N2"}, {A: "N1", B: "N3"}}, edges)
	assert.Equal(t, 6, src.calls)
}

// TestSampleEdges_Properties runs the reference sizes over many seeds.
func TestSampleEdges_Properties(t *testing.T) {
	t.Parallel()

	pool := numberedPool(generator.DefaultPoolSize)
	for _, s := range strategies {
		for seed := int64(0); seed < 25; seed++ {
			edges, err := generator.SampleEdges(pool, generator.DefaultEdgeCount,
				generator.WithSeed(seed), generator.WithStrategy(s))
			require.NoError(t, err)
			assertEdgeSetShape(t, edges, generator.DefaultEdgeCount, pool)
		}
	}
}

// TestSampleEdges_CompleteGraphBoundary requests C(m,2) and then one more.
func TestSampleEdges_CompleteGraphBoundary(t *testing.T) {
	t.Parallel()

	pool := numberedPool(12)
	limit := generator.MaxEdges(len(pool))
	for _, s := range strategies {
		edges, err := generator.SampleEdges(pool, limit, generator.WithSeed(9), generator.WithStrategy(s))
		require.NoError(t, err)
		assertEdgeSetShape(t, edges, limit, pool)

		src := &zeroDrawSource{}
		_, err = generator.SampleEdges(pool, limit+1, generator.WithSource(src), generator.WithStrategy(s))
		require.ErrorIs(t, err, generator.ErrTooManyEdges)
		require.ErrorIs(t, err, generator.ErrConfiguration)
		assert.Zero(t, src.calls)
	}
}

// TestSampleEdges_Errors covers every precondition sentinel.
func TestSampleEdges_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		names []string
		n     int
		want  error
	}{
		{"negative", []string{"N1", "N2"}, -3, generator.ErrNegativeCount},
		{"no_names", nil, 1, generator.ErrTooFewNames},
		{"one_name", []string{"N1"}, 1, generator.ErrTooFewNames},
		{"duplicate_name", []string{"N1", "N2", "N1"}, 1, generator.ErrInvalidPool},
		{"empty_name", []string{"N1", ""}, 1, generator.ErrInvalidPool},
		{"too_many", []string{"N1", "N2", "N3"}, 4, generator.ErrTooManyEdges},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			src := &zeroDrawSource{}
			edges, err := generator.SampleEdges(tc.names, tc.n, generator.WithSource(src))
			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, err, generator.ErrConfiguration)
			assert.Nil(t, edges)
			assert.Zero(t, src.calls)
			assert.True(t, strings.HasPrefix(err.Error(), generator.MethodSampleEdges+":"), err.Error())
		})
	}
}

// TestSampleEdges_Zero needs no names at all.
func TestSampleEdges_Zero(t *testing.T) {
	t.Parallel()

	edges, err := generator.SampleEdges(nil, 0)
	require.NoError(t, err)
	assert.Empty(t, edges)
}

// TestSampleEdges_Deterministic checks seed reproducibility for both strategies.
func TestSampleEdges_Deterministic(t *testing.T) {
	t.Parallel()

	pool := numberedPool(40)
	for _, s := range strategies {
		a, err := generator.SampleEdges(pool, 120, generator.WithSeed(11), generator.WithStrategy(s))
		require.NoError(t, err)
		b, err := generator.SampleEdges(pool, 120, generator.WithSeed(11), generator.WithStrategy(s))
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}
