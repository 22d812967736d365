package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/socialnet/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAddVertex checks validation and idempotence of AddVertex.
func TestAddVertex(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex("Ada Hill"))
	require.NoError(t, g.AddVertex("Ada Hill")) // no-op on re-add
	assert.Equal(t, 1, g.VertexCount())
	assert.True(t, g.HasVertex("Ada Hill"))
	assert.False(t, g.HasVertex(""))
	assert.False(t, g.HasVertex("Leo Reed"))

	deg, err := g.Degree("Ada Hill")
	require.NoError(t, err)
	assert.Zero(t, deg)
}

// TestAddEdge_Invariants verifies loop rejection, duplicate rejection in both
// argument orders, canonical storage and insertion-ordered output.
func TestAddEdge_Invariants(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()

	_, err := g.AddEdge("", "B")
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
	_, err = g.AddEdge("A", "A")
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)
	assert.Zero(t, g.VertexCount(), "rejected edges must not add vertices")

	e, err := g.AddEdge("N2", "N1")
	require.NoError(t, err)
	assert.Equal(t, core.Edge{A: "N1", B: "N2"}, e)

	_, err = g.AddEdge("N1", "N2")
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	_, err = g.AddEdge("N2", "N1")
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	_, err = g.AddEdge("N3", "N1")
	require.NoError(t, err)

	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, []core.Edge{{A: "N1", B: "N2"}, {A: "N1", B: "N3"}}, g.Edges())
	assert.Equal(t, []string{"N1", "N2", "N3"}, g.Vertices())
	assert.True(t, g.HasEdge("N2", "N1"))
	assert.True(t, g.HasEdge("N1", "N2"))
	assert.False(t, g.HasEdge("N2", "N3"))
	assert.False(t, g.HasEdge("", "N3"))

	deg, err := g.Degree("N1")
	require.NoError(t, err)
	assert.Equal(t, 2, deg)

	nbs, err := g.NeighborIDs("N1")
	require.NoError(t, err)
	assert.Equal(t, []string{"N2", "N3"}, nbs)

	_, err = g.Degree("missing")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.NeighborIDs("missing")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestEdges_ReturnsCopy ensures callers cannot mutate the internal order.
func TestEdges_ReturnsCopy(t *testing.T) {
	t.Parallel()

	g := core.NewGraphWithCapacity(2, 1)
	_, err := g.AddEdge("A", "B")
	require.NoError(t, err)

	out := g.Edges()
	out[0] = core.Edge{A: "X", B: "Y"}
	assert.Equal(t, []core.Edge{{A: "A", B: "B"}}, g.Edges())
}

// TestConcurrentAddEdge ensures concurrent AddEdge calls are safe and that
// exactly one of two racing inserts of the same pair wins.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(2 * num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_, _ = g.AddEdge("Hub", fmt.Sprintf("V%d", id))
		}(i)
		go func(id int) {
			defer wg.Done()
			_, _ = g.AddEdge(fmt.Sprintf("V%d", id), "Hub")
		}(i)
	}
	wg.Wait()

	assert.Equal(t, num, g.EdgeCount())
	deg, err := g.Degree("Hub")
	require.NoError(t, err)
	assert.Equal(t, num, deg)
}
