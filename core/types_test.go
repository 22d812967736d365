package core_test

import (
	"testing"

	"github.com/katalvlaran/socialnet/core"
	"github.com/stretchr/testify/assert"
)

// TestCanonical verifies ordering, idempotence and symmetry of Canonical.
func TestCanonical(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b string
		want core.Edge
	}{
		{"already_ordered", "Ada Hill", "Leo Reed", core.Edge{A: "Ada Hill", B: "Leo Reed"}},
		{"reversed", "Leo Reed", "Ada Hill", core.Edge{A: "Ada Hill", B: "Leo Reed"}},
		{"shared_prefix", "Ivy Klein", "Ivy Irwin", core.Edge{A: "Ivy Irwin", B: "Ivy Klein"}},
		{"byte_order_uppercase_first", "bob x", "Bob X", core.Edge{A: "Bob X", B: "bob x"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := core.Canonical(tc.a, tc.b)
			assert.Equal(t, tc.want, got)
			assert.True(t, got.IsCanonical())
			// idempotence: canonicalising a canonical pair is a no-op
			assert.Equal(t, got, core.Canonical(got.A, got.B))
			// symmetry: argument order does not matter
			assert.Equal(t, got, core.Canonical(tc.b, tc.a))
		})
	}
}

// TestEdge_Helpers covers IsLoop, IsCanonical and String.
func TestEdge_Helpers(t *testing.T) {
	t.Parallel()

	assert.True(t, core.Edge{A: "N1", B: "N1"}.IsLoop())
	assert.False(t, core.Edge{A: "N1", B: "N2"}.IsLoop())
	assert.False(t, core.Edge{A: "N2", B: "N1"}.IsCanonical())
	assert.Equal(t, `("N1", "N2")`, core.Edge{A: "N1", B: "N2"}.String())
}
