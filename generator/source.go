package generator

// Source supplies uniformly distributed integers in [0, n) for n > 0.
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// choose returns one element of list, uniformly. list must be non-empty.
func choose(src Source, list []string) string {
	return list[src.Intn(len(list))]
}

// sampleTwo returns two distinct positions in [0, m), uniformly over ordered
// pairs, in a single draw without replacement. m must be at least 2.
//
// The second position is drawn from the m-1 slots left after the first and
// shifted past it, so i != j holds by construction.
func sampleTwo(src Source, m int) (i, j int) {
	i = src.Intn(m)
	j = src.Intn(m - 1)
	if j >= i {
		j++
	}

	return i, j
}

// floydSample returns k distinct integers from [0, total) using Robert
// Floyd's algorithm: exactly k draws, no retries. The result order is the
// selection order, which is deterministic for a fixed Source.
// Requires 0 <= k <= total.
func floydSample(src Source, total, k int) []int {
	picked := make(map[int]struct{}, k)
	out := make([]int, 0, k)
	for j := total - k; j < total; j++ {
		t := src.Intn(j + 1)
		if _, dup := picked[t]; dup {
			// j itself cannot be picked yet: every earlier draw was < j.
			t = j
		}
		picked[t] = struct{}{}
		out = append(out, t)
	}

	return out
}
