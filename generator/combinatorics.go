package generator

import (
	"math"
	"math/bits"
	"strings"
)

// MaxNames returns the number of distinct names NamePool can produce from
// the given vocabularies. Without multi-word tokens this is
// |distinct first| × |distinct last|, saturating at math.MaxInt. When a token
// contains NameSeparator two pairs may render the same name
// ("Mary Ann"+"Lee" and "Mary"+"Ann Lee"), so the joined names are counted
// instead: O(|first|·|last|). Token validity is not checked here.
func MaxNames(first, last []string) int {
	f, l := distinct(first), distinct(last)
	if hasSeparator(f) || hasSeparator(l) {
		return len(joinedNames(f, l))
	}

	return mulSat(len(f), len(l))
}

// hasSeparator reports whether any token contains NameSeparator.
func hasSeparator(tokens []string) bool {
	for _, tok := range tokens {
		if strings.Contains(tok, NameSeparator) {
			return true
		}
	}

	return false
}

// joinedNames returns the distinct joinName(f, l) over first × last in
// row-major order, first occurrence wins.
func joinedNames(first, last []string) []string {
	seen := make(map[string]struct{}, len(first)*len(last))
	out := make([]string, 0, len(first)*len(last))
	for _, f := range first {
		for _, l := range last {
			name := joinName(f, l)
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}

	return out
}

// MaxEdges returns C(m, 2), the number of distinct unordered pairs over m
// names, saturating at math.MaxInt. Returns 0 for m < 2.
func MaxEdges(m int) int {
	if m < MinEdgeNames {
		return 0
	}
	hi, lo := bits.Mul64(uint64(m), uint64(m-1))
	if hi != 0 {
		return math.MaxInt
	}
	if half := lo / 2; half <= math.MaxInt {
		return int(half)
	}

	return math.MaxInt
}

// mulSat multiplies two non-negative ints, saturating at math.MaxInt.
func mulSat(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > math.MaxInt {
		return math.MaxInt
	}

	return int(lo)
}

// distinct returns list without repeats, preserving first occurrence.
func distinct(list []string) []string {
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, s := range list {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	return out
}

// rowOffset is the index of pair (i, i+1) in the row-major enumeration of
// the upper triangle {(i, j) : 0 <= i < j < m}.
func rowOffset(i, m int) int {
	return i*m - i*(i+1)/2
}

// unrankPair maps k in [0, C(m,2)) to the k-th pair (i, j), i < j, of the
// row-major upper-triangle enumeration:
//
//	k=0 → (0,1), k=1 → (0,2), …, k=m-2 → (0,m-1), k=m-1 → (1,2), …
//
// The row is estimated in closed form and corrected by at most a step or two
// to absorb floating-point rounding.
// Complexity: O(1).
func unrankPair(k, m int) (i, j int) {
	b := float64(2*m - 1)
	i = int((b - math.Sqrt(b*b-8*float64(k))) / 2)
	if i < 0 {
		i = 0
	}
	if i > m-2 {
		i = m - 2
	}
	for i > 0 && rowOffset(i, m) > k {
		i--
	}
	for i < m-2 && rowOffset(i+1, m) <= k {
		i++
	}
	j = k - rowOffset(i, m) + i + 1

	return i, j
}
