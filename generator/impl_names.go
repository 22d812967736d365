// SPDX-License-Identifier: MIT
// Package: socialnet/generator
//
// impl_names.go: Name Pool Generator.
//
// Canonical model:
//   - Draw (first, last) independently and uniformly, join with NameSeparator,
//     insert into an accumulating set until it holds n names.
//   - Collisions are "not yet in the pool", never errors.
//
// Contract:
//   - n ≥ 0 (else ErrNegativeCount).
//   - n > 0 ⇒ both lists non-empty (else ErrEmptyVocabulary).
//   - Tokens are non-empty (else ErrInvalidToken). Multi-word tokens are fine.
//   - n ≤ MaxNames(first, last) (else ErrPoolTooLarge); the bound counts
//     rendered names, so pairs that join to the same string count once.
//   - All checks run before the first draw.
//
// Determinism:
//   - Output is in first-insertion order; identical for a fixed seed/strategy.

package generator

import "fmt"

// NamePool returns exactly n distinct names, each the join of one token from
// first and one token from last.
func NamePool(first, last []string, n int, opts ...Option) ([]string, error) {
	return namePool(newConfig(opts...), first, last, n)
}

// namePool is NamePool over a resolved configuration.
func namePool(cfg genConfig, first, last []string, n int) ([]string, error) {
	// 1) Validate before touching the random stream.
	if err := validatePool(first, last, n); err != nil {
		return nil, err
	}
	if n == 0 {
		return []string{}, nil
	}

	// 2) Sample with the configured strategy.
	if cfg.strategy == StrategyIndex {
		return namePoolIndex(cfg.src, distinct(first), distinct(last), n), nil
	}

	return namePoolRejection(cfg.src, first, last, n), nil
}

// validatePool enforces the NamePool preconditions.
func validatePool(first, last []string, n int) error {
	if n < 0 {
		return fmt.Errorf("%s: pool_size=%d: %w", MethodNamePool, n, ErrNegativeCount)
	}
	if n == 0 {
		return nil
	}
	if len(first) == 0 || len(last) == 0 {
		return fmt.Errorf("%s: |first|=%d |last|=%d: %w",
			MethodNamePool, len(first), len(last), ErrEmptyVocabulary)
	}
	if err := validateTokens(first); err != nil {
		return fmt.Errorf("%s: first names: %w", MethodNamePool, err)
	}
	if err := validateTokens(last); err != nil {
		return fmt.Errorf("%s: last names: %w", MethodNamePool, err)
	}
	if limit := MaxNames(first, last); n > limit {
		return fmt.Errorf("%s: pool_size=%d > max=%d: %w", MethodNamePool, n, limit, ErrPoolTooLarge)
	}

	return nil
}

// validateTokens rejects empty tokens.
func validateTokens(tokens []string) error {
	for i, tok := range tokens {
		if tok == "" {
			return fmt.Errorf("token[%d]=%q: %w", i, tok, ErrInvalidToken)
		}
	}

	return nil
}

// joinName renders one Name.
func joinName(first, last string) string {
	return first + NameSeparator + last
}

// namePoolRejection is the reference generate-and-check loop.
// Terminates because validatePool bounded n by the combination space.
func namePoolRejection(src Source, first, last []string, n int) []string {
	seen := make(map[string]struct{}, n)
	out := make([]string, 0, n)
	for len(out) < n {
		name := joinName(choose(src, first), choose(src, last))
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}

	return out
}

// namePoolIndex picks n distinct indices of the |first|×|last| grid and
// unranks each as (k / |last|, k % |last|). Lists must be de-duplicated.
// With multi-word tokens the grid may hold repeated names, so the indices
// address the de-duplicated joined list instead.
func namePoolIndex(src Source, first, last []string, n int) []string {
	out := make([]string, 0, n)
	if hasSeparator(first) || hasSeparator(last) {
		names := joinedNames(first, last)
		for _, k := range floydSample(src, len(names), n) {
			out = append(out, names[k])
		}

		return out
	}

	cols := len(last)
	for _, k := range floydSample(src, len(first)*cols, n) {
		out = append(out, joinName(first[k/cols], last[k%cols]))
	}

	return out
}
