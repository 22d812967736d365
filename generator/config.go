// SPDX-License-Identifier: MIT
// Package: socialnet/generator
//
// config.go: resolved sampler configuration and strategy names.
//
// Defaults:
//   • src      = time-seeded *rand.Rand (non-reproducible, like the reference script)
//   • strategy = StrategyRejection

package generator

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Strategy selects how the samplers enumerate candidates.
type Strategy int

const (
	// StrategyRejection draws random candidates and discards duplicates.
	StrategyRejection Strategy = iota
	// StrategyIndex draws distinct combination indices and unranks them.
	StrategyIndex
)

// strategyNames maps strategies to their configuration spelling.
var strategyNames = map[Strategy]string{
	StrategyRejection: "rejection",
	StrategyIndex:     "index",
}

// String returns the configuration spelling of s.
func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}

	return fmt.Sprintf("Strategy(%d)", int(s))
}

func (s Strategy) valid() bool {
	_, ok := strategyNames[s]
	return ok
}

// ParseStrategy resolves a case-insensitive strategy name.
// Unknown names return ErrUnknownStrategy.
func ParseStrategy(name string) (Strategy, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for s, n := range strategyNames {
		if n == want {
			return s, nil
		}
	}

	return StrategyRejection, fmt.Errorf("strategy %q: %w", name, ErrUnknownStrategy)
}

// genConfig aggregates all sampler knobs. It is passed by VALUE.
type genConfig struct {
	// src supplies uniform integers; never nil after newConfig.
	src Source
	// strategy picks rejection or index sampling.
	strategy Strategy
}

// newConfig applies opts in order over the defaults.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) genConfig {
	cfg := genConfig{strategy: StrategyRejection}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.src == nil {
		cfg.src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}
