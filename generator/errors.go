// SPDX-License-Identifier: MIT
// Package: socialnet/generator
//
// errors.go: sentinel errors for the generator package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Every precondition violation also matches ErrConfiguration, so callers
//     that only care about "bad input" need a single check.
//   • Context is attached at return sites with "%s: ...: %w" (method first).
//   • Samplers never panic; option constructors panic on nil arguments.

package generator

import (
	"errors"
	"fmt"
)

// ErrConfiguration is the umbrella for every precondition violation:
// a requested target that the given vocabulary or pool can never satisfy,
// or malformed input. It is checked before the first random draw.
var ErrConfiguration = errors.New("generator: configuration error")

// ErrNegativeCount indicates a negative pool size or edge count.
var ErrNegativeCount = fmt.Errorf("%w: negative target count", ErrConfiguration)

// ErrEmptyVocabulary indicates an empty first- or last-name list while a
// non-zero pool was requested.
var ErrEmptyVocabulary = fmt.Errorf("%w: empty name vocabulary", ErrConfiguration)

// ErrInvalidToken indicates an empty name token, which would render a name
// with a dangling NameSeparator.
var ErrInvalidToken = fmt.Errorf("%w: invalid name token", ErrConfiguration)

// ErrPoolTooLarge indicates pool_size > |distinct first| × |distinct last|.
var ErrPoolTooLarge = fmt.Errorf("%w: pool size exceeds distinct name combinations", ErrConfiguration)

// ErrTooFewNames indicates fewer than MinEdgeNames names while at least one
// edge was requested.
var ErrTooFewNames = fmt.Errorf("%w: edge sampling needs at least two names", ErrConfiguration)

// ErrInvalidPool indicates a name pool holding empty or duplicate names.
var ErrInvalidPool = fmt.Errorf("%w: name pool contains empty or duplicate names", ErrConfiguration)

// ErrTooManyEdges indicates edge_count > C(|names|, 2).
var ErrTooManyEdges = fmt.Errorf("%w: edge count exceeds distinct name pairs", ErrConfiguration)

// ErrUnknownStrategy indicates an unrecognised strategy name.
var ErrUnknownStrategy = fmt.Errorf("%w: unknown sampling strategy", ErrConfiguration)

// ErrSampleFailed indicates the accumulating graph rejected an edge for a
// reason other than a duplicate. It signals a broken invariant, not bad input.
var ErrSampleFailed = errors.New("generator: sampling failed")

// ErrVerification indicates an edge list that breaks an output invariant:
// a non-canonical pair, a self-loop, a duplicate or an unknown endpoint.
var ErrVerification = errors.New("generator: verification failed")
