package vocabulary

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/Pallinder/go-randomdata"
)

// attemptsPerToken bounds draws per requested token before giving up.
const attemptsPerToken = 50

// FromRandomData builds a vocabulary of firstN distinct first names and
// lastN distinct last names drawn from go-randomdata's name tables.
//
// go-randomdata keeps its generator in package state; r (when non-nil) is
// installed with randomdata.CustomRand, so concurrent calls must not overlap.
// Returns ErrExhausted if the
// tables cannot supply enough distinct tokens.
func FromRandomData(firstN, lastN int, r *rand.Rand) (Vocabulary, error) {
	if r != nil {
		randomdata.CustomRand(r)
	}

	first, err := drawDistinct(firstN, func() string { return randomdata.FirstName(randomdata.RandomGender) })
	if err != nil {
		return Vocabulary{}, fmt.Errorf("first_names: %w", err)
	}
	last, err := drawDistinct(lastN, randomdata.LastName)
	if err != nil {
		return Vocabulary{}, fmt.Errorf("last_names: %w", err)
	}

	v := Vocabulary{FirstNames: first, LastNames: last}.Normalize()
	if err := v.Validate(); err != nil {
		return Vocabulary{}, err
	}

	return v, nil
}

// drawDistinct calls next until n distinct non-empty tokens are seen
// or the attempt budget runs out.
func drawDistinct(n int, next func() string) ([]string, error) {
	seen := make(map[string]struct{}, n)
	out := make([]string, 0, n)
	for attempt := 0; len(out) < n; attempt++ {
		if attempt >= attemptsPerToken*n {
			return nil, fmt.Errorf("got %d of %d tokens after %d draws: %w", len(out), n, attempt, ErrExhausted)
		}
		tok := strings.TrimSpace(next())
		if tok == "" {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}

	return out, nil
}
