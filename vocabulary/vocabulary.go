package vocabulary

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/katalvlaran/socialnet/generator"
)

// Source names accepted by Open besides a file path.
const (
	// SourceBuiltin selects Default().
	SourceBuiltin = "builtin"
	// SourceRandomData selects FromRandomData.
	SourceRandomData = "randomdata"
)

var (
	// ErrEmpty indicates a vocabulary with no first or no last names.
	ErrEmpty = errors.New("vocabulary: empty name list")

	// ErrDecode indicates a vocabulary file that is not valid YAML for Vocabulary.
	ErrDecode = errors.New("vocabulary: cannot decode file")

	// ErrExhausted indicates the random source could not supply enough
	// distinct tokens within the attempt budget.
	ErrExhausted = errors.New("vocabulary: random source exhausted")
)

// Vocabulary holds the candidate tokens for both halves of a name.
type Vocabulary struct {
	FirstNames []string `yaml:"first_names" json:"first_names"`
	LastNames  []string `yaml:"last_names" json:"last_names"`
}

// referenceFirst and referenceLast are the built-in reference lists.
var (
	referenceFirst = []string{
		"Alice", "Bob", "Charlie", "Diana", "Eve", "Frank", "Grace",
		"Hank", "Ivy", "Jack", "Karen", "Leo", "Mona", "Nate", "Olive",
		"Paul", "Quinn", "Rita", "Steve", "Tina",
	}
	referenceLast = []string{
		"Anderson", "Brown", "Clark", "Davis", "Evans", "Franklin",
		"Garcia", "Hill", "Irwin", "Johnson", "Klein", "Lewis", "Moore",
		"Nelson", "Owens", "Parker", "Quinn", "Reed", "Smith", "Turner",
	}
)

// Default returns a copy of the built-in reference vocabulary.
func Default() Vocabulary {
	return Vocabulary{
		FirstNames: append([]string(nil), referenceFirst...),
		LastNames:  append([]string(nil), referenceLast...),
	}
}

// Normalize returns a copy with every token trimmed and converted to NFC,
// empty tokens dropped and repeats removed (first occurrence wins).
func (v Vocabulary) Normalize() Vocabulary {
	return Vocabulary{
		FirstNames: normalizeTokens(v.FirstNames),
		LastNames:  normalizeTokens(v.LastNames),
	}
}

// Validate reports ErrEmpty when either list is empty.
func (v Vocabulary) Validate() error {
	if len(v.FirstNames) == 0 {
		return fmt.Errorf("first_names: %w", ErrEmpty)
	}
	if len(v.LastNames) == 0 {
		return fmt.Errorf("last_names: %w", ErrEmpty)
	}

	return nil
}

// Combinations is the largest pool the vocabulary can feed; it is
// generator.MaxNames over both lists.
func (v Vocabulary) Combinations() int {
	return generator.MaxNames(v.FirstNames, v.LastNames)
}

func normalizeTokens(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		tok = norm.NFC.String(strings.TrimSpace(tok))
		if tok == "" {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}

	return out
}
