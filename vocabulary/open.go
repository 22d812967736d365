package vocabulary

import (
	"math/rand"
	"strings"
)

// Open resolves a vocabulary from a configuration string:
//
//	"" or "builtin" → Default()
//	"randomdata"    → FromRandomData(size, size, r)
//	anything else   → Load(source) as a file path
func Open(source string, size int, r *rand.Rand) (Vocabulary, error) {
	switch strings.ToLower(strings.TrimSpace(source)) {
	case "", SourceBuiltin:
		return Default(), nil
	case SourceRandomData:
		return FromRandomData(size, size, r)
	default:
		return Load(source)
	}
}
