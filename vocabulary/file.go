package vocabulary

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML vocabulary file, normalises it and validates that both
// lists are non-empty. Unknown keys are rejected. I/O errors are returned
// unwrapped so callers can inspect *fs.PathError.
func Load(path string) (Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Vocabulary{}, err
	}

	return Parse(data)
}

// Parse decodes YAML vocabulary bytes; see Load.
func Parse(data []byte) (Vocabulary, error) {
	var v Vocabulary
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&v); err != nil {
		return Vocabulary{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	v = v.Normalize()
	if err := v.Validate(); err != nil {
		return Vocabulary{}, err
	}

	return v, nil
}
