package config_test

import (
	"os"
	"testing"
)

// unsetAll removes keys for the duration of the test; callers must have
// registered them with t.Setenv first so the originals are restored.
func unsetAll(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		if err := os.Unsetenv(k); err != nil {
			t.Fatalf("unset %s: %v", k, err)
		}
	}
}
