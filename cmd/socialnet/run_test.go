package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialnet/export"
	"github.com/katalvlaran/socialnet/generator"
)

// setEnv pins every SOCIALNET_* variable so the host environment cannot leak
// into a test; overrides win over the defaults below.
func setEnv(t *testing.T, overrides map[string]string) {
	t.Helper()
	base := map[string]string{
		"SOCIALNET_POOL_SIZE":       "100",
		"SOCIALNET_EDGE_COUNT":      "300",
		"SOCIALNET_VOCABULARY":      "builtin",
		"SOCIALNET_VOCABULARY_SIZE": "20",
		"SOCIALNET_OUTPUT":          filepath.Join(t.TempDir(), "edges.tsv"),
		"SOCIALNET_SEED":            "0",
		"SOCIALNET_STRATEGY":        "rejection",
		"SOCIALNET_PREVIEW":         "10",
		"SOCIALNET_LOG_LEVEL":       "info",
		"SOCIALNET_LOG_FORMAT":      "text",
	}
	for k, v := range overrides {
		base[k] = v
	}
	for k, v := range base {
		t.Setenv(k, v)
	}
	for _, k := range []string{"SOCIALNET_FIRST_NAMES", "SOCIALNET_LAST_NAMES"} {
		if _, ok := overrides[k]; ok {
			continue
		}
		t.Setenv(k, "") // registers restore
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestRun_Reference(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "social_network_edges.tsv")
	setEnv(t, nil)

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-out", out, "-seed", "42", "-verify"}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())

	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	require.Len(t, lines, 12)
	assert.Equal(t, "Head (n=10):", lines[0])
	assert.Equal(t, "Data stored at: "+out, lines[11])

	edges, err := export.ReadFile(out)
	require.NoError(t, err)
	assert.Len(t, edges, generator.DefaultEdgeCount)

	logs := stderr.String()
	assert.Contains(t, logs, "run_id=")
	assert.Contains(t, logs, "seed=42")
	assert.Contains(t, logs, "output verified")
}

func TestRun_Deterministic(t *testing.T) {
	dir := t.TempDir()
	setEnv(t, map[string]string{"SOCIALNET_SEED": "7", "SOCIALNET_STRATEGY": "index", "SOCIALNET_PREVIEW": "0"})

	var stdout, stderr bytes.Buffer
	a, b := filepath.Join(dir, "a.tsv"), filepath.Join(dir, "b.tsv")
	require.Equal(t, exitOK, run(context.Background(), []string{"-out", a}, &stdout, &stderr), stderr.String())
	require.Equal(t, exitOK, run(context.Background(), []string{"-out", b}, &stdout, &stderr), stderr.String())
	assert.NotContains(t, stdout.String(), "Head")

	ea, err := export.ReadFile(a)
	require.NoError(t, err)
	eb, err := export.ReadFile(b)
	require.NoError(t, err)
	assert.Equal(t, ea, eb)
}

func TestRun_ExitCodes(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
		want int
	}{
		{"pool_too_large", map[string]string{"SOCIALNET_POOL_SIZE": "401"}, nil, exitConfig},
		{"too_many_edges", map[string]string{"SOCIALNET_POOL_SIZE": "4", "SOCIALNET_EDGE_COUNT": "7"}, nil, exitConfig},
		{"negative_count", map[string]string{"SOCIALNET_EDGE_COUNT": "-1"}, nil, exitConfig},
		{"unparsable_count", map[string]string{"SOCIALNET_POOL_SIZE": "lots"}, nil, exitConfig},
		{"unknown_strategy", map[string]string{"SOCIALNET_STRATEGY": "magic"}, nil, exitConfig},
		{"bad_flag", nil, []string{"-bogus"}, exitConfig},
		{"stray_argument", nil, []string{"extra"}, exitConfig},
		{"missing_env_file", nil, []string{"-env", "does-not-exist.env"}, exitConfig},
		{"help", nil, []string{"-h"}, exitOK},
		{"small_vocabulary", map[string]string{
			"SOCIALNET_FIRST_NAMES": "A,B",
			"SOCIALNET_LAST_NAMES":  "X,Y",
			"SOCIALNET_POOL_SIZE":   "4",
			"SOCIALNET_EDGE_COUNT":  "6",
		}, []string{"-seed", "3", "-verify"}, exitOK},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			setEnv(t, tc.env)
			var stdout, stderr bytes.Buffer
			code := run(context.Background(), tc.args, &stdout, &stderr)
			assert.Equal(t, tc.want, code, stderr.String())
		})
	}
}

func TestRun_OutputIsDirectory(t *testing.T) {
	dir := t.TempDir()
	setEnv(t, map[string]string{"SOCIALNET_OUTPUT": dir})

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-seed", "1"}, &stdout, &stderr)
	assert.Equal(t, exitFailed, code)
	assert.Contains(t, stderr.String(), "generation failed")
}

func TestRun_Cancelled(t *testing.T) {
	setEnv(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	assert.Equal(t, exitFailed, run(ctx, []string{"-seed", "1"}, &stdout, &stderr))
}
