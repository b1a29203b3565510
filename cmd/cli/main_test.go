package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/contractcfg/internal/cli"
	"github.com/specialistvlad/contractcfg/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600), "failed to set up test file")
	return dir
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, &bytes.Buffer{}, []string{"-h"})

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Act ---
	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, exitErr.Message, "unknown flag: --this-is-not-a-valid-flag")
}

func TestRun_ResolvesProjectDirectory(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := writeConfig(t, "contractcfg.json", `{
		// optimizer left at its default
		"compiler": {"version": "0.8.24"},
		"networks": {"sepolia": {"chainId": 11155111}},
	}`)
	out, logs := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, logs, []string{"-c", dir, "--network", "sepolia"})

	// --- Assert ---
	require.NoError(t, err)

	var tree map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &tree))
	assert.Equal(t, "sepolia", tree["defaultNetwork"])
	assert.Equal(t, map[string]any{
		"version":   "0.8.24",
		"optimizer": map[string]any{"enabled": true, "runs": float64(config.DefaultOptimizerRuns)},
	}, tree["compiler"])
	assert.Contains(t, logs.String(), "Configuration resolved.")
}

func TestRun_InvalidConfiguration(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := writeConfig(t, "contractcfg.yaml", "compiler:\n  version: latest\n")
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, &bytes.Buffer{}, []string{"validate", "-c", dir})

	// --- Assert ---
	require.Error(t, err)
	var validationErr *config.ValidationError
	require.True(t, errors.As(err, &validationErr), "the validation error should survive wrapping")
	assert.Equal(t, "compiler.version", validationErr.Field)
	assert.Empty(t, out.String(), "nothing should be printed on failure")
}
