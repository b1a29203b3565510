package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testExtensions = []string{"hcl", "json", "yaml"}

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))
}

func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		files       []string
		expected    string
		expectedErr error
		errContains string
	}{
		{
			name:     "single hcl file",
			files:    []string{"contractcfg.hcl", "README.md"},
			expected: "contractcfg.hcl",
		},
		{
			name:     "ignores nested and unrelated files",
			files:    []string{"contractcfg.yaml", "sub/contractcfg.json", "other.json", "contractcfg.txt"},
			expected: "contractcfg.yaml",
		},
		{
			name:        "nothing found",
			files:       []string{"hardhat.config.js"},
			expectedErr: ErrConfigNotFound,
		},
		{
			name:        "ambiguous",
			files:       []string{"contractcfg.hcl", "contractcfg.json"},
			errContains: "ambiguous",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			for _, f := range tc.files {
				touch(t, filepath.Join(dir, f))
			}

			got, err := FindConfigFile(dir, testExtensions)
			switch {
			case tc.expectedErr != nil:
				require.ErrorIs(t, err, tc.expectedErr)
			case tc.errContains != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errContains)
			default:
				require.NoError(t, err)
				assert.Equal(t, filepath.Join(dir, tc.expected), got)
			}
		})
	}
}

func TestResolveConfigPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "contractcfg.json")
	touch(t, file)

	got, err := ResolveConfigPath(dir, testExtensions)
	require.NoError(t, err)
	assert.Equal(t, file, got)

	got, err = ResolveConfigPath(file, testExtensions)
	require.NoError(t, err)
	assert.Equal(t, file, got)

	_, err = ResolveConfigPath(filepath.Join(dir, "missing"), testExtensions)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFindConfigFile_PanicsWithoutExtensions(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		_, _ = FindConfigFile(t.TempDir(), nil)
	})
}
