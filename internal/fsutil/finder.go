// Package fsutil provides file system utility functions.
package fsutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ConfigBaseName is the file name, without extension, of a project
// configuration file.
const ConfigBaseName = "contractcfg"

// ErrConfigNotFound is returned when a directory holds no configuration file.
var ErrConfigNotFound = errors.New("no configuration file found")

// FindConfigFile returns the single configuration file directly inside dir
// whose extension is one of extensions.
func FindConfigFile(dir string, extensions []string) (string, error) {
	if len(extensions) == 0 {
		panic("extensions must not be empty")
	}

	pattern := fmt.Sprintf("%s.{%s}", ConfigBaseName, strings.Join(extensions, ","))
	matches, err := doublestar.Glob(os.DirFS(dir), pattern)
	if err != nil {
		return "", fmt.Errorf("error searching %s for %s: %w", dir, pattern, err)
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w in %s (looked for %s)", ErrConfigNotFound, dir, pattern)
	case 1:
		return filepath.Join(dir, matches[0]), nil
	default:
		return "", fmt.Errorf("ambiguous configuration in %s: found %s", dir, strings.Join(matches, ", "))
	}
}

// ResolveConfigPath turns a user-supplied path into a configuration file path.
// Directories are searched with FindConfigFile; anything else is returned
// unchanged.
func ResolveConfigPath(path string, extensions []string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("error accessing path %s: %w", path, err)
	}
	if info.IsDir() {
		return FindConfigFile(path, extensions)
	}
	return path, nil
}
