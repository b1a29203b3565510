package config

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads the configuration document at path and decodes it into a
	// RawConfig. Shape and syntax problems are reported as *ParseError.
	Load(ctx context.Context, path string) (*RawConfig, error)
}
