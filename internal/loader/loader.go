package loader

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/specialistvlad/contractcfg/internal/config"
	"github.com/specialistvlad/contractcfg/internal/ctxlog"
)

// Loader is the file-based implementation of the config.Loader interface.
type Loader struct {
	// env, when non-nil, enables ${NAME} expansion in JSON, YAML and TOML
	// string values and the env.NAME variable in HCL expressions.
	env map[string]string
}

var _ config.Loader = (*Loader)(nil)

// Option configures a Loader.
type Option func(*Loader)

// WithEnv enables environment expansion using the given variables.
func WithEnv(env map[string]string) Option {
	return func(l *Loader) {
		l.env = env
	}
}

// NewLoader creates a new configuration loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the document at path and decodes it into a RawConfig.
func (l *Loader) Load(ctx context.Context, path string) (*config.RawConfig, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ctx = ctxlog.WithAttrs(ctx, "path", path)
	logger := ctxlog.FromContext(ctx)

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %s: %w", path, err)
	}
	logger.Debug("Configuration file read.", "format", format, "bytes", len(data))

	return l.Parse(ctx, data, path, format)
}

// Parse decodes an in-memory document. source names the document in error
// messages.
func (l *Loader) Parse(ctx context.Context, data []byte, source string, format Format) (*config.RawConfig, error) {
	logger := ctxlog.FromContext(ctx)

	text, err := toUTF8(data)
	if err != nil {
		return nil, &config.ParseError{Source: source, Msg: "invalid text encoding", Err: err}
	}

	var tree any
	switch format {
	case FormatHCL:
		tree, err = parseHCL(text, source, l.env)
	case FormatJSON:
		tree, err = parseJSON(text)
	case FormatYAML:
		tree, err = parseYAML(text)
	case FormatTOML:
		tree, err = parseTOML(text)
	default:
		return nil, fmt.Errorf("unsupported configuration format %q", format)
	}
	if err != nil {
		return nil, withSource(err, source)
	}
	logger.Debug("Configuration document parsed.", "format", format)

	if l.env != nil && format != FormatHCL {
		tree = expandTree(tree, l.env)
		logger.Debug("Environment variables expanded.", "variables", len(l.env))
	}

	raw, err := config.Decode(tree)
	if err != nil {
		return nil, withSource(err, source)
	}
	logger.Debug("Configuration decoded.", "networks", len(raw.Networks), "empty", raw.IsEmpty())
	return raw, nil
}

// withSource stamps the document name onto a ParseError.
func withSource(err error, source string) error {
	var pErr *config.ParseError
	if errors.As(err, &pErr) && pErr.Source == "" {
		pErr.Source = source
	}
	return err
}
