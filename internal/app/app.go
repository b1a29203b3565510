package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/specialistvlad/contractcfg/internal/config"
	"github.com/specialistvlad/contractcfg/internal/ctxlog"
	"github.com/specialistvlad/contractcfg/internal/fsutil"
	"github.com/specialistvlad/contractcfg/internal/loader"
	"github.com/specialistvlad/contractcfg/internal/render"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	loader config.Loader
	config *Config
}

// NewApp is the constructor for the main application. Results are written to
// outW and logs to logW. A nil configLoader selects the file loader, with
// environment expansion when the config asks for it.
func NewApp(outW, logW io.Writer, appConfig *Config, configLoader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	if configLoader == nil {
		var opts []loader.Option
		if appConfig.ExpandEnv {
			opts = append(opts, loader.WithEnv(environMap(os.Environ())))
		}
		configLoader = loader.NewLoader(opts...)
	}

	return &App{
		outW:   outW,
		logger: logger,
		loader: configLoader,
		config: appConfig,
	}
}

// Run executes the configured command.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "command", a.config.Command)

	if a.config.Command == CommandDefaults {
		return a.writeConfig(config.Defaults().Tree())
	}

	cfg, err := a.Resolve(ctx)
	if err != nil {
		return err
	}

	switch a.config.Command {
	case CommandValidate:
		_, err = fmt.Fprintln(a.outW, cfg.Fingerprint())
	case CommandInspect:
		err = render.Value(a.outW, viewTree(cfg, a.config.Target), a.config.Output)
	default:
		err = a.writeConfig(cfg.Tree())
	}
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// Resolve locates, loads and resolves the project configuration, applying
// the command-line network override.
func (a *App) Resolve(ctx context.Context) (*config.ResolvedConfig, error) {
	logger := ctxlog.FromContext(ctx)

	path, err := fsutil.ResolveConfigPath(a.config.ConfigPath, loader.Extensions)
	if err != nil {
		return nil, fmt.Errorf("failed to locate configuration: %w", err)
	}
	logger.Debug("Configuration file located.", "path", path)

	raw, err := a.loader.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if raw == nil {
		raw = &config.RawConfig{}
	}

	if a.config.Network != "" {
		network := a.config.Network
		raw.DefaultNetwork = &network
		logger.Debug("Default network overridden.", "network", network)
	}

	cfg, err := config.Resolve(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration %s: %w", path, err)
	}

	logger.Info("Configuration resolved.",
		"path", path,
		"compiler", cfg.Compiler().Version,
		"default_network", cfg.DefaultNetwork(),
		"networks", cfg.NetworkNames(),
		"fingerprint", cfg.Fingerprint(),
	)
	return cfg, nil
}

func (a *App) writeConfig(tree map[string]any) error {
	if err := render.Config(a.outW, tree, a.config.Output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// environMap converts "KEY=value" pairs into a map.
func environMap(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	return env
}
