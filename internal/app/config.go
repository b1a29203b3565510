package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/contractcfg/internal/loader"
)

// Commands understood by App.Run.
const (
	CommandResolve  = "resolve"
	CommandValidate = "validate"
	CommandDefaults = "defaults"
	CommandInspect  = "inspect"
)

// Targets of the inspect command, one per external tool.
const (
	TargetCompiler = "compiler"
	TargetTest     = "test"
	TargetNetworks = "networks"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ConfigPath is a configuration file or a directory containing one.
	ConfigPath string
	Command    string
	Target     string
	// Network, when set, replaces the configured default network.
	Network string
	Output  loader.Format
	// ExpandEnv enables environment variable expansion while loading.
	ExpandEnv bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults for empty fields.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigPath == "" {
		cfg.ConfigPath = "."
	}
	if cfg.Command == "" {
		cfg.Command = CommandResolve
	}
	if cfg.Output == "" {
		cfg.Output = loader.FormatJSON
	}

	switch cfg.Command {
	case CommandResolve, CommandValidate, CommandDefaults:
		if cfg.Target != "" {
			return nil, fmt.Errorf("command %q takes no target, got %q", cfg.Command, cfg.Target)
		}
	case CommandInspect:
		switch cfg.Target {
		case TargetCompiler, TargetTest, TargetNetworks:
		case "":
			return nil, errors.New("inspect requires a target: compiler, test or networks")
		default:
			return nil, fmt.Errorf("unknown inspect target %q: must be compiler, test or networks", cfg.Target)
		}
	default:
		return nil, fmt.Errorf("unknown command %q: must be one of %s", cfg.Command,
			strings.Join([]string{CommandResolve, CommandValidate, CommandDefaults, CommandInspect}, ", "))
	}

	switch cfg.Output {
	case loader.FormatJSON, loader.FormatYAML, loader.FormatTOML, loader.FormatHCL:
	default:
		return nil, fmt.Errorf("unknown output format %q: must be json, yaml, toml or hcl", cfg.Output)
	}

	return &cfg, nil
}
