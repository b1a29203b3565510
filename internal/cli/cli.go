package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/contractcfg/internal/app"
	"github.com/specialistvlad/contractcfg/internal/loader"
	"github.com/spf13/pflag"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := pflag.NewFlagSet("contractcfg", pflag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.SortFlags = false

	flagSet.Usage = func() {
		fmt.Fprint(output, `
contractcfg - resolve a contract toolchain project configuration.

Usage:
  contractcfg [options] [COMMAND [TARGET]]

Commands:
  resolve            Print the fully resolved configuration (default).
  validate           Check the configuration and print its fingerprint.
  defaults           Print the built-in default configuration.
  inspect TARGET     Print what one tool receives: compiler, test or networks.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.StringP("config", "c", ".", "Configuration file, or a directory containing contractcfg.{hcl,json,jsonc,yaml,yml,toml}.")
	networkFlag := flagSet.StringP("network", "n", "", "Use this network instead of the configured default network.")
	outputFlag := flagSet.StringP("output", "o", "json", "Output format. Options: 'json', 'yaml', 'toml' or 'hcl'.")
	expandEnvFlag := flagSet.Bool("expand-env", false, "Expand ${VAR} references (env.VAR in HCL) from the process environment.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 2 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("too many arguments: %s", strings.Join(flagSet.Args(), " "))}
	}
	command, target := flagSet.Arg(0), flagSet.Arg(1)
	slog.Debug("Command determined.", "command", command, "target", target)

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ConfigPath: *configFlag,
		Command:    strings.ToLower(command),
		Target:     strings.ToLower(target),
		Network:    *networkFlag,
		Output:     loader.Format(strings.ToLower(*outputFlag)),
		ExpandEnv:  *expandEnvFlag,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
