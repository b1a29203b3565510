// Package app wires the configuration core into a runnable application: it
// configures logging, locates and loads the project configuration, applies
// command-line overrides, resolves it and writes the requested output. It is
// decoupled from any specific entrypoint like a CLI.
package app
