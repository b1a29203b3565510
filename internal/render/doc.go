// Package render serializes configuration trees as JSON, YAML, TOML or HCL.
//
// Config writes a full configuration document in the layout the loader
// package reads, so every rendered document can be loaded back. Value writes
// any other tree, such as the per-tool views, with a generic layout.
package render
