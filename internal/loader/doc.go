// Package loader reads project configuration documents from disk and decodes
// them into a config.RawConfig.
//
// The format is chosen by file extension:
//
//	.hcl            HCL, with compiler/paths blocks and labelled network blocks
//	.json, .jsonc   JSON; comments and trailing commas are allowed
//	.yaml, .yml     YAML
//	.toml           TOML
//
// Each format is parsed into a neutral document tree which is then handed to
// config.Decode, so shape rules are identical across formats. Syntax errors
// are reported as *config.ParseError carrying the file name and position.
package loader
