package loader

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies a configuration document syntax.
type Format string

const (
	FormatHCL  Format = "hcl"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Extensions lists every file extension the loader understands.
var Extensions = []string{"hcl", "json", "jsonc", "yaml", "yml", "toml"}

// FormatFromPath picks the document format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "hcl":
		return FormatHCL, nil
	case "json", "jsonc":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("unsupported configuration file extension %q (expected one of %s)", filepath.Ext(path), strings.Join(Extensions, ", "))
}
