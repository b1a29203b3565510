package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/specialistvlad/contractcfg/internal/loader"
	"gopkg.in/yaml.v3"
)

// Config writes a configuration document tree, as returned by
// ResolvedConfig.Tree, in the given format.
func Config(w io.Writer, tree map[string]any, format loader.Format) error {
	if format == loader.FormatHCL {
		return writeHCLConfig(w, tree)
	}
	return Value(w, tree, format)
}

// Value writes an arbitrary tree in the given format.
func Value(w io.Writer, tree map[string]any, format loader.Format) error {
	switch format {
	case loader.FormatJSON:
		return writeJSON(w, tree)
	case loader.FormatYAML:
		return writeYAML(w, tree)
	case loader.FormatTOML:
		return writeTOML(w, tree)
	case loader.FormatHCL:
		return writeHCLValue(w, tree)
	}
	return fmt.Errorf("unsupported output format %q", format)
}

func writeJSON(w io.Writer, tree map[string]any) error {
	data, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func writeYAML(w io.Writer, tree map[string]any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(tree); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}

// writeTOML refuses trees holding null values, which TOML cannot express and
// the encoder would otherwise drop silently.
func writeTOML(w io.Writer, tree map[string]any) error {
	if path, ok := findNull(tree, ""); ok {
		return fmt.Errorf("TOML cannot represent the null value at %s", path)
	}
	if err := toml.NewEncoder(w).Encode(tree); err != nil {
		return fmt.Errorf("failed to encode TOML: %w", err)
	}
	return nil
}

func findNull(v any, path string) (string, bool) {
	switch val := v.(type) {
	case nil:
		return path, true
	case map[string]any:
		for _, k := range sortedKeys(val) {
			if p, ok := findNull(val[k], join(path, k)); ok {
				return p, true
			}
		}
	case []any:
		for i, item := range val {
			if p, ok := findNull(item, fmt.Sprintf("%s[%d]", path, i)); ok {
				return p, true
			}
		}
	}
	return "", false
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
