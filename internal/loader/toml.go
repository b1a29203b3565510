package loader

import (
	"errors"

	"github.com/BurntSushi/toml"
	"github.com/specialistvlad/contractcfg/internal/config"
)

// parseTOML decodes a TOML document. Date and time values stay time.Time here
// and are turned into RFC 3339 strings by config.Decode.
func parseTOML(data []byte) (any, error) {
	tree := map[string]any{}
	if _, err := toml.Decode(string(data), &tree); err != nil {
		pErr := &config.ParseError{Msg: "invalid TOML", Err: err}
		var tomlErr toml.ParseError
		if errors.As(err, &tomlErr) {
			pErr.Line = tomlErr.Position.Line
		}
		return nil, pErr
	}
	return tree, nil
}
