package loader

import (
	"regexp"
	"strconv"

	"github.com/specialistvlad/contractcfg/internal/config"
	"gopkg.in/yaml.v3"
)

var yamlLinePattern = regexp.MustCompile(`line (\d+)`)

// parseYAML decodes the first YAML document. An empty document yields a nil
// tree.
func parseYAML(data []byte) (any, error) {
	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		pErr := &config.ParseError{Msg: "invalid YAML", Err: err}
		if m := yamlLinePattern.FindStringSubmatch(err.Error()); m != nil {
			pErr.Line, _ = strconv.Atoi(m[1])
		}
		return nil, pErr
	}
	return tree, nil
}
