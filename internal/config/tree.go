package config

import (
	"encoding/hex"
	"encoding/json"
	"reflect"

	"github.com/zeebo/blake3"
)

// Tree returns the configuration as a document tree with the same keys a
// loader accepts. Decoding the tree and resolving it again yields an equal
// configuration.
func (c *ResolvedConfig) Tree() map[string]any {
	return buildTree(c.compiler, c.paths, c.defaultNetwork, c.networks)
}

func buildTree(compiler Compiler, paths Paths, defaultNetwork string, networks map[string]Settings) map[string]any {
	nets := make(map[string]any, len(networks))
	for name, settings := range networks {
		nets[name] = map[string]any(settings.Clone())
	}
	return map[string]any{
		keyCompiler: map[string]any{
			"version": compiler.Version,
			"optimizer": map[string]any{
				"enabled": compiler.Optimizer.Enabled,
				"runs":    compiler.Optimizer.Runs,
			},
		},
		keyPaths: map[string]any{
			"sources":   paths.Sources,
			"tests":     paths.Tests,
			"cache":     paths.Cache,
			"artifacts": paths.Artifacts,
		},
		keyDefaultNetwork: defaultNetwork,
		keyNetworks:       nets,
	}
}

// MarshalJSON encodes the configuration tree. Map keys are sorted, so the
// output is byte-for-byte stable.
func (c *ResolvedConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Tree())
}

// Fingerprint returns the hex BLAKE3-256 digest of the canonical JSON
// encoding.
func (c *ResolvedConfig) Fingerprint() string {
	data, err := c.MarshalJSON()
	if err != nil {
		// Settings only hold JSON-encodable values after Decode.
		panic("config: encoding resolved configuration: " + err.Error())
	}
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Equal reports whether two resolved configurations hold the same values.
func (c *ResolvedConfig) Equal(other *ResolvedConfig) bool {
	if c == nil || other == nil {
		return c == other
	}
	return reflect.DeepEqual(c.Tree(), other.Tree())
}
