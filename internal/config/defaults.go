package config

// Built-in fallback values.
const (
	DefaultCompilerVersion = "0.8.20"
	DefaultOptimizerRuns   = 200

	DefaultSourcesPath   = "./contracts/src"
	DefaultTestsPath     = "./test/hardhat"
	DefaultCachePath     = "./cache"
	DefaultArtifactsPath = "./artifacts"

	// HardhatNetwork is the reserved name of the in-process simulated
	// network. It is present in every resolved configuration.
	HardhatNetwork = "hardhat"
)

// DefaultConfig is the table of built-in fallback values used for every
// field a RawConfig omits.
type DefaultConfig struct {
	Compiler       Compiler
	Paths          Paths
	DefaultNetwork string
	Networks       map[string]Settings
}

// Defaults returns a fresh copy of the built-in fallback table. Callers may
// modify the result freely.
func Defaults() *DefaultConfig {
	return &DefaultConfig{
		Compiler: Compiler{
			Version: DefaultCompilerVersion,
			Optimizer: Optimizer{
				Enabled: true,
				Runs:    DefaultOptimizerRuns,
			},
		},
		Paths: Paths{
			Sources:   DefaultSourcesPath,
			Tests:     DefaultTestsPath,
			Cache:     DefaultCachePath,
			Artifacts: DefaultArtifactsPath,
		},
		DefaultNetwork: HardhatNetwork,
		Networks: map[string]Settings{
			HardhatNetwork: {},
		},
	}
}

// Tree returns the defaults in the same serializable shape as
// ResolvedConfig.Tree.
func (d *DefaultConfig) Tree() map[string]any {
	return buildTree(d.Compiler, d.Paths, d.DefaultNetwork, d.Networks)
}
