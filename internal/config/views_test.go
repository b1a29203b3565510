package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViews(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	cfg, err := Resolve(&RawConfig{
		Compiler: &RawCompiler{
			Version:   ptr("0.8.24"),
			Optimizer: &RawOptimizer{Runs: ptr(int64(1000))},
		},
		Paths:          &RawPaths{Sources: ptr("src")},
		DefaultNetwork: ptr("sepolia"),
		Networks: map[string]Settings{
			"sepolia": {"url": "https://rpc.sepolia.org"},
		},
	})
	require.NoError(t, err)

	t.Run("compiler", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, CompilerInput{
			Version:   "0.8.24",
			Optimizer: Optimizer{Enabled: true, Runs: 1000},
			Sources:   "src",
			Artifacts: DefaultArtifactsPath,
			Cache:     DefaultCachePath,
		}, cfg.CompilerJob())
	})

	t.Run("test", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, TestInput{
			Tests: DefaultTestsPath,
			Network: NetworkProfile{
				Name:     "sepolia",
				Settings: Settings{"url": "https://rpc.sepolia.org"},
			},
		}, cfg.TestJob())
	})

	t.Run("networks", func(t *testing.T) {
		t.Parallel()

		set := cfg.NetworkSet()
		assert.Equal(t, "sepolia", set.Default)
		require.Len(t, set.Networks, 2)
		assert.Equal(t, HardhatNetwork, set.Networks[HardhatNetwork].Name)
		assert.Empty(t, set.Networks[HardhatNetwork].Settings)

		// Views are copies.
		set.Networks["sepolia"].Settings["url"] = "changed"
		again, _ := cfg.Network("sepolia")
		assert.Equal(t, "https://rpc.sepolia.org", again.Settings["url"])
	})
}
