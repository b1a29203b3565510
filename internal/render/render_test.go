package render

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/contractcfg/internal/config"
	"github.com/specialistvlad/contractcfg/internal/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleConfig(t *testing.T) *config.ResolvedConfig {
	t.Helper()
	version := "0.8.19"
	enabled := false
	runs := int64(0)
	defaultNetwork := "sepolia"
	cfg, err := config.Resolve(&config.RawConfig{
		Compiler:       &config.RawCompiler{Version: &version, Optimizer: &config.RawOptimizer{Enabled: &enabled, Runs: &runs}},
		DefaultNetwork: &defaultNetwork,
		Networks: map[string]config.Settings{
			"sepolia": {
				"url":      "https://rpc.sepolia.org",
				"chainId":  int64(11155111),
				"accounts": []any{"0xabc", int64(7), true},
				"forking":  map[string]any{"enabled": true, "blockNumber": int64(100), "headers": map[string]any{}},
				"gasPrice": 1.25,
				"tags":     []any{},
			},
			"local": {"url": "http://127.0.0.1:8545"},
		},
	})
	require.NoError(t, err)
	return cfg
}

func TestConfig_RoundTripsThroughEveryFormat(t *testing.T) {
	t.Parallel()

	cfg := sampleConfig(t)
	formats := []loader.Format{loader.FormatJSON, loader.FormatYAML, loader.FormatTOML, loader.FormatHCL}

	for _, format := range formats {
		format := format
		t.Run(string(format), func(t *testing.T) {
			t.Parallel()

			// --- Act ---
			var buf bytes.Buffer
			require.NoError(t, Config(&buf, cfg.Tree(), format))

			raw, err := loader.NewLoader().Parse(context.Background(), buf.Bytes(), "rendered."+string(format), format)
			require.NoError(t, err, "rendered document:\n%s", buf.String())
			again, err := config.Resolve(raw)
			require.NoError(t, err)

			// --- Assert ---
			if diff := cmp.Diff(cfg.Tree(), again.Tree()); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s\nrendered:\n%s", diff, buf.String())
			}
			assert.Equal(t, cfg.Fingerprint(), again.Fingerprint())
		})
	}
}

func TestConfig_HCLLayout(t *testing.T) {
	t.Parallel()

	defaults, err := config.Resolve(nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Config(&buf, defaults.Tree(), loader.FormatHCL))

	out := buf.String()
	assert.Contains(t, out, "compiler {")
	assert.Contains(t, out, "optimizer {")
	assert.Contains(t, out, `version = "0.8.20"`)
	assert.Contains(t, out, `default_network = "hardhat"`)
	assert.Contains(t, out, `network "hardhat" {`)
	assert.Contains(t, out, `"./contracts/src"`)
}

func TestConfig_JSONIsStable(t *testing.T) {
	t.Parallel()

	var first, second bytes.Buffer
	require.NoError(t, Config(&first, sampleConfig(t).Tree(), loader.FormatJSON))
	require.NoError(t, Config(&second, sampleConfig(t).Tree(), loader.FormatJSON))
	assert.Equal(t, first.String(), second.String())
	assert.True(t, json.Valid(first.Bytes()))
	assert.True(t, strings.HasSuffix(first.String(), "}\n"))
}

func TestRender_Errors(t *testing.T) {
	t.Parallel()

	withNull := map[string]any{"networks": map[string]any{"dev": map[string]any{"gas": nil}}}
	err := Config(&bytes.Buffer{}, withNull, loader.FormatTOML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "networks.dev.gas")

	// Null is fine in HCL and JSON.
	require.NoError(t, Config(&bytes.Buffer{}, withNull, loader.FormatHCL))
	require.NoError(t, Config(&bytes.Buffer{}, withNull, loader.FormatJSON))

	badKey := map[string]any{"networks": map[string]any{"dev": map[string]any{"chain id": int64(1)}}}
	err = Config(&bytes.Buffer{}, badKey, loader.FormatHCL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chain id")

	err = Config(&bytes.Buffer{}, map[string]any{"plugins": []any{}}, loader.FormatHCL)
	assert.Error(t, err)

	err = Value(&bytes.Buffer{}, map[string]any{}, loader.Format("xml"))
	assert.Error(t, err)
}

func TestValue_HCLWritesAttributes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Value(&buf, map[string]any{
		"version":   "0.8.20",
		"optimizer": map[string]any{"enabled": true, "runs": int64(200)},
	}, loader.FormatHCL))

	out := buf.String()
	assert.Contains(t, out, `"0.8.20"`)
	assert.Contains(t, out, "optimizer = {")
	assert.Contains(t, out, "200")
	assert.NotContains(t, out, "network \"")
}
