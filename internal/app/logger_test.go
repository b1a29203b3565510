package app

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		level     string
		wantLevel slog.Level
	}{
		{name: "debug", level: "debug", wantLevel: slog.LevelDebug},
		{name: "info", level: "info", wantLevel: slog.LevelInfo},
		{name: "warn", level: "warn", wantLevel: slog.LevelWarn},
		{name: "error", level: "error", wantLevel: slog.LevelError},
		{name: "unknown falls back to info", level: "verbose", wantLevel: slog.LevelInfo},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			logger := newLogger(tc.level, "text", &bytes.Buffer{})
			ctx := context.Background()

			assert.True(t, logger.Enabled(ctx, tc.wantLevel))
			assert.False(t, logger.Enabled(ctx, tc.wantLevel-1))
		})
	}
}

func TestNewLogger_JSONFormat(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	newLogger("info", "json", buf).Info("hello", "network", "hardhat")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, "hardhat", record["network"])
}

func TestNewLogger_TextFormat(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	newLogger("info", "text", buf).Info("hello", "network", "hardhat")

	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "network=hardhat")
}

func TestEnvironMap(t *testing.T) {
	t.Parallel()

	env := environMap([]string{"A=1", "B=x=y", "EMPTY=", "BROKEN"})
	assert.Equal(t, map[string]string{"A": "1", "B": "x=y", "EMPTY": ""}, env)
}
