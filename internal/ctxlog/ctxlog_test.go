package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromContext_ReturnsEmbeddedLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := WithLogger(context.Background(), logger)

	require.Same(t, logger, FromContext(ctx))

	FromContext(ctx).Info("hello", "component", "loader")
	require.Contains(t, buf.String(), "component=loader")
}

func TestFromContext_FallsBackToDefault(t *testing.T) {
	t.Parallel()

	require.Same(t, slog.Default(), FromContext(context.Background()))
}

func TestWithAttrs_AddsAttributesToRecords(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := WithLogger(context.Background(), slog.New(slog.NewTextHandler(&buf, nil)))
	ctx = WithAttrs(ctx, "path", "contractcfg.hcl")

	FromContext(ctx).Info("loading")
	require.Contains(t, buf.String(), "path=contractcfg.hcl")

	require.Equal(t, ctx, WithAttrs(ctx))
}
