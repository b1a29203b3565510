package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/contractcfg/internal/app"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an app run.
type HarnessResult struct {
	Dir       string
	Output    string
	LogOutput string
	Err       error
}

// WriteFiles writes files, keyed by slash-separated relative path, below a
// fresh temporary directory and returns that directory.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}
	return dir
}

// RunApp writes files to a temporary project directory and runs the app
// against it. A relative appConfig.ConfigPath is taken relative to that
// directory; an empty one selects the directory itself.
func RunApp(t *testing.T, files map[string]string, appConfig app.Config) *HarnessResult {
	t.Helper()
	return RunAppWithContext(context.Background(), t, files, appConfig)
}

// RunAppWithContext is RunApp with a caller-provided context.
func RunAppWithContext(ctx context.Context, t *testing.T, files map[string]string, appConfig app.Config) *HarnessResult {
	t.Helper()

	dir := WriteFiles(t, files)
	if !filepath.IsAbs(appConfig.ConfigPath) {
		appConfig.ConfigPath = filepath.Join(dir, appConfig.ConfigPath)
	}
	if appConfig.LogLevel == "" {
		appConfig.LogLevel = "debug"
	}

	cfg, err := app.NewConfig(appConfig)
	require.NoError(t, err, "test app config must be valid")

	out := &SafeBuffer{}
	logs := &SafeBuffer{}
	runErr := app.NewApp(out, logs, cfg, nil).Run(ctx)

	if os.Getenv("CONTRACTCFG_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
	}

	return &HarnessResult{
		Dir:       dir,
		Output:    out.String(),
		LogOutput: logs.String(),
		Err:       runErr,
	}
}
