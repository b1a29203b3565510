package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertLogged checks that the captured text log contains a record with the
// given message and, for each key/value pair, a matching key=value attribute.
func AssertLogged(t *testing.T, result *HarnessResult, msg string, kv ...string) {
	t.Helper()

	for _, line := range strings.Split(result.LogOutput, "\n") {
		if !strings.Contains(line, msg) {
			continue
		}
		if lineHasAttrs(line, kv) {
			return
		}
	}
	require.Failf(t, "log record not found", "message %q with attrs %v not found in logs:\n%s", msg, kv, result.LogOutput)
}

func lineHasAttrs(line string, kv []string) bool {
	for i := 0; i+1 < len(kv); i += 2 {
		if !strings.Contains(line, kv[i]+"="+kv[i+1]) {
			return false
		}
	}
	return true
}
