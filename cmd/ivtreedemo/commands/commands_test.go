package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// withSeedConfig points configPath at a temp config file seeded with the
// given ranges YAML body for the duration of the test, restoring the
// previous value on cleanup. Tests using it must not run in parallel with
// each other, since configPath is a package-level flag variable.
func withSeedConfig(t *testing.T, rangesYAML string) {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), "ivtreedemo.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte(rangesYAML), 0o644))

	prev := configPath
	configPath = tmpFile
	t.Cleanup(func() { configPath = prev })
}

const sampleRangesYAML = `
ranges:
  - name: loader
    low: 4096
    high: 8191
  - name: heap
    low: 65536
    high: 131071
`
