package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twostay-labs/ivtree/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Empty(t, cfg.Ranges)
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()

	configContent := `
ranges:
  - name: loader
    low: 4096
    high: 8191
  - name: heap
    low: 65536
    high: 131071
`

	tmpDir := t.TempDir()

	tmpFile, err := os.CreateTemp(tmpDir, "test-config-*.yaml")
	require.NoError(t, err)

	_, writeErr := tmpFile.WriteString(configContent)
	require.NoError(t, writeErr)
	require.NoError(t, tmpFile.Close())

	cfg, loadErr := config.Load(tmpFile.Name())
	require.NoError(t, loadErr)

	require.Len(t, cfg.Ranges, 2)
	assert.Equal(t, "loader", cfg.Ranges[0].Name)
	assert.Equal(t, uint64(4096), cfg.Ranges[0].Low)
	assert.Equal(t, uint64(8191), cfg.Ranges[0].High)
	assert.Equal(t, "heap", cfg.Ranges[1].Name)
}

func TestValidateRejectsInvertedRange(t *testing.T) {
	t.Parallel()

	cfg := config.Config{Ranges: []config.RangeSpec{{Name: "bad", Low: 10, High: 5}}}
	require.Error(t, cfg.Validate())
}
