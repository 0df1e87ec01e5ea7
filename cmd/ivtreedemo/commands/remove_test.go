package commands

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunRemove_Success(t *testing.T) {
	withSeedConfig(t, sampleRangesYAML)

	err := runRemove("loader")
	require.NoError(t, err)
}

func TestRunRemove_UnknownName(t *testing.T) {
	withSeedConfig(t, sampleRangesYAML)

	err := runRemove("does-not-exist")
	require.ErrorContains(t, err, `no seeded range named "does-not-exist"`)
}
