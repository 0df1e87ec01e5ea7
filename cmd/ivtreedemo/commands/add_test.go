package commands

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunAdd_Success(t *testing.T) {
	withSeedConfig(t, sampleRangesYAML)

	err := runAdd("stack", "200000", "204800")
	require.NoError(t, err)
}

func TestRunAdd_RejectsNonNumericLow(t *testing.T) {
	withSeedConfig(t, sampleRangesYAML)

	err := runAdd("stack", "not-a-number", "204800")
	require.Error(t, err)
}

func TestRunAdd_RejectsNonNumericHigh(t *testing.T) {
	withSeedConfig(t, sampleRangesYAML)

	err := runAdd("stack", "200000", "not-a-number")
	require.Error(t, err)
}

func TestRunAdd_RejectsLowExceedingHigh(t *testing.T) {
	withSeedConfig(t, sampleRangesYAML)

	err := runAdd("inverted", "100", "50")
	require.ErrorContains(t, err, "exceeds high")
}
