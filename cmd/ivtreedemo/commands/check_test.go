package commands

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/twostay-labs/ivtree/IntervalTree"
	"github.com/twostay-labs/ivtree/internal/addressrange"
)

const checkPanicSubprocessEnv = "IVTREEDEMO_TEST_CHECK_PANIC"

func TestRunCheck_Success(t *testing.T) {
	withSeedConfig(t, sampleRangesYAML)

	err := runCheck()
	require.NoError(t, err)
}

func TestCheckPanicError_RecognizesInvariantViolation(t *testing.T) {
	fail, ok := checkPanicError(IntervalTree.InvariantViolation{Msg: "root must be black"})
	require.True(t, ok)
	require.EqualError(t, fail, "root must be black")
}

func TestCheckPanicError_RejectsNonError(t *testing.T) {
	_, ok := checkPanicError("not an error")
	require.False(t, ok)
}

// TestRunCheck_InvariantViolationExits re-executes this test binary as a
// subprocess with checkTree stubbed to panic, verifying that runCheck's
// recover in check.go translates the panic into a log line and exit code
// 1 instead of crashing the process outright.
func TestRunCheck_InvariantViolationExits(t *testing.T) {
	if os.Getenv(checkPanicSubprocessEnv) == "1" {
		runCheckPanicSubprocess(t)
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestRunCheck_InvariantViolationExits")
	cmd.Env = append(os.Environ(), checkPanicSubprocessEnv+"=1")

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 1, exitErr.ExitCode())
	require.Contains(t, stderr.String(), "invariant violation")
}

func runCheckPanicSubprocess(t *testing.T) {
	t.Helper()

	checkTree = func(*addressrange.Tree) {
		panic(IntervalTree.InvariantViolation{Msg: "forced for test"})
	}

	configFile := filepath.Join(t.TempDir(), "ivtreedemo.yaml")
	if err := os.WriteFile(configFile, []byte(sampleRangesYAML), 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	configPath = configFile

	if err := runCheck(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
