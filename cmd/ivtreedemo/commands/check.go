package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/twostay-labs/ivtree/IntervalTree"
	"github.com/twostay-labs/ivtree/internal/addressrange"
)

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run the invariant checker over the seeded tree and print its structure",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runCheck()
		},
	}
}

// checkTree runs the invariant checker over tree and prints its
// structure. It is a package variable, in the same overridable-hook
// idiom as IntervalTree.Assert, so tests can substitute a stub that
// panics and exercise the recovery path below without corrupting a
// real tree.
var checkTree = func(tree *addressrange.Tree) {
	tree.Print(os.Stdout)
}

// checkPanicError reports whether a value recovered from checkTree's
// panic is the invariant-violation error IntervalTree.Check raises,
// as opposed to an unrelated panic that must keep propagating.
func checkPanicError(r any) (error, bool) {
	if fail, ok := r.(IntervalTree.InvariantViolation); ok {
		return fail, true
	}
	return nil, false
}

func runCheck() error {
	log := newLogger("check")

	tree, _, err := seedTree()
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			if fail, ok := checkPanicError(r); ok {
				log.Errorf("invariant violation: %v", fail)
				os.Exit(1)
			}
			panic(r)
		}
	}()

	checkTree(tree)
	log.Infof("invariants hold over %d ranges", tree.Size())
	fmt.Println("OK")
	return nil
}
