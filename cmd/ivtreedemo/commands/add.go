package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/twostay-labs/ivtree/internal/addressrange"
)

func newAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <low> <high>",
		Short: "Add one range to the seeded tree and print the resulting tree",
		Args:  cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			return runAdd(args[0], args[1], args[2])
		},
	}
}

func runAdd(name, lowStr, highStr string) error {
	log := newLogger("add")

	low, err := strconv.ParseUint(lowStr, 10, 64)
	if err != nil {
		return fmt.Errorf("parse low: %w", err)
	}
	high, err := strconv.ParseUint(highStr, 10, 64)
	if err != nil {
		return fmt.Errorf("parse high: %w", err)
	}
	if low > high {
		return fmt.Errorf("low (%d) exceeds high (%d)", low, high)
	}

	tree, _, err := seedTree()
	if err != nil {
		return err
	}

	tree.Emplace(addressrange.AddressRange{Low: low, High: high, Name: name})
	log.Infof("emplaced %q [%d,%d], tree size is now %d", name, low, high, tree.Size())

	tree.Check()
	renderRanges(tree.All())
	return nil
}
