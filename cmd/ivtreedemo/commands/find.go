package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newFindCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "find <low> <high>",
		Short: "List every seeded range overlapping [low, high]",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return runFind(args[0], args[1])
		},
	}
}

func runFind(lowStr, highStr string) error {
	log := newLogger("find")

	low, err := strconv.ParseUint(lowStr, 10, 64)
	if err != nil {
		return fmt.Errorf("parse low: %w", err)
	}
	high, err := strconv.ParseUint(highStr, 10, 64)
	if err != nil {
		return fmt.Errorf("parse high: %w", err)
	}

	tree, _, err := seedTree()
	if err != nil {
		return err
	}

	log.Infof("searching [%d,%d] over %d seeded ranges", low, high, tree.Size())
	renderRanges(tree.Find(low, high))
	return nil
}
