package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove the named seeded range and print what remains",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runRemove(args[0])
		},
	}
}

func runRemove(name string) error {
	log := newLogger("remove")

	tree, handles, err := seedTree()
	if err != nil {
		return err
	}

	h, ok := handles[name]
	if !ok {
		return fmt.Errorf("no seeded range named %q", name)
	}

	tree.Erase(h)
	log.Infof("erased %q, tree size is now %d", name, tree.Size())

	tree.Check()
	renderRanges(tree.All())
	return nil
}
