// Package commands implements the ivtreedemo command-line tree: a thin,
// single-process harness that loads a set of seed address ranges and
// exercises IntervalTree against them.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/twostay-labs/ivtree/internal/addressrange"
	"github.com/twostay-labs/ivtree/internal/config"
)

var configPath string

// NewRootCommand returns the ivtreedemo root command.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "ivtreedemo",
		Short: "Exercise the IntervalTree package against address ranges",
		Long: `ivtreedemo loads a set of named address ranges from a YAML config
file, builds an IntervalTree over them, and runs a single add/find/remove/check
operation against the resulting tree.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to ivtreedemo config file")

	root.AddCommand(newAddCommand())
	root.AddCommand(newFindCommand())
	root.AddCommand(newRemoveCommand())
	root.AddCommand(newCheckCommand())

	return root
}

// seedTree loads config.Load(configPath) and emplaces every configured
// range into a fresh tree, returning the tree and a name-to-handle index
// so remove can look a range up by name.
func seedTree() (*addressrange.Tree, map[string]addressrange.Handle, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	tree := addressrange.NewTree()
	handles := make(map[string]addressrange.Handle, len(cfg.Ranges))
	for _, r := range cfg.Ranges {
		h := tree.Emplace(addressrange.AddressRange{Low: r.Low, High: r.High, Name: r.Name})
		handles[r.Name] = h
	}
	return tree, handles, nil
}
