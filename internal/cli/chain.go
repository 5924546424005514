// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"
)

// NewChainCommand creates the chain command.
func NewChainCommand(rootOpts *RootOptions) *cobra.Command {
	var shortest bool
	cmd := &cobra.Command{
		Use:   "chain <algebra.yaml>",
		Short: "Print a maximal chain of congruences from zero to one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)
			ld, err := loadLattice(rootOpts, cmd, f, args[0])
			if err != nil {
				return err
			}
			find := ld.lattice.FindPrincipalChain
			if shortest {
				find = ld.lattice.ShortestChain
			}
			chain, err := find()
			if err != nil {
				return computeFailed(f, "chain failed", err)
			}
			return f.Success(&PartitionList{Congruences: chain})
		},
	}
	cmd.Flags().BoolVar(&shortest, "shortest", false, "choose a chain with the fewest steps")

	return cmd
}
