// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/conlat/partition"
)

// PartitionList is a list of congruences printed one per line.
type PartitionList struct {
	Congruences []*partition.Partition `json:"congruences"`
}

// WriteText writes each congruence in bar notation on its own line.
func (pl *PartitionList) WriteText(w io.Writer) error {
	for _, p := range pl.Congruences {
		if _, err := fmt.Fprintln(w, p); err != nil {
			return err
		}
	}
	return nil
}

// NewUniverseCommand creates the universe command.
func NewUniverseCommand(rootOpts *RootOptions) *cobra.Command {
	var principal, irreducible bool
	cmd := &cobra.Command{
		Use:   "universe <algebra.yaml>",
		Short: "List every congruence, finest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)
			ld, err := loadLattice(rootOpts, cmd, f, args[0])
			if err != nil {
				return err
			}
			list := ld.lattice.Universe
			switch {
			case principal:
				list = ld.lattice.Principals
			case irreducible:
				list = ld.lattice.JoinIrreducibles
			}
			ps, err := list()
			if err != nil {
				return computeFailed(f, "universe failed", err)
			}
			return f.Success(&PartitionList{Congruences: ps})
		},
	}
	cmd.Flags().BoolVar(&principal, "principal", false, "list only principal congruences")
	cmd.Flags().BoolVar(&irreducible, "join-irreducible", false, "list only join-irreducible congruences")
	cmd.MarkFlagsMutuallyExclusive("principal", "join-irreducible")

	return cmd
}
