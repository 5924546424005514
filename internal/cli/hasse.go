// SPDX-License-Identifier: MIT

package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// DOTResult wraps a Graphviz rendering.
type DOTResult struct {
	DOT string `json:"dot"`
}

// String returns the DOT source.
func (r *DOTResult) String() string { return r.DOT }

// NewHasseCommand creates the hasse command.
func NewHasseCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "hasse <algebra.yaml>",
		Short: "Print the Hasse diagram of the lattice in Graphviz DOT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)
			ld, err := loadLattice(rootOpts, cmd, f, args[0])
			if err != nil {
				return err
			}
			u, err := ld.lattice.Universe()
			if err != nil {
				return computeFailed(f, "hasse failed", err)
			}
			d, err := ld.lattice.Hasse()
			if err != nil {
				return computeFailed(f, "hasse failed", err)
			}
			var sb strings.Builder
			if err = d.WriteDOT(&sb, func(i int) string { return u[i].String() }); err != nil {
				return computeFailed(f, "hasse failed", err)
			}
			if f.Format == "json" {
				return f.Success(&DOTResult{DOT: sb.String()})
			}
			_, err = cmd.OutOrStdout().Write([]byte(sb.String()))
			return err
		},
	}
}
