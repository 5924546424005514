// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/conlat/partition"
)

// CgResult is a principal congruence with its generating pair.
type CgResult struct {
	A          int                  `json:"a"`
	B          int                  `json:"b"`
	Congruence *partition.Partition `json:"congruence"`
}

// WriteText writes "Cg(a,b) = |...|".
func (r *CgResult) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Cg(%d,%d) = %v\n", r.A, r.B, r.Congruence)
	return err
}

// NewCgCommand creates the cg command.
func NewCgCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cg <algebra.yaml> <a> <b>",
		Short: "Print the principal congruence generated by two elements",
		Long: `Print the least congruence identifying elements a and b.

Elements are given by label or by index.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)
			ld, err := loadLattice(rootOpts, cmd, f, args[0])
			if err != nil {
				return err
			}
			a, okA := ld.element(args[1])
			b, okB := ld.element(args[2])
			if !okA || !okB {
				return f.Fail(ExitCommandError, ErrCodeArgs, "unknown element",
					fmt.Errorf("%q, %q", args[1], args[2]))
			}
			theta, err := ld.lattice.Cg(a, b)
			if err != nil {
				return computeFailed(f, "cg failed", err)
			}
			return f.Success(&CgResult{A: a, B: b, Congruence: theta})
		},
	}
}
