// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/conlat/partition"
)

// CoversResult lists the neighbours of a congruence in the Hasse diagram.
type CoversResult struct {
	Congruence  *partition.Partition   `json:"congruence"`
	Upper       []*partition.Partition `json:"upper"`
	Lower       []*partition.Partition `json:"lower"`
	Complements []*partition.Partition `json:"complements"`
}

// WriteText writes one labelled section per list.
func (r *CoversResult) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "congruence: %v\n", r.Congruence); err != nil {
		return err
	}
	sections := []struct {
		title string
		ps    []*partition.Partition
	}{
		{"upper covers", r.Upper},
		{"lower covers", r.Lower},
		{"complements", r.Complements},
	}
	for _, s := range sections {
		if _, err := fmt.Fprintf(w, "%s: %d\n", s.title, len(s.ps)); err != nil {
			return err
		}
		for _, p := range s.ps {
			if _, err := fmt.Fprintf(w, "  %v\n", p); err != nil {
				return err
			}
		}
	}
	return nil
}

// NewCoversCommand creates the covers command.
func NewCoversCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "covers <algebra.yaml> <congruence>",
		Short: "Print the covers and complements of a congruence",
		Long: `Print the upper covers, lower covers and complements of a congruence
given in bar notation, e.g. "|0,2|1,3|".`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)
			ld, err := loadLattice(rootOpts, cmd, f, args[0])
			if err != nil {
				return err
			}
			theta, err := partition.Parse(args[1])
			if err != nil {
				return f.Fail(ExitCommandError, ErrCodeArgs, "bad congruence", err)
			}
			res := &CoversResult{Congruence: theta}
			if res.Upper, err = ld.lattice.UpperCovers(theta); err != nil {
				return computeFailed(f, "covers failed", err)
			}
			if res.Lower, err = ld.lattice.LowerCovers(theta); err != nil {
				return computeFailed(f, "covers failed", err)
			}
			if res.Complements, err = ld.lattice.Complements(theta); err != nil {
				return computeFailed(f, "covers failed", err)
			}
			return f.Success(res)
		},
	}
}
