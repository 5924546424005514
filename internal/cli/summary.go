// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/conlat/congruence"
	"github.com/katalvlaran/conlat/partition"
)

// Summary holds the headline invariants of a congruence lattice.
type Summary struct {
	Name             string `json:"name"`
	Size             int    `json:"size"`
	Congruences      int    `json:"congruences"`
	Principals       int    `json:"principals"`
	JoinIrreducibles int    `json:"join_irreducibles"`
	MeetIrreducibles int    `json:"meet_irreducibles"`
	Atoms            int    `json:"atoms"`
	Coatoms          int    `json:"coatoms"`
	Height           int    `json:"height"`
	Distributive     bool   `json:"distributive"`
	Modular          bool   `json:"modular"`
	Simple           bool   `json:"simple"`
}

// WriteText writes one "key: value" line per invariant.
func (s *Summary) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"name: %s\nsize: %d\ncongruences: %d\nprincipals: %d\n"+
			"join-irreducibles: %d\nmeet-irreducibles: %d\natoms: %d\ncoatoms: %d\n"+
			"height: %d\ndistributive: %t\nmodular: %t\nsimple: %t\n",
		s.Name, s.Size, s.Congruences, s.Principals,
		s.JoinIrreducibles, s.MeetIrreducibles, s.Atoms, s.Coatoms,
		s.Height, s.Distributive, s.Modular, s.Simple)
	return err
}

// NewSummaryCommand creates the summary command.
func NewSummaryCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "summary <algebra.yaml>",
		Short: "Print the invariants of the congruence lattice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(rootOpts, cmd, args[0])
		},
	}
}

func runSummary(opts *RootOptions, cmd *cobra.Command, path string) error {
	f := newFormatter(opts, cmd)
	ld, err := loadLattice(opts, cmd, f, path)
	if err != nil {
		return err
	}
	s, err := summarize(ld.alg.Name(), ld.lattice)
	if err != nil {
		return computeFailed(f, "summary failed", err)
	}
	return f.Success(s)
}

// summarize collects every Summary field from l.
func summarize(name string, l *congruence.Lattice) (*Summary, error) {
	s := &Summary{Name: name, Size: l.Size()}
	var err error
	if s.Congruences, err = l.Cardinality(); err != nil {
		return nil, err
	}
	counts := []struct {
		dst *int
		get func() ([]*partition.Partition, error)
	}{
		{&s.Principals, l.Principals},
		{&s.JoinIrreducibles, l.JoinIrreducibles},
		{&s.MeetIrreducibles, l.MeetIrreducibles},
		{&s.Atoms, l.Atoms},
		{&s.Coatoms, l.Coatoms},
	}
	for _, c := range counts {
		ps, err := c.get()
		if err != nil {
			return nil, err
		}
		*c.dst = len(ps)
	}
	if s.Height, err = l.Height(); err != nil {
		return nil, err
	}
	if s.Distributive, err = l.IsDistributive(); err != nil {
		return nil, err
	}
	if s.Modular, err = l.IsModular(); err != nil {
		return nil, err
	}
	if s.Simple, err = l.IsSimple(); err != nil {
		return nil, err
	}
	return s, nil
}
