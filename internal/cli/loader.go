// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/conlat/algebra"
	"github.com/katalvlaran/conlat/congruence"
)

// loaded is an algebra together with its congruence lattice.
type loaded struct {
	alg     *algebra.Table
	lattice *congruence.Lattice
}

// loadLattice reads the algebra at path and prepares its lattice with the
// global options. Failures are reported through f.
func loadLattice(opts *RootOptions, cmd *cobra.Command, f *OutputFormatter, path string) (*loaded, error) {
	alg, err := algebra.LoadFile(path)
	if err != nil {
		return nil, f.Fail(ExitCommandError, ErrCodeLoad, "cannot load algebra", err)
	}
	l, err := congruence.New(alg,
		congruence.WithContext(cmd.Context()),
		congruence.WithMaxUniverse(opts.MaxUniverse),
		congruence.WithLogger(newLogger(opts, cmd.ErrOrStderr()).With("algebra", alg.Name())),
	)
	if err != nil {
		return nil, f.Fail(ExitCommandError, ErrCodeLoad, "cannot load algebra", err)
	}

	return &loaded{alg: alg, lattice: l}, nil
}

// element resolves an element given by label or by decimal index.
func (ld *loaded) element(arg string) (int, bool) {
	for i := 0; i < ld.alg.Cardinality(); i++ {
		if ld.alg.Label(i) == arg {
			return i, true
		}
	}
	i, err := strconv.Atoi(arg)
	if err != nil {
		return 0, false
	}
	return i, true
}

// computeFailed reports a lattice error. Argument errors exit with
// ExitCommandError, everything else with ExitFailure.
func computeFailed(f *OutputFormatter, message string, err error) error {
	switch {
	case errors.Is(err, congruence.ErrIndexOutOfRange),
		errors.Is(err, congruence.ErrSizeMismatch),
		errors.Is(err, congruence.ErrNotInUniverse):
		return f.Fail(ExitCommandError, ErrCodeArgs, message, err)
	default:
		return f.Fail(ExitFailure, ErrCodeCompute, message, err)
	}
}
