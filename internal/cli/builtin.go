// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/conlat/algebra"
)

// builtins maps a family name to its constructor.
var builtins = map[string]func(n int, opts ...algebra.Option) (*algebra.Table, error){
	"set":     algebra.Set,
	"cyclic":  algebra.CyclicGroup,
	"chain":   algebra.Chain,
	"subsets": algebra.Subsets,
}

// NewBuiltinCommand creates the builtin command.
func NewBuiltinCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "builtin <set|cyclic|chain|subsets> <n>",
		Short: "Write the YAML definition of a standard algebra",
		Long: `Write the YAML definition of a standard algebra to stdout.

  set n      n elements, no operations
  cyclic n   the group Z_n with +, - and 0
  chain n    the n-element chain as a lattice
  subsets k  the Boolean lattice of subsets of a k-set

The output is always YAML and can be fed back to every other command.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)
			build, ok := builtins[args[0]]
			if !ok {
				return f.Fail(ExitCommandError, ErrCodeArgs, "unknown family", fmt.Errorf("%q", args[0]))
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return f.Fail(ExitCommandError, ErrCodeArgs, "bad size", err)
			}
			alg, err := build(n)
			if err != nil {
				return f.Fail(ExitCommandError, ErrCodeArgs, "bad size", err)
			}
			return algebra.Encode(cmd.OutOrStdout(), alg)
		},
	}
}
