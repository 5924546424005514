// SPDX-License-Identifier: MIT

// Package cli implements the conlat command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose     bool
	Format      string // "text" | "json" | "auto"
	MaxUniverse int
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "auto"}

// NewRootCommand creates the root command for the conlat CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "conlat",
		Short: "conlat - congruence lattices of finite algebras",
		Long: `Compute the lattice of congruences of a finite algebra.

Algebras are read from YAML definitions (see "conlat builtin" for examples).
Congruences are printed in bar notation, e.g. |0,2|1,3|.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return WrapExitError(ExitCommandError, "invalid flag",
					fmt.Errorf("format %q: must be one of %v", opts.Format, ValidFormats))
			}
			if opts.MaxUniverse < 0 {
				return WrapExitError(ExitCommandError, "invalid flag",
					fmt.Errorf("max-universe %d: must be ≥ 0", opts.MaxUniverse))
			}
			opts.Format = resolveFormat(opts.Format, cmd.OutOrStdout())
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log computation steps to stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "auto", "output format (text|json|auto)")
	cmd.PersistentFlags().IntVar(&opts.MaxUniverse, "max-universe", 0, "fail beyond this many congruences (0 = unbounded)")

	// Subcommands
	cmd.AddCommand(NewSummaryCommand(opts))
	cmd.AddCommand(NewUniverseCommand(opts))
	cmd.AddCommand(NewCgCommand(opts))
	cmd.AddCommand(NewCoversCommand(opts))
	cmd.AddCommand(NewChainCommand(opts))
	cmd.AddCommand(NewHasseCommand(opts))
	cmd.AddCommand(NewBuiltinCommand(opts))

	return cmd
}

// Execute runs the command tree with args and returns the process exit code.
// Errors not already reported by a command are printed to stderr.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		// cobra argument and flag errors
		exitErr = WrapExitError(ExitCommandError, "usage", err)
		err = exitErr
	}
	if !exitErr.reported {
		fmt.Fprintln(stderr, "Error:", exitErr)
	}
	return GetExitCode(err)
}

// resolveFormat maps "auto" to text on terminals and JSON otherwise.
func resolveFormat(format string, w io.Writer) string {
	if format != "auto" {
		return format
	}
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return "text"
	}
	return "json"
}

// newLogger logs to w at Warn, or Debug when verbose.
func newLogger(opts *RootOptions, w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newFormatter binds a formatter to the command's stdout.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
}
