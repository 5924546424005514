// SPDX-License-Identifier: MIT

package congruence

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/conlat/algebra"
	"github.com/katalvlaran/conlat/partition"
)

// Sentinel errors for lattice construction and queries.
var (
	// ErrNilAlgebra is returned by New for a nil algebra.
	ErrNilAlgebra = errors.New("congruence: algebra is nil")

	// ErrEmptyAlgebra is returned by New for an algebra of cardinality < 1.
	ErrEmptyAlgebra = errors.New("congruence: algebra has no elements")

	// ErrOptionViolation is returned by New when an Option was invalid.
	ErrOptionViolation = errors.New("congruence: invalid option supplied")

	// ErrIndexOutOfRange indicates an element index outside [0, n).
	ErrIndexOutOfRange = errors.New("congruence: element index out of range")

	// ErrSizeMismatch indicates a partition whose size differs from n, or nil.
	ErrSizeMismatch = errors.New("congruence: partition size mismatch")

	// ErrNotInUniverse indicates a partition that is not a congruence.
	ErrNotInUniverse = errors.New("congruence: partition is not in the universe")

	// ErrMalformedAlgebra indicates that the algebra failed or returned an
	// out-of-range result while being evaluated.
	ErrMalformedAlgebra = errors.New("congruence: malformed algebra")

	// ErrUniverseTooLarge indicates that closure exceeded WithMaxUniverse.
	ErrUniverseTooLarge = errors.New("congruence: universe exceeds configured bound")

	// ErrNotJoinIrreducible is returned by LowerStar.
	ErrNotJoinIrreducible = errors.New("congruence: not join-irreducible")

	// ErrNotMeetIrreducible is returned by UpperStar.
	ErrNotMeetIrreducible = errors.New("congruence: not meet-irreducible")

	// ErrNotAvailable is returned by queries that need machinery this
	// package does not provide (commutators, tame congruence types).
	ErrNotAvailable = errors.New("congruence: not available")
)

// Option configures a Lattice. Invalid options are recorded and surfaced
// as ErrOptionViolation by New.
type Option func(*Options)

// Options holds Lattice settings.
type Options struct {
	// Ctx is checked between closure iterations.
	Ctx context.Context

	// MaxUniverse, if > 0, bounds the number of congruences. 0 means unbounded.
	MaxUniverse int

	// Logger receives Debug records when cached fields are computed.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns Options with a background context, no universe
// bound and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithContext sets the cancellation context. A nil ctx has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxUniverse bounds the universe to k congruences; 0 disables the bound.
func WithMaxUniverse(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("WithMaxUniverse(%d): bound must be ≥ 0", k)
			return
		}
		o.MaxUniverse = k
	}
}

// WithLogger sets the logger. A nil logger has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Lattice is the congruence lattice of one finite algebra.
//
// The algebra must not change for the lattice's lifetime. A Lattice is
// safe for concurrent use.
type Lattice struct {
	alg      algebra.Algebra
	n        int
	arity    []int
	maxArity int
	opts     Options
	log      *slog.Logger

	zero, one *partition.Partition

	memo arena
}
