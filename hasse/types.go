// SPDX-License-Identifier: MIT

package hasse

import (
	"context"
	"errors"
)

// Sentinel errors for diagram construction and queries.
var (
	// ErrNotLinearExtension indicates that the index order is not a linear
	// extension of leq.
	ErrNotLinearExtension = errors.New("hasse: indices are not a linear extension")

	// ErrVertexOutOfRange indicates an index outside [0, n).
	ErrVertexOutOfRange = errors.New("hasse: vertex out of range")

	// ErrNoChain indicates that no chain leads from the first to the second element.
	ErrNoChain = errors.New("hasse: no chain between elements")

	// ErrCycleDetected indicates a cycle during TopologicalOrder.
	ErrCycleDetected = errors.New("hasse: cycle detected")
)

// Visitation states used by TopologicalOrder.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // fully explored
)

// Option configures Build.
type Option func(*Options)

// Options holds Build settings.
type Options struct {
	// Ctx allows cancellation between rows of the covering computation.
	Ctx context.Context
}

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context. A nil ctx has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Diagram is the covering digraph of a finite poset.
type Diagram struct {
	n    int
	up   [][]int // up[i]: upper covers of i, ascending
	down [][]int // down[j]: lower covers of j, ascending
	rank []int   // longest chain from a minimal element
}
