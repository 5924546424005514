// SPDX-License-Identifier: MIT

package algebra

import "errors"

// Sentinel errors for algebra construction and evaluation.
var (
	// ErrEmptyUniverse indicates a cardinality below 1.
	ErrEmptyUniverse = errors.New("algebra: empty universe")

	// ErrUnknownOperation indicates an operation index outside [0, OperationCount()).
	ErrUnknownOperation = errors.New("algebra: unknown operation")

	// ErrArityMismatch indicates an argument count different from the arity.
	ErrArityMismatch = errors.New("algebra: arity mismatch")

	// ErrIndexOutOfRange indicates an element index outside [0, n).
	ErrIndexOutOfRange = errors.New("algebra: index out of range")

	// ErrInvalidTable indicates an operation table of the wrong length or
	// with entries outside [0, n).
	ErrInvalidTable = errors.New("algebra: invalid operation table")

	// ErrInvalidLabels indicates a label list of the wrong length or with
	// duplicates.
	ErrInvalidLabels = errors.New("algebra: invalid element labels")

	// ErrNotClosed indicates that a function of an Indexed algebra returned
	// an element outside its universe.
	ErrNotClosed = errors.New("algebra: operation not closed on universe")

	// ErrDuplicateElement indicates an Indexed universe listing an element twice.
	ErrDuplicateElement = errors.New("algebra: duplicate element")

	// ErrSignatureMismatch indicates a Product of algebras whose operation
	// counts or arities differ.
	ErrSignatureMismatch = errors.New("algebra: signature mismatch")

	// ErrInvalidDefinition indicates a definition failing validation.
	ErrInvalidDefinition = errors.New("algebra: invalid definition")
)

// Algebra is the capability a finite algebra offers to the congruence
// engine. Elements are the indices {0..Cardinality()-1}; operations are the
// indices {0..OperationCount()-1}.
//
// Implementations must be safe for concurrent reads and must not change
// while a congruence lattice built on them is in use.
type Algebra interface {
	// Cardinality returns n, the number of elements.
	Cardinality() int

	// OperationCount returns the number of basic operations.
	OperationCount() int

	// Arity returns the arity of operation op, or -1 if op is unknown.
	Arity(op int) int

	// Evaluate applies operation op to args. It fails with
	// ErrUnknownOperation, ErrArityMismatch or ErrIndexOutOfRange.
	Evaluate(op int, args []int) (int, error)
}

// Operation is one tabulated basic operation.
//
// Table holds n^Arity results in Horner order: the result for arguments
// (a0, a1, ..., ak-1) lives at ((a0·n + a1)·n + ...)·n + ak-1. A nullary
// operation (a constant) has a one-entry table.
type Operation struct {
	// Symbol names the operation, e.g. "+" or "meet".
	Symbol string

	// Arity is the number of arguments.
	Arity int

	// Table lists every result, see above.
	Table []int
}

// Option configures optional attributes of a constructed algebra.
type Option func(*options)

// options holds the resolved Option values.
type options struct {
	name   string
	labels []string
}

// WithName sets the algebra's display name.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLabels sets display labels for the elements, one per element.
func WithLabels(labels ...string) Option {
	return func(o *options) {
		o.labels = append([]string(nil), labels...)
	}
}

// resolve applies opts over defaults.
func resolve(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
