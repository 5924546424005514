// SPDX-License-Identifier: MIT

package congruence

import (
	"fmt"

	"github.com/katalvlaran/conlat/partition"
)

// Commutator would return the commutator [alpha, beta]. It needs term
// operations of the algebra and always fails with ErrNotAvailable.
func (l *Lattice) Commutator(alpha, beta *partition.Partition) (*partition.Partition, error) {
	return nil, fmt.Errorf("congruence: Commutator(%v,%v): %w", alpha, beta, ErrNotAvailable)
}

// TypeSet would return the tame congruence theory types occurring in the
// lattice. It always fails with ErrNotAvailable.
func (l *Lattice) TypeSet() ([]int, error) {
	return nil, fmt.Errorf("congruence: TypeSet: %w", ErrNotAvailable)
}

// IsCentral would report whether alpha centralizes beta. It always fails
// with ErrNotAvailable.
func (l *Lattice) IsCentral(alpha, beta *partition.Partition) (bool, error) {
	return false, fmt.Errorf("congruence: IsCentral(%v,%v): %w", alpha, beta, ErrNotAvailable)
}
