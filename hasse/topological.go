// SPDX-License-Identifier: MIT

package hasse

// topoSorter holds the state of one depth-first ordering pass.
type topoSorter struct {
	d     *Diagram
	state []int // White, Gray or Black per vertex
	order []int // post-order
}

// TopologicalOrder returns the vertices so that every cover edge i → j has
// i before j. Roots are visited in ascending index order.
//
// Complexity: O(n + E) time, O(n) memory.
func (d *Diagram) TopologicalOrder() ([]int, error) {
	s := &topoSorter{
		d:     d,
		state: make([]int, d.n),
		order: make([]int, 0, d.n),
	}
	for v := 0; v < d.n; v++ {
		if s.state[v] == White {
			if err := s.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// Reverse post-order.
	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}

	return s.order, nil
}

// visit explores v, reporting a back edge as ErrCycleDetected.
func (s *topoSorter) visit(v int) error {
	switch s.state[v] {
	case Gray:
		return ErrCycleDetected
	case Black:
		return nil
	}
	s.state[v] = Gray
	for _, w := range s.d.up[v] {
		if err := s.visit(w); err != nil {
			return err
		}
	}
	s.state[v] = Black
	s.order = append(s.order, v)

	return nil
}
