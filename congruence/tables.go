// SPDX-License-Identifier: MIT

package congruence

import "fmt"

// tables holds the join and meet operations of the universe by position:
// join[i*size+j] is the position of elems[i] ∨ elems[j].
type tables struct {
	size       int
	join, meet []int32
}

func (t *tables) Len() int { return t.size }

func (t *tables) joinOf(i, j int) int { return int(t.join[i*t.size+j]) }

func (t *tables) meetOf(i, j int) int { return int(t.meet[i*t.size+j]) }

// leq reports elems[i] ≤ elems[j].
func (t *tables) leq(i, j int) bool { return t.meetOf(i, j) == i }

// tables fills both operation tables from the universe.
func (l *Lattice) tables() (*tables, error) {
	return fill(l, keyTables, func() (*tables, error) {
		u, err := l.universe()
		if err != nil {
			return nil, err
		}
		size := len(u.elems)
		t := &tables{
			size: size,
			join: make([]int32, size*size),
			meet: make([]int32, size*size),
		}
		for i, a := range u.elems {
			if err = l.canceled(); err != nil {
				return nil, fmt.Errorf("congruence: tables: %w", err)
			}
			for j := i; j < size; j++ {
				b := u.elems[j]
				jn, _ := a.Join(b)
				mt, _ := a.Meet(b)
				ji, err := u.position("join", jn)
				if err != nil {
					return nil, err
				}
				mi, err := u.position("meet", mt)
				if err != nil {
					return nil, err
				}
				t.join[i*size+j], t.join[j*size+i] = int32(ji), int32(ji)
				t.meet[i*size+j], t.meet[j*size+i] = int32(mi), int32(mi)
			}
		}

		return t, nil
	})
}
