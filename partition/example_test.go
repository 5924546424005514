// SPDX-License-Identifier: MIT

package partition_test

import (
	"fmt"

	"github.com/katalvlaran/conlat/partition"
)

// ExamplePartition_Join shows join and meet of two partitions of {0,1,2,3}.
func ExamplePartition_Join() {
	p, _ := partition.Parse("|0,1|2|3|")
	q, _ := partition.Parse("|0|1|2,3|")

	j, _ := p.Join(q)
	m, _ := p.Meet(q)
	fmt.Println(j, j.NumBlocks())
	fmt.Println(m.IsZero())

	// Output:
	// |0,1|2,3| 2
	// true
}

// ExampleFromArray shows that an uncompressed forest is normalised: the
// block minimum becomes the root and every member points straight at it.
func ExampleFromArray() {
	// 3 → 2 and 1 → 2, with 2 the original root.
	p, _ := partition.FromArray([]int{-1, 2, -3, 2})
	fmt.Println(p.Array())
	fmt.Println(p)

	// Output:
	// [-1 -3 1 1]
	// |0|1,2,3|
}
