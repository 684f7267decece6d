// SPDX-License-Identifier: MIT
//
package perm_test

import (
	"fmt"

	"github.com/mcanlas/alasc/perm"
)

// ExampleFromCycles shows 1-based cycle literals translated to
// 0-based points up front: (1 3 2)·(1 2) applied to point 1 (internal
// point 0) yields point 3 (internal 2).
func ExampleFromCycles() {
	// 1-based (1 3 2) -> 0-based cycle (0 2 1); (1 2) -> (0 1).
	g, _ := perm.FromCycles([]int{0, 2, 1}, []int{0, 1})
	fmt.Println(g.Image(0))
	fmt.Println(g.Inverse().Image(2))
	// Output:
	// 2
	// 0
}

// ExamplePermutation_String shows the canonical cycle-notation
// rendering, omitting fixed points.
func ExamplePermutation_String() {
	g, _ := perm.FromCycles([]int{0, 1, 2})
	fmt.Println(g.String())
	// Output:
	// (0 1 2)
}
