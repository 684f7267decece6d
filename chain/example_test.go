// SPDX-License-Identifier: MIT
//
package chain_test

import (
	"fmt"

	"github.com/mcanlas/alasc/chain"
	"github.com/mcanlas/alasc/perm"
)

// ExampleMutableChain_Freeze builds a one-level chain stabilizing
// nothing (base point 0 under a single transposition) and reads its
// order back off the frozen Chain.
func ExampleMutableChain_Freeze() {
	g, _ := perm.FromCycles([]int{0, 1})
	m := chain.NewMutableChain(perm.DefaultAction{})
	m.AppendNode(0, []perm.Permutation{g})
	c, err := m.Freeze()
	if err != nil {
		panic(err)
	}
	fmt.Println(c.Order())
	// Output:
	// 2
}
