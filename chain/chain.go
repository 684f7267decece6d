// SPDX-License-Identifier: MIT
//
package chain

import (
	"math/big"

	"github.com/mcanlas/alasc/perm"
)

// Chain is an immutable stabilizer chain: either empty (the trivial
// group, head == nil) or a linked sequence of Nodes terminated by a
// nil Next. Safe to share across goroutines for read-only use once
// returned by MutableChain.Freeze.
type Chain struct {
	head *Node
}

// Empty returns the chain for the trivial group.
func Empty() *Chain { return &Chain{} }

// Sub returns the tail of c starting at level (0-indexed), sharing
// its remaining Nodes with c. Since a node's own-generators already
// fix every earlier base point, the tail from level on is exactly the
// pointwise stabilizer of c.Base()[:level] — the subgroup Grp.Stabilizer
// builds after reshaping the base to have that prefix.
func Sub(c *Chain, level int) *Chain {
	cur := c.head
	for i := 0; i < level && cur != nil; i++ {
		cur = cur.Next
	}
	return &Chain{head: cur}
}

// Head returns the first node, or nil if the chain is the trivial
// group.
func (c *Chain) Head() *Node { return c.head }

// Length returns the number of nodes in the chain.
func (c *Chain) Length() int {
	n := 0
	for cur := c.head; cur != nil; cur = cur.Next {
		n++
	}
	return n
}

// Base returns the chain's base points in order.
func (c *Chain) Base() []int {
	var base []int
	for cur := c.head; cur != nil; cur = cur.Next {
		base = append(base, cur.Beta)
	}
	return base
}

// Order returns the product of orbit sizes across all nodes, i.e.
// |G|. Uses arbitrary-precision arithmetic because permutation group
// orders grow factorially with degree.
func (c *Chain) Order() *big.Int {
	order := big.NewInt(1)
	for cur := c.head; cur != nil; cur = cur.Next {
		order.Mul(order, big.NewInt(int64(cur.Transversal.Orbit().Len())))
	}
	return order
}

// StrongGeneratingSet returns the union of OwnGenerators over every
// node.
func (c *Chain) StrongGeneratingSet() []perm.Permutation {
	var sgs []perm.Permutation
	for cur := c.head; cur != nil; cur = cur.Next {
		sgs = append(sgs, cur.OwnGenerators...)
	}
	return sgs
}

// IsFixed reports whether every strong generator of this chain fixes
// point k.
func (c *Chain) IsFixed(k int) bool {
	for _, s := range c.StrongGeneratingSet() {
		if s.Image(k) != k {
			return false
		}
	}
	return true
}

// BasicSift reduces g through the chain: at each node, if beta·g is
// in that node's orbit, replaces g with g·uInv(beta·g) (which fixes
// beta) and advances;
// otherwise halts and returns the remaining base (this node's beta
// onward) alongside the partially reduced g. A full pass (empty
// remaining base) with residual equal to the identity means g is in
// the group.
func (c *Chain) BasicSift(g perm.Permutation) (remainingBase []int, residual perm.Permutation) {
	cur := g
	for n := c.head; n != nil; n = n.Next {
		image := cur.Image(n.Beta)
		if !n.Transversal.Contains(image) {
			for m := n; m != nil; m = m.Next {
				remainingBase = append(remainingBase, m.Beta)
			}
			return remainingBase, cur
		}
		uInv, _ := n.Transversal.UInv(image)
		cur = cur.Op(uInv)
	}
	return nil, cur
}

// Sifts reports whether g's basic sift reduces all the way to the
// identity with no remaining base — equivalently, whether g is a
// member of the group this chain represents.
func (c *Chain) Sifts(g perm.Permutation) bool {
	remaining, residual := c.BasicSift(g)
	return len(remaining) == 0 && residual.Equal(perm.Identity(0))
}

// RandomElement draws a uniformly random element by independently
// picking a uniform u(alpha) at each node and composing them so that
// each deeper node's representative acts before those of the nodes
// above it (u_k·…·u_1), which reaches every group element exactly
// once.
func (c *Chain) RandomElement(rng Rng) perm.Permutation {
	result := perm.Permutation(perm.Identity(0))
	for n := c.head; n != nil; n = n.Next {
		pts := n.Transversal.Orbit().Points()
		alpha := pts[rng.Intn(len(pts))]
		u, _ := n.Transversal.U(alpha)
		result = u.Op(result)
	}
	return result
}
