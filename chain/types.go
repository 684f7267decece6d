// SPDX-License-Identifier: MIT
//
package chain

import (
	"github.com/mcanlas/alasc/perm"
	"github.com/mcanlas/alasc/transversal"
)

// Rng is the capability randomized operations consume: draw a
// uniform integer in [0, bound). *math/rand.Rand satisfies it
// directly via its Intn method, so callers inject their own seeded
// source rather than relying on a hidden global one.
type Rng interface {
	Intn(bound int) int
}

// RandomElementOracle draws a uniformly random element of a group
// given an Rng, accelerating Schreier-Sims construction when the
// group's order is already known.
type RandomElementOracle func(Rng) perm.Permutation

// Node is one link of an immutable, frozen stabilizer chain: a base
// point, its transversal, and the strong generators that fix every
// earlier base point but move this one. Next is nil at the terminal
// node (the trivial stabilizer).
type Node struct {
	Beta          int
	Transversal   *transversal.Transversal
	OwnGenerators []perm.Permutation
	Next          *Node
}
