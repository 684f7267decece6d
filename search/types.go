// SPDX-License-Identifier: MIT
//
package search

import (
	"github.com/mcanlas/alasc/basechange"
	"github.com/mcanlas/alasc/chain"
	"github.com/mcanlas/alasc/perm"
)

// Test is an immutable per-level acceptance test. At level i, orbitImage
// is the image of base under the element assembled so far (including
// this level's own transversal word, not just node's own generators),
// and Accept either returns a successor Test to continue the descent
// with (ok=true) or signals the whole subtree under this candidate can
// be pruned (ok=false). Pruning invariant: if Accept returns ok=false
// for a prefix, no extension of that prefix can lie in H.
type Test interface {
	Accept(base int, orbitImage int, currentG perm.Permutation, node *chain.Node) (next Test, ok bool)
}

// AcceptAllTest is the trivial Test that never prunes, useful as a
// SubgroupDefinition's FirstLevelTest when every pruning a
// predicate needs happens at the leaf via InSubgroup.
type AcceptAllTest struct{}

// Accept always succeeds, returning itself as the successor.
func (AcceptAllTest) Accept(int, int, perm.Permutation, *chain.Node) (Test, bool) {
	return AcceptAllTest{}, true
}

// SubgroupDefinition specifies a subgroup H of the group represented
// by a chain.Chain to Search/FindOne.
type SubgroupDefinition interface {
	// InSubgroup is the final check on a fully assembled element.
	InSubgroup(g perm.Permutation) bool

	// BaseGuideOpt optionally advises a base change (via basechange)
	// to accelerate pruning before the walk begins.
	BaseGuideOpt() (guide basechange.BaseGuide, ok bool)

	// FirstLevelTest constructs a Test pre-seeded with whatever
	// invariants this definition can derive from the whole chain
	// (e.g. a partition's block structure).
	FirstLevelTest(c *chain.Chain) Test
}
