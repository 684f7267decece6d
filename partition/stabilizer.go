// SPDX-License-Identifier: MIT
//
package partition

import (
	"github.com/mcanlas/alasc/basechange"
	"github.com/mcanlas/alasc/chain"
	"github.com/mcanlas/alasc/perm"
	"github.com/mcanlas/alasc/search"
)

// InvariantUnder reports whether g stabilizes p as an unordered
// partition: every block's image under g must lie entirely within a
// single (target) block. g need not fix any block setwise — only map
// the collection of blocks onto itself.
func (p *Partition) InvariantUnder(g perm.Permutation) bool {
	target := make([]int, p.NumBlocks())
	for i := range target {
		target[i] = -1
	}
	for b := 0; b < p.NumBlocks(); b++ {
		for _, pt := range p.Block(b) {
			img := g.Image(pt)
			if img < 0 || img >= p.n {
				return false
			}
			tb := p.BlockOf(img)
			if target[b] == -1 {
				target[b] = tb
			} else if target[b] != tb {
				return false
			}
		}
	}
	return true
}

// StabilizerDefinition implements search.SubgroupDefinition for the
// setwise stabilizer of an unordered partition: H = {g in G :
// Of.InvariantUnder(g)}.
type StabilizerDefinition struct {
	Of *Partition
}

// InSubgroup checks the fully assembled candidate against
// Of.InvariantUnder directly.
func (d StabilizerDefinition) InSubgroup(g perm.Permutation) bool {
	return d.Of.InvariantUnder(g)
}

// BaseGuideOpt prefers base points inside block 0, so the first few
// levels of the search already carry useful block-consistency
// information.
func (d StabilizerDefinition) BaseGuideOpt() (basechange.BaseGuide, bool) {
	if d.Of.NumBlocks() == 0 {
		return nil, false
	}
	return basechange.PreferPoints(d.Of.Block(0)), true
}

// FirstLevelTest seeds the walk with an empty source-to-target block
// map, to be filled in incrementally as partitionTest.Accept commits
// each level's chosen image.
func (d StabilizerDefinition) FirstLevelTest(c *chain.Chain) search.Test {
	return partitionTest{of: d.Of, blockTarget: map[int]int{}}
}

// partitionTest is the incremental, per-level version of
// InvariantUnder: it only has base points decided so far to work
// with, so it checks that the block of each base point maps
// consistently to the same target block as any earlier base point in
// that same source block, pruning as soon as two disagree. The full
// check (every point, not just base points) still runs once more at
// the leaf via InSubgroup.
type partitionTest struct {
	of          *Partition
	blockTarget map[int]int
}

func (t partitionTest) Accept(base int, orbitImage int, currentG perm.Permutation, node *chain.Node) (search.Test, bool) {
	if base < 0 || base >= t.of.n || orbitImage < 0 || orbitImage >= t.of.n {
		return partitionTest{}, false
	}
	sourceBlock := t.of.BlockOf(base)
	targetBlock := t.of.BlockOf(orbitImage)
	if want, ok := t.blockTarget[sourceBlock]; ok && want != targetBlock {
		return partitionTest{}, false
	}
	next := make(map[int]int, len(t.blockTarget)+1)
	for k, v := range t.blockTarget {
		next[k] = v
	}
	next[sourceBlock] = targetBlock
	return partitionTest{of: t.of, blockTarget: next}, true
}
