// SPDX-License-Identifier: MIT
//
package basechange

import (
	"fmt"
	"math/big"

	"github.com/mcanlas/alasc/chain"
	"github.com/mcanlas/alasc/perm"
	"github.com/mcanlas/alasc/schreiersims"
	"github.com/mcanlas/alasc/transversal"
)

// Swap reshapes c so its base matches guide's preferences as closely
// as possible, preferring conjugation (cheap) over an adjacent swap
// (more work, still local) and falling back to a full Schreier-Sims
// rebuild (correct but the most expensive of the three) whenever the
// cheaper paths can't be verified to preserve the group's order.
//
// Per node the state machine is Examine -> Keep | ShiftViaConjugation
// | HardSwap -> MaybeCutTail, terminating when the guide is exhausted
// or the remaining tail is trivial.
func Swap(c *chain.Chain, guide BaseGuide, action perm.Action, opts ...Option) (*chain.Chain, error) {
	cfg := resolveOptions(opts)
	if action == nil {
		action = perm.DefaultAction{}
	}
	originalOrder := c.Order()
	originalSGS := c.StrongGeneratingSet()

	m := chain.Unfreeze(c, action)
	reached, err := walkToGuide(m, guide, action, cfg)
	if err != nil {
		return nil, err
	}
	if !reached {
		// No adjacent node left to swap with, or the swap budget is
		// exhausted before the guide was satisfied: only a full
		// rebuild can get there from here.
		return rebuildToMatch(originalSGS, action, originalOrder, guide, cfg)
	}

	cutRedundantAfter(m)
	built, err := m.Freeze()
	if err != nil {
		return nil, err
	}
	if built.Order().Cmp(originalOrder) != 0 {
		return rebuildToMatch(originalSGS, action, originalOrder, guide, cfg)
	}
	return built, nil
}

// walkToGuide drives m's base toward guide's preferences one level at
// a time via the Examine -> Keep | ShiftViaConjugation | HardSwap
// state machine. It returns reached=true once the guide has no
// further preference (or the chain runs out of levels) and
// reached=false if it hits a level it cannot move the desired point
// into — no adjacent node left to swap with, or the per-change swap
// budget exhausted — leaving m in whatever shape it reached so far.
func walkToGuide(m *chain.MutableChain, guide BaseGuide, action perm.Action, cfg config) (bool, error) {
	fixed := make([]int, 0, m.Len())
	swaps := 0
	maxSwaps := m.Len() * m.Len()

	for i := 0; i < m.Len(); i++ {
		select {
		case <-cfg.ctx.Done():
			return false, fmt.Errorf("%w: %v", ErrCancelled, cfg.ctx.Err())
		default:
		}

		tr := m.Transversal(i)
		candidates := tr.Orbit().Points()
		desired, ok := guide.NextBasePoint(fixed, candidates)
		if !ok {
			return true, nil // guide exhausted: Keep the remaining tail as-is
		}

		beta := m.Beta(i)
		if desired == beta {
			fixed = append(fixed, beta) // Keep
			continue
		}

		if tr.Contains(desired) {
			shiftViaConjugation(m, i, tr, desired)
			fixed = append(fixed, desired)
			cfg.logger.Debug().Int("level", i).Int("to", desired).Msg("basechange: shifted via conjugation")
			continue
		}

		if i+1 < m.Len() && swaps < maxSwaps {
			hardSwap(m, i, action)
			swaps++
			cfg.logger.Debug().Int("level", i).Msg("basechange: hard swap")
			// desired may now sit in this level's (rebuilt) orbit, or
			// may need another adjacent swap to bubble further up;
			// re-examine this level before moving on.
			i--
			continue
		}

		return false, nil
	}
	return true, nil
}

// shiftViaConjugation brings desired to level i's base point by
// conjugating every node from i onward by f = u(desired), whose
// inverse is uInv(desired): conjugating by f, each transversal entry
// (alpha, u, uInv) becomes (alpha·f, fInv·u·f, fInv·uInv·f) and the
// base point becomes beta·f, which is exactly desired since the
// transversal invariant gives beta·u(desired) = desired.
func shiftViaConjugation(m *chain.MutableChain, i int, tr *transversal.Transversal, desired int) {
	f, _ := tr.U(desired)
	fInv, _ := tr.UInv(desired)
	for lvl := i; lvl < m.Len(); lvl++ {
		newTr := m.Transversal(lvl).Conjugate(f, fInv)
		own := m.OwnGenerators(lvl)
		newOwn := make([]perm.Permutation, len(own))
		for k, g := range own {
			newOwn[k] = fInv.Op(g).Op(f)
		}
		m.SetTransversal(lvl, newTr)
		m.SetOwnGenerators(lvl, newOwn)
		m.SetBeta(lvl, newTr.Beta())
	}
}

// hardSwap exchanges the base points at levels i and i+1 in place.
// Both old own-generator sets fix base[0:i-1] (level i+1's own
// generators fix base[0:i], a superset), so their union is exactly
// the generating set for the new level i's transversal over
// oldBetaI1; the new level i's own generators are whichever of those
// still move oldBetaI1, and the new level i+1 is rebuilt from that
// transversal's Schreier generators, keeping only the ones that move
// oldBetaI. Levels after i+1 are untouched: pointwise-stabilizing an
// unordered set of points doesn't depend on the order those points
// were fixed in, so their own-generators remain valid strong
// generators for the reordered chain — which is also why only the
// two exchanged levels' own generators (not the whole tail) feed the
// rebuild: anything assigned deeper already fixes both oldBetaI and
// oldBetaI1 and would trip Freeze's "no ownGenerator fixes its own
// base point" check if pulled up to level i.
func hardSwap(m *chain.MutableChain, i int, action perm.Action) {
	oldBetaI := m.Beta(i)
	oldBetaI1 := m.Beta(i + 1)
	local := append(append([]perm.Permutation{}, m.OwnGenerators(i)...), m.OwnGenerators(i+1)...)

	newTrI := transversal.Build(oldBetaI1, local, action)
	var ownI []perm.Permutation
	for _, g := range local {
		if g.Image(oldBetaI1) != oldBetaI1 {
			ownI = append(ownI, g)
		}
	}
	schreierGens := schreierGenerators(newTrI, local, action)

	var ownI1 []perm.Permutation
	for _, g := range schreierGens {
		if g.Image(oldBetaI) != oldBetaI {
			ownI1 = append(ownI1, g)
		}
	}
	newTrI1 := transversal.Build(oldBetaI, ownI1, action)

	m.SetBeta(i, oldBetaI1)
	m.SetTransversal(i, newTrI)
	m.SetOwnGenerators(i, trim(ownI))

	m.SetBeta(i+1, oldBetaI)
	m.SetTransversal(i+1, newTrI1)
	m.SetOwnGenerators(i+1, trim(ownI1))
}

// schreierGenerators computes u(alpha)·s·uInv(alpha·s) for every
// orbit point of tr and every generator in gens.
func schreierGenerators(tr *transversal.Transversal, gens []perm.Permutation, action perm.Action) []perm.Permutation {
	var out []perm.Permutation
	for _, alpha := range tr.Orbit().Points() {
		u, _ := tr.U(alpha)
		for _, s := range gens {
			img := action.Actr(alpha, s)
			uInvImg, _ := tr.UInv(img)
			out = append(out, u.Op(s).Op(uInvImg))
		}
	}
	return out
}

// trim drops identity generators so Freeze's invariant check (no
// own-generator may fix its own base point) never trips on a
// Schreier generator that happened to reduce to the identity.
func trim(gens []perm.Permutation) []perm.Permutation {
	out := make([]perm.Permutation, 0, len(gens))
	for _, g := range gens {
		if _, ok := g.SupportMax(); ok {
			out = append(out, g)
		}
	}
	return out
}

// cutRedundantAfter drops any trailing node whose orbit has
// collapsed to just its base point and which owns no generators of
// its own — a node a swap can leave behind with nothing left to do.
func cutRedundantAfter(m *chain.MutableChain) {
	for m.Len() > 0 {
		last := m.Len() - 1
		if len(m.OwnGenerators(last)) != 0 || m.Transversal(last).Orbit().Len() > 1 {
			break
		}
		m.RemoveNodeAt(last)
	}
}

// rebuildToMatch is the "rebuild from scratch" strategy: run
// Schreier-Sims again against the original strong generating set and
// order, biasing the very first base point toward guide, then drive
// the rest of the guide's preferred prefix onto the freshly built
// chain with the same walkToGuide state machine Swap uses. The
// Schreier-Sims rebuild alone only influences level 0 (addGenerator
// seeds the base from each generator's own first moved point, with
// no notion of "prefer this point" beyond which generator comes
// first); without the follow-up walk, the returned chain's base would
// not actually carry guide's prefix, even though its order is correct.
func rebuildToMatch(sgs []perm.Permutation, action perm.Action, targetOrder *big.Int, guide BaseGuide, cfg config) (*chain.Chain, error) {
	cfg.logger.Debug().Msg("basechange: falling back to full Schreier-Sims rebuild")
	ordered := reorderByGuide(sgs, action, guide)
	c, err := schreiersims.BuildDeterministic(ordered, action,
		schreiersims.WithContext(cfg.ctx),
		schreiersims.WithLogger(cfg.logger),
		schreiersims.WithTargetOrder(targetOrder),
	)
	if err != nil {
		return nil, err
	}

	m := chain.Unfreeze(c, action)
	if _, err := walkToGuide(m, guide, action, cfg); err != nil {
		return nil, err
	}
	cutRedundantAfter(m)
	built, err := m.Freeze()
	if err != nil {
		return nil, err
	}
	if built.Order().Cmp(targetOrder) != 0 {
		return nil, fmt.Errorf("%w: base-matching walk left order %s, want %s", ErrBaseChangeFailed, built.Order(), targetOrder)
	}
	return built, nil
}

// reorderByGuide gives rebuildToMatch's Schreier-Sims pass a head
// start on level 0: it biases which generator addGenerator consumes
// first (and so which point seeds the base) toward one guide prefers,
// by moving every generator that moves that point to the front. It
// does not attempt anything beyond level 0 — walkToGuide handles the
// rest of the prefix once the chain exists.
func reorderByGuide(sgs []perm.Permutation, action perm.Action, guide BaseGuide) []perm.Permutation {
	if len(sgs) == 0 {
		return sgs
	}
	var moved []int
	for _, g := range sgs {
		moved = append(moved, g.Support()...)
	}
	preferred, ok := guide.NextBasePoint(nil, moved)
	if !ok {
		return sgs
	}
	out := make([]perm.Permutation, 0, len(sgs))
	var rest []perm.Permutation
	for _, g := range sgs {
		if g.Image(preferred) != preferred {
			out = append(out, g)
		} else {
			rest = append(rest, g)
		}
	}
	return append(out, rest...)
}
