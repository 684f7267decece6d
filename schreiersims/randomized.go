// SPDX-License-Identifier: MIT
//
package schreiersims

import (
	"fmt"
	"math/big"

	"github.com/mcanlas/alasc/chain"
	"github.com/mcanlas/alasc/perm"
)

// BuildRandomized builds a stabilizer chain by repeatedly drawing
// random elements via oracle and sifting each through the
// chain-under-construction, extending the base whenever one fails to
// sift to the identity, and stopping as soon as the product of orbit
// sizes reaches targetOrder. Unlike BuildDeterministic
// it never verifies its result by exhaustive Schreier-generator
// closure, so it requires a known target order and a random source up
// front — reaching that order is its only success criterion. After
// more than 20 consecutive draws that leave the order unchanged it
// gives up with ErrIncompleteChain.
func BuildRandomized(generators []perm.Permutation, action perm.Action, targetOrder *big.Int, oracle chain.RandomElementOracle, rng chain.Rng, opts ...Option) (*chain.Chain, error) {
	cfg := resolveOptions(opts)
	if action == nil {
		action = perm.DefaultAction{}
	}
	if targetOrder == nil {
		targetOrder = cfg.targetOrder
	}
	if targetOrder == nil {
		return nil, ErrNeedTargetOrder
	}
	if rng == nil {
		return nil, ErrNeedRandSource
	}

	b := newBuilder(action)
	for _, g := range generators {
		b.addGenerator(g, 0)
	}
	b.rebuildDirty(cfg)

	const maxConsecutiveHits = 20
	streak := 0
	for b.order().Cmp(targetOrder) != 0 {
		select {
		case <-cfg.ctx.Done():
			return nil, fmt.Errorf("%w: %v", ErrCancelled, cfg.ctx.Err())
		default:
		}

		var g perm.Permutation
		if oracle != nil {
			g = oracle(rng)
		} else {
			g = b.randomElementSoFar(rng)
		}

		orderBefore := b.order()
		b.siftAndExtend(g, 0)
		b.rebuildDirty(cfg)
		orderAfter := b.order()

		if orderAfter.Cmp(orderBefore) == 0 && orderAfter.Cmp(targetOrder) != 0 {
			streak++
			if streak > maxConsecutiveHits {
				return nil, fmt.Errorf("%w: order %s after %d unproductive draws, want %s",
					ErrIncompleteChain, orderAfter, streak, targetOrder)
			}
			continue
		}
		streak = 0

		cfg.logger.Debug().Str("order_so_far", b.order().String()).Int("levels", len(b.base)).
			Msg("schreiersims: randomized pass extended chain")
	}

	c, err := b.freeze()
	if err != nil {
		return nil, err
	}
	if c.Order().Cmp(targetOrder) != 0 {
		return nil, fmt.Errorf("%w: built order %s, want %s", ErrIncompleteChain, c.Order(), targetOrder)
	}
	return c, nil
}

// rebuildDirty rebuilds every level's transversal marked dirty,
// without the full Schreier-generator verification sweep that
// BuildDeterministic runs — the randomized variant trusts
// targetOrder, not exhaustive closure, as its correctness witness.
func (b *builder) rebuildDirty(cfg config) {
	for level := 0; level < len(b.base); level++ {
		if !b.dirty[level] {
			continue
		}
		b.dirty[level] = false
		tr := buildTransversalFor(b, level)
		b.transversal[level] = tr
	}
}

func (b *builder) order() *big.Int {
	order := big.NewInt(1)
	for level := range b.base {
		if b.transversal[level] == nil {
			b.transversal[level] = buildTransversalFor(b, level)
			b.dirty[level] = false
		}
		order.Mul(order, big.NewInt(int64(b.transversal[level].Orbit().Len())))
	}
	return order
}

// randomElementSoFar draws a random element of the partial chain built
// so far and multiplies it by one randomly chosen assigned generator,
// used as a fallback source of candidates when the caller supplies no
// oracle of its own. The extra generator is what lets a candidate fall
// outside the partial chain: a bare product of its own transversal
// representatives always sifts to the identity.
func (b *builder) randomElementSoFar(rng chain.Rng) perm.Permutation {
	result := perm.Permutation(perm.Identity(0))
	for level := range b.base {
		tr := b.transversal[level]
		if tr == nil {
			tr = buildTransversalFor(b, level)
			b.transversal[level] = tr
		}
		pts := tr.Orbit().Points()
		alpha := pts[rng.Intn(len(pts))]
		u, _ := tr.U(alpha)
		result = result.Op(u)
	}
	if gens := b.gensFrom(0); len(gens) > 0 {
		result = result.Op(gens[rng.Intn(len(gens))])
	}
	return result
}
