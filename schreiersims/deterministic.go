// SPDX-License-Identifier: MIT
//
package schreiersims

import (
	"fmt"

	"github.com/mcanlas/alasc/chain"
	"github.com/mcanlas/alasc/perm"
	"github.com/mcanlas/alasc/transversal"
)

// BuildDeterministic builds a stabilizer chain from generators by
// exhaustive Schreier-generator verification: at each
// level, build the orbit under the generators currently assigned to
// it, sift every Schreier generator u(alpha)·s·uInv(alpha·s) through
// the rest of the chain, and extend the chain wherever one fails to
// sift to the identity. Levels are reprocessed to a fixpoint, so a
// generator discovered deep in the chain can still bubble a brand new
// base point onto the end.
func BuildDeterministic(generators []perm.Permutation, action perm.Action, opts ...Option) (*chain.Chain, error) {
	cfg := resolveOptions(opts)
	if action == nil {
		action = perm.DefaultAction{}
	}
	if len(generators) == 0 {
		return chain.Empty(), nil
	}

	b := newBuilder(action)
	for _, g := range generators {
		b.addGenerator(g, 0)
	}

	for {
		select {
		case <-cfg.ctx.Done():
			return nil, fmt.Errorf("%w: %v", ErrCancelled, cfg.ctx.Err())
		default:
		}

		progressed, err := b.sweepOnce(cfg)
		if err != nil {
			return nil, err
		}
		if !progressed {
			break
		}
	}

	c, err := b.freeze()
	if err != nil {
		return nil, err
	}
	if cfg.targetOrder != nil && c.Order().Cmp(cfg.targetOrder) != 0 {
		return nil, fmt.Errorf("%w: built order %s, want %s", ErrIncompleteChain, c.Order(), cfg.targetOrder)
	}
	return c, nil
}

// builder tracks the base and the strong generators assigned to each
// level while a deterministic (or randomized) pass is in progress.
type builder struct {
	action      perm.Action
	base        []int
	levelGens   [][]perm.Permutation
	transversal []*transversal.Transversal
	dirty       []bool
}

func newBuilder(action perm.Action) *builder {
	return &builder{action: action}
}

// addGenerator assigns g to the first level (starting from
// startLevel) it does not fix, extending the base with one of g's
// moved points if it fixes every existing base point.
func (b *builder) addGenerator(g perm.Permutation, startLevel int) {
	level := startLevel
	for level < len(b.base) {
		if g.Image(b.base[level]) == b.base[level] {
			level++
			continue
		}
		break
	}
	if level == len(b.base) {
		if _, ok := g.SupportMax(); !ok {
			return // identity: nothing to assign
		}
		p := firstMovedPointFrom(g, 0)
		b.base = append(b.base, p)
		b.levelGens = append(b.levelGens, nil)
		b.transversal = append(b.transversal, nil)
		b.dirty = append(b.dirty, true)
	}
	b.levelGens[level] = append(b.levelGens[level], g)
	b.dirty[level] = true
}

func firstMovedPointFrom(g perm.Permutation, from int) int {
	for k := from; ; k++ {
		if g.Image(k) != k {
			return k
		}
	}
}

// gensFrom returns the generators that stabilize base[0:level], i.e.
// the union of levelGens at and after level.
func (b *builder) gensFrom(level int) []perm.Permutation {
	var gens []perm.Permutation
	for i := level; i < len(b.levelGens); i++ {
		gens = append(gens, b.levelGens[i]...)
	}
	return gens
}

// sweepOnce rebuilds every dirty level's transversal, derives its
// Schreier generators, and sifts each one through the deeper levels,
// extending the chain as needed. It returns whether any level was
// dirty (i.e. whether the caller should sweep again).
func (b *builder) sweepOnce(cfg config) (bool, error) {
	progressed := false
	for level := 0; level < len(b.base); level++ {
		if !b.dirty[level] {
			continue
		}
		select {
		case <-cfg.ctx.Done():
			return false, fmt.Errorf("%w: %v", ErrCancelled, cfg.ctx.Err())
		default:
		}
		progressed = true
		b.dirty[level] = false

		gens := b.gensFrom(level)
		tr := buildTransversalFor(b, level)
		b.transversal[level] = tr

		cfg.logger.Debug().Int("level", level).Int("beta", b.base[level]).
			Int("orbit_size", tr.Orbit().Len()).Msg("schreiersims: rebuilt level")

		for _, alpha := range tr.Orbit().Points() {
			uAlpha, _ := tr.U(alpha)
			for _, s := range gens {
				img := b.action.Actr(alpha, s)
				uInvImg, _ := tr.UInv(img)
				schreier := uAlpha.Op(s).Op(uInvImg)
				b.siftAndExtend(schreier, level+1)
			}
		}
	}
	return progressed, nil
}

// siftAndExtend reduces schreier through levels [from, end), building
// any not-yet-built level lazily; if it never reduces to the
// identity, the residual is either assigned to an existing deeper
// level (marking it dirty) or, if it survives past the whole current
// base, becomes a brand new base point.
func (b *builder) siftAndExtend(g perm.Permutation, from int) {
	cur := g
	for level := from; level < len(b.base); level++ {
		tr := b.transversal[level]
		if tr == nil {
			tr = buildTransversalFor(b, level)
			b.transversal[level] = tr
		}
		image := cur.Image(b.base[level])
		if !tr.Contains(image) {
			b.addGenerator(cur, level)
			return
		}
		uInv, _ := tr.UInv(image)
		cur = cur.Op(uInv)
	}
	if _, ok := cur.SupportMax(); ok {
		b.addGenerator(cur, len(b.base))
	}
}

// buildTransversalFor computes the transversal of base[level] under
// every generator assigned to that level or deeper, the single place
// both the deterministic sweep and the randomized loop construct one.
func buildTransversalFor(b *builder, level int) *transversal.Transversal {
	return transversal.Build(b.base[level], b.gensFrom(level), b.action)
}

// freeze assembles the final MutableChain from the builder's base and
// per-level own-generators, giving each node the transversal of its
// base point under every generator assigned to that level or deeper,
// then publishes it.
func (b *builder) freeze() (*chain.Chain, error) {
	m := chain.NewMutableChain(b.action)
	for level := range b.base {
		m.AppendNode(b.base[level], b.levelGens[level])
		m.SetTransversal(level, buildTransversalFor(b, level))
	}
	return m.Freeze()
}
