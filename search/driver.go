// SPDX-License-Identifier: MIT
//
package search

import (
	"fmt"

	"github.com/mcanlas/alasc/basechange"
	"github.com/mcanlas/alasc/chain"
	"github.com/mcanlas/alasc/perm"
)

// Search enumerates every element of the chain's group satisfying
// def, applying def's optional base guide first to improve pruning.
func Search(c *chain.Chain, def SubgroupDefinition, action perm.Action, opts ...Option) ([]perm.Permutation, error) {
	var results []perm.Permutation
	err := walk(c, def, action, opts, func(g perm.Permutation) bool {
		results = append(results, g)
		return false // keep going
	})
	return results, err
}

// FindOne returns the first element of the chain's group satisfying
// def, stopping the walk as soon as one is found — cheaper than
// Search when only membership matters.
func FindOne(c *chain.Chain, def SubgroupDefinition, action perm.Action, opts ...Option) (perm.Permutation, bool, error) {
	var found perm.Permutation
	var ok bool
	err := walk(c, def, action, opts, func(g perm.Permutation) bool {
		found, ok = g, true
		return true // stop
	})
	return found, ok, err
}

// walk drives the DFS shared by Search and FindOne: visit is called
// for each element of the chain's group satisfying def, in the order
// the recursion discovers them; visit returns whether to stop early.
func walk(c *chain.Chain, def SubgroupDefinition, action perm.Action, opts []Option, visit func(perm.Permutation) bool) error {
	cfg := resolveOptions(opts)
	if action == nil {
		action = perm.DefaultAction{}
	}
	if guide, ok := def.BaseGuideOpt(); ok {
		var err error
		c, err = basechange.Swap(c, guide, action, basechange.WithContext(cfg.ctx), basechange.WithLogger(cfg.logger))
		if err != nil {
			return err
		}
	}

	test := def.FirstLevelTest(c)
	stopped := false
	var rec func(node *chain.Node, t Test, currentG perm.Permutation) error
	rec = func(node *chain.Node, t Test, currentG perm.Permutation) error {
		if stopped {
			return nil
		}
		select {
		case <-cfg.ctx.Done():
			return fmt.Errorf("%w: %v", ErrCancelled, cfg.ctx.Err())
		default:
		}
		if node == nil {
			if def.InSubgroup(currentG) {
				if visit(currentG) {
					stopped = true
				}
			}
			return nil
		}
		for _, alpha := range node.Transversal.Orbit().Points() {
			u, _ := node.Transversal.U(alpha)
			// alpha is only node.Beta's image under this level's own
			// transversal element; the image under the element actually
			// being assembled also carries every earlier level's choice,
			// i.e. u.Op(currentG). This level's word acts before the
			// earlier levels' (deeper words fix node.Beta), so each
			// group element is assembled exactly once.
			image := u.Op(currentG).Image(node.Beta)
			next, ok := t.Accept(node.Beta, image, currentG, node)
			if !ok {
				continue
			}
			if err := rec(node.Next, next, u.Op(currentG)); err != nil {
				return err
			}
			if stopped {
				return nil
			}
		}
		return nil
	}
	return rec(c.Head(), test, perm.Identity(0))
}
