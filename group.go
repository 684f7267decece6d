// SPDX-License-Identifier: MIT
//
package permgroup

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/mcanlas/alasc/basechange"
	"github.com/mcanlas/alasc/chain"
	"github.com/mcanlas/alasc/partition"
	"github.com/mcanlas/alasc/perm"
	"github.com/mcanlas/alasc/schreiersims"
	"github.com/mcanlas/alasc/search"
)

// Grp is the user-facing handle for a permutation group: a generating
// set materialized into a stabilizer chain (component K). Every
// operation below returns a fresh, independent Grp; none mutate an
// existing one, and none ever hand back a partially built chain.
type Grp struct {
	chain  *chain.Chain
	action perm.Action
}

// FromGenerators builds, verifies, and freezes a group from
// generators via deterministic Schreier-Sims.
func FromGenerators(generators []perm.Permutation, opts ...Option) (*Grp, error) {
	cfg := resolveOptions(opts)
	c, err := schreiersims.BuildDeterministic(generators, cfg.action,
		schreiersims.WithContext(cfg.ctx), schreiersims.WithLogger(cfg.logger))
	if err != nil {
		return nil, translateErr(err)
	}
	return &Grp{chain: c, action: cfg.action}, nil
}

// FromGeneratorsAndOrder builds a group the same way, additionally
// verifying the constructed chain's order matches order; mismatch
// fails with ErrIncompleteChain.
func FromGeneratorsAndOrder(generators []perm.Permutation, order *big.Int, opts ...Option) (*Grp, error) {
	cfg := resolveOptions(opts)
	c, err := schreiersims.BuildDeterministic(generators, cfg.action,
		schreiersims.WithContext(cfg.ctx), schreiersims.WithLogger(cfg.logger), schreiersims.WithTargetOrder(order))
	if err != nil {
		return nil, translateErr(err)
	}
	return &Grp{chain: c, action: cfg.action}, nil
}

// FromGeneratorsAndOrderRandomized builds a group via randomized
// Schreier-Sims, sampling from oracle (or, if nil, from the partial
// chain itself times a random generator) until the running order
// matches order.
func FromGeneratorsAndOrderRandomized(generators []perm.Permutation, order *big.Int, oracle chain.RandomElementOracle, rng chain.Rng, opts ...Option) (*Grp, error) {
	cfg := resolveOptions(opts)
	c, err := schreiersims.BuildRandomized(generators, cfg.action, order, oracle, rng,
		schreiersims.WithContext(cfg.ctx), schreiersims.WithLogger(cfg.logger))
	if err != nil {
		return nil, translateErr(err)
	}
	return &Grp{chain: c, action: cfg.action}, nil
}

// Order returns |G|, the product of the chain's orbit sizes.
func (g *Grp) Order() *big.Int { return g.chain.Order() }

// Base returns the chain's current base points, in order.
func (g *Grp) Base() []int { return g.chain.Base() }

// StrongGeneratingSet returns the union of strong generators over
// every node of the chain.
func (g *Grp) StrongGeneratingSet() []perm.Permutation { return g.chain.StrongGeneratingSet() }

// Contains reports whether elem is a member of G, via basic sift.
func (g *Grp) Contains(elem perm.Permutation) bool { return g.chain.Sifts(elem) }

// RandomElement draws a uniformly random element of G.
func (g *Grp) RandomElement(rng chain.Rng) perm.Permutation { return g.chain.RandomElement(rng) }

// Stabilizer returns the pointwise stabilizer of set: the subgroup of
// elements of G fixing every point in set. It reshapes a copy of G's
// chain so set is a base prefix (basechange.MatchBase), then takes
// the tail past that prefix — which is exactly that subgroup, since a
// node's own-generators already fix every earlier base point.
func (g *Grp) Stabilizer(set []int, opts ...Option) (*Grp, error) {
	cfg := resolveOptions(opts)
	reshaped, err := basechange.Swap(g.chain, basechange.MatchBase(set), cfg.action,
		basechange.WithContext(cfg.ctx), basechange.WithLogger(cfg.logger))
	if err != nil {
		return nil, translateErr(err)
	}
	return &Grp{chain: chain.Sub(reshaped, len(set)), action: cfg.action}, nil
}

// Intersection returns the subgroup of elements common to both g and
// other, found by a subgroup search over g's chain testing membership
// in other (component I), then re-materialized as a chain of its own.
func (g *Grp) Intersection(other *Grp, opts ...Option) (*Grp, error) {
	cfg := resolveOptions(opts)
	elems, err := search.Search(g.chain, intersectionDefinition{other: other.chain}, cfg.action,
		search.WithContext(cfg.ctx), search.WithLogger(cfg.logger))
	if err != nil {
		return nil, translateErr(err)
	}
	c, err := schreiersims.BuildDeterministic(elems, cfg.action,
		schreiersims.WithContext(cfg.ctx), schreiersims.WithLogger(cfg.logger))
	if err != nil {
		return nil, translateErr(err)
	}
	return &Grp{chain: c, action: cfg.action}, nil
}

type intersectionDefinition struct {
	other *chain.Chain
}

func (d intersectionDefinition) InSubgroup(elem perm.Permutation) bool { return d.other.Sifts(elem) }

func (d intersectionDefinition) BaseGuideOpt() (basechange.BaseGuide, bool) { return nil, false }

func (d intersectionDefinition) FirstLevelTest(c *chain.Chain) search.Test {
	return search.AcceptAllTest{}
}

// UnorderedPartitionStabilizer returns the setwise stabilizer of p:
// elements of G mapping every block of p onto some block of p (not
// necessarily the same one), found the same way as Intersection.
func (g *Grp) UnorderedPartitionStabilizer(p *partition.Partition, opts ...Option) (*Grp, error) {
	cfg := resolveOptions(opts)
	elems, err := search.Search(g.chain, partition.StabilizerDefinition{Of: p}, cfg.action,
		search.WithContext(cfg.ctx), search.WithLogger(cfg.logger))
	if err != nil {
		return nil, translateErr(err)
	}
	c, err := schreiersims.BuildDeterministic(elems, cfg.action,
		schreiersims.WithContext(cfg.ctx), schreiersims.WithLogger(cfg.logger))
	if err != nil {
		return nil, translateErr(err)
	}
	return &Grp{chain: c, action: cfg.action}, nil
}

// translateErr maps a subpackage's local sentinel error onto this
// package's stable taxonomy, so callers only ever need errors.Is
// against the permgroup sentinels regardless of which subpackage
// actually produced the failure.
func translateErr(err error) error {
	switch {
	case errors.Is(err, schreiersims.ErrIncompleteChain):
		return fmt.Errorf("%w: %v", ErrIncompleteChain, err)
	case errors.Is(err, schreiersims.ErrCancelled), errors.Is(err, basechange.ErrCancelled), errors.Is(err, search.ErrCancelled):
		return fmt.Errorf("%w: %v", ErrCancelled, err)
	case errors.Is(err, chain.ErrInvariantViolation), errors.Is(err, basechange.ErrBaseChangeFailed):
		return fmt.Errorf("%w: %v", ErrInvariantViolation, err)
	default:
		return err
	}
}
