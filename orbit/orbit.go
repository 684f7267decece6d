// SPDX-License-Identifier: MIT
//
package orbit

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/mcanlas/alasc/perm"
)

// Orbit is an immutable bit set over points, together with the
// starting point beta and the action used to generate it. Invariant:
// beta is in the orbit, and for every k in the orbit and every
// generator g, k·g is in the orbit too.
type Orbit struct {
	beta   int
	set    *bitset.BitSet
	action perm.Action
}

// Beta returns the starting point this orbit was computed from.
func (o *Orbit) Beta() int { return o.beta }

// Contains reports whether alpha is in the orbit.
func (o *Orbit) Contains(alpha int) bool {
	if alpha < 0 {
		return false
	}
	return o.set.Test(uint(alpha))
}

// Len returns the number of points in the orbit.
func (o *Orbit) Len() int { return int(o.set.Count()) }

// Points returns the orbit's points in increasing order.
func (o *Orbit) Points() []int {
	pts := make([]int, 0, o.set.Count())
	for i, ok := o.set.NextSet(0); ok; i, ok = o.set.NextSet(i + 1) {
		pts = append(pts, int(i))
	}
	return pts
}

// Compute returns the orbit of beta under generators: BFS over points
// represented as a bit set, starting from {beta} and closing under
// every generator's action until a full pass adds nothing new.
func Compute(beta int, generators []perm.Permutation, action perm.Action) *Orbit {
	if action == nil {
		action = perm.DefaultAction{}
	}
	set := bitset.New(uint(beta) + 1)
	set.Set(uint(beta))
	closeUnder(set, []int{beta}, generators, action)
	return &Orbit{beta: beta, set: set, action: action}
}

// Updated extends o to account for newGens having been added to a
// generating set whose full, current membership is allGens. It first
// expands the existing orbit by applying only newGens (the common
// case where the orbit was already closed under everything else and
// loses no work), then unconditionally closes the result under every
// generator in allGens — skipping that second pass would risk leaving
// an orbit point whose image under some other old generator was never
// checked against a point newGens just added, so the orbit would no
// longer be closed under the full generating set.
func (o *Orbit) Updated(newGens, allGens []perm.Permutation) *Orbit {
	set := o.set.Clone()
	existing := make([]int, 0, set.Count())
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		existing = append(existing, int(i))
	}
	closeUnder(set, existing, newGens, o.action)

	all := make([]int, 0, set.Count())
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		all = append(all, int(i))
	}
	closeUnder(set, all, allGens, o.action)

	return &Orbit{beta: o.beta, set: set, action: o.action}
}

// FromPoints wraps an already-known, already-closed point set as an
// Orbit without running BFS — used by transversal.Conjugate, whose
// conjugated point set is exactly {alpha·f : alpha in the original
// orbit} and therefore needs no recomputation.
func FromPoints(beta int, points []int, action perm.Action) *Orbit {
	if action == nil {
		action = perm.DefaultAction{}
	}
	maxPt := beta
	for _, p := range points {
		if p > maxPt {
			maxPt = p
		}
	}
	set := bitset.New(uint(maxPt) + 1)
	set.Set(uint(beta))
	for _, p := range points {
		set.Set(uint(p))
	}
	return &Orbit{beta: beta, set: set, action: action}
}

// closeUnder runs a BFS seeded by frontier, adding every unseen image
// under every generator to set until a full pass adds nothing new.
func closeUnder(set *bitset.BitSet, frontier []int, generators []perm.Permutation, action perm.Action) {
	queue := append([]int(nil), frontier...)
	for len(queue) > 0 {
		alpha := queue[0]
		queue = queue[1:]
		for _, g := range generators {
			img := action.Actr(alpha, g)
			if !set.Test(uint(img)) {
				set.Set(uint(img))
				queue = append(queue, img)
			}
		}
	}
}
