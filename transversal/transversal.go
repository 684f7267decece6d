// SPDX-License-Identifier: MIT
//
package transversal

import (
	"github.com/mcanlas/alasc/orbit"
	"github.com/mcanlas/alasc/perm"
)

// Transversal holds, for every point in the orbit of beta under a
// generating set, a coset representative u(alpha) and its inverse.
// Invariants: u(beta) = uInv(beta) = identity; for every generator g
// of the chain from here and every alpha in the orbit, alpha·g is in
// the orbit and u(alpha)·g·uInv(alpha·g) stabilizes beta.
type Transversal struct {
	beta   int
	u      map[int]perm.Permutation
	uInv   map[int]perm.Permutation
	orbit  *orbit.Orbit
	action perm.Action
}

// Build computes the transversal of beta under generators by BFS,
// recording a representative and its inverse for each newly
// discovered orbit point.
func Build(beta int, generators []perm.Permutation, action perm.Action) *Transversal {
	if action == nil {
		action = perm.DefaultAction{}
	}
	u := map[int]perm.Permutation{beta: perm.Identity(0)}
	uInv := map[int]perm.Permutation{beta: perm.Identity(0)}
	closeTransversal(u, uInv, []int{beta}, generators, action)

	return &Transversal{
		beta:   beta,
		u:      u,
		uInv:   uInv,
		orbit:  orbit.Compute(beta, generators, action),
		action: action,
	}
}

// Beta returns the base point this transversal was built for.
func (t *Transversal) Beta() int { return t.beta }

// Orbit returns the orbit of beta underlying this transversal.
func (t *Transversal) Orbit() *orbit.Orbit { return t.orbit }

// Contains reports whether alpha is in the orbit of beta.
func (t *Transversal) Contains(alpha int) bool { return t.orbit.Contains(alpha) }

// U returns the coset representative taking beta to alpha, and
// whether alpha is in the orbit at all.
func (t *Transversal) U(alpha int) (perm.Permutation, bool) {
	v, ok := t.u[alpha]
	return v, ok
}

// UInv returns the inverse of U(alpha).
func (t *Transversal) UInv(alpha int) (perm.Permutation, bool) {
	v, ok := t.uInv[alpha]
	return v, ok
}

// Updated extends t to account for newGens having been added to a
// generating set whose full current membership is allGens, mirroring
// orbit.Orbit.Updated's two-phase shape: first extend by newGens
// alone (the cheap common case), then unconditionally close under
// every generator.
func (t *Transversal) Updated(newGens, allGens []perm.Permutation) *Transversal {
	u := cloneReps(t.u)
	uInv := cloneReps(t.uInv)

	existing := t.orbit.Points()
	closeTransversal(u, uInv, existing, newGens, t.action)

	all := make([]int, 0, len(u))
	for alpha := range u {
		all = append(all, alpha)
	}
	closeTransversal(u, uInv, all, allGens, t.action)

	return &Transversal{
		beta:   t.beta,
		u:      u,
		uInv:   uInv,
		orbit:  t.orbit.Updated(newGens, allGens),
		action: t.action,
	}
}

// Conjugate returns the transversal for the conjugated base point
// beta·f: every entry (alpha, u, uInv) becomes (alpha·f, fInv·u·f,
// fInv·uInv·f).
func (t *Transversal) Conjugate(f, fInv perm.Permutation) *Transversal {
	newU := make(map[int]perm.Permutation, len(t.u))
	newUInv := make(map[int]perm.Permutation, len(t.uInv))
	points := make([]int, 0, len(t.u))
	for alpha, uAlpha := range t.u {
		newAlpha := t.action.Actr(alpha, f)
		newU[newAlpha] = fInv.Op(uAlpha).Op(f)
		newUInv[newAlpha] = fInv.Op(t.uInv[alpha]).Op(f)
		points = append(points, newAlpha)
	}
	newBeta := t.action.Actr(t.beta, f)
	return &Transversal{
		beta:   newBeta,
		u:      newU,
		uInv:   newUInv,
		orbit:  orbit.FromPoints(newBeta, points, t.action),
		action: t.action,
	}
}

func cloneReps(m map[int]perm.Permutation) map[int]perm.Permutation {
	out := make(map[int]perm.Permutation, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// closeTransversal runs the BFS closure shared by Build and Updated's
// two phases: for each new generator s and each alpha in frontier,
// record (u(alpha)·s, s⁻¹·uInv(alpha)) for any unseen alpha·s.
func closeTransversal(u, uInv map[int]perm.Permutation, frontier []int, generators []perm.Permutation, action perm.Action) {
	queue := append([]int(nil), frontier...)
	for len(queue) > 0 {
		alpha := queue[0]
		queue = queue[1:]
		for _, g := range generators {
			img := action.Actr(alpha, g)
			if _, ok := u[img]; !ok {
				u[img] = u[alpha].Op(g)
				uInv[img] = g.Inverse().Op(uInv[alpha])
				queue = append(queue, img)
			}
		}
	}
}
