// SPDX-License-Identifier: MIT
//
package perm

// Permutation is a total bijection of [0, m] for some finite m,
// extended to the identity on [m+1, infinity). All encodings in this
// package implement it identically; callers never branch on which
// concrete encoding they hold.
type Permutation interface {
	// Image returns k·g, the image of point k. Points beyond
	// SupportMaxElement are fixed.
	Image(k int) int

	// InvImage returns the preimage of point k under g, i.e. the
	// unique j such that Image(j) == k.
	InvImage(k int) int

	// Op returns g·h under the right-action convention:
	// k·(g·h) = (k·g)·h.
	Op(h Permutation) Permutation

	// Inverse returns g⁻¹.
	Inverse() Permutation

	// Support returns the sorted set of points g moves.
	Support() []int

	// SupportMin returns the smallest moved point, or ok=false if g
	// is the identity.
	SupportMin() (p int, ok bool)

	// SupportMax returns the largest moved point, or ok=false if g is
	// the identity.
	SupportMax() (p int, ok bool)

	// SupportMaxElement is an upper bound on SupportMax that this
	// encoding can represent (not necessarily moved itself).
	SupportMaxElement() int

	// Sign is +1 for an even permutation, -1 for an odd one.
	Sign() int

	// Equal reports whether g and h agree as functions on [0, infinity).
	Equal(h Permutation) bool

	// Hash mixes the image values over [0, SupportMax()+1) with a
	// stable seed; two permutations differing only in trailing
	// identity hash equal.
	Hash() uint64

	// String renders g in canonical product-of-disjoint-cycles form.
	String() string
}

// Action abstracts "a group element acts on an integer point",
// letting the chain/search machinery stay generic in how an element
// is applied instead of hard-wiring Permutation everywhere. The
// built-in Permutation type is its own witness via DefaultAction.
type Action interface {
	// Actr returns k·g (the point acted on from the right).
	Actr(k int, g Permutation) int

	// Actl returns g·k, defined identically to Actr for a single
	// element; the distinction matters only when composed with
	// Permutation.Op, which fixes the action's associativity.
	Actl(g Permutation, k int) int

	// Support, SupportMin, SupportMax, SupportMaxElement mirror the
	// Permutation methods, routed through the action so a generic
	// caller never needs a type assertion.
	Support(g Permutation) []int
	SupportMin(g Permutation) (int, bool)
	SupportMax(g Permutation) (int, bool)
	SupportMaxElement(g Permutation) int

	// Sign computes parity by the standard cycle decomposition.
	Sign(g Permutation) int
}
