// SPDX-License-Identifier: MIT
//
package perm

// DefaultAction is the Action witness for the built-in Permutation
// type: every method routes directly to the corresponding
// Permutation method, adding no behavior of its own.
type DefaultAction struct{}

func (DefaultAction) Actr(k int, g Permutation) int { return g.Image(k) }
func (DefaultAction) Actl(g Permutation, k int) int { return g.Image(k) }

func (DefaultAction) Support(g Permutation) []int { return g.Support() }
func (DefaultAction) SupportMin(g Permutation) (int, bool) { return g.SupportMin() }
func (DefaultAction) SupportMax(g Permutation) (int, bool) { return g.SupportMax() }
func (DefaultAction) SupportMaxElement(g Permutation) int  { return g.SupportMaxElement() }
func (DefaultAction) Sign(g Permutation) int               { return g.Sign() }

// FaithfulAction wraps an Action and additionally witnesses that the
// action is faithful: two elements are equal iff they agree on every
// point, which for the built-in Permutation type is already
// Permutation.Equal's contract. Equal is the assertion this variant
// adds to the capability; the delegated methods are unchanged.
type FaithfulAction struct {
	Action
}

// NewFaithfulAction wraps base (typically DefaultAction{}) with the
// assertion that distinct group elements act as distinct functions on
// the domain, so Equal can decide element equality from images alone.
func NewFaithfulAction(base Action) FaithfulAction {
	return FaithfulAction{Action: base}
}

// Equal reports whether g and h act identically on every point, i.e.
// are equal as elements under this faithful action.
func (FaithfulAction) Equal(g, h Permutation) bool {
	return g.Equal(h)
}
