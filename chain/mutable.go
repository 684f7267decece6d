// SPDX-License-Identifier: MIT
//
package chain

import (
	"fmt"

	"github.com/mcanlas/alasc/perm"
	"github.com/mcanlas/alasc/transversal"
)

// mutableNode is one array slot of a MutableChain: a base point, its
// transversal, and the own-generators chosen so far for this level.
type mutableNode struct {
	beta int
	tr   *transversal.Transversal
	own  []perm.Permutation
}

// MutableChain is the sole owner of a chain-under-construction.
// schreiersims builds chains by appending nodes to one of these;
// basechange reshapes one in place; Freeze publishes the result as an
// immutable Chain. No other code may hold a MutableChain
// concurrently.
type MutableChain struct {
	action perm.Action
	nodes  []*mutableNode
}

// NewMutableChain starts an empty chain-under-construction acting via
// action (perm.DefaultAction{} if nil).
func NewMutableChain(action perm.Action) *MutableChain {
	if action == nil {
		action = perm.DefaultAction{}
	}
	return &MutableChain{action: action}
}

// Action returns the action this chain computes orbits/transversals
// under.
func (m *MutableChain) Action() perm.Action { return m.action }

// Len returns the current number of nodes.
func (m *MutableChain) Len() int { return len(m.nodes) }

// Beta returns the base point at level i.
func (m *MutableChain) Beta(i int) int { return m.nodes[i].beta }

// Transversal returns the transversal currently stored at level i.
func (m *MutableChain) Transversal(i int) *transversal.Transversal { return m.nodes[i].tr }

// OwnGenerators returns the strong generators currently assigned to
// level i.
func (m *MutableChain) OwnGenerators(i int) []perm.Permutation { return m.nodes[i].own }

// SetBeta replaces the base point stored at level i, without
// recomputing its transversal — callers that change beta (e.g.
// basechange's conjugation shift) are expected to also call
// SetTransversal with a transversal already built for the new point.
func (m *MutableChain) SetBeta(i int, beta int) { m.nodes[i].beta = beta }

// SetTransversal replaces the transversal stored at level i.
func (m *MutableChain) SetTransversal(i int, tr *transversal.Transversal) { m.nodes[i].tr = tr }

// SetOwnGenerators replaces the own-generators stored at level i.
func (m *MutableChain) SetOwnGenerators(i int, gens []perm.Permutation) {
	m.nodes[i].own = append([]perm.Permutation(nil), gens...)
}

// Unfreeze reopens an immutable Chain as a MutableChain for in-place
// reshaping (basechange's swap-with-conjugation mutates nodes without
// rebuilding transversals it doesn't have to touch).
func Unfreeze(c *Chain, action perm.Action) *MutableChain {
	if action == nil {
		action = perm.DefaultAction{}
	}
	m := &MutableChain{action: action}
	for n := c.Head(); n != nil; n = n.Next {
		m.nodes = append(m.nodes, &mutableNode{
			beta: n.Beta,
			tr:   n.Transversal,
			own:  append([]perm.Permutation(nil), n.OwnGenerators...),
		})
	}
	return m
}

// AppendNode adds a new terminal node for beta, building its
// transversal from generators.
func (m *MutableChain) AppendNode(beta int, generators []perm.Permutation) {
	tr := transversal.Build(beta, generators, m.action)
	m.nodes = append(m.nodes, &mutableNode{
		beta: beta,
		tr:   tr,
		own:  append([]perm.Permutation(nil), generators...),
	})
}

// InsertNodeAt inserts a new node for beta at position i, shifting
// nodes at and after i one slot to the right.
func (m *MutableChain) InsertNodeAt(i int, beta int, generators []perm.Permutation) {
	tr := transversal.Build(beta, generators, m.action)
	n := &mutableNode{beta: beta, tr: tr, own: append([]perm.Permutation(nil), generators...)}
	m.nodes = append(m.nodes, nil)
	copy(m.nodes[i+1:], m.nodes[i:])
	m.nodes[i] = n
}

// RemoveNodeAt deletes the node at position i.
func (m *MutableChain) RemoveNodeAt(i int) {
	m.nodes = append(m.nodes[:i], m.nodes[i+1:]...)
}

// TruncateAfter drops every node after position i (i itself is kept).
func (m *MutableChain) TruncateAfter(i int) {
	m.nodes = m.nodes[:i+1]
}

// TailGenerators returns the union of own-generators at level i and
// every level after it ("the strong generators of the tail from i").
func (m *MutableChain) TailGenerators(i int) []perm.Permutation {
	var gens []perm.Permutation
	for ; i < len(m.nodes); i++ {
		gens = append(gens, m.nodes[i].own...)
	}
	return gens
}

// AllGenerators returns the full strong generating set.
func (m *MutableChain) AllGenerators() []perm.Permutation { return m.TailGenerators(0) }

// Freeze validates the chain-level invariants — no ownGenerator of a
// node fixes that node's own base point — and publishes an immutable
// Chain. It never returns a partially built chain: on invariant
// failure it returns ErrInvariantViolation and a nil Chain.
func (m *MutableChain) Freeze() (*Chain, error) {
	var head, tail *Node
	for i, mn := range m.nodes {
		for _, g := range mn.own {
			if g.Image(mn.beta) == mn.beta {
				return nil, fmt.Errorf("%w: ownGenerator of node %d fixes its own base point %d", ErrInvariantViolation, i, mn.beta)
			}
		}
		n := &Node{
			Beta:          mn.beta,
			Transversal:   mn.tr,
			OwnGenerators: append([]perm.Permutation(nil), mn.own...),
		}
		if head == nil {
			head = n
		} else {
			tail.Next = n
		}
		tail = n
	}
	return &Chain{head: head}, nil
}
