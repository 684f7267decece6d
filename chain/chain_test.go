// SPDX-License-Identifier: MIT
//
package chain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcanlas/alasc/perm"
)

// buildSym5Chain hand-assembles the textbook stabilizer chain for
// Sym(5) with base [0,1,2,3] to exercise Chain's operations without
// depending on the schreiersims package (constructed separately).
func buildSym5Chain(t *testing.T) *Chain {
	t.Helper()
	transposition, err := perm.FromCycles([]int{0, 1})
	require.NoError(t, err)
	fiveCycle, err := perm.FromCycles([]int{0, 1, 2, 3, 4})
	require.NoError(t, err)
	gens := []perm.Permutation{transposition, fiveCycle}

	m := NewMutableChain(perm.DefaultAction{})
	// Level 0: stabilizer chain under the full generating set.
	m.AppendNode(0, gens)
	// Symmetric-group fact: Sym(n)_0 is generated by all transpositions
	// fixing 0; this is enough strong-generator coverage for the test's
	// purposes (order correctness, sifting), not a full Schreier-Sims run.
	sym4, err := perm.FromCycles([]int{1, 2, 3, 4})
	require.NoError(t, err)
	t12, err := perm.FromCycles([]int{1, 2})
	require.NoError(t, err)
	m.AppendNode(1, []perm.Permutation{sym4, t12})
	sym3, err := perm.FromCycles([]int{2, 3, 4})
	require.NoError(t, err)
	m.AppendNode(2, []perm.Permutation{sym3})
	t34, err := perm.FromCycles([]int{3, 4})
	require.NoError(t, err)
	m.AppendNode(3, []perm.Permutation{t34})

	c, err := m.Freeze()
	require.NoError(t, err)
	return c
}

func TestOrderIsProductOfOrbitSizes(t *testing.T) {
	c := buildSym5Chain(t)
	assert.Equal(t, "120", c.Order().String())
}

func TestBaseAndLength(t *testing.T) {
	c := buildSym5Chain(t)
	assert.Equal(t, []int{0, 1, 2, 3}, c.Base())
	assert.Equal(t, 4, c.Length())
}

func TestSiftsMembership(t *testing.T) {
	c := buildSym5Chain(t)
	t34, _ := perm.FromCycles([]int{3, 4})
	assert.True(t, c.Sifts(t34))

	notAPermOfDomain, _ := perm.FromCycles([]int{5, 6})
	assert.False(t, c.Sifts(notAPermOfDomain))
}

func TestIsFixed(t *testing.T) {
	c := buildSym5Chain(t)
	assert.False(t, c.IsFixed(0))
}

func TestRandomElementSifts(t *testing.T) {
	c := buildSym5Chain(t)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		g := c.RandomElement(rng)
		assert.True(t, c.Sifts(g))
	}
}

func TestEmptyChainIsTrivialGroup(t *testing.T) {
	c := Empty()
	assert.Equal(t, "1", c.Order().String())
	assert.Equal(t, 0, c.Length())
	assert.True(t, c.Sifts(perm.Identity(0)))
}

func TestFreezeRejectsOwnGeneratorFixingBeta(t *testing.T) {
	m := NewMutableChain(perm.DefaultAction{})
	fixesZero, _ := perm.FromCycles([]int{1, 2})
	m.AppendNode(0, []perm.Permutation{fixesZero})
	_, err := m.Freeze()
	require.ErrorIs(t, err, ErrInvariantViolation)
}
