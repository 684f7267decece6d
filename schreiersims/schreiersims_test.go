// SPDX-License-Identifier: MIT
//
package schreiersims

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcanlas/alasc/chain"
	"github.com/mcanlas/alasc/perm"
)

func sym(n int, t *testing.T) []perm.Permutation {
	t.Helper()
	var gens []perm.Permutation
	if n >= 2 {
		tr, err := perm.FromCycles([]int{0, 1})
		require.NoError(t, err)
		gens = append(gens, tr)
	}
	if n >= 3 {
		cyc := make([]int, n)
		for i := range cyc {
			cyc[i] = i
		}
		full, err := perm.FromCycles(cyc)
		require.NoError(t, err)
		gens = append(gens, full)
	}
	return gens
}

func factorial(n int) *big.Int {
	out := big.NewInt(1)
	for i := 2; i <= n; i++ {
		out.Mul(out, big.NewInt(int64(i)))
	}
	return out
}

func TestBuildDeterministic_Sym4Order(t *testing.T) {
	c, err := BuildDeterministic(sym(4, t), perm.DefaultAction{})
	require.NoError(t, err)
	assert.Equal(t, factorial(4), c.Order())
}

func TestBuildDeterministic_Sym5Order(t *testing.T) {
	c, err := BuildDeterministic(sym(5, t), perm.DefaultAction{})
	require.NoError(t, err)
	assert.Equal(t, factorial(5), c.Order())
}

func TestBuildDeterministic_MembershipAndNonMembership(t *testing.T) {
	c, err := BuildDeterministic(sym(4, t), perm.DefaultAction{})
	require.NoError(t, err)

	member, err := perm.FromCycles([]int{0, 2}, []int{1, 3})
	require.NoError(t, err)
	assert.True(t, c.Sifts(member))

	nonMember, err := perm.FromCycles([]int{5, 6})
	require.NoError(t, err)
	assert.False(t, c.Sifts(nonMember))
}

func TestBuildDeterministic_TrivialGroup(t *testing.T) {
	c, err := BuildDeterministic(nil, perm.DefaultAction{})
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1), c.Order())
	assert.Equal(t, 0, c.Length())
}

func TestBuildDeterministic_IdentityGeneratorIsDropped(t *testing.T) {
	c, err := BuildDeterministic([]perm.Permutation{perm.Identity(0)}, perm.DefaultAction{})
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1), c.Order())
}

func TestBuildDeterministic_TargetOrderMismatchFails(t *testing.T) {
	_, err := BuildDeterministic(sym(4, t), perm.DefaultAction{}, WithTargetOrder(big.NewInt(999)))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIncompleteChain)
}

func TestBuildDeterministic_TargetOrderMatchSucceeds(t *testing.T) {
	c, err := BuildDeterministic(sym(4, t), perm.DefaultAction{}, WithTargetOrder(factorial(4)))
	require.NoError(t, err)
	assert.Equal(t, factorial(4), c.Order())
}

func TestBuildRandomized_Sym4Order(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	c, err := BuildRandomized(sym(4, t), perm.DefaultAction{}, factorial(4), nil, rng)
	require.NoError(t, err)
	assert.Equal(t, factorial(4), c.Order())
}

func TestBuildRandomized_RequiresTargetOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := BuildRandomized(sym(4, t), perm.DefaultAction{}, nil, nil, rng)
	require.ErrorIs(t, err, ErrNeedTargetOrder)
}

func TestBuildRandomized_RequiresRng(t *testing.T) {
	_, err := BuildRandomized(sym(4, t), perm.DefaultAction{}, factorial(4), nil, nil)
	require.ErrorIs(t, err, ErrNeedRandSource)
}

func TestBuildRandomized_WithOracle(t *testing.T) {
	gens := sym(4, t)
	rng := rand.New(rand.NewSource(7))
	full, err := BuildDeterministic(gens, perm.DefaultAction{})
	require.NoError(t, err)
	oracle := func(r chain.Rng) perm.Permutation {
		return full.RandomElement(r)
	}
	c, err := BuildRandomized(gens, perm.DefaultAction{}, factorial(4), oracle, rng)
	require.NoError(t, err)
	assert.Equal(t, factorial(4), c.Order())
}
