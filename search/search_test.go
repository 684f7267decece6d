// SPDX-License-Identifier: MIT
//
package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcanlas/alasc/basechange"
	"github.com/mcanlas/alasc/chain"
	"github.com/mcanlas/alasc/perm"
	"github.com/mcanlas/alasc/schreiersims"
)

// evenPermDefinition finds every even permutation in the chain's
// group — a minimal, Test-free SubgroupDefinition exercising the
// driver's leaf-only pruning path.
type evenPermDefinition struct{}

func (evenPermDefinition) InSubgroup(g perm.Permutation) bool { return g.Sign() == 1 }
func (evenPermDefinition) BaseGuideOpt() (basechange.BaseGuide, bool) {
	return nil, false
}
func (evenPermDefinition) FirstLevelTest(c *chain.Chain) Test { return AcceptAllTest{} }

func sym4(t *testing.T) []perm.Permutation {
	t.Helper()
	t01, err := perm.FromCycles([]int{0, 1})
	require.NoError(t, err)
	c0123, err := perm.FromCycles([]int{0, 1, 2, 3})
	require.NoError(t, err)
	return []perm.Permutation{t01, c0123}
}

func TestSearch_EnumeratesAlternatingGroup(t *testing.T) {
	c, err := schreiersims.BuildDeterministic(sym4(t), perm.DefaultAction{})
	require.NoError(t, err)

	results, err := Search(c, evenPermDefinition{}, perm.DefaultAction{})
	require.NoError(t, err)
	assert.Len(t, results, 12) // |Alt(4)| = 4!/2

	for _, g := range results {
		assert.Equal(t, 1, g.Sign())
	}
}

func TestFindOne_StopsAtFirstMatch(t *testing.T) {
	c, err := schreiersims.BuildDeterministic(sym4(t), perm.DefaultAction{})
	require.NoError(t, err)

	g, ok, err := FindOne(c, evenPermDefinition{}, perm.DefaultAction{})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, g.Sign())
}
