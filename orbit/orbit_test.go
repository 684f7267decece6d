// SPDX-License-Identifier: MIT
//
package orbit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcanlas/alasc/perm"
)

func sym5Generators(t *testing.T) []perm.Permutation {
	t.Helper()
	transposition, err := perm.FromCycles([]int{0, 1})
	require.NoError(t, err)
	fiveCycle, err := perm.FromCycles([]int{0, 1, 2, 3, 4})
	require.NoError(t, err)
	return []perm.Permutation{transposition, fiveCycle}
}

func TestComputeOrbitOfSym5IsFull(t *testing.T) {
	o := Compute(0, sym5Generators(t), nil)
	assert.Equal(t, 5, o.Len())
	for k := 0; k < 5; k++ {
		assert.True(t, o.Contains(k))
	}
	assert.False(t, o.Contains(5))
}

func TestOrbitInvariantClosedUnderGenerators(t *testing.T) {
	gens := sym5Generators(t)
	o := Compute(0, gens, nil)
	for _, k := range o.Points() {
		for _, g := range gens {
			assert.True(t, o.Contains(g.Image(k)))
		}
	}
}

func TestOrbitOfFixedPointIsSingleton(t *testing.T) {
	g, _ := perm.FromCycles([]int{0, 1})
	o := Compute(7, []perm.Permutation{g}, nil)
	assert.Equal(t, 1, o.Len())
	assert.True(t, o.Contains(7))
}

func TestUpdatedClosesUnderAllGenerators(t *testing.T) {
	g1, _ := perm.FromCycles([]int{0, 1})
	o := Compute(0, []perm.Permutation{g1}, nil)
	require.Equal(t, 2, o.Len())

	g2, _ := perm.FromCycles([]int{1, 2})
	updated := o.Updated([]perm.Permutation{g2}, []perm.Permutation{g1, g2})
	assert.Equal(t, 3, updated.Len())
	for _, k := range []int{0, 1, 2} {
		assert.True(t, updated.Contains(k))
	}
}
