// SPDX-License-Identifier: MIT
//
package perm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromImagesRejectsNonBijection(t *testing.T) {
	_, err := FromImages([]int{0, 0, 2})
	require.ErrorIs(t, err, ErrInvalidPermutation)
}

func TestFromImagesRoundTrip(t *testing.T) {
	// transposition (1 2) in 0-based terms: swap points 0 and 1.
	g, err := FromImages([]int{1, 0})
	require.NoError(t, err)
	assert.Equal(t, 1, g.Image(0))
	assert.Equal(t, 0, g.Image(1))
	assert.Equal(t, 2, g.Image(2)) // beyond support: fixed
}

func TestOpRightActionConvention(t *testing.T) {
	// g = (0 1), h = (1 2); k·(g·h) = (k·g)·h.
	g, err := FromCycles([]int{0, 1})
	require.NoError(t, err)
	h, err := FromCycles([]int{1, 2})
	require.NoError(t, err)
	gh := g.Op(h)
	for k := 0; k < 4; k++ {
		want := h.Image(g.Image(k))
		assert.Equal(t, want, gh.Image(k), "point %d", k)
	}
}

func TestAssociativity(t *testing.T) {
	g, _ := FromCycles([]int{0, 1, 2})
	h, _ := FromCycles([]int{1, 3})
	f, _ := FromCycles([]int{0, 2, 3})
	left := g.Op(h).Op(f)
	right := g.Op(h.Op(f))
	for k := 0; k < 6; k++ {
		assert.Equal(t, left.Image(k), right.Image(k), "point %d", k)
	}
}

func TestInverseRoundTrip(t *testing.T) {
	g, _ := FromCycles([]int{0, 2, 4, 1})
	inv := g.Inverse()
	for k := 0; k < 6; k++ {
		assert.Equal(t, k, inv.Image(g.Image(k)))
		assert.Equal(t, k, g.Image(inv.Image(k)))
		assert.Equal(t, inv.Image(k), g.InvImage(k))
	}
}

func TestSignOfIdentityAndInverse(t *testing.T) {
	assert.Equal(t, 1, Identity(0).Sign())
	g, _ := FromCycles([]int{0, 1, 2, 3, 4})
	assert.Equal(t, g.Sign()*g.Inverse().Sign(), 1)
}

func TestSignKnownValues(t *testing.T) {
	transposition, _ := FromCycles([]int{0, 1})
	assert.Equal(t, -1, transposition.Sign())
	fiveCycle, _ := FromCycles([]int{0, 1, 2, 3, 4})
	assert.Equal(t, 1, fiveCycle.Sign())
}

func TestEqualAcrossEncodings(t *testing.T) {
	small, _ := FromCycles([]int{0, 1})
	// Build an equal permutation via a larger explicit table that
	// trims down to the same narrow encoding.
	images := make([]int, 40)
	for i := range images {
		images[i] = i
	}
	images[0], images[1] = 1, 0
	wide, err := FromImages(images)
	require.NoError(t, err)
	assert.True(t, small.Equal(wide))
	assert.Equal(t, small.Hash(), wide.Hash())
}

func TestFromCyclesLeftToRightComposition(t *testing.T) {
	// (0 2 1)·(0 1): apply the first cycle, then the second on top.
	g, err := FromCycles([]int{0, 2, 1}, []int{0, 1})
	require.NoError(t, err)
	first, _ := FromCycles([]int{0, 2, 1})
	second, _ := FromCycles([]int{0, 1})
	want := first.Op(second)
	for k := 0; k < 4; k++ {
		assert.Equal(t, want.Image(k), g.Image(k))
	}
}

func TestFromCyclesRejectsRepeatedPoint(t *testing.T) {
	_, err := FromCycles([]int{0, 1, 0})
	require.ErrorIs(t, err, ErrInvalidPermutation)
}

func TestStringIdentity(t *testing.T) {
	assert.Equal(t, "()", Identity(5).String())
}

func TestStringCycleNotation(t *testing.T) {
	g, _ := FromCycles([]int{0, 2, 1})
	assert.Equal(t, "(0 2 1)", g.String())
}
