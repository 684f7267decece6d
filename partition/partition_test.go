// SPDX-License-Identifier: MIT
//
package partition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcanlas/alasc/perm"
)

func TestNew_BuildsBlocksInOrder(t *testing.T) {
	p, err := New([][]int{{0, 1}, {2, 3}})
	require.NoError(t, err)
	assert.Equal(t, 4, p.Domain())
	assert.Equal(t, 2, p.NumBlocks())
	assert.Equal(t, []int{0, 1}, p.Block(0))
	assert.Equal(t, []int{2, 3}, p.Block(1))
	assert.Equal(t, 0, p.BlockOf(1))
	assert.Equal(t, 1, p.BlockOf(2))
}

func TestNew_RejectsEmptyBlock(t *testing.T) {
	_, err := New([][]int{{0, 1}, {}})
	assert.ErrorIs(t, err, ErrInvalidPartition)
}

func TestNew_RejectsDuplicatePoint(t *testing.T) {
	_, err := New([][]int{{0, 1}, {1, 2}})
	assert.ErrorIs(t, err, ErrInvalidPartition)
}

func TestNew_RejectsUncoveredPoint(t *testing.T) {
	_, err := New([][]int{{0, 2}})
	assert.ErrorIs(t, err, ErrInvalidPartition)
}

func TestInvariantUnder_BlockSwapIsInvariant(t *testing.T) {
	p, err := New([][]int{{0, 1}, {2, 3}})
	require.NoError(t, err)

	g, err := perm.FromCycles([]int{0, 2}, []int{1, 3})
	require.NoError(t, err)
	assert.True(t, p.InvariantUnder(g))
}

func TestInvariantUnder_PartialSwapIsNotInvariant(t *testing.T) {
	p, err := New([][]int{{0, 1}, {2, 3}})
	require.NoError(t, err)

	g, err := perm.FromCycles([]int{0, 2})
	require.NoError(t, err)
	assert.False(t, p.InvariantUnder(g))
}

func TestInvariantUnder_WithinBlockPermutationIsInvariant(t *testing.T) {
	p, err := New([][]int{{0, 1}, {2, 3}})
	require.NoError(t, err)

	g, err := perm.FromCycles([]int{0, 1})
	require.NoError(t, err)
	assert.True(t, p.InvariantUnder(g))
}
