// SPDX-License-Identifier: MIT
//
package partition

import "fmt"

// Partition is an immutable partition of the domain [0, Domain()) into
// blocks, stored as three parallel arrays instead of a slice of
// slices: points lists every point grouped contiguously by block,
// indexArray gives each point's position within points, startArray
// gives each block's starting position within points, and linkArray
// threads each block's points together as a singly linked list (next
// point in the same block, or -1 for the last one) so a block can be
// walked without scanning the whole domain.
type Partition struct {
	n          int
	points     []int
	indexArray []int
	startArray []int
	linkArray  []int
	blockOf    []int
}

// New builds a Partition from blocks, each a set of points. Every
// point in [0, n) — n being one past the largest point named — must
// appear in exactly one block.
func New(blocks [][]int) (*Partition, error) {
	n := 0
	for _, blk := range blocks {
		for _, p := range blk {
			if p+1 > n {
				n = p + 1
			}
		}
	}

	seen := make([]bool, n)
	points := make([]int, 0, n)
	indexArray := make([]int, n)
	blockOf := make([]int, n)
	linkArray := make([]int, n)
	startArray := make([]int, len(blocks))

	for b, blk := range blocks {
		if len(blk) == 0 {
			return nil, fmt.Errorf("%w: block %d is empty", ErrInvalidPartition, b)
		}
		startArray[b] = len(points)
		for i, p := range blk {
			if p < 0 || p >= n {
				return nil, fmt.Errorf("%w: point %d out of domain [0, %d)", ErrInvalidPartition, p, n)
			}
			if seen[p] {
				return nil, fmt.Errorf("%w: point %d appears in more than one block", ErrInvalidPartition, p)
			}
			seen[p] = true
			indexArray[p] = len(points)
			blockOf[p] = b
			if i+1 < len(blk) {
				linkArray[p] = blk[i+1]
			} else {
				linkArray[p] = -1
			}
			points = append(points, p)
		}
	}
	for p, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("%w: point %d is covered by no block", ErrInvalidPartition, p)
		}
	}

	return &Partition{
		n:          n,
		points:     points,
		indexArray: indexArray,
		startArray: startArray,
		linkArray:  linkArray,
		blockOf:    blockOf,
	}, nil
}

// Domain returns one past the largest point this partition covers.
func (p *Partition) Domain() int { return p.n }

// NumBlocks returns the number of blocks.
func (p *Partition) NumBlocks() int { return len(p.startArray) }

// BlockOf returns the id of the block containing point.
func (p *Partition) BlockOf(point int) int { return p.blockOf[point] }

// Block returns the points of block b, in the order New first saw
// them, by walking linkArray from the block's start.
func (p *Partition) Block(b int) []int {
	out := make([]int, 0)
	for cur := p.points[p.startArray[b]]; cur != -1; cur = p.linkArray[cur] {
		out = append(out, cur)
	}
	return out
}
