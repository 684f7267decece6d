// SPDX-License-Identifier: MIT
//
package perm

// idPerm is the identity on [0, infinity). It stores only a size
// hint used as its SupportMaxElement upper bound; it never actually
// moves anything regardless of that hint.
type idPerm struct {
	sizeHint int
}

// Identity returns the identity permutation with the given
// SupportMaxElement upper bound (0 if unknown/irrelevant).
func Identity(sizeHint int) Permutation {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return idPerm{sizeHint: sizeHint}
}

func (p idPerm) Image(k int) int    { return k }
func (p idPerm) InvImage(k int) int { return k }

func (p idPerm) Op(h Permutation) Permutation {
	// Composing the identity on the left is just h; return it
	// directly rather than building an equal-but-freshly-allocated
	// copy through the generic composer.
	return h
}

func (p idPerm) Inverse() Permutation { return p }

func (p idPerm) Support() []int { return nil }

func (p idPerm) SupportMin() (int, bool) { return 0, false }
func (p idPerm) SupportMax() (int, bool) { return 0, false }

func (p idPerm) SupportMaxElement() int { return p.sizeHint }

func (p idPerm) Sign() int { return 1 }

func (p idPerm) Equal(h Permutation) bool {
	return equalGeneric(p, h)
}

func (p idPerm) Hash() uint64 { return hashSeed }

func (p idPerm) String() string { return cycleString(p) }
