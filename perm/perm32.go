// SPDX-License-Identifier: MIT
//
package perm

import "math/bits"

// perm32 packs a permutation of [0, 32) into three 64-bit words: 32
// slots of 5 bits each, slot k storing (image(k) - k) mod 32. Slots
// are laid out 12/12/8 across the three words (60, 60, and 40 bits
// used respectively) so no slot straddles a word boundary. It is
// selected whenever SupportMax() is in [16, 31].
const (
	perm32Width = 5
	perm32Mask  = 1<<perm32Width - 1 // 0x1F

	perm32SlotsW0 = 12
	perm32SlotsW1 = 12
	perm32SlotsW2 = 8
	perm32Slots   = perm32SlotsW0 + perm32SlotsW1 + perm32SlotsW2 // 32

	perm32UsedBitsW0 = perm32SlotsW0 * perm32Width // 60
	perm32UsedBitsW1 = perm32SlotsW1 * perm32Width // 60
	perm32UsedBitsW2 = perm32SlotsW2 * perm32Width // 40
)

type perm32 struct {
	words [3]uint64
}

// slotLocation returns which word holds slot k and its bit offset
// within that word.
func slotLocation32(k int) (wordIdx, offset int) {
	switch {
	case k < perm32SlotsW0:
		return 0, k * perm32Width
	case k < perm32SlotsW0+perm32SlotsW1:
		return 1, (k - perm32SlotsW0) * perm32Width
	default:
		return 2, (k - perm32SlotsW0 - perm32SlotsW1) * perm32Width
	}
}

func decode32(words [3]uint64, k int) int {
	w, off := slotLocation32(k)
	diff := (words[w] >> uint(off)) & perm32Mask
	return (k + int(diff)) & perm32Mask
}

func (p perm32) Image(k int) int {
	if k < 0 || k >= perm32Slots {
		return k
	}
	return decode32(p.words, k)
}

func (p perm32) InvImage(k int) int {
	if k < 0 || k >= perm32Slots {
		return k
	}
	for j := 0; j < perm32Slots; j++ {
		if decode32(p.words, j) == k {
			return j
		}
	}
	return k
}

func (p perm32) Op(h Permutation) Permutation {
	switch other := h.(type) {
	case idPerm:
		return p
	case perm32:
		return composePerm32(p, other)
	default:
		return composeGeneric(p, h)
	}
}

// composePerm32 composes two perm32 values slot-by-slot, then
// downgrades to perm16 if the product's support turns out to fit —
// e.g. two "wide" permutations whose product is narrow must shrink.
func composePerm32(a, b perm32) Permutation {
	var words [3]uint64
	for k := 0; k < perm32Slots; k++ {
		img := decode32(b.words, decode32(a.words, k))
		diff := uint64(img-k) & perm32Mask
		w, off := slotLocation32(k)
		words[w] |= diff << uint(off)
	}
	result := perm32{words: words}
	if max, ok := result.SupportMax(); !ok || max <= 15 {
		return downgradeTo16(result)
	}
	return result
}

func downgradeTo16(p perm32) Permutation {
	max, ok := p.SupportMax()
	if !ok {
		return idPerm{sizeHint: perm32Slots - 1}
	}
	if max > 15 {
		return p
	}
	var word uint64
	for k := 0; k <= 15; k++ {
		img := decode32(p.words, k)
		diff := uint64(img-k) & perm16Mask
		word |= diff << uint(k*perm16Width)
	}
	return perm16{word: word}
}

func (p perm32) Inverse() Permutation {
	var words [3]uint64
	for k := 0; k < perm32Slots; k++ {
		img := decode32(p.words, k)
		diff := uint64(k-img) & perm32Mask
		w, off := slotLocation32(img)
		words[w] |= diff << uint(off)
	}
	return perm32{words: words}
}

func (p perm32) Support() []int {
	var s []int
	for k := 0; k < perm32Slots; k++ {
		if decode32(p.words, k) != k {
			s = append(s, k)
		}
	}
	return s
}

// usedBitsFor returns how many low bits of word i actually hold slots.
func usedBitsFor(i int) int {
	switch i {
	case 0:
		return perm32UsedBitsW0
	case 1:
		return perm32UsedBitsW1
	default:
		return perm32UsedBitsW2
	}
}

// slotBaseFor returns the first slot index stored in word i.
func slotBaseFor(i int) int {
	switch i {
	case 0:
		return 0
	case 1:
		return perm32SlotsW0
	default:
		return perm32SlotsW0 + perm32SlotsW1
	}
}

func (p perm32) SupportMin() (int, bool) {
	for i := 0; i < 3; i++ {
		if p.words[i] == 0 {
			continue
		}
		tz := bits.TrailingZeros64(p.words[i])
		return slotBaseFor(i) + tz/perm32Width, true
	}
	return 0, false
}

func (p perm32) SupportMax() (int, bool) {
	for i := 2; i >= 0; i-- {
		if p.words[i] == 0 {
			continue
		}
		used := usedBitsFor(i)
		lz := bits.LeadingZeros64(p.words[i]) - (64 - used)
		bitIdx := used - 1 - lz
		return slotBaseFor(i) + bitIdx/perm32Width, true
	}
	return 0, false
}

func (p perm32) SupportMaxElement() int { return perm32Slots - 1 }

func (p perm32) Sign() int { return computeSign(p) }

func (p perm32) Equal(h Permutation) bool { return equalGeneric(p, h) }

func (p perm32) Hash() uint64 { return hashGeneric(p) }

func (p perm32) String() string { return cycleString(p) }
