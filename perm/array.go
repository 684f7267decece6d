// SPDX-License-Identifier: MIT
//
package perm

// arrayPerm stores an explicit image table for domains too large for
// the bit-packed encodings (SupportMax() > 31). Three element widths
// are used depending on how large the table needs to be, picking the
// narrowest integer type that can hold every image; all three share
// the same logic below and differ only in storage width.
type arrayWidth int

const (
	arrayByte arrayWidth = iota
	arrayShort
	arrayInt
)

type arrayPerm struct {
	width  arrayWidth
	bytes  []uint8
	shorts []uint16
	ints   []uint32
}

func newArrayPerm(images []int) arrayPerm {
	n := len(images)
	switch {
	case n <= 1<<8:
		b := make([]uint8, n)
		for i, v := range images {
			b[i] = uint8(v)
		}
		return arrayPerm{width: arrayByte, bytes: b}
	case n <= 1<<16:
		s := make([]uint16, n)
		for i, v := range images {
			s[i] = uint16(v)
		}
		return arrayPerm{width: arrayShort, shorts: s}
	default:
		iv := make([]uint32, n)
		for i, v := range images {
			iv[i] = uint32(v)
		}
		return arrayPerm{width: arrayInt, ints: iv}
	}
}

func (p arrayPerm) length() int {
	switch p.width {
	case arrayByte:
		return len(p.bytes)
	case arrayShort:
		return len(p.shorts)
	default:
		return len(p.ints)
	}
}

func (p arrayPerm) at(k int) int {
	switch p.width {
	case arrayByte:
		return int(p.bytes[k])
	case arrayShort:
		return int(p.shorts[k])
	default:
		return int(p.ints[k])
	}
}

func (p arrayPerm) Image(k int) int {
	if k < 0 || k >= p.length() {
		return k
	}
	return p.at(k)
}

func (p arrayPerm) InvImage(k int) int {
	n := p.length()
	if k >= 0 && k < n {
		for j := 0; j < n; j++ {
			if p.at(j) == k {
				return j
			}
		}
	}
	return k
}

func (p arrayPerm) Op(h Permutation) Permutation {
	if _, ok := h.(idPerm); ok {
		return p
	}
	return composeGeneric(p, h)
}

func (p arrayPerm) Inverse() Permutation {
	n := p.length()
	inv := make([]int, n)
	for k := 0; k < n; k++ {
		inv[p.at(k)] = k
	}
	return narrowestFromImages(inv)
}

func (p arrayPerm) Support() []int {
	n := p.length()
	var s []int
	for k := 0; k < n; k++ {
		if p.at(k) != k {
			s = append(s, k)
		}
	}
	return s
}

func (p arrayPerm) SupportMin() (int, bool) {
	n := p.length()
	for k := 0; k < n; k++ {
		if p.at(k) != k {
			return k, true
		}
	}
	return 0, false
}

func (p arrayPerm) SupportMax() (int, bool) {
	n := p.length()
	for k := n - 1; k >= 0; k-- {
		if p.at(k) != k {
			return k, true
		}
	}
	return 0, false
}

func (p arrayPerm) SupportMaxElement() int { return p.length() - 1 }

func (p arrayPerm) Sign() int { return computeSign(p) }

func (p arrayPerm) Equal(h Permutation) bool { return equalGeneric(p, h) }

func (p arrayPerm) Hash() uint64 { return hashGeneric(p) }

func (p arrayPerm) String() string { return cycleString(p) }
