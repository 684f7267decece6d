// SPDX-License-Identifier: MIT
// Package perm implements Permutation, a total bijection of a finite
// prefix of the non-negative integers extended to the identity beyond
// its support, together with the Action capability that abstracts
// "a group element acts on an integer point" for the rest of this
// module's search and chain machinery.
//
// A Permutation is picked automatically from four encodings by the
// size of its support, all implementing the same interface:
//
//	identity    — moves nothing; stores only a size hint
//	perm16      — supportMax <= 15, one 64-bit word, 4 bits/slot
//	perm32      — supportMax <= 31, three 64-bit words, 5 bits/slot
//	array (x3)  — larger domains, a byte/uint16/uint32 image table
//
// Construction always selects the narrowest encoding that can
// represent the permutation's actual support, and composing two
// permutations re-narrows the result the same way — composing two
// wide permutations whose product happens to fit in perm16 yields a
// perm16, not a perm32.
package perm
