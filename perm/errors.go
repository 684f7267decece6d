// SPDX-License-Identifier: MIT
//
package perm

import "errors"

// ErrInvalidPermutation is returned when fromImages is given a table
// that is not a bijection of [0, len(table)).
var ErrInvalidPermutation = errors.New("perm: invalid permutation")

// ErrDomainOverflow names a point lying beyond what an encoding can
// represent. No constructor in this package returns it: each one picks
// an encoding wide enough for the largest point it is given.
var ErrDomainOverflow = errors.New("perm: domain overflow")
