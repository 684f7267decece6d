// SPDX-License-Identifier: MIT
//
package partition

import "errors"

// ErrInvalidPartition is returned when the blocks passed to New don't
// form a partition of a contiguous [0, n) domain: an empty block, a
// point repeated across blocks, a point outside [0, n), or a point in
// [0, n) covered by no block.
var ErrInvalidPartition = errors.New("partition: invalid partition")
