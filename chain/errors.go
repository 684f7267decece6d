// SPDX-License-Identifier: MIT
//
package chain

import "errors"

// ErrInvariantViolation marks a chain that failed one of its own
// structural invariants at Freeze time: this is never a user error,
// it is a bug in whatever builder assembled the MutableChain, and the
// offending chain is discarded rather than repaired.
var ErrInvariantViolation = errors.New("chain: invariant violation")
