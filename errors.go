// SPDX-License-Identifier: MIT
//
package permgroup

import "errors"

// Stable sentinel errors for top-level operations.
//
// Subpackages define and return their own sentinels; the Grp methods
// in this package wrap the incomplete-chain, cancellation and
// invariant-violation ones onto these with %w (see translateErr) and
// return any other error unchanged — callers branch with errors.Is,
// never string comparison.
var (
	// ErrInvalidPermutation marks caller-supplied data that does not
	// describe a permutation (a non-bijective image table, an
	// inconsistent cycle, a malformed base).
	ErrInvalidPermutation = errors.New("permgroup: invalid permutation")

	// ErrDomainOverflow marks a request that exceeds the current
	// encoding's representable domain.
	ErrDomainOverflow = errors.New("permgroup: domain overflow")

	// ErrIncompleteChain marks a constructed chain whose order
	// disagrees with a caller-supplied target order.
	ErrIncompleteChain = errors.New("permgroup: incomplete chain")

	// ErrCancelled marks an operation aborted via its context.
	ErrCancelled = errors.New("permgroup: cancelled")

	// ErrInvariantViolation marks an internal bug: an invariant the
	// implementation is supposed to maintain unconditionally failed.
	// It is never a user error; the offending chain is discarded
	// rather than repaired.
	ErrInvariantViolation = errors.New("permgroup: invariant violation")
)
