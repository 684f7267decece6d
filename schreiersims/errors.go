// SPDX-License-Identifier: MIT
//
package schreiersims

import "errors"

// ErrIncompleteChain is returned when a caller-supplied target order
// disagrees with the order of the chain actually constructed.
var ErrIncompleteChain = errors.New("schreiersims: incomplete chain")

// ErrCancelled is returned when the builder's context is cancelled
// before construction finishes.
var ErrCancelled = errors.New("schreiersims: cancelled")

// ErrNeedRandSource is returned by BuildRandomized when no Rng was
// configured — reproducibility requires an explicit one, never a
// hidden global source.
var ErrNeedRandSource = errors.New("schreiersims: rng is required")

// ErrNeedTargetOrder is returned by BuildRandomized, which has no
// deterministic termination criterion other than matching a known
// target order.
var ErrNeedTargetOrder = errors.New("schreiersims: target order is required")
