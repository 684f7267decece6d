// SPDX-License-Identifier: MIT
//
package basechange

import "errors"

// ErrCancelled is returned when the configured context is cancelled
// before a base change finishes.
var ErrCancelled = errors.New("basechange: cancelled")

// ErrBaseChangeFailed marks an internal bug: a from-scratch rebuild
// that verified against its target order lost that order again while
// driving its base toward a guide's preferences. Never a user error.
var ErrBaseChangeFailed = errors.New("basechange: order diverged while matching base")
