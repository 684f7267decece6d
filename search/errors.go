// SPDX-License-Identifier: MIT
//
package search

import "errors"

// ErrCancelled is returned when the configured context is cancelled
// before a walk finishes.
var ErrCancelled = errors.New("search: cancelled")
