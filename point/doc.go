// SPDX-License-Identifier: MIT
// Package point defines Point, the unit a permutation group acts on,
// and the conversion layer between the library's internal 0-based
// convention and a caller's preferred 0- or 1-based textual convention.
package point
