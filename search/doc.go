// SPDX-License-Identifier: MIT
// Package search provides a single generic backtracking driver that
// walks a stabilizer chain in depth-first order to enumerate, or test
// membership in, a subgroup H = {g in G : P(g)} for a predicate P
// supplied as a SubgroupDefinition. The driver prunes whenever a
// per-level Test rejects a partial product, and composes the partial
// products as it descends so the predicate itself only has to look at
// one fully assembled element per leaf.
package search
