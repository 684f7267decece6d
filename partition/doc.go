// SPDX-License-Identifier: MIT
// Package partition represents a partition of a finite point domain
// as three parallel arrays — a flattened point order grouped by
// block, a start offset per block, and a per-point "next in this
// block" link — and exposes the unordered-partition invariance
// predicate a permutation must satisfy to stabilize it (mapping every
// block onto some block, not necessarily itself), plus a
// search.SubgroupDefinition that finds that stabilizer.
package partition
