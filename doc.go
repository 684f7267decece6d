// SPDX-License-Identifier: MIT
// Package permgroup is your toolkit for computing with finite
// permutation groups in Go.
//
// 🚀 What is permgroup?
//
//	A pure-Go library that represents a permutation group implicitly by
//	a small generating set and computes with it efficiently:
//
//	  • Membership testing, order computation, random sampling
//	  • Set and partition stabilizers via backtracking search
//	  • Base and strong generating set (BSGS) construction and reshaping
//
// The central data structure is a stabilizer chain: a factorization of
// the group along a chosen sequence of base points that turns
// exponentially large groups into polynomially sized descriptions.
//
// Under the hood, everything is organized under focused subpackages:
//
//	point/         — 0-/1-based point conversion
//	perm/          — the Permutation value type, its encodings, and the Action capability
//	orbit/         — orbit computation (BFS closure under a generating set)
//	transversal/   — coset representative bookkeeping for one base point
//	chain/         — the BSGS chain: Node, Chain, mutable → immutable lifecycle
//	schreiersims/  — deterministic and randomized chain construction
//	basechange/    — reshaping a chain's base by swap or conjugation
//	search/        — the generic backtracking subgroup-search driver
//	partition/     — unordered-partition stabilizer search
//
// This root package exposes Grp, the facade most callers need: build a
// group from generators, ask its order, test membership, and derive
// stabilizers or intersections.
package permgroup
