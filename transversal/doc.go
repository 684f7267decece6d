// SPDX-License-Identifier: MIT
// Package transversal computes and maintains coset representatives
// for one base point: for each point alpha in the orbit of beta, a
// representative u(alpha) with beta·u(alpha) = alpha, and its inverse
// uInv(alpha). It is a BFS over the orbit with a parent-pointer-style
// bookkeeping, generalized from "previous vertex" to "group element
// taking beta to here".
package transversal
