// SPDX-License-Identifier: MIT
// Package chain implements the stabilizer chain (base and strong
// generating set): a linked sequence of Nodes, each carrying a base
// point, its transversal, and the strong generators that first fix
// every earlier base point but move this one.
//
// A chain is built behind a MutableChain, the sole owner of its
// nodes during construction: config resolved, nodes appended and
// reshaped, then frozen into a read-only view. Freeze converts it
// into an immutable Chain safe to share across goroutines for
// read-only use.
//
// This package stores nodes array-backed with index addressing rather
// than as a doubly linked mutable structure with back-pointers,
// because Go has no natural place to stash a borrowed back-pointer
// without either an arena allocator or unsafe tricks; indexing into a
// slice gives the same "resettable parent" capability basechange and
// schreiersims need during construction with none of that machinery.
package chain
