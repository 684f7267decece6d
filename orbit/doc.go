// SPDX-License-Identifier: MIT
// Package orbit computes the orbit of a point under a generating set:
// the smallest set of points containing beta and closed under the
// action of every generator. It is the BFS building block the rest of
// this module's chain machinery is built from, generalizing the
// teacher's graph BFS walk from graph vertices to integer points.
package orbit
