// SPDX-License-Identifier: MIT
// Package schreiersims builds a stabilizer chain from a generating
// set, in both a deterministic variant (exhaustive Schreier-generator
// verification) and a randomized one (sampling until a known target
// order is reached). Both produce a chain.Chain whose Order equals
// the product of its nodes' orbit sizes; if a target order is
// supplied, constructors verify it before returning.
package schreiersims
