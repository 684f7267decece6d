// SPDX-License-Identifier: MIT
// Package basechange transforms a stabilizer chain so its base
// matches a caller-supplied BaseGuide, by conjugation where possible
// and by an adjacent base swap where not, falling back to a full
// Schreier-Sims rebuild whenever the cheaper path cannot be shown to
// preserve the group's order.
package basechange
