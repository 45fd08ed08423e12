// Package shapeset provides identity-hashed, open-addressing sets of
// Shape values, sized for the enumeration driver's scale: millions of
// entries at the smaller factory configurations, hundreds of millions at
// the larger ones.
//
// What: Set is an insert/contains/delete hash set. IndexedSet layers a
// stable, insertion-order index on top — the shape the driver uses for
// halves, where the half-to-index mapping must never move an entry once
// assigned.
//
// Why: a packed Shape is already a near-perfect hash of itself; routing
// it through Go's built-in map forces a runtime string/byte hash and an
// interface-shaped bucket layout neither of which this domain needs.
// Open addressing over a flat, power-of-two-sized slot array — adapted
// from the probe-chain technique in the project's SwissTable-style
// reference implementation — keeps lookups to a handful of cache lines
// with no per-insert allocation.
//
// Complexity: expected O(1) amortized per Insert/Contains/Delete; O(n)
// Grow, triggered at 7/8 load exactly as in the reference design.
//
// Errors: none — every operation is total.
package shapeset
