// Package half implements the half pre-seeder that bootstraps the main
// enumeration driver's halves set before the BFS proper begins.
//
// What: PreSeed combines every ordered pair of quarters discovered by
// package quarter — one occupying part 0, the other rotated into part 1
// — lets the combination settle under gravity, canonicalizes it as a
// half, and records it. For P=4 this is believed exhaustive enough to
// seed the half-swap ("category-1") discovery path; for any other P the
// coupling between the quarter searcher and this step has not been
// validated, so PreSeed falls back to seeding only the empty half and
// lets cut() (package physics, invoked from package enumerate) discover
// the rest during the main BFS.
//
// Complexity: O(|quarters|^2) pairs when P=4, each an O(L*P) combine,
// collapse, and canonicalize. O(1) otherwise.
//
// Errors: none.
package half
