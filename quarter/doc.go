// Package quarter implements a conservative pre-searcher over quarters
// (shapes occupying only part 0 across every layer).
//
// What: Search runs a breadth-first closure seeded from the empty
// shape, applying every operator the main driver will eventually apply
// — stacking, pin-pushing, crystallizing, cutting — to a padded
// full-width working shape, then projecting the result back down to
// part 0. It is conservative: it may miss a quarter some other
// construction path reaches, but it never reports an unreachable one.
//
// Why: the main enumeration driver (package enumerate) needs a quarter
// set to seed its half pre-seeder (package half) before the BFS over
// full shapes starts; this package exists purely to bootstrap that seed
// cheaply, trading completeness for speed the way the teacher's
// gridgraph component-discovery passes trade exhaustive traversal for a
// bounded one when only connectivity (not full reachability) matters.
//
// Complexity: each dequeue does O(P) work building the filler and O(L)
// candidate expansions, each itself O(L*P); the total work is
// proportional to the discovered quarter closure size, never to the
// full shape space.
//
// Errors: none.
package quarter
