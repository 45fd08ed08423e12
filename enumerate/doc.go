// Package enumerate implements the main two-frontier breadth-first
// search that discovers every creatable shape.
//
// What: Run seeds a half frontier from package half's pre-seed and starts
// the generic frontier empty (the empty shape is first reached as the
// empty half combined with itself), then alternates between them —
// always preferring the half frontier when it has unexplored entries —
// until both drain. The half frontier combines every pair of known
// halves (east-reoriented against west) to discover shapes reachable by
// a half-swap ("category-1"); the generic frontier applies stack, pin,
// and crystalize to shapes only reachable some other way ("category-2").
// A shape discovered fresh on the generic frontier can later be
// recognized as category-1 once more halves surface —
// processHalfCombination handles that reclassification by removing it
// from the category-2 residue, and still expands it if it had not yet
// been taken off the generic frontier.
//
// Why: this mirrors the teacher's worklist/frontier shape (bfs.BFS's
// queue-plus-visited-set, dfs.DFS's explicit stack) generalized to two
// cooperating frontiers instead of one, and to a membership set that
// supports O(1) "cancel in place" (queueSet) instead of plain visited
// marking, since an entry here can be invalidated after being queued.
//
// Complexity: proportional to the size of the discovered halves, shapes,
// and quarters sets — the shapes set grows into the hundreds of millions
// at the largest factory configurations, which is why every set here is backed
// by shapeset's identity-hashed storage rather than a Go map.
//
// Errors: none; Run always terminates — the set of reachable shapes is
// finite and closed under the available operators, and there is no
// cancellation path.
package enumerate
