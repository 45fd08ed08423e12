// Package result implements assembling the enumeration driver's terminal
// sets into a sorted, persistable Result.
//
// What: New sorts the quarters, halves, and shapes the driver (package
// enumerate) discovered — ascending by integer value — into a Result.
// Dump and Load implement a binary persistence format: a local artifact
// (word size follows the Config, endianness matches the producing
// machine, no portability guarantee).
//
// Why: the enumeration core never sorts or persists anything itself —
// keeping that concern in its own package mirrors the teacher's
// separation between algorithm packages (bfs, dfs, flow) and the result
// types they return, which callers format or serialize on their own
// terms.
//
// Errors: Dump/Load return the underlying io error wrapped with %w and a
// "result: dump ..." / "result: load ..." prefix; the
// enumeration core itself is never touched by a persistence failure.
package result
