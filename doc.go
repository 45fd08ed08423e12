// Package shapeenum enumerates every *creatable* shape in a circular-grid
// factory-automation puzzle and produces the two sets a separate lookup
// tool needs to answer "is this shape creatable?" in O(1) amortized.
//
// What is shapeenum?
//
//	A single-threaded, in-memory enumeration engine that starts from the
//	empty shape and closes it under a small set of game operations —
//	stack, pin-push, crystallize, cut, half-swap — collapsing rotational
//	and mirror symmetry as it goes.
//
// Under the hood, everything is organized under focused subpackages:
//
//	shapecfg/   — runtime (L,P) configuration
//	shape/      — packed-integer shape representation, bit algebra and the textual shape codec
//	physics/    — gravity, stacking, cutting, pin-pushing, crystallizing
//	symmetry/   — dihedral equivalence classes and canonical forms
//	shapeset/   — identity-hashed open-addressing sets over shape values
//	quarter/    — the conservative quarter pre-searcher
//	half/       — the half pre-seeder
//	enumerate/  — the two-frontier BFS enumeration driver
//	result/     — sorted result assembly and the binary dump/load codec
//	cmd/shapeenum/   — the enumeration command-line driver
//	cmd/shapelookup/ — the creatability lookup tool, queried against a dump
//
// The engine is a one-shot batch: it has no incremental/online mode and
// does not model color, animation, or the game's documented mutual-support
// bug (strict support semantics are used instead).
//
//	go get github.com/shapezlab/shapeenum
package shapeenum
