// Package physics implements the operators that let the enumeration
// engine apply factory actions to a shape and reach a stable result —
// support analysis, gravity/collapse, piece stacking, cutting,
// pin-pushing, and crystallization.
//
// Support propagation (Support, BreakCrystals) is a worklist-based DFS
// over the (layer, part) grid, grounded on the same "seed + propagate
// along an adjacency predicate" shape the teacher's gridgraph package
// uses for connected-component analysis — adapted here to a cylindrical
// grid (parts wrap modulo P, layers do not) and a support relation that
// differs by direction and by occupant type.
//
// Only ground-anchored material is ever treated as supported: a mutual
// support cycle (A supports B and B supports A with no path back to the
// ground) is never marked supported. Propagation only ever starts from
// layer-0 occupied cells and follows the directed support rules; nothing
// is assumed supported by default.
//
// Errors: none. Every operator here is a total function over Shape —
// malformed input is impossible because Shape's bit width is fixed by
// Config, and callers of the enumeration driver never hand it a shape
// outside that width.
package physics
