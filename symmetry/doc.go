// Package symmetry implements canonical forms under the dihedral group
// D_P acting on a Shape by rotation and mirror.
//
// What: EquivalentShapes enumerates every rotation and rotation-then-flip
// of a shape; EquivalentHalves pairs a half with its mirror image
// re-aligned to the west. Canonical and CanonicalHalf pick the integer
// minimum of each set — this is the form every stored shape and half
// must already be in before it is inserted into a set or compared for
// equality.
//
// Why: the same physical piece has P*2 bit-equal-but-distinct encodings
// (one per rotation, times mirrored or not); without a canonical form the
// enumeration's hash sets would track the same piece many times over.
//
// Complexity: EquivalentShapes does P rotations and P flips (each flip
// O(L*P)) and deduplicates through a small map before sorting;
// EquivalentHalves does one flip and one rotation.
//
// Errors: none; every operator here is total over Shape.
package symmetry
