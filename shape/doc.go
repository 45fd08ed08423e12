// Package shape implements the packed-integer shape representation and its
// bit algebra: cell get/set, layer counting, rotation, mirroring, type
// masks, and the textual codec used to parse and print shapes at the
// command line.
//
// A Shape is a single uint64: cell (layer, part) occupies bits
// [2*(layer*P+part), 2*(layer*P+part)+2). Layer 0 is the ground; parts
// are indexed clockwise modulo P. Equality and ordering are plain integer
// equality/ordering — Shape is deliberately a value type, same as the
// teacher's Bitboard-shaped examples (single machine word, cheap to copy,
// cheap to use as a map/set key).
//
// Errors:
//
//   - ErrBadTextLength: a textual shape's length matches neither the
//     short nor the long form for the given Config (parse-side only —
//     the bit algebra itself never errors).
package shape
