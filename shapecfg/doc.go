// Package shapecfg holds the runtime (L,P) configuration shared by every
// other package in this module.
//
// The original game fixes L (layers) and P (parts per layer) at compile
// time via template parameters, so that a shape packs into a single
// machine word. Go has no integer template parameters at that
// granularity, so Config carries (L,P) as an explicit, validated value
// that every algorithm in shape/, physics/, symmetry/, quarter/, half/,
// and enumerate/ takes as its first argument — the same way the teacher
// threads a *core.Graph through bfs.BFS, dfs.DFS, and flow.Dinic instead
// of reaching for package-level globals.
//
// Errors:
//
//   - ErrNonPositiveDimension: L or P is zero or negative.
//   - ErrWordTooWide: 2*L*P exceeds 64 bits.
package shapecfg
