package enumerate_test

import (
	"testing"

	"github.com/shapezlab/shapeenum/enumerate"
)

// BenchmarkRun_Tiny measures a full two-frontier enumeration over the
// smallest non-trivial configuration; production configs (L=4,P=4) and
// (L=5,P=4) are far too large for a unit-test benchmark loop.
func BenchmarkRun_Tiny(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = enumerate.Run(tinyCfg)
	}
}
