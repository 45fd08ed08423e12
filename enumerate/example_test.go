package enumerate_test

import (
	"fmt"

	"github.com/shapezlab/shapeenum/enumerate"
	"github.com/shapezlab/shapeenum/shapecfg"
)

// ExampleRun enumerates the tiny L=1,P=2 configuration and reports the
// size of each terminal set.
func ExampleRun() {
	cfg := shapecfg.MustNew(1, 2)
	out := enumerate.Run(cfg)

	fmt.Println(len(out.Quarters) > 0, len(out.Halves) > 0)
	// Output:
	// true true
}
