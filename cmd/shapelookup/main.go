// Command shapelookup answers a single creatability query against a
// dump produced by shapeenum: a shape is creatable iff it is reachable
// as a half-swap of two known halves, or its canonical form is a member
// of the persisted category-2 residue.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/shapezlab/shapeenum/enumerate"
	"github.com/shapezlab/shapeenum/result"
	"github.com/shapezlab/shapeenum/shape"
	"github.com/shapezlab/shapeenum/shapecfg"
	"github.com/shapezlab/shapeenum/shapeset"
	"github.com/shapezlab/shapeenum/symmetry"
)

func main() {
	layers := flag.Int("layers", 4, "number of layers L, must match the dump's producer")
	parts := flag.Int("parts", 4, "number of parts per layer P, must match the dump's producer")
	dumpPath := flag.String("dump", "", "path to a shapeenum dump file")
	flag.Parse()

	if *dumpPath == "" || flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: shapelookup -dump FILE [-layers L] [-parts P] SHAPE")
		os.Exit(2)
	}

	cfg, err := shapecfg.New(*layers, *parts)
	if err != nil {
		log.Fatalf("shapelookup: %v", err)
	}

	f, err := os.Open(*dumpPath)
	if err != nil {
		log.Fatalf("shapelookup: %v", err)
	}
	defer f.Close()

	r, err := result.Load(f, cfg)
	if err != nil {
		log.Fatalf("shapelookup: %v", err)
	}

	query, err := shape.ParseShape(cfg, flag.Arg(0))
	if err != nil {
		log.Fatalf("shapelookup: %v", err)
	}

	halvesIdx := shapeset.NewIndexedSet(len(r.Halves))
	for _, h := range r.Halves {
		halvesIdx.Append(h)
	}

	canon := symmetry.Canonical(cfg, query)
	creatable := enumerate.Combinable(cfg, halvesIdx, canon) || contains(r.Shapes, canon)

	if creatable {
		fmt.Println("creatable")
		return
	}
	fmt.Println("not creatable")
}

// contains reports whether v is present in a sorted ascending slice.
func contains(sorted []shape.Shape, v shape.Shape) bool {
	i := sort.Search(len(sorted), func(i int) bool { return sorted[i] >= v })

	return i < len(sorted) && sorted[i] == v
}
