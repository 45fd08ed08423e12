// Command shapeenum runs the creatable-shape enumeration engine and
// either prints summary statistics (no arguments) or prints them and
// persists the result to a file (one argument).
package main

import (
	"flag"
	"log"
	"os"

	"github.com/shapezlab/shapeenum/enumerate"
	"github.com/shapezlab/shapeenum/result"
	"github.com/shapezlab/shapeenum/shapecfg"
)

func main() {
	layers := flag.Int("layers", 4, "number of layers L")
	parts := flag.Int("parts", 4, "number of parts per layer P")
	flag.Parse()

	cfg, err := shapecfg.New(*layers, *parts)
	if err != nil {
		log.Fatalf("shapeenum: %v", err)
	}

	log.Printf("shapeenum: enumerating L=%d P=%d", cfg.L, cfg.P)

	out := enumerate.Run(cfg, enumerate.WithProgress(func(processed uint64) {
		log.Printf("shapeenum: %d canonical shapes processed", processed)
	}))

	r := result.New(out.Quarters, out.Halves, out.Shapes)
	log.Printf("shapeenum: #quarters=%d #halves=%d #shapes(category-2)=%d",
		len(r.Quarters), len(r.Halves), len(r.Shapes))

	args := flag.Args()
	if len(args) == 0 {
		return
	}

	f, err := os.Create(args[0])
	if err != nil {
		log.Fatalf("shapeenum: %v", err)
	}
	defer f.Close()

	if err := r.Dump(f, cfg); err != nil {
		log.Fatalf("shapeenum: %v", err)
	}

	log.Printf("shapeenum: persisted to %s", args[0])
}
