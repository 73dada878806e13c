// Command generate writes a random grid as a plain PBM file.
//
//	generate -w 512 -h 512 -percent 30 -seed 7 -out grid.pbm
//
// Positional arguments WIDTH HEIGHT PERCENT FILE are accepted as well.
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"

	"torus-life/pkg/core"
	"torus-life/pkg/pbm"
)

func main() {
	width := flag.Int("w", 256, "grid width")
	height := flag.Int("h", 256, "grid height")
	percent := flag.Int("percent", 25, "live cell percentage (1-100)")
	seed := flag.Int64("seed", 1, "random seed")
	out := flag.String("out", "grid.pbm", "output file")
	flag.Parse()

	if args := flag.Args(); len(args) > 0 {
		if len(args) != 4 {
			log.Fatalf("usage: generate [flags] [WIDTH HEIGHT PERCENT FILE]")
		}
		for i, dst := range []*int{width, height, percent} {
			v, err := strconv.Atoi(args[i])
			if err != nil {
				log.Fatalf("argument %d: %v", i+1, err)
			}
			*dst = v
		}
		*out = args[3]
	}

	grid, err := core.RandomGrid(*width, *height, *percent, *seed)
	if err != nil {
		log.Fatal(err)
	}
	if err := pbm.Save(*out, grid); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %dx%d grid with %d live cells to %s\n", grid.W, grid.H, grid.Population(), *out)
}
