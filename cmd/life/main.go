// Command life advances a Game of Life grid and optionally writes the result
// as a plain PBM file.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"slices"

	"torus-life/pkg/core"
	"torus-life/pkg/kernel"
	"torus-life/pkg/pbm"
)

func main() {
	in := flag.String("in", "", "PBM file to load (default: generate a random grid)")
	out := flag.String("out", "", "PBM file to write the final generation to")
	width := flag.Int("w", 1024, "grid width when generating")
	height := flag.Int("h", 1024, "grid height when generating")
	percent := flag.Int("percent", 25, "live cell percentage when generating (1-100)")
	seed := flag.Int64("seed", 1, "random seed when generating")
	gens := flag.Int("gens", 100, "generations to simulate")
	kernelName := flag.String("kernel", "auto", "stepping kernel (auto, scalar, packed1, packed2, packed4, packed8, vector16, tiled)")
	workers := flag.Int("workers", 0, "tiled kernel workers (0 = GOMAXPROCS)")
	verify := flag.Bool("verify", false, "check the result against the scalar kernel")
	verbose := flag.Bool("v", false, "log kernel dispatch decisions")
	flag.Parse()

	if *verbose {
		kernel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	grid, err := load(*in, *width, *height, *percent, *seed)
	if err != nil {
		log.Fatalf("load grid: %v", err)
	}

	kind, err := kernel.ParseKind(*kernelName)
	if err != nil {
		log.Fatal(err)
	}
	var stepper kernel.Stepper
	switch kind {
	case kernel.Auto:
	case kernel.KindTiled:
		stepper = kernel.NewTiled(*workers, nil)
	default:
		if stepper, err = kernel.New(kind); err != nil {
			log.Fatal(err)
		}
	}

	var want []uint8
	if *verify {
		want = slices.Clone(grid.Cells())
		if err := kernel.Simulate(want, grid.W, grid.H, *gens, kernel.Scalar); err != nil {
			log.Fatalf("scalar reference: %v", err)
		}
	}

	var simErr error
	elapsed := core.Time(func() {
		simErr = kernel.Simulate(grid.Cells(), grid.W, grid.H, *gens, stepper)
	})
	if simErr != nil {
		log.Fatalf("simulate: %v", simErr)
	}

	name := kind.String()
	if stepper == nil {
		name = kernel.Select(grid.W).Name()
	}
	fmt.Printf("%dx%d, %d generations with %s: %v (population %d)\n",
		grid.W, grid.H, *gens, name, elapsed, grid.Population())
	fmt.Printf("cpu: %s\n", kernel.CPUFeatures())

	if *verify {
		if !slices.Equal(grid.Cells(), want) {
			log.Fatalf("verify: %s result differs from scalar", name)
		}
		fmt.Println("verify: ok")
	}

	if *out != "" {
		if err := pbm.Save(*out, grid); err != nil {
			log.Fatalf("save grid: %v", err)
		}
	}
}

func load(path string, w, h, percent int, seed int64) (*core.Grid, error) {
	if path != "" {
		return pbm.Load(path)
	}
	return core.RandomGrid(w, h, percent, seed)
}
