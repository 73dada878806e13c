// Command lifebench runs every kernel on the same random grid, reports the
// time each took, and checks that all of them agree.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"torus-life/pkg/core"
	"torus-life/pkg/kernel"
)

type kernelList []string

func (l *kernelList) String() string {
	return strings.Join(*l, ",")
}

func (l *kernelList) Set(value string) error {
	*l = append(*l, strings.Split(value, ",")...)
	return nil
}

type result struct {
	name    string
	elapsed time.Duration
	cells   []uint8
	err     error
}

func main() {
	width := flag.Int("w", 1024, "grid width")
	height := flag.Int("h", 1024, "grid height")
	percent := flag.Int("percent", 25, "live cell percentage (1-100)")
	seed := flag.Int64("seed", 1, "random seed")
	gens := flag.Int("gens", 100, "generations per kernel")
	workers := flag.Int("workers", 0, "tiled kernel workers (0 = GOMAXPROCS)")
	verbose := flag.Bool("v", false, "log kernel dispatch and tiling decisions")
	var only kernelList
	flag.Var(&only, "kernel", "kernel to run (repeatable or comma separated; default all)")
	flag.Parse()

	if *verbose {
		kernel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	start, err := core.RandomGrid(*width, *height, *percent, *seed)
	if err != nil {
		log.Fatal(err)
	}

	kinds := kernel.Kinds()
	if len(only) > 0 {
		kinds = kinds[:0]
		for _, name := range only {
			k, err := kernel.ParseKind(name)
			if err != nil {
				log.Fatal(err)
			}
			kinds = append(kinds, k)
		}
	}

	fmt.Printf("%dx%d grid, %d%% live, %d generations, cpu: %s\n\n",
		*width, *height, *percent, *gens, kernel.CPUFeatures())

	var results []result
	for _, k := range kinds {
		var s kernel.Stepper
		if k == kernel.KindTiled {
			s = kernel.NewTiled(*workers, nil)
		} else if s, err = kernel.New(k); err != nil {
			log.Fatal(err)
		}
		r := result{name: k.String(), cells: slices.Clone(start.Cells())}
		r.elapsed = core.Time(func() {
			r.err = kernel.Simulate(r.cells, start.W, start.H, *gens, s)
		})
		results = append(results, r)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "kernel\ttime\tcells/ns\tstatus")
	var reference []uint8
	agree := true
	for _, r := range results {
		if r.err != nil {
			fmt.Fprintf(tw, "%s\t-\t-\t%v\n", r.name, r.err)
			continue
		}
		status := "ok"
		if reference == nil {
			reference = r.cells
		} else if !slices.Equal(r.cells, reference) {
			status = "MISMATCH"
			agree = false
		}
		rate := float64(start.W*start.H) * float64(*gens) / float64(max(r.elapsed.Nanoseconds(), 1))
		fmt.Fprintf(tw, "%s\t%v\t%.2f\t%s\n", r.name, r.elapsed.Round(time.Microsecond), rate, status)
	}
	tw.Flush()

	if !agree {
		fmt.Println("\nkernels disagree")
		os.Exit(1)
	}
	fmt.Println("\nall kernels agree")
}
