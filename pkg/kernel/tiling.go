package kernel

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// CacheLineSize is the smallest tile, in cells, worth giving a worker of
// its own.
const CacheLineSize = 64

// TilePlan splits a grid into horizontal bands of whole rows.
type TilePlan struct {
	RowsPerTile int
	Workers     int
}

// PlanTiles divides height rows among workers. Bands smaller than a cache
// line are grown, which can lower the worker count. workers <= 0 means
// GOMAXPROCS.
func PlanTiles(width, height, workers int) TilePlan {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if height < 1 || width < 1 {
		return TilePlan{RowsPerTile: max(height, 0), Workers: 1}
	}
	rows := ceilDiv(height, workers)
	if rows*width < CacheLineSize {
		rows = ceilDiv(CacheLineSize, width)
	}
	rows = min(rows, height)
	return TilePlan{RowsPerTile: rows, Workers: ceilDiv(height, rows)}
}

// Rows returns the half-open row range owned by tile i.
func (p TilePlan) Rows(i, height int) (y0, y1 int) {
	y0 = i * p.RowsPerTile
	y1 = min(y0+p.RowsPerTile, height)
	return y0, y1
}

func ceilDiv(a, b int) int { return (a + b - 1) / b }

// Tiled runs an inner stepper on several goroutines, each owning a band of
// rows. Workers meet at a barrier after every generation.
type Tiled struct {
	workers int
	inner   Stepper
}

// NewTiled returns a tiling stepper. workers <= 0 means GOMAXPROCS and a nil
// inner stepper selects a kernel by width.
func NewTiled(workers int, inner Stepper) *Tiled {
	return &Tiled{workers: workers, inner: inner}
}

// StepParallel advances grid in place with the default worker count.
func StepParallel(grid []uint8, width, height, generations int) error {
	return NewTiled(0, nil).Simulate(grid, width, height, generations)
}

func (t *Tiled) Name() string {
	if t.inner == nil {
		return "tiled"
	}
	return "tiled/" + t.inner.Name()
}

func (t *Tiled) Lanes() int {
	if t.inner == nil {
		return 1
	}
	return t.inner.Lanes()
}

// StepRows splits rows [y0, y1) across the workers and returns when every
// band is written. Like every Stepper it expects width >= Lanes(); use Step
// for a checked single generation.
func (t *Tiled) StepRows(src, dst []uint8, width, height, y0, y1 int) {
	inner := resolve(t.inner, width)
	plan := PlanTiles(width, y1-y0, t.workers)
	if plan.Workers <= 1 {
		inner.StepRows(src, dst, width, height, y0, y1)
		return
	}
	var g errgroup.Group
	for i := range plan.Workers {
		a, b := plan.Rows(i, y1-y0)
		g.Go(func() error {
			inner.StepRows(src, dst, width, height, y0+a, y0+b)
			return nil
		})
	}
	_ = g.Wait()
}

// Simulate advances grid in place. Each worker keeps its own view of the
// source and destination buffers and swaps them after the barrier, so no
// worker starts generation i+1 before generation i is fully written.
func (t *Tiled) Simulate(grid []uint8, width, height, generations int) error {
	if err := checkGrid(grid, width, height); err != nil {
		return err
	}
	if generations < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeGenerations, generations)
	}
	inner := resolve(t.inner, width)
	if _, ok := inner.(Simulator); ok {
		return fmt.Errorf("kernel: %s cannot be nested in a tiled stepper", inner.Name())
	}
	if width < inner.Lanes() {
		return &WidthError{Kernel: inner.Name(), Required: inner.Lanes(), Width: width}
	}
	if generations == 0 {
		return nil
	}

	plan := PlanTiles(width, height, t.workers)
	Logger().Debug("kernel: tiling", "width", width, "height", height,
		"rows_per_tile", plan.RowsPerTile, "workers", plan.Workers, "kernel", inner.Name())

	b := NewBuffers(grid)
	if plan.Workers == 1 {
		run(b, inner, width, height, generations)
		b.Commit()
		return nil
	}

	bar := NewBarrier(plan.Workers)
	var g errgroup.Group
	for i := range plan.Workers {
		y0, y1 := plan.Rows(i, height)
		g.Go(func() error {
			src, dst := b.Current(), b.Next()
			for range generations {
				inner.StepRows(src, dst, width, height, y0, y1)
				bar.Wait()
				src, dst = dst, src
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	b.Advance(generations)
	b.Commit()
	return nil
}
