package kernel

import (
	"errors"
	"slices"
	"testing"

	"torus-life/pkg/core"
)

func allSteppers() []Stepper {
	return []Stepper{
		Scalar, Packed1, Packed2, Packed4, Packed8, Vector16,
		autoStepper{}, NewTiled(1, nil), NewTiled(3, Packed4), NewTiled(8, Vector16),
	}
}

func TestSimulateKernelsAgree(t *testing.T) {
	sizes := [][2]int{{16, 16}, {17, 5}, {33, 40}, {64, 64}, {100, 3}}
	for i, sz := range sizes {
		w, h := sz[0], sz[1]
		start := randomCells(uint64(i+7), w*h)

		want := slices.Clone(start)
		for range 10 {
			want = reference(want, w, h)
		}

		for _, s := range allSteppers() {
			grid := slices.Clone(start)
			if err := Simulate(grid, w, h, 10, s); err != nil {
				t.Fatalf("%s %dx%d: %v", s.Name(), w, h, err)
			}
			if !slices.Equal(grid, want) {
				t.Fatalf("%s %dx%d: result differs from reference", s.Name(), w, h)
			}
		}
	}
}

func TestSimulateZeroGenerations(t *testing.T) {
	start := randomCells(3, 20*20)
	for _, s := range allSteppers() {
		grid := slices.Clone(start)
		if err := Simulate(grid, 20, 20, 0, s); err != nil {
			t.Fatalf("%s: %v", s.Name(), err)
		}
		if !slices.Equal(grid, start) {
			t.Fatalf("%s: zero generations changed the grid", s.Name())
		}
	}
}

func TestSimulateInPlaceForOddAndEven(t *testing.T) {
	const w, h = 5, 5
	for _, gens := range []int{1, 2, 3} {
		grid := make([]uint8, w*h)
		grid[1*w+2], grid[2*w+2], grid[3*w+2] = 1, 1, 1
		vertical := slices.Clone(grid)
		data := &grid[0]

		if err := Simulate(grid, w, h, gens, Packed1); err != nil {
			t.Fatal(err)
		}
		if &grid[0] != data {
			t.Fatalf("gens=%d: grid backing array replaced", gens)
		}
		if even := gens%2 == 0; even != slices.Equal(grid, vertical) {
			t.Fatalf("gens=%d: blinker in wrong phase: %v", gens, grid)
		}
		g, err := core.GridFromCells(grid, w, h)
		if err != nil {
			t.Fatal(err)
		}
		if got := g.Population(); got != 3 {
			t.Fatalf("gens=%d: population = %d, want 3", gens, got)
		}
	}
}

func TestSimulateSmallTorus(t *testing.T) {
	grid := []uint8{0, 0, 0, 0, 1, 0, 0, 0, 0}
	if err := Simulate(grid, 3, 3, 1, nil); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(grid, make([]uint8, 9)) {
		t.Fatalf("grid = %v, want all dead", grid)
	}
}

func TestSimulateSmallPatterns(t *testing.T) {
	grid := func(w, h int, live ...[2]int) []uint8 {
		g := make([]uint8, w*h)
		for _, p := range live {
			g[p[1]*w+p[0]] = 1
		}
		return g
	}
	tests := []struct {
		name  string
		w, h  int
		start []uint8
		want  []uint8
	}{
		{"lone cell 3x3", 3, 3, grid(3, 3, [2]int{0, 0}), grid(3, 3)},
		{"lone cell 16x16", 16, 16, grid(16, 16, [2]int{0, 0}), grid(16, 16)},
		{"block 4x4", 4, 4,
			grid(4, 4, [2]int{0, 0}, [2]int{1, 0}, [2]int{0, 1}, [2]int{1, 1}),
			grid(4, 4, [2]int{0, 0}, [2]int{1, 0}, [2]int{0, 1}, [2]int{1, 1})},
		{"block across corner 16x16", 16, 16,
			grid(16, 16, [2]int{15, 15}, [2]int{0, 15}, [2]int{15, 0}, [2]int{0, 0}),
			grid(16, 16, [2]int{15, 15}, [2]int{0, 15}, [2]int{15, 0}, [2]int{0, 0})},
	}
	for _, tt := range tests {
		for _, gens := range []int{1, 2, 7} {
			for _, s := range allSteppers() {
				if s.Lanes() > tt.w {
					continue
				}
				g := slices.Clone(tt.start)
				if err := Simulate(g, tt.w, tt.h, gens, s); err != nil {
					t.Fatalf("%s %s gens=%d: %v", tt.name, s.Name(), gens, err)
				}
				if !slices.Equal(g, tt.want) {
					t.Fatalf("%s %s gens=%d: grid = %v, want %v", tt.name, s.Name(), gens, g, tt.want)
				}
			}
		}
	}
}

func TestSimulateErrors(t *testing.T) {
	tests := []struct {
		name   string
		grid   []uint8
		w, h   int
		gens   int
		s      Stepper
		target error
	}{
		{"length mismatch", make([]uint8, 10), 4, 4, 1, nil, core.ErrInvalidDimensions},
		{"zero width", nil, 0, 4, 1, nil, core.ErrInvalidDimensions},
		{"negative generations", make([]uint8, 16), 4, 4, -1, nil, ErrNegativeGenerations},
		{"narrow for packed8", make([]uint8, 16), 4, 4, 1, Packed8, ErrInvalidWidth},
		{"narrow for vector", make([]uint8, 8*8), 8, 8, 1, Vector16, ErrInvalidWidth},
		{"narrow for tiled vector", make([]uint8, 8*8), 8, 8, 1, NewTiled(2, Vector16), ErrInvalidWidth},
	}
	for _, tt := range tests {
		err := Simulate(tt.grid, tt.w, tt.h, tt.gens, tt.s)
		if !errors.Is(err, tt.target) {
			t.Errorf("%s: error = %v, want %v", tt.name, err, tt.target)
		}
	}
}

func TestSimulateRejectsBeforeWriting(t *testing.T) {
	grid := randomCells(9, 8*8)
	start := slices.Clone(grid)
	if err := Simulate(grid, 8, 8, 5, Vector16); err == nil {
		t.Fatal("expected error for width 8 with vector16")
	}
	if !slices.Equal(grid, start) {
		t.Fatal("grid modified by failed simulation")
	}
}

func TestBuffersAlternate(t *testing.T) {
	grid := []uint8{1, 2, 3}
	b := NewBuffers(grid)
	if &b.Current()[0] != &grid[0] {
		t.Fatal("Current is not the caller's grid")
	}
	copy(b.Next(), []uint8{4, 5, 6})
	b.Swap()
	if got := b.Generation(); got != 1 {
		t.Fatalf("Generation() = %d, want 1", got)
	}
	if !slices.Equal(b.Current(), []uint8{4, 5, 6}) {
		t.Fatalf("Current() = %v after swap", b.Current())
	}
	b.Commit()
	if !slices.Equal(grid, []uint8{4, 5, 6}) {
		t.Fatalf("grid = %v after commit, want [4 5 6]", grid)
	}
	b.Advance(4)
	if got := b.Generation(); got != 5 {
		t.Fatalf("Generation() = %d, want 5", got)
	}
	if &b.Current()[0] != &grid[0] {
		t.Fatal("even advance moved the current slot")
	}
}

func BenchmarkSimulate(b *testing.B) {
	const w, h = 256, 256
	start := randomCells(1, w*h)
	for _, s := range []Stepper{Scalar, Packed1, Packed2, Packed4, Packed8, Vector16, NewTiled(0, nil)} {
		b.Run(s.Name(), func(b *testing.B) {
			grid := slices.Clone(start)
			b.SetBytes(w * h)
			for i := 0; i < b.N; i++ {
				if err := Simulate(grid, w, h, 1, s); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
