package life

import (
	"errors"
	"slices"
	"testing"

	"torus-life/pkg/core"
	"torus-life/pkg/kernel"
)

func newLife(t *testing.T, cfg Config) *Life {
	t.Helper()
	l, err := New(cfg)
	if err != nil {
		t.Fatalf("New(%+v): %v", cfg, err)
	}
	return l
}

func TestBlinkerOscillation(t *testing.T) {
	for _, name := range []string{"scalar", "packed1", "auto", "tiled"} {
		cfg := DefaultConfig()
		cfg.Width, cfg.Height, cfg.Kernel = 5, 5, name
		life := newLife(t, cfg)
		clear(life.Cells())

		w := life.Size().W
		set := func(x, y int) { life.Cells()[y*w+x] = 1 }
		set(2, 1)
		set(2, 2)
		set(2, 3)
		vertical := slices.Clone(life.Cells())

		life.Step()
		cells := life.Cells()

		expects := map[[2]int]bool{
			{1, 2}: true,
			{2, 2}: true,
			{3, 2}: true,
		}
		for y := 0; y < 5; y++ {
			for x := 0; x < 5; x++ {
				alive := cells[y*w+x] == 1
				if alive != expects[[2]int{x, y}] {
					t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", name, x, y, alive, expects[[2]int{x, y}])
				}
			}
		}

		life.Step()
		if !slices.Equal(life.Cells(), vertical) {
			t.Fatalf("%s: blinker did not return after two steps", name)
		}
		if got := life.Generation(); got != 2 {
			t.Fatalf("%s: Generation() = %d, want 2", name, got)
		}
	}
}

func TestAdvanceMatchesStep(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 48, 40
	stepped := newLife(t, cfg)
	for range 7 {
		stepped.Step()
	}
	for _, name := range []string{"packed8", "tiled", "vector16"} {
		cfg.Kernel = name
		advanced := newLife(t, cfg)
		if _, err := advanced.Advance(7); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !slices.Equal(advanced.Cells(), stepped.Cells()) {
			t.Fatalf("%s: Advance(7) differs from seven steps", name)
		}
		if got := advanced.Generation(); got != 7 {
			t.Fatalf("%s: Generation() = %d, want 7", name, got)
		}
	}
}

func TestAdvanceNegative(t *testing.T) {
	l := newLife(t, DefaultConfig())
	if _, err := l.Advance(-1); !errors.Is(err, kernel.ErrNegativeGenerations) {
		t.Fatalf("Advance(-1) error = %v, want ErrNegativeGenerations", err)
	}
}

func TestResetIsDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 32, 32
	a, b := newLife(t, cfg), newLife(t, cfg)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("same seed produced different boards")
	}
	a.Step()
	a.Reset(cfg.Seed)
	if !slices.Equal(a.Cells(), b.Cells()) || a.Generation() != 0 {
		t.Fatal("Reset did not restore the seeded board")
	}
	if a.Population() == 0 {
		t.Fatal("seeded board is empty")
	}
}

func TestNewRejectsNarrowGrid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height, cfg.Kernel = 8, 8, "vector16"
	if _, err := New(cfg); !errors.Is(err, kernel.ErrInvalidWidth) {
		t.Fatalf("New error = %v, want ErrInvalidWidth", err)
	}
	cfg.Kernel = "simd9000"
	if _, err := New(cfg); !errors.Is(err, kernel.ErrUnknownKernel) {
		t.Fatalf("New error = %v, want ErrUnknownKernel", err)
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"w": "64", "h": "32", "percent": "40", "seed": "9",
		"kernel": "packed4", "workers": "3",
	})
	want := Config{Width: 64, Height: 32, Percent: 40, Seed: 9, Kernel: "packed4", Workers: 3}
	if c != want {
		t.Fatalf("FromMap = %+v, want %+v", c, want)
	}
	bad := FromMap(map[string]string{"w": "-1", "percent": "101", "workers": "x"})
	if bad != DefaultConfig() {
		t.Fatalf("FromMap with bad values = %+v, want defaults", bad)
	}
}

func TestRegistered(t *testing.T) {
	f, ok := core.Sims()["life"]
	if !ok {
		t.Fatal("life not registered")
	}
	sim, err := f(map[string]string{"w": "20", "h": "10"})
	if err != nil {
		t.Fatal(err)
	}
	if got := sim.Size(); got != (core.Size{W: 20, H: 10}) {
		t.Fatalf("Size() = %+v", got)
	}
	if _, err := f(map[string]string{"kernel": "bogus"}); err == nil {
		t.Fatal("expected error for unknown kernel")
	}
}

func TestParameters(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height, cfg.Kernel = 16, 16, "packed2"
	l := newLife(t, cfg)
	if _, err := l.Advance(3); err != nil {
		t.Fatal(err)
	}
	snap := l.Parameters()
	for key, want := range map[string]string{"kernel": "packed2", "generation": "3", "w": "16"} {
		if got, ok := snap.Lookup(key); !ok || got != want {
			t.Errorf("Lookup(%q) = %q, %v, want %q", key, got, ok, want)
		}
	}
}
