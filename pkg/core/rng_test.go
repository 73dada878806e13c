package core

import (
	"errors"
	"testing"
	"time"
)

func TestRandomGridDeterministic(t *testing.T) {
	a, err := RandomGrid(50, 40, 30, 42)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := RandomGrid(50, 40, 30, 42)
	c, _ := RandomGrid(50, 40, 30, 43)
	if !a.Equal(b) {
		t.Fatal("same seed produced different grids")
	}
	if a.Equal(c) {
		t.Fatal("different seeds produced identical grids")
	}
	pop := a.Population()
	if pop < 400 || pop > 800 {
		t.Fatalf("Population() = %d, want roughly 600", pop)
	}
}

func TestRandomGridFull(t *testing.T) {
	g, err := RandomGrid(8, 8, 100, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got := g.Population(); got != 64 {
		t.Fatalf("Population() = %d, want 64", got)
	}
}

func TestRandomGridPercentRange(t *testing.T) {
	for _, p := range []int{0, -5, 101} {
		if _, err := RandomGrid(4, 4, p, 1); !errors.Is(err, ErrInvalidPercent) {
			t.Errorf("RandomGrid percent %d error = %v, want ErrInvalidPercent", p, err)
		}
	}
}

func TestStopwatch(t *testing.T) {
	var sw Stopwatch
	if got := sw.Stop(); got != -1 {
		t.Fatalf("Stop() before Start = %v, want -1", got)
	}
	d := Time(func() { time.Sleep(time.Millisecond) })
	if d < time.Millisecond {
		t.Fatalf("Time() = %v, want at least 1ms", d)
	}
}

func TestParameterLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "a", Params: []Parameter{{Key: "x", Value: "1"}}},
		{Name: "b", Params: []Parameter{{Key: "y", Value: "2"}}},
	}}
	if v, ok := snap.Lookup("y"); !ok || v != "2" {
		t.Fatalf("Lookup(y) = %q, %v", v, ok)
	}
	if _, ok := snap.Lookup("z"); ok {
		t.Fatal("Lookup(z) found a missing key")
	}
}
