package core

import (
	"errors"
	"testing"
)

func TestCheckDimensions(t *testing.T) {
	for _, sz := range [][2]int{{1, 1}, {3, 3}, {MaxDimension, 1}} {
		if err := CheckDimensions(sz[0], sz[1]); err != nil {
			t.Errorf("CheckDimensions(%d, %d) = %v", sz[0], sz[1], err)
		}
	}
	for _, sz := range [][2]int{{0, 1}, {1, -2}, {MaxDimension + 1, 4}} {
		if err := CheckDimensions(sz[0], sz[1]); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("CheckDimensions(%d, %d) = %v, want ErrInvalidDimensions", sz[0], sz[1], err)
		}
	}
}

func TestGridWrapAndSet(t *testing.T) {
	g, err := NewGrid(4, 3)
	if err != nil {
		t.Fatal(err)
	}
	g.Set(-1, -1, true)
	if got := g.Get(3, 2); got != 1 {
		t.Fatalf("Get(3, 2) = %d, want 1", got)
	}
	if got := g.Get(7, 5); got != 1 {
		t.Fatalf("Get(7, 5) = %d, want 1", got)
	}
	if got := g.Population(); got != 1 {
		t.Fatalf("Population() = %d, want 1", got)
	}
	c := g.Clone()
	g.Clear()
	if g.Population() != 0 || c.Population() != 1 {
		t.Fatal("Clone shares storage with the original")
	}
	if g.Equal(c) {
		t.Fatal("Equal reported different grids as equal")
	}
}

func TestGridFromCells(t *testing.T) {
	cells := []uint8{0, 1, 1, 0}
	g, err := GridFromCells(cells, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	cells[0] = 1
	if g.Get(0, 0) != 0 {
		t.Fatal("GridFromCells did not copy its input")
	}
	if _, err := GridFromCells([]uint8{0, 2}, 2, 1); !errors.Is(err, ErrInvalidCell) {
		t.Fatalf("error = %v, want ErrInvalidCell", err)
	}
	if _, err := GridFromCells([]uint8{0, 1, 0}, 2, 2); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("error = %v, want ErrInvalidDimensions", err)
	}
}
