package core

import (
	"errors"
	"fmt"
	"slices"
)

// MaxDimension bounds grid width and height so a grid always fits in memory.
const MaxDimension = 16384

var (
	// ErrInvalidDimensions is returned when a width or height is out of range.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrInvalidCell is returned when a cell buffer holds a value other than 0 or 1.
	ErrInvalidCell = errors.New("cell value must be 0 or 1")
)

// Grid stores a toroidal 2D grid of 0/1 cells in row-major order.
type Grid struct {
	W, H int
	data []uint8
}

// CheckDimensions reports whether w x h is a valid grid size.
func CheckDimensions(w, h int) error {
	if w < 1 || h < 1 || w > MaxDimension || h > MaxDimension {
		return fmt.Errorf("%w: %dx%d (want 1..%d)", ErrInvalidDimensions, w, h, MaxDimension)
	}
	return nil
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) (*Grid, error) {
	if err := CheckDimensions(w, h); err != nil {
		return nil, err
	}
	return &Grid{W: w, H: h, data: make([]uint8, w*h)}, nil
}

// GridFromCells copies cells into a new grid. The buffer is copied so the
// caller may reuse it afterwards.
func GridFromCells(cells []uint8, w, h int) (*Grid, error) {
	if err := CheckDimensions(w, h); err != nil {
		return nil, err
	}
	if len(cells) != w*h {
		return nil, fmt.Errorf("%w: %d cells for %dx%d", ErrInvalidDimensions, len(cells), w, h)
	}
	for i, c := range cells {
		if c > 1 {
			return nil, fmt.Errorf("%w: %d at index %d", ErrInvalidCell, c, i)
		}
	}
	return &Grid{W: w, H: h, data: slices.Clone(cells)}, nil
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// Get returns the cell at (x, y), wrapping out-of-range coordinates.
func (g *Grid) Get(x, y int) uint8 {
	x, y = g.Wrap(x, y)
	return g.data[g.Index(x, y)]
}

// Set marks the cell at (x, y) alive or dead, wrapping out-of-range coordinates.
func (g *Grid) Set(x, y int, alive bool) {
	x, y = g.Wrap(x, y)
	var v uint8
	if alive {
		v = 1
	}
	g.data[g.Index(x, y)] = v
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	clear(g.data)
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{W: g.W, H: g.H, data: slices.Clone(g.data)}
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	return g.W == other.W && g.H == other.H && slices.Equal(g.data, other.data)
}

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.data {
		n += int(c)
	}
	return n
}
