// Package kernel advances a toroidal Game of Life grid by whole generations.
//
// Every kernel computes the same transition: a cell is alive in the next
// generation if it has exactly three live neighbours, or exactly two and is
// alive now. Kernels differ only in how many cells they process at once:
//
//   - Scalar: one cell at a time, the reference implementation.
//   - Packed1/2/4/8: one byte per cell packed into an unsigned word, so a
//     single integer addition sums the neighbours of several cells.
//   - Vector16: sixteen one-byte lanes in a 128-bit vector. Built on
//     simd/archsimd when compiled with GOEXPERIMENT=simd on amd64, and on a
//     portable lane array otherwise.
//   - Tiled: splits rows across worker goroutines and wraps any of the above.
//
// All kernels produce byte-identical grids for the same input.
//
// # Grid layout
//
// A grid is a flat []uint8 of width*height cells in row-major order, each cell
// 0 or 1. The grid wraps in both directions: row 0 neighbours row height-1 and
// column 0 neighbours column width-1.
//
// # Usage
//
//	cells := grid.Cells()
//	if err := kernel.Simulate(cells, grid.W, grid.H, 1000, nil); err != nil {
//	    return err
//	}
//
// A nil stepper picks the widest kernel that fits the row width (see Select).
// The result always lands in the buffer that was passed in.
package kernel
