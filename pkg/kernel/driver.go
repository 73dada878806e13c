package kernel

import "fmt"

// Simulator is implemented by steppers that run a whole multi-generation
// simulation themselves, such as Tiled.
type Simulator interface {
	Simulate(grid []uint8, width, height, generations int) error
}

// Simulate advances grid in place by the given number of generations using
// s. A nil s selects a kernel by width. On return grid holds the final
// generation whatever the parity of generations.
func Simulate(grid []uint8, width, height, generations int, s Stepper) error {
	if err := checkGrid(grid, width, height); err != nil {
		return err
	}
	if generations < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeGenerations, generations)
	}
	s = resolve(s, width)
	if sim, ok := s.(Simulator); ok {
		return sim.Simulate(grid, width, height, generations)
	}
	if width < s.Lanes() {
		return &WidthError{Kernel: s.Name(), Required: s.Lanes(), Width: width}
	}
	if generations == 0 {
		return nil
	}
	b := NewBuffers(grid)
	run(b, s, width, height, generations)
	b.Commit()
	return nil
}

// run steps b forward on a single goroutine.
func run(b *Buffers, s Stepper, width, height, generations int) {
	for range generations {
		s.StepRows(b.Current(), b.Next(), width, height, 0, height)
		b.Swap()
	}
}

// Buffers holds the two generation buffers of a simulation. Slot 0 is the
// caller's grid and slot 1 is scratch; the current slot flips on every
// recorded generation.
type Buffers struct {
	slots [2][]uint8
	cur   int
	gen   int
}

// NewBuffers wraps grid and allocates one scratch buffer of the same size.
func NewBuffers(grid []uint8) *Buffers {
	return &Buffers{slots: [2][]uint8{grid, make([]uint8, len(grid))}}
}

// Current is the buffer holding the latest generation.
func (b *Buffers) Current() []uint8 { return b.slots[b.cur] }

// Next is the buffer the next generation is written to.
func (b *Buffers) Next() []uint8 { return b.slots[b.cur^1] }

// Swap makes Next current after a generation has been written.
func (b *Buffers) Swap() { b.Advance(1) }

// Advance records n generations written elsewhere, alternating slots
// as a sequence of n swaps would.
func (b *Buffers) Advance(n int) {
	b.cur ^= n & 1
	b.gen += n
}

// Generation counts the generations recorded since NewBuffers.
func (b *Buffers) Generation() int { return b.gen }

// Commit copies the current generation back into the caller's grid if it
// lives in the scratch slot.
func (b *Buffers) Commit() {
	if b.cur == 1 {
		copy(b.slots[0], b.slots[1])
		b.cur = 0
	}
}
