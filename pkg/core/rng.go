package core

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrInvalidPercent is returned when a population percentage is outside 1..100.
var ErrInvalidPercent = errors.New("percent out of range of 1 and 100")

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// FillPercent sets each cell alive with probability percent/100.
func FillPercent(r *rand.Rand, buf []uint8, percent int) error {
	if percent < 1 || percent > 100 {
		return fmt.Errorf("%w: %d", ErrInvalidPercent, percent)
	}
	for i := range buf {
		buf[i] = 0
		if r.IntN(100) < percent {
			buf[i] = 1
		}
	}
	return nil
}

// RandomGrid generates a w x h grid populated to roughly percent live cells.
// The same seed always yields the same grid.
func RandomGrid(w, h, percent int, seed int64) (*Grid, error) {
	g, err := NewGrid(w, h)
	if err != nil {
		return nil, err
	}
	if err := FillPercent(NewRNG(seed).Source(), g.Cells(), percent); err != nil {
		return nil, err
	}
	return g, nil
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
