package life

import (
	"fmt"
	"time"

	"torus-life/pkg/core"
	"torus-life/pkg/kernel"
)

// Life implements Conway's Game of Life with toroidal wrapping on top of a
// kernel stepper.
type Life struct {
	cfg     Config
	stepper kernel.Stepper
	buf     *kernel.Buffers
	gen     int
	last    time.Duration
}

// New returns a Life simulation seeded from cfg.Seed.
func New(cfg Config) (*Life, error) {
	if err := core.CheckDimensions(cfg.Width, cfg.Height); err != nil {
		return nil, err
	}
	kind, err := kernel.ParseKind(cfg.Kernel)
	if err != nil {
		return nil, err
	}
	var s kernel.Stepper
	if kind == kernel.KindTiled {
		s = kernel.NewTiled(cfg.Workers, nil)
	} else if s, err = kernel.New(kind); err != nil {
		return nil, err
	}
	if cfg.Width < s.Lanes() {
		return nil, &kernel.WidthError{Kernel: s.Name(), Required: s.Lanes(), Width: cfg.Width}
	}
	l := &Life{
		cfg:     cfg,
		stepper: s,
		buf:     kernel.NewBuffers(make([]uint8, cfg.Width*cfg.Height)),
	}
	if err := l.seed(cfg.Seed); err != nil {
		return nil, err
	}
	return l, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cfg.Width, H: l.cfg.Height} }

// Cells exposes the current grid values. The slice alternates between two
// buffers, so callers should fetch it again after stepping.
func (l *Life) Cells() []uint8 { return l.buf.Current() }

// Reset refills the board to the configured density using seed.
func (l *Life) Reset(seed int64) {
	if err := l.seed(seed); err != nil {
		kernel.Logger().Warn("life: reset", "err", err)
	}
}

func (l *Life) seed(seed int64) error {
	l.gen = 0
	return core.FillPercent(core.NewRNG(seed).Source(), l.buf.Current(), l.cfg.Percent)
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	w, h := l.cfg.Width, l.cfg.Height
	l.stepper.StepRows(l.buf.Current(), l.buf.Next(), w, h, 0, h)
	l.buf.Swap()
	l.gen++
}

// Advance runs n generations and reports how long they took.
func (l *Life) Advance(n int) (time.Duration, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", kernel.ErrNegativeGenerations, n)
	}
	sim, whole := l.stepper.(kernel.Simulator)
	var err error
	elapsed := core.Time(func() {
		if whole {
			err = sim.Simulate(l.buf.Current(), l.cfg.Width, l.cfg.Height, n)
			return
		}
		w, h := l.cfg.Width, l.cfg.Height
		for range n {
			l.stepper.StepRows(l.buf.Current(), l.buf.Next(), w, h, 0, h)
			l.buf.Swap()
		}
	})
	if err != nil {
		return 0, err
	}
	l.gen += n
	l.last = elapsed
	return elapsed, nil
}

// Generation counts the generations since the last reset.
func (l *Life) Generation() int { return l.gen }

// Population counts the live cells.
func (l *Life) Population() int {
	n := 0
	for _, c := range l.buf.Current() {
		n += int(c)
	}
	return n
}

// Kernel returns the name of the stepper in use.
func (l *Life) Kernel() string { return l.stepper.Name() }

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		l, err := New(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return l, nil
	})
}
