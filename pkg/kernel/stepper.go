package kernel

import (
	"fmt"
	"strings"

	"torus-life/pkg/core"
)

// Stepper advances rows of a toroidal grid by one generation.
type Stepper interface {
	// Name identifies the kernel in logs and reports.
	Name() string
	// Lanes is the minimum row width the stepper accepts.
	Lanes() int
	// StepRows writes the next generation of rows [y0, y1) into dst. Every
	// row of src may be read; only rows y0..y1-1 of dst are written.
	// StepRows does not validate its arguments: width must be at least
	// Lanes() and both buffers must hold width*height cells. Step and
	// Simulate check these before stepping.
	StepRows(src, dst []uint8, width, height, y0, y1 int)
}

type rowFunc func(src, dst []uint8, width, y, yNorth, ySouth int)

type rowStepper struct {
	name  string
	lanes int
	row   rowFunc
}

func (s *rowStepper) Name() string { return s.name }
func (s *rowStepper) Lanes() int   { return s.lanes }

func (s *rowStepper) StepRows(src, dst []uint8, width, height, y0, y1 int) {
	for y := y0; y < y1; y++ {
		north, south := neighbourRows(y, height)
		s.row(src, dst, width, y, north, south)
	}
}

// Built-in steppers.
var (
	Scalar   Stepper = &rowStepper{name: "scalar", lanes: 1, row: ScalarRow}
	Packed1  Stepper = &rowStepper{name: "packed1", lanes: 1, row: packing1.row}
	Packed2  Stepper = &rowStepper{name: "packed2", lanes: 2, row: packing2.row}
	Packed4  Stepper = &rowStepper{name: "packed4", lanes: 4, row: packing4.row}
	Packed8  Stepper = &rowStepper{name: "packed8", lanes: 8, row: packing8.row}
	Vector16 Stepper = &rowStepper{name: "vector16", lanes: VectorLanes, row: vectorRow}
)

// Step advances the whole grid one generation from src into dst.
func Step(s Stepper, src, dst []uint8, width, height int) error {
	if err := checkGrid(src, width, height); err != nil {
		return err
	}
	if len(dst) != len(src) {
		return fmt.Errorf("%w: destination holds %d cells, want %d", core.ErrInvalidDimensions, len(dst), len(src))
	}
	if width < s.Lanes() {
		return &WidthError{Kernel: s.Name(), Required: s.Lanes(), Width: width}
	}
	s.StepRows(src, dst, width, height, 0, height)
	return nil
}

func checkGrid(grid []uint8, width, height int) error {
	if err := core.CheckDimensions(width, height); err != nil {
		return err
	}
	if len(grid) != width*height {
		return fmt.Errorf("%w: %d cells for %dx%d", core.ErrInvalidDimensions, len(grid), width, height)
	}
	return nil
}

// Select picks the fastest stepper for rows of the given width: the vector
// kernel when a hardware vector is available and the row fills one register,
// otherwise the widest packing that fits.
func Select(width int) Stepper {
	switch {
	case width >= VectorLanes && HardwareVector():
		return Vector16
	case width >= 8:
		return Packed8
	case width >= 4:
		return Packed4
	case width >= 2:
		return Packed2
	default:
		return Packed1
	}
}

// Kind names a stepper implementation.
type Kind int

const (
	Auto Kind = iota
	KindScalar
	KindPacked1
	KindPacked2
	KindPacked4
	KindPacked8
	KindVector16
	KindTiled
)

var kindNames = [...]string{
	Auto:         "auto",
	KindScalar:   "scalar",
	KindPacked1:  "packed1",
	KindPacked2:  "packed2",
	KindPacked4:  "packed4",
	KindPacked8:  "packed8",
	KindVector16: "vector16",
	KindTiled:    "tiled",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Kinds lists every stepper kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kindNames))
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// ParseKind maps a kernel name such as "packed8" to its Kind. Matching is
// case-insensitive and the empty string means Auto.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Auto, nil
	}
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return Auto, fmt.Errorf("%w: %q", ErrUnknownKernel, name)
}

// New returns the stepper for k. Auto dispatches on the width of each call;
// KindTiled uses the default worker count.
func New(k Kind) (Stepper, error) {
	switch k {
	case Auto:
		return autoStepper{}, nil
	case KindScalar:
		return Scalar, nil
	case KindPacked1:
		return Packed1, nil
	case KindPacked2:
		return Packed2, nil
	case KindPacked4:
		return Packed4, nil
	case KindPacked8:
		return Packed8, nil
	case KindVector16:
		return Vector16, nil
	case KindTiled:
		return NewTiled(0, nil), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownKernel, k)
}

// autoStepper forwards each call to Select(width).
type autoStepper struct{}

func (autoStepper) Name() string { return "auto" }
func (autoStepper) Lanes() int   { return 1 }

func (autoStepper) StepRows(src, dst []uint8, width, height, y0, y1 int) {
	Select(width).StepRows(src, dst, width, height, y0, y1)
}

// resolve replaces nil and auto steppers with the width-specific choice.
func resolve(s Stepper, width int) Stepper {
	switch s.(type) {
	case nil, autoStepper:
		chosen := Select(width)
		Logger().Debug("kernel: dispatch", "width", width, "kernel", chosen.Name(), "cpu", features.String())
		return chosen
	}
	return s
}
