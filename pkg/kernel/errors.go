package kernel

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWidth is returned when a row is narrower than a kernel's lane width.
	ErrInvalidWidth = errors.New("row narrower than kernel lane width")
	// ErrNegativeGenerations is returned for a negative generation count.
	ErrNegativeGenerations = errors.New("generation count must not be negative")
	// ErrUnsupportedLanes is returned for a packing width other than 1, 2, 4 or 8.
	ErrUnsupportedLanes = errors.New("unsupported packing width")
	// ErrUnknownKernel is returned by ParseKind for an unrecognised name.
	ErrUnknownKernel = errors.New("unknown kernel")
)

// WidthError reports a row too narrow for the kernel that received it.
// It matches ErrInvalidWidth with errors.Is.
type WidthError struct {
	Kernel   string
	Required int
	Width    int
}

func (e *WidthError) Error() string {
	return fmt.Sprintf("%s: width %d is less than required %d", e.Kernel, e.Width, e.Required)
}

// Unwrap returns ErrInvalidWidth.
func (e *WidthError) Unwrap() error { return ErrInvalidWidth }
