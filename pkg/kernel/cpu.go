package kernel

import (
	"os"
	"strings"

	"golang.org/x/sys/cpu"
)

// noSIMDEnv disables the hardware vector kernel in dispatch when set to a
// value other than "" or "0".
const noSIMDEnv = "LIFE_NOSIMD"

// Features lists the CPU capabilities relevant to kernel dispatch.
type Features struct {
	SSE2  bool
	SSSE3 bool
	AVX2  bool
	ASIMD bool

	// SIMDBuild is set when the binary carries the archsimd vector backend.
	SIMDBuild bool
	// Disabled is set when LIFE_NOSIMD turned the vector backend off.
	Disabled bool
}

// DetectFeatures inspects the running CPU and environment.
func DetectFeatures() Features {
	v := os.Getenv(noSIMDEnv)
	return Features{
		SSE2:      cpu.X86.HasSSE2,
		SSSE3:     cpu.X86.HasSSSE3,
		AVX2:      cpu.X86.HasAVX2,
		ASIMD:     cpu.ARM64.HasASIMD,
		SIMDBuild: simdBuild,
		Disabled:  v != "" && v != "0",
	}
}

// HardwareVector reports whether dispatch may use the 16-lane vector kernel.
func (f Features) HardwareVector() bool {
	return f.SIMDBuild && f.SSE2 && !f.Disabled
}

func (f Features) String() string {
	var parts []string
	add := func(ok bool, name string) {
		if ok {
			parts = append(parts, name)
		}
	}
	add(f.SSE2, "sse2")
	add(f.SSSE3, "ssse3")
	add(f.AVX2, "avx2")
	add(f.ASIMD, "asimd")
	if len(parts) == 0 {
		parts = append(parts, "generic")
	}
	s := strings.Join(parts, ",")
	switch {
	case f.HardwareVector():
		s += " (vector16 enabled)"
	case f.Disabled:
		s += " (vector16 disabled by " + noSIMDEnv + ")"
	default:
		s += " (vector16 unavailable)"
	}
	return s
}

var features = DetectFeatures()

// CPUFeatures returns the features detected at start-up.
func CPUFeatures() Features { return features }

// HardwareVector reports whether the 16-lane vector kernel is used by Select.
func HardwareVector() bool { return features.HardwareVector() }
