//go:build !(goexperiment.simd && amd64)

package kernel

const simdBuild = false

// lanes16 is a portable stand-in for a 128-bit register. The fixed-size loops
// below are simple enough for the compiler to keep in registers.
type lanes16 [VectorLanes]uint8

func load16(b []uint8) lanes16 { return lanes16(b[:VectorLanes]) }

func store16(v lanes16, b []uint8) { copy(b[:VectorLanes], v[:]) }

func sum8x16(a, b, c, d, e, f, g, h lanes16) lanes16 {
	var r lanes16
	for i := range r {
		r[i] = a[i] + b[i] + c[i] + d[i] + e[i] + f[i] + g[i] + h[i]
	}
	return r
}

func next16(cells, count lanes16) lanes16 {
	var r lanes16
	for i := range r {
		r[i] = next(cells[i], count[i])
	}
	return r
}
