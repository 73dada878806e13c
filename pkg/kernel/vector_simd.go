//go:build goexperiment.simd && amd64

package kernel

import "simd/archsimd"

const simdBuild = true

type lanes16 = archsimd.Uint8x16

var (
	one16   = archsimd.BroadcastUint8x16(1)
	two16   = archsimd.BroadcastUint8x16(2)
	three16 = archsimd.BroadcastUint8x16(3)
)

func load16(b []uint8) lanes16 { return archsimd.LoadUint8x16Slice(b) }

func store16(v lanes16, b []uint8) { v.StoreSlice(b) }

func sum8x16(a, b, c, d, e, f, g, h lanes16) lanes16 {
	return a.Add(b).Add(c).Add(d).Add(e).Add(f).Add(g).Add(h)
}

// next16 selects lanes with three neighbours, or two neighbours and a live
// cell, then narrows the all-ones compare result to 0/1.
func next16(cells, count lanes16) lanes16 {
	born := count.Equal(three16)
	survives := count.Equal(two16).And(cells.Equal(one16))
	return born.Or(survives).ToInt8x16().AsUint8x16().And(one16)
}
