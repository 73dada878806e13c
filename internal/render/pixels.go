package render

import (
	"image/color"

	"torus-life/pkg/core"
)

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	var onPx, offPx [4]byte
	rgba(onPx[:], on)
	rgba(offPx[:], off)
	for i, c := range cells {
		px := offPx
		if c != 0 {
			px = onPx
		}
		copy(buf[i*4:i*4+4], px[:])
	}
}

func rgba(dst []byte, c color.Color) {
	r, g, b, a := c.RGBA()
	dst[0] = uint8(r >> 8)
	dst[1] = uint8(g >> 8)
	dst[2] = uint8(b >> 8)
	dst[3] = uint8(a >> 8)
}

// fillSimRGBA renders sim's cells into buf when sim has the expected size.
func fillSimRGBA(buf []byte, size core.Size, sim core.Sim, on, off color.Color) bool {
	if sim.Size() != size || len(buf) != 4*size.W*size.H {
		return false
	}
	fillBinaryRGBA(buf, sim.Cells(), on, off)
	return true
}
