//go:build ebiten

package render

import (
	"image/color"

	"torus-life/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter draws a sim's cells as one pixel each into an offscreen image,
// then scales that image onto the screen.
type GridPainter struct {
	size    core.Size
	on, off color.Color
	img     *ebiten.Image
	buf     []byte
}

// NewGridPainter allocates a painter for sims of the given size, drawing
// live cells in on and dead cells in off.
func NewGridPainter(size core.Size, on, off color.Color) *GridPainter {
	return &GridPainter{
		size: size,
		on:   on,
		off:  off,
		img:  ebiten.NewImage(size.W, size.H),
		buf:  make([]byte, 4*size.W*size.H),
	}
}

// Draw paints sim onto dst at the given scale. Sims of another size are
// ignored.
func (gp *GridPainter) Draw(dst *ebiten.Image, sim core.Sim, scale int) {
	if !fillSimRGBA(gp.buf, gp.size, sim, gp.on, gp.off) {
		return
	}
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the grid dimensions the painter accepts.
func (gp *GridPainter) Size() core.Size { return gp.size }
