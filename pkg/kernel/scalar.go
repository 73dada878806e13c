package kernel

// next applies the Life rule to one cell: alive with exactly three live
// neighbours, or with two if already alive.
func next(cell, count uint8) uint8 {
	var born, survives uint8
	if count == 3 {
		born = 1
	}
	if count == 2 {
		survives = cell
	}
	return born | survives
}

// rowOf returns row y of a width-wide grid buffer.
func rowOf(buf []uint8, width, y int) []uint8 {
	return buf[y*width : y*width+width]
}

// neighbourRows returns the wrapped indices of the rows above and below y.
func neighbourRows(y, height int) (north, south int) {
	north, south = y-1, y+1
	if y == 0 {
		north = height - 1
	}
	if y == height-1 {
		south = 0
	}
	return north, south
}

// ScalarRow writes the next generation of row y into dst, reading row y and
// the rows yNorth and ySouth from src. The first and last cells wrap west and
// east; interior cells index x-1 and x+1 directly.
func ScalarRow(src, dst []uint8, width, y, yNorth, ySouth int) {
	n := rowOf(src, width, yNorth)
	c := rowOf(src, width, y)
	s := rowOf(src, width, ySouth)
	out := rowOf(dst, width, y)
	last := width - 1

	east := 1
	if width == 1 {
		east = 0
	}
	out[0] = next(c[0], n[last]+n[0]+n[east]+c[last]+c[east]+s[last]+s[0]+s[east])

	for x := 1; x < last; x++ {
		w, e := x-1, x+1
		out[x] = next(c[x], n[w]+n[x]+n[e]+c[w]+c[e]+s[w]+s[x]+s[e])
	}

	if last > 0 {
		w := last - 1
		out[last] = next(c[last], n[w]+n[last]+n[0]+c[w]+c[0]+s[w]+s[last]+s[0])
	}
}
