package kernel

// VectorLanes is the number of one-byte cells in a vector register.
const VectorLanes = 16

// wrapWest16 returns the west neighbours of row[0:16]: lane 0 holds the last
// cell of the row and lanes 1..15 hold row[0:15].
func wrapWest16(row []uint8) lanes16 {
	var t [VectorLanes]uint8
	t[0] = row[len(row)-1]
	copy(t[1:], row[:VectorLanes-1])
	return load16(t[:])
}

// wrapEast16 returns the east neighbours of the last 16 cells of row: lanes
// 0..14 hold the final 15 cells and lane 15 holds row[0].
func wrapEast16(row []uint8) lanes16 {
	var t [VectorLanes]uint8
	copy(t[:VectorLanes-1], row[len(row)-(VectorLanes-1):])
	t[VectorLanes-1] = row[0]
	return load16(t[:])
}

// vectorRow steps one row 16 cells at a time. width must be at least 16.
func vectorRow(src, dst []uint8, width, y, yNorth, ySouth int) {
	n := rowOf(src, width, yNorth)
	c := rowOf(src, width, y)
	s := rowOf(src, width, ySouth)
	out := rowOf(dst, width, y)

	if width == VectorLanes {
		cells := load16(c)
		count := sum8x16(
			wrapWest16(n), load16(n), wrapEast16(n),
			wrapWest16(c), wrapEast16(c),
			wrapWest16(s), load16(s), wrapEast16(s),
		)
		store16(next16(cells, count), out)
		return
	}

	cells := load16(c)
	count := sum8x16(
		wrapWest16(n), load16(n), load16(n[1:]),
		wrapWest16(c), load16(c[1:]),
		wrapWest16(s), load16(s), load16(s[1:]),
	)
	store16(next16(cells, count), out)

	for x := VectorLanes; x < width-VectorLanes; x += VectorLanes {
		w, e := x-1, x+1
		cells = load16(c[x:])
		count = sum8x16(
			load16(n[w:]), load16(n[x:]), load16(n[e:]),
			load16(c[w:]), load16(c[e:]),
			load16(s[w:]), load16(s[x:]), load16(s[e:]),
		)
		store16(next16(cells, count), out[x:])
	}

	x := width - VectorLanes
	w := x - 1
	cells = load16(c[x:])
	count = sum8x16(
		load16(n[w:]), load16(n[x:]), wrapEast16(n),
		load16(c[w:]), wrapEast16(c),
		load16(s[w:]), load16(s[x:]), wrapEast16(s),
	)
	store16(next16(cells, count), out[x:])
}

// VectorRow steps row y sixteen cells at a time. It fails with
// ErrInvalidWidth when width < 16.
func VectorRow(src, dst []uint8, width, y, yNorth, ySouth int) error {
	if width < VectorLanes {
		return &WidthError{Kernel: "vector16", Required: VectorLanes, Width: width}
	}
	vectorRow(src, dst, width, y, yNorth, ySouth)
	return nil
}
