package kernel

import (
	"encoding/binary"
	"fmt"
)

// word is an unsigned integer holding one cell per byte lane.
type word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// packing describes how cells are grouped into a word of type T. Lane i of a
// word is the cell at the i-th lowest address, so loads are little-endian
// regardless of the host byte order.
type packing[T word] struct {
	lanes int
	lane  uint // bits per lane
	top   uint // bit offset of the highest lane
	ones  T    // 0x01 in every lane
	load  func([]byte) T
	store func([]byte, T)
}

var (
	packing1 = &packing[uint8]{
		lanes: 1, lane: 8, top: 0, ones: 0x01,
		load:  func(b []byte) uint8 { return b[0] },
		store: func(b []byte, v uint8) { b[0] = v },
	}
	packing2 = &packing[uint16]{
		lanes: 2, lane: 8, top: 8, ones: 0x0101,
		load:  binary.LittleEndian.Uint16,
		store: binary.LittleEndian.PutUint16,
	}
	packing4 = &packing[uint32]{
		lanes: 4, lane: 8, top: 24, ones: 0x01010101,
		load:  binary.LittleEndian.Uint32,
		store: binary.LittleEndian.PutUint32,
	}
	packing8 = &packing[uint64]{
		lanes: 8, lane: 8, top: 56, ones: 0x0101010101010101,
		load:  binary.LittleEndian.Uint64,
		store: binary.LittleEndian.PutUint64,
	}
)

// packedNext evaluates the Life rule in every lane at once. Each lane of
// count holds 0..8, so only bits 0..3 matter: the result bit is set for
// 0b011, and for 0b010 when the cell is alive.
func packedNext[T word](cells, count, ones T) T {
	return (cells | count) & (count >> 1) &^ (count >> 2) &^ (count >> 3) & ones
}

// west moves every lane up by one so lane i holds the cell west of it,
// rotating the top lane into lane 0.
func (p *packing[T]) west(v T) T { return v<<p.lane | v>>p.top }

// east moves every lane down by one so lane i holds the cell east of it,
// rotating lane 0 into the top lane.
func (p *packing[T]) east(v T) T { return v>>p.lane | v<<p.top }

// row steps one row. width must be at least p.lanes.
func (p *packing[T]) row(src, dst []uint8, width, y, yNorth, ySouth int) {
	n := rowOf(src, width, yNorth)
	c := rowOf(src, width, y)
	s := rowOf(src, width, ySouth)
	out := rowOf(dst, width, y)

	if width == p.lanes {
		nc, cc, sc := p.load(n), p.load(c), p.load(s)
		count := p.west(nc) + nc + p.east(nc) +
			p.west(cc) + p.east(cc) +
			p.west(sc) + sc + p.east(sc)
		p.store(out, packedNext(cc, count, p.ones))
		return
	}

	last := width - 1

	// First word: lane 0 takes its west neighbours from the end of the row.
	nc, cc, sc := p.load(n), p.load(c), p.load(s)
	count := (nc<<p.lane | T(n[last])) + nc + p.load(n[1:]) +
		(cc<<p.lane | T(c[last])) + p.load(c[1:]) +
		(sc<<p.lane | T(s[last])) + sc + p.load(s[1:])
	p.store(out, packedNext(cc, count, p.ones))

	for x := p.lanes; x < width-p.lanes; x += p.lanes {
		w, e := x-1, x+1
		cc = p.load(c[x:])
		count = p.load(n[w:]) + p.load(n[x:]) + p.load(n[e:]) +
			p.load(c[w:]) + p.load(c[e:]) +
			p.load(s[w:]) + p.load(s[x:]) + p.load(s[e:])
		p.store(out[x:], packedNext(cc, count, p.ones))
	}

	// Last word: the top lane takes its east neighbours from the row start.
	// It may overlap the previous word; both compute from src so the
	// overlapping lanes agree.
	x := width - p.lanes
	w := x - 1
	nc, cc, sc = p.load(n[x:]), p.load(c[x:]), p.load(s[x:])
	count = p.load(n[w:]) + nc + (nc>>p.lane | T(n[0])<<p.top) +
		p.load(c[w:]) + (cc>>p.lane | T(c[0])<<p.top) +
		p.load(s[w:]) + sc + (sc>>p.lane | T(s[0])<<p.top)
	p.store(out[x:], packedNext(cc, count, p.ones))
}

// PackedRow steps row y using words of lanes bytes (1, 2, 4 or 8). It fails
// with ErrInvalidWidth when width < lanes.
func PackedRow(lanes int, src, dst []uint8, width, y, yNorth, ySouth int) error {
	var row func(src, dst []uint8, width, y, yNorth, ySouth int)
	switch lanes {
	case 1:
		row = packing1.row
	case 2:
		row = packing2.row
	case 4:
		row = packing4.row
	case 8:
		row = packing8.row
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedLanes, lanes)
	}
	if width < lanes {
		return &WidthError{Kernel: fmt.Sprintf("packed%d", lanes), Required: lanes, Width: width}
	}
	row(src, dst, width, y, yNorth, ySouth)
	return nil
}
