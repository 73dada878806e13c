// Package pbm reads and writes grids as plain (P1) portable bitmaps.
//
// Encode writes the compact form used by the life tools:
//
//	P1
//	<width> <height>
//	<width*height characters of 0 and 1>
//
// Decode also accepts whitespace between cells and '#' comment lines, so
// files written by other tools load as well.
package pbm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"torus-life/pkg/core"
)

var (
	// ErrNotPBM is returned when the input does not start with the P1 magic.
	ErrNotPBM = errors.New("pbm: not a plain PBM file")
	// ErrBadDimensions is returned for a missing, malformed or out-of-range size.
	ErrBadDimensions = errors.New("pbm: bad dimensions")
	// ErrTruncated is returned when the input ends before every cell is read.
	ErrTruncated = errors.New("pbm: truncated cell data")
	// ErrBadCell is returned for a cell character other than '0' or '1'.
	ErrBadCell = errors.New("pbm: bad cell")
)

const magic = "P1"

// Decode parses a plain PBM image into a grid.
func Decode(r io.Reader) (*core.Grid, error) {
	br := bufio.NewReader(r)
	tok, err := token(br)
	if err != nil || tok != magic {
		return nil, ErrNotPBM
	}
	w, err := dimension(br)
	if err != nil {
		return nil, err
	}
	h, err := dimension(br)
	if err != nil {
		return nil, err
	}
	g, err := core.NewGrid(w, h)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDimensions, err)
	}
	cells := g.Cells()
	for i := range cells {
		c, err := skipSpace(br)
		if err == io.EOF {
			return nil, fmt.Errorf("%w: %d of %d cells", ErrTruncated, i, len(cells))
		}
		if err != nil {
			return nil, err
		}
		switch c {
		case '0':
		case '1':
			cells[i] = 1
		default:
			return nil, fmt.Errorf("%w: %q at cell %d", ErrBadCell, c, i)
		}
	}
	return g, nil
}

// Encode writes g in the compact P1 form.
func Encode(w io.Writer, g *core.Grid) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s\n%d %d\n", magic, g.W, g.H); err != nil {
		return err
	}
	for _, c := range g.Cells() {
		if err := bw.WriteByte('0' + c); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Load reads a grid from the named file.
func Load(path string) (*core.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Save writes g to the named file, replacing any existing content.
func Save(path string, g *core.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, g); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

// skipSpace returns the next byte that is neither whitespace nor part of a
// '#' comment.
func skipSpace(br *bufio.Reader) (byte, error) {
	for {
		c, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		switch c {
		case ' ', '\t', '\n', '\r', '\v', '\f':
		case '#':
			if _, err := br.ReadString('\n'); err != nil {
				return 0, err
			}
		default:
			return c, nil
		}
	}
}

// token reads a run of non-space bytes.
func token(br *bufio.Reader) (string, error) {
	c, err := skipSpace(br)
	if err != nil {
		return "", err
	}
	buf := []byte{c}
	for {
		c, err := br.ReadByte()
		if err == io.EOF {
			return string(buf), nil
		}
		if err != nil {
			return "", err
		}
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '#' {
			return string(buf), br.UnreadByte()
		}
		buf = append(buf, c)
	}
}

func dimension(br *bufio.Reader) (int, error) {
	tok, err := token(br)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBadDimensions, err)
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadDimensions, tok)
	}
	return n, nil
}
