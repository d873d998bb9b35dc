package core

import "strings"

// Frame is the in-memory PixelDisplay every target renders from.
// Its dimensions are fixed at construction.
type Frame struct {
	grid *Grid[Pixel]
}

// NewFrame creates a frame with all pixels off.
// It panics if rows or cols is not positive.
func NewFrame(rows, cols int) *Frame {
	return &Frame{grid: NewGrid[Pixel](rows, cols)}
}

// Rows returns the number of pixel rows.
func (f *Frame) Rows() int { return f.grid.Rows() }

// Columns returns the number of pixel columns.
func (f *Frame) Columns() int { return f.grid.Cols() }

// SetPixel sets the pixel at (row, col).
// Out-of-range coordinates are rejected and leave the frame unchanged.
func (f *Frame) SetPixel(row, col int, p Pixel) {
	f.grid.Set(row, col, p)
}

// Get returns the pixel at (row, col). Out-of-range coordinates read as Off.
func (f *Frame) Get(row, col int) Pixel {
	return f.grid.Get(row, col)
}

// Lit returns the number of pixels that are on.
func (f *Frame) Lit() int {
	n := 0
	for r := 0; r < f.grid.Rows(); r++ {
		for c := 0; c < f.grid.Cols(); c++ {
			if f.grid.Get(r, c) {
				n++
			}
		}
	}
	return n
}

// Equal reports whether other has the same size and pixels.
func (f *Frame) Equal(other *Frame) bool {
	if other == nil {
		return false
	}
	return f.grid.Equal(other.grid)
}

// CopyFrom copies every pixel from other, which must have the same size.
func (f *Frame) CopyFrom(other *Frame) {
	f.grid.CopyFrom(other.grid)
}

// Clone returns an independent copy of the frame.
func (f *Frame) Clone() *Frame {
	return &Frame{grid: f.grid.Clone()}
}

// String renders the frame as text art, packing two pixel rows into each
// line with half-block characters. An odd last row is padded with Off.
func (f *Frame) String() string {
	rows, cols := f.Rows(), f.Columns()
	var sb strings.Builder
	sb.Grow((rows/2 + 1) * (cols*3 + 1))

	for r := 0; r < rows; r += 2 {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < cols; c++ {
			sb.WriteRune(HalfBlock(f.Get(r, c), f.Get(r+1, c)))
		}
	}
	return sb.String()
}

// HalfBlock returns the character showing top above bottom in one cell.
func HalfBlock(top, bottom Pixel) rune {
	t, b := bool(top), bool(bottom)
	switch {
	case t && b:
		return '█'
	case t:
		return '▀'
	case b:
		return '▄'
	default:
		return ' '
	}
}
