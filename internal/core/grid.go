package core

import "fmt"

// Grid is a two-dimensional array of cells whose dimensions are fixed at
// construction. Cells are stored in row-major order: index = row*cols + col.
// Every write is bounds-checked; writes outside the grid are rejected, never
// wrapped.
type Grid[T comparable] struct {
	size  Size
	cells []T
}

// NewGrid allocates a rows x cols grid filled with the zero value of T.
// It panics if either dimension is not positive.
func NewGrid[T comparable](rows, cols int) *Grid[T] {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("core: invalid grid size %dx%d", rows, cols))
	}
	return &Grid[T]{
		size:  Size{Rows: rows, Cols: cols},
		cells: make([]T, rows*cols),
	}
}

// Rows returns the number of rows.
func (g *Grid[T]) Rows() int { return g.size.Rows }

// Cols returns the number of columns.
func (g *Grid[T]) Cols() int { return g.size.Cols }

// Size returns the grid extent.
func (g *Grid[T]) Size() Size { return g.size }

// In reports whether (row, col) is inside the grid.
func (g *Grid[T]) In(row, col int) bool {
	return g.size.Contains(Point{Row: row, Col: col})
}

// Get returns the cell at (row, col), or the zero value outside the grid.
func (g *Grid[T]) Get(row, col int) T {
	if !g.In(row, col) {
		var zero T
		return zero
	}
	return g.cells[row*g.size.Cols+col]
}

// Set stores v at (row, col). It returns false and leaves the grid untouched
// when the coordinate is out of range.
func (g *Grid[T]) Set(row, col int, v T) bool {
	if !g.In(row, col) {
		return false
	}
	g.cells[row*g.size.Cols+col] = v
	return true
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// CopyRow overwrites row dst with the contents of row src.
// Out-of-range rows are ignored.
func (g *Grid[T]) CopyRow(dst, src int) {
	if dst < 0 || dst >= g.size.Rows || src < 0 || src >= g.size.Rows {
		return
	}
	cols := g.size.Cols
	copy(g.cells[dst*cols:(dst+1)*cols], g.cells[src*cols:(src+1)*cols])
}

// FillRow sets every cell in row r to v.
func (g *Grid[T]) FillRow(r int, v T) {
	if r < 0 || r >= g.size.Rows {
		return
	}
	cols := g.size.Cols
	for i := r * cols; i < (r+1)*cols; i++ {
		g.cells[i] = v
	}
}

// Equal reports whether both grids have the same size and contents.
func (g *Grid[T]) Equal(other *Grid[T]) bool {
	if other == nil || g.size != other.size {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// CopyFrom replaces the contents with those of other.
// It panics if the sizes differ.
func (g *Grid[T]) CopyFrom(other *Grid[T]) {
	if g.size != other.size {
		panic(fmt.Sprintf("core: grid size mismatch %v != %v", g.size, other.size))
	}
	copy(g.cells, other.cells)
}

// Clone returns an independent copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	c := NewGrid[T](g.size.Rows, g.size.Cols)
	copy(c.cells, g.cells)
	return c
}
