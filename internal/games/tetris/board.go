package tetris

import (
	"strings"

	"github.com/vovakirdan/matrix-arcade/internal/core"
)

// Cell is the occupancy of one board square.
type Cell uint8

const (
	Free Cell = iota
	Occupied
)

// Board is the grid of locked cells.
type Board struct {
	grid   *core.Grid[Cell]
	strict bool
}

// NewBoard creates an empty board. With strict unset, a row counts as full
// once every column but the last is occupied; strict requires all columns.
func NewBoard(rows, cols int, strict bool) *Board {
	return &Board{grid: core.NewGrid[Cell](rows, cols), strict: strict}
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.grid.Rows() }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.grid.Cols() }

// Occupied reports whether (row, col) holds a locked cell.
func (b *Board) Occupied(row, col int) bool {
	return b.grid.Get(row, col) == Occupied
}

// Set stores c at (row, col) and reports whether the coordinate was valid.
func (b *Board) Set(row, col int, c Cell) bool {
	return b.grid.Set(row, col, c)
}

// Valid reports whether p fits: every cell inside the columns and above the
// floor, and every cell at row >= 0 on a free square. Cells above the top
// edge are always allowed.
func (b *Board) Valid(p Piece) bool {
	cells := p.Cells()
	for _, c := range cells {
		if c.Row >= b.Rows() || c.Col < 0 || c.Col >= b.Cols() {
			return false
		}
	}
	for _, c := range cells {
		if c.Row >= 0 && b.Occupied(c.Row, c.Col) {
			return false
		}
	}
	return true
}

// Stamp locks every visible cell of p into the board.
func (b *Board) Stamp(p Piece) {
	for _, c := range p.Cells() {
		if c.Row >= 0 {
			b.grid.Set(c.Row, c.Col, Occupied)
		}
	}
}

// RowFull reports whether row r is complete under the board's rule.
func (b *Board) RowFull(r int) bool {
	last := b.Cols() - 1
	if b.strict || last < 1 {
		last = b.Cols()
	}
	for c := 0; c < last; c++ {
		if !b.Occupied(r, c) {
			return false
		}
	}
	return true
}

// ClearFull scans rows top to bottom and removes each full row by shifting
// every row above it down by one. It returns the number of rows removed.
func (b *Board) ClearFull() int {
	cleared := 0
	for r := 0; r < b.Rows(); r++ {
		if !b.RowFull(r) {
			continue
		}
		for above := r; above > 0; above-- {
			b.grid.CopyRow(above, above-1)
		}
		b.grid.FillRow(0, Free)
		cleared++
	}
	return cleared
}

// String renders the board with '#' for occupied and '.' for free squares,
// one line per row.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.Rows(); r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < b.Cols(); c++ {
			if b.Occupied(r, c) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
