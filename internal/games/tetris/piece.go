package tetris

import (
	"github.com/vovakirdan/matrix-arcade/internal/core"
)

// Kind is the shape of a falling piece.
type Kind int

const (
	KindSquare Kind = iota
	KindL
	KindT
	KindLine
	numKinds
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindSquare:
		return "Square"
	case KindL:
		return "L"
	case KindT:
		return "T"
	case KindLine:
		return "Line"
	default:
		return "Unknown"
	}
}

// patterns holds the (row, col) offsets of each kind relative to its anchor.
var patterns = [numKinds][4]core.Point{
	KindSquare: {{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}},
	KindL:      {{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}, {Row: 2, Col: 1}},
	KindT:      {{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 0}},
	KindLine:   {{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}, {Row: 3, Col: 0}},
}

// Rotation is a quarter-turn orientation.
type Rotation int

const (
	R0 Rotation = iota
	R90
	R180
	R270
	numRotations
)

// String returns the rotation in degrees.
func (r Rotation) String() string {
	switch r {
	case R0:
		return "R0"
	case R90:
		return "R90"
	case R180:
		return "R180"
	case R270:
		return "R270"
	default:
		return "Unknown"
	}
}

// Right returns the next rotation clockwise. Four calls return to r.
func (r Rotation) Right() Rotation {
	return (r + 1) % numRotations
}

// Left returns the next rotation counter-clockwise, the inverse of Right.
func (r Rotation) Left() Rotation {
	return (r + numRotations - 1) % numRotations
}

// Apply rotates a (row, col) offset about the anchor.
func (r Rotation) Apply(p core.Point) core.Point {
	switch r {
	case R90:
		return core.Point{Row: -p.Col, Col: p.Row}
	case R180:
		return core.Point{Row: -p.Row, Col: -p.Col}
	case R270:
		return core.Point{Row: p.Col, Col: -p.Row}
	default:
		return p
	}
}

// Piece is a falling shape. Anchor rows may be negative while the piece is
// still above the visible field.
type Piece struct {
	Kind     Kind
	Rotation Rotation
	Anchor   core.Point
}

// Cells returns the absolute positions of the piece's four cells.
func (p Piece) Cells() [4]core.Point {
	var out [4]core.Point
	for i, off := range patterns[p.Kind] {
		out[i] = p.Rotation.Apply(off).Add(p.Anchor)
	}
	return out
}

// Top returns the smallest row any cell occupies.
func (p Piece) Top() int {
	cells := p.Cells()
	top := cells[0].Row
	for _, c := range cells[1:] {
		top = min(top, c.Row)
	}
	return top
}

// RandomPiece picks a kind and then a rotation, each uniform over four
// values by modulo, and anchors the piece at anchor.
func RandomPiece(rng core.RandomSource, anchor core.Point) Piece {
	kind := Kind(core.Intn(rng, int(numKinds)))
	rot := Rotation(core.Intn(rng, int(numRotations)))
	return Piece{Kind: kind, Rotation: rot, Anchor: anchor}
}
