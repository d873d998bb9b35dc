// Package core provides fundamental types for the arcade engine: the pixel
// display capability, button input, randomness and the game contract.
// It has no dependency on any rendering target so game logic stays pure and
// testable.
package core

// Point is a signed grid position. Negative rows are legal for pieces that
// spawn above the visible field.
type Point struct {
	Row, Col int
}

// Add returns the point offset by other.
func (p Point) Add(other Point) Point {
	return Point{Row: p.Row + other.Row, Col: p.Col + other.Col}
}

// Size is the fixed extent of a grid.
type Size struct {
	Rows, Cols int
}

// Contains reports whether p lies inside [0,Rows)x[0,Cols).
func (s Size) Contains(p Point) bool {
	return p.Row >= 0 && p.Row < s.Rows && p.Col >= 0 && p.Col < s.Cols
}

// Area returns the number of cells.
func (s Size) Area() int {
	return s.Rows * s.Cols
}
