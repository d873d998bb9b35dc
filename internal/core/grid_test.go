package core

import "testing"

func TestNewGridPanicsOnBadSize(t *testing.T) {
	tests := []struct {
		rows, cols int
	}{
		{0, 5},
		{5, 0},
		{-1, 3},
	}
	for _, tt := range tests {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewGrid(%d, %d) did not panic", tt.rows, tt.cols)
				}
			}()
			NewGrid[int](tt.rows, tt.cols)
		}()
	}
}

func TestGridSetRejectsOutOfRange(t *testing.T) {
	g := NewGrid[int](3, 4)

	tests := []struct {
		row, col int
		ok       bool
	}{
		{0, 0, true},
		{2, 3, true},
		{-1, 0, false},
		{0, -1, false},
		{3, 0, false},
		{0, 4, false},
	}
	for _, tt := range tests {
		if got := g.Set(tt.row, tt.col, 7); got != tt.ok {
			t.Errorf("Set(%d, %d) = %v, expected %v", tt.row, tt.col, got, tt.ok)
		}
	}

	// Rejected writes must not wrap onto a neighbouring row.
	if g.Get(1, 0) != 0 || g.Get(0, 3) != 0 {
		t.Error("out-of-range write leaked into the grid")
	}
	if g.Get(-1, 0) != 0 {
		t.Error("Get outside the grid should return the zero value")
	}
}

func TestGridRows(t *testing.T) {
	g := NewGrid[int](3, 2)
	g.Set(0, 0, 1)
	g.Set(0, 1, 2)

	g.CopyRow(2, 0)
	if g.Get(2, 0) != 1 || g.Get(2, 1) != 2 {
		t.Errorf("CopyRow: row 2 = [%d %d], expected [1 2]", g.Get(2, 0), g.Get(2, 1))
	}

	g.FillRow(0, 9)
	if g.Get(0, 0) != 9 || g.Get(0, 1) != 9 {
		t.Error("FillRow did not fill row 0")
	}
	if g.Get(2, 0) != 1 {
		t.Error("FillRow touched another row")
	}

	// Out-of-range rows are ignored.
	g.CopyRow(5, 0)
	g.FillRow(-1, 3)
}

func TestGridCloneEqual(t *testing.T) {
	g := NewGrid[int](2, 2)
	g.Set(1, 1, 5)

	c := g.Clone()
	if !g.Equal(c) {
		t.Fatal("clone should equal original")
	}
	c.Set(0, 0, 1)
	if g.Equal(c) {
		t.Error("clone shares storage with original")
	}

	g.CopyFrom(c)
	if !g.Equal(c) {
		t.Error("CopyFrom did not copy contents")
	}
	if g.Equal(NewGrid[int](2, 3)) {
		t.Error("grids of different size should not be equal")
	}
}
