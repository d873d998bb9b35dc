package tetris

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/matrix-arcade/internal/config"
	"github.com/vovakirdan/matrix-arcade/internal/core"
)

var none core.Buttons

func press(bs ...core.Button) core.Buttons { return core.Press(bs...) }

// playing returns a game already past the Start screen with piece p falling.
func playing(rows, cols int, cfg config.TetrisConfig, p Piece) *Game {
	g := NewWithConfig(rows, cols, cfg)
	g.state = core.StatePlaying
	g.current = &p
	return g
}

func TestStartRequiresDelay(t *testing.T) {
	g := New(16, 42)
	f := core.NewFrame(16, 42)
	rng := &seqRNG{vals: []uint32{0}}

	g.Update(500*time.Millisecond, press(core.ButtonAction), f, rng)
	if g.State() != core.StateStart {
		t.Fatalf("State() = %s before delay, expected Start", g.State())
	}

	want := core.NewFrame(16, 42)
	core.DrawReady(want, "T")
	if !f.Equal(want) {
		t.Errorf("start screen =\n%s\nexpected\n%s", f, want)
	}

	g.Update(501*time.Millisecond, none, f, rng)
	if g.State() != core.StateStart {
		t.Fatal("game started without action")
	}
	g.Update(0, press(core.ButtonAction), f, rng)
	if g.State() != core.StatePlaying {
		t.Errorf("State() = %s, expected Playing", g.State())
	}
}

func TestLineClearOnLock(t *testing.T) {
	g := playing(8, 6, config.DefaultTetrisConfig(),
		Piece{Kind: KindSquare, Anchor: core.Point{Row: 5, Col: 2}})
	for c := 0; c < 5; c++ {
		g.board.Set(7, c, Occupied)
	}

	f := core.NewFrame(8, 6)
	g.Update(401*time.Millisecond, none, f, &seqRNG{vals: []uint32{0}})

	if g.Score() != LockPoints+RowPoints {
		t.Errorf("Score() = %d, expected %d", g.Score(), LockPoints+RowPoints)
	}
	want := strings.Join([]string{
		"......",
		"......",
		"......",
		"......",
		"......",
		"......",
		"..##..",
		"..##..",
	}, "\n")
	if got := g.board.String(); got != want {
		t.Errorf("board =\n%s\nexpected\n%s", got, want)
	}
	s := g.Snapshot()
	if s.Lines != 1 {
		t.Errorf("Lines = %d, expected 1", s.Lines)
	}
	if !s.HasPiece || s.Piece.Anchor != (core.Point{Row: spawnRow, Col: 3}) {
		t.Errorf("next piece = %+v, expected one at the spawn anchor", s.Piece)
	}
}

func TestStrictRowsKeepAlmostFullRow(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	cfg.StrictFullRows = true
	g := playing(8, 6, cfg, Piece{Kind: KindSquare, Anchor: core.Point{Row: 5, Col: 2}})
	for c := 0; c < 5; c++ {
		g.board.Set(7, c, Occupied)
	}

	g.Update(401*time.Millisecond, none, core.NewFrame(8, 6), &seqRNG{vals: []uint32{0}})

	if g.Score() != LockPoints {
		t.Errorf("Score() = %d, expected %d", g.Score(), LockPoints)
	}
	if !g.board.Occupied(7, 0) {
		t.Error("almost-full row was cleared under the strict rule")
	}
}

func TestMovesRevertWhenInvalid(t *testing.T) {
	g := playing(8, 3, config.DefaultTetrisConfig(),
		Piece{Kind: KindLine, Anchor: core.Point{Row: 0, Col: 0}})
	f := core.NewFrame(8, 3)
	rng := &seqRNG{vals: []uint32{0}}

	g.Update(0, press(core.ButtonLeft), f, rng)
	if g.current.Anchor.Col != 0 {
		t.Errorf("Col = %d after blocked left, expected 0", g.current.Anchor.Col)
	}

	// Horizontal line needs four columns.
	g.Update(0, press(core.ButtonAction), f, rng)
	if g.current.Rotation != R0 {
		t.Errorf("Rotation = %s after blocked rotate, expected R0", g.current.Rotation)
	}

	g.Update(0, press(core.ButtonRight), f, rng)
	if g.current.Anchor.Col != 1 {
		t.Errorf("Col = %d after right, expected 1", g.current.Anchor.Col)
	}
}

func TestSoftDropNeverLocks(t *testing.T) {
	g := playing(8, 6, config.DefaultTetrisConfig(),
		Piece{Kind: KindSquare, Anchor: core.Point{Row: 6, Col: 0}})
	f := core.NewFrame(8, 6)

	g.Update(0, press(core.ButtonDown), f, &seqRNG{vals: []uint32{0}})

	if g.current.Anchor.Row != 6 {
		t.Errorf("Row = %d, expected 6", g.current.Anchor.Row)
	}
	if g.Score() != 0 {
		t.Errorf("soft drop locked the piece, score %d", g.Score())
	}

	g.current.Anchor.Row = 2
	g.Update(0, press(core.ButtonDown), f, &seqRNG{vals: []uint32{0}})
	if g.current.Anchor.Row != 3 {
		t.Errorf("Row = %d after soft drop, expected 3", g.current.Anchor.Row)
	}
}

func TestRotateAndInverse(t *testing.T) {
	sizes := []struct{ rows, cols int }{{16, 42}, {42, 16}}
	for _, sz := range sizes {
		g := New(sz.rows, sz.cols)
		f := core.NewFrame(sz.rows, sz.cols)
		rng := &seqRNG{vals: []uint32{uint32(KindT), uint32(R0)}}

		g.Update(1001*time.Millisecond, press(core.ButtonAction), f, rng)
		g.Update(401*time.Millisecond, none, f, rng)

		first := g.Snapshot()
		wantAnchor := core.Point{Row: spawnRow + 1, Col: sz.cols / 2}
		if !first.HasPiece || first.Piece.Kind != KindT || first.Piece.Anchor != wantAnchor {
			t.Fatalf("%dx%d: first piece = %+v, expected T at %v", sz.rows, sz.cols, first.Piece, wantAnchor)
		}

		g.Update(0, press(core.ButtonAction), f, rng)
		if g.current.Rotation != R90 {
			t.Errorf("%dx%d: Rotation = %s after action, expected R90", sz.rows, sz.cols, g.current.Rotation)
		}
		g.Update(0, press(core.ButtonUp), f, rng)
		if g.Snapshot().Piece != first.Piece {
			t.Errorf("%dx%d: piece = %+v after inverse, expected %+v", sz.rows, sz.cols, g.Snapshot().Piece, first.Piece)
		}
	}
}

func TestDropUsesStrictlyGreaterTimer(t *testing.T) {
	g := playing(8, 6, config.DefaultTetrisConfig(),
		Piece{Kind: KindSquare, Anchor: core.Point{Row: 0, Col: 0}})
	f := core.NewFrame(8, 6)
	rng := &seqRNG{vals: []uint32{0}}

	g.Update(400*time.Millisecond, none, f, rng)
	if g.current.Anchor.Row != 0 {
		t.Fatal("piece dropped at exactly the drop interval")
	}
	g.Update(time.Millisecond, none, f, rng)
	if g.current.Anchor.Row != 1 {
		t.Errorf("Row = %d, expected 1", g.current.Anchor.Row)
	}
	if g.Snapshot().DropTimer != 1 {
		t.Errorf("DropTimer = %d, expected 1", g.Snapshot().DropTimer)
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := playing(16, 42, config.DefaultTetrisConfig(),
		Piece{Kind: KindSquare, Anchor: core.Point{Row: 0, Col: 0}})
	g.board.Set(2, 0, Occupied)
	f := core.NewFrame(16, 42)
	rng := &seqRNG{vals: []uint32{0}}

	g.Update(401*time.Millisecond, none, f, rng)
	if g.State() != core.StateGameOver {
		t.Fatalf("State() = %s, expected GameOver", g.State())
	}
	if g.Score() != 1 {
		t.Errorf("Score() = %d, expected 1", g.Score())
	}
	want := core.NewFrame(16, 42)
	core.DrawGameOver(want, 1)
	if !f.Equal(want) {
		t.Errorf("game over screen =\n%s\nexpected\n%s", f, want)
	}

	g.Update(500*time.Millisecond, press(core.ButtonAction), f, rng)
	if g.State() != core.StateGameOver {
		t.Fatal("restarted before the delay")
	}
	g.Update(501*time.Millisecond, press(core.ButtonAction), f, rng)

	s := g.Snapshot()
	if s.State != core.StateStart || s.Score != 0 || s.HasPiece || s.Lines != 0 {
		t.Errorf("after restart snapshot = %+v, expected fresh game", s)
	}
	if strings.Contains(s.Board, "#") {
		t.Error("board not cleared on restart")
	}
}

func TestGameOverUsesTopCell(t *testing.T) {
	tests := []struct {
		name     string
		anchor   int // Anchor row of an upside-down Line, its cells span anchor-3..anchor
		wantOver bool
	}{
		{"top cell on row 0", 3, true},
		{"top cell on row 1", 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Piece{Kind: KindLine, Rotation: R180, Anchor: core.Point{Row: tt.anchor, Col: 5}}
			g := playing(16, 42, config.DefaultTetrisConfig(), p)
			g.board.Set(tt.anchor+1, 5, Occupied)

			g.Update(401*time.Millisecond, none, core.NewFrame(16, 42), &seqRNG{vals: []uint32{0}})

			if got := g.State() == core.StateGameOver; got != tt.wantOver {
				t.Errorf("game over = %v, expected %v (anchor row %d, top row %d)",
					got, tt.wantOver, tt.anchor, p.Top())
			}
			if !g.board.Occupied(tt.anchor-3, 5) || !g.board.Occupied(tt.anchor, 5) {
				t.Errorf("piece not stamped:\n%s", g.board)
			}
		})
	}
}

func TestDrawShowsBoardAndPiece(t *testing.T) {
	g := playing(8, 6, config.DefaultTetrisConfig(),
		Piece{Kind: KindLine, Anchor: core.Point{Row: -2, Col: 4}})
	g.board.Set(7, 0, Occupied)
	f := core.NewFrame(8, 6)

	g.Update(0, none, f, &seqRNG{vals: []uint32{0}})

	if f.Lit() != 3 {
		t.Errorf("lit = %d, expected 3", f.Lit())
	}
	for _, p := range []core.Point{{Row: 7, Col: 0}, {Row: 0, Col: 4}, {Row: 1, Col: 4}} {
		if f.Get(p.Row, p.Col) != core.On {
			t.Errorf("expected pixel at %v", p)
		}
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := New(16, 42)
		f := core.NewFrame(16, 42)
		rng := core.NewRandom(12345)
		script := core.NewRandom(99)
		for i := 0; i < 5000; i++ {
			var in core.Buttons
			if i%7 == 0 {
				in = core.Buttons(script.Uint32()) & core.ButtonsMask
			}
			g.Update(10*time.Millisecond, in, f, rng)
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("snapshots differ:\n%+v\n%+v", a, b)
	}
}
