// Package tetris implements falling-block Tetris on a pixel grid.
//
// Pieces spawn above the visible field and fall one row per drop interval.
// Every move is speculative: it is applied, validated against the board and
// reverted with its exact inverse when invalid. A piece that cannot fall
// further locks into the board, full rows are removed and a new random piece
// takes its place.
package tetris

import (
	"time"

	"github.com/vovakirdan/matrix-arcade/internal/config"
	"github.com/vovakirdan/matrix-arcade/internal/core"
	"github.com/vovakirdan/matrix-arcade/internal/registry"
)

// Scoring.
const (
	LockPoints = 1
	RowPoints  = 10
)

// spawnRow is the anchor row of new pieces, above the visible field so the
// tallest piece enters from the top.
const spawnRow = -4

// Game implements the Tetris game.
type Game struct {
	cfg   config.TetrisConfig
	state core.GameState
	phase core.Phase

	dropTimer time.Duration
	dropRate  time.Duration

	board   *Board
	current *Piece // nil until the first drop
	score   int
	lines   int
}

func init() {
	registry.Register("tetris", "Tetris", func(rows, cols int, cfg config.Config) core.Game {
		return NewWithConfig(rows, cols, cfg.Tetris)
	})
}

// New creates a Tetris game with the default configuration.
func New(rows, cols int) *Game {
	return NewWithConfig(rows, cols, config.DefaultTetrisConfig())
}

// NewWithConfig creates a Tetris game in the Start state.
func NewWithConfig(rows, cols int, cfg config.TetrisConfig) *Game {
	return &Game{
		cfg:      cfg,
		state:    core.StateStart,
		dropRate: cfg.DropInterval(),
		board:    NewBoard(rows, cols, cfg.StrictFullRows),
	}
}

// State returns the current lifecycle phase.
func (g *Game) State() core.GameState {
	return g.state
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Update advances the game by one tick and repaints d.
//
// While playing, input edges are applied in order: action rotates right,
// up rotates left, right and left shift one column, down drops one row
// without locking.
func (g *Game) Update(elapsed time.Duration, in core.Input, d core.PixelDisplay, rng core.RandomSource) {
	switch g.state {
	case core.StateStart:
		if g.phase.Advance(elapsed, g.cfg.StateDelay(), in.Action()) {
			g.state = core.StatePlaying
		}
	case core.StateGameOver:
		if g.phase.Advance(elapsed, g.cfg.StateDelay(), in.Action()) {
			g.restart()
		}
	case core.StatePlaying:
		g.step(elapsed, in, rng)
	}
	g.draw(d)
}

// restart replaces every field with a fresh instance of the same size and
// configuration.
func (g *Game) restart() {
	*g = *NewWithConfig(g.board.Rows(), g.board.Cols(), g.cfg)
}

func (g *Game) step(elapsed time.Duration, in core.Input, rng core.RandomSource) {
	g.dropTimer += elapsed

	if g.current != nil {
		if in.Action() {
			g.rotate(Rotation.Right, Rotation.Left)
		}
		if in.Up() {
			g.rotate(Rotation.Left, Rotation.Right)
		}
		if in.Right() {
			g.shift(0, 1)
		}
		if in.Left() {
			g.shift(0, -1)
		}
		if in.Down() {
			g.shift(1, 0)
		}
	}

	if g.dropTimer > g.dropRate {
		g.dropTimer -= g.dropRate

		if g.current == nil {
			g.spawn(rng)
		}
		if !g.shift(1, 0) {
			g.lock(rng)
		}
	}
}

// rotate applies turn to the current piece and reverts it with undo if the
// result is invalid.
func (g *Game) rotate(turn, undo func(Rotation) Rotation) {
	g.current.Rotation = turn(g.current.Rotation)
	if !g.board.Valid(*g.current) {
		g.current.Rotation = undo(g.current.Rotation)
	}
}

// shift moves the current piece and reports whether the move was kept.
func (g *Game) shift(dRow, dCol int) bool {
	g.current.Anchor.Row += dRow
	g.current.Anchor.Col += dCol
	if g.board.Valid(*g.current) {
		return true
	}
	g.current.Anchor.Row -= dRow
	g.current.Anchor.Col -= dCol
	return false
}

// lock stamps the landed piece, ends the game if it reached the top row,
// clears full rows and brings in the next piece.
func (g *Game) lock(rng core.RandomSource) {
	p := *g.current
	g.board.Stamp(p)
	g.score += LockPoints

	if p.Top() <= 0 {
		g.state = core.StateGameOver
	}

	cleared := g.board.ClearFull()
	g.lines += cleared
	g.score += cleared * RowPoints

	if g.state == core.StatePlaying {
		g.spawn(rng)
	}
}

func (g *Game) spawn(rng core.RandomSource) {
	p := RandomPiece(rng, core.Point{Row: spawnRow, Col: g.board.Cols() / 2})
	g.current = &p
}

func (g *Game) draw(d core.PixelDisplay) {
	switch g.state {
	case core.StateStart:
		core.DrawReady(d, "T")
		return
	case core.StateGameOver:
		core.DrawGameOver(d, g.score)
		return
	}

	core.Clear(d)
	for r := 0; r < g.board.Rows(); r++ {
		for c := 0; c < g.board.Cols(); c++ {
			if g.board.Occupied(r, c) {
				d.SetPixel(r, c, core.On)
			}
		}
	}
	if g.current == nil {
		return
	}
	for _, c := range g.current.Cells() {
		if c.Row >= 0 && c.Row < d.Rows() && c.Col >= 0 && c.Col < d.Columns() {
			d.SetPixel(c.Row, c.Col, core.On)
		}
	}
}
