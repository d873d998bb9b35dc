// Package snake implements Snake on a pixel grid.
//
// The trail is stored as a grid of ages rather than a list of segments:
// on every move each age counts down by one, and the cell the head leaves
// is stamped with the current length. A cell is part of the body while its
// age is positive.
package snake

import (
	"time"

	"github.com/vovakirdan/matrix-arcade/internal/config"
	"github.com/vovakirdan/matrix-arcade/internal/core"
	"github.com/vovakirdan/matrix-arcade/internal/registry"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Delta returns the one-cell step for d.
func (d Direction) Delta() core.Point {
	switch d {
	case DirUp:
		return core.Point{Row: -1}
	case DirDown:
		return core.Point{Row: 1}
	case DirLeft:
		return core.Point{Col: -1}
	case DirRight:
		return core.Point{Col: 1}
	default:
		return core.Point{}
	}
}

// Opposite reports whether d and other point in exactly opposite directions.
func (d Direction) Opposite(other Direction) bool {
	switch d {
	case DirUp:
		return other == DirDown
	case DirDown:
		return other == DirUp
	case DirLeft:
		return other == DirRight
	case DirRight:
		return other == DirLeft
	}
	return false
}

// noApple marks an apple that still has to be placed.
var noApple = core.Point{Row: -1, Col: -1}

// Game implements the Snake game.
type Game struct {
	cfg   config.SnakeConfig
	state core.GameState
	phase core.Phase

	moveTimer time.Duration
	moveRate  time.Duration

	head   core.Point
	dir    Direction
	trail  *core.Grid[int]
	length int
	apple  core.Point // Col < 0 until placed
}

func init() {
	registry.Register("snake", "Snake", func(rows, cols int, cfg config.Config) core.Game {
		return NewWithConfig(rows, cols, cfg.Snake)
	})
}

// New creates a Snake game with the default configuration.
func New(rows, cols int) *Game {
	return NewWithConfig(rows, cols, config.DefaultSnakeConfig())
}

// NewWithConfig creates a Snake game in the Start state: head in the
// centre facing up, length zero, the first apple at (5, 5) when it fits.
func NewWithConfig(rows, cols int, cfg config.SnakeConfig) *Game {
	g := &Game{
		cfg:      cfg,
		state:    core.StateStart,
		moveRate: cfg.MoveInterval(),
		head:     core.Point{Row: rows / 2, Col: cols / 2},
		dir:      DirUp,
		trail:    core.NewGrid[int](rows, cols),
		apple:    core.Point{Row: 5, Col: 5},
	}
	if !g.trail.In(g.apple.Row, g.apple.Col) || g.apple == g.head {
		g.apple = noApple
	}
	return g
}

// State returns the current lifecycle phase.
func (g *Game) State() core.GameState {
	return g.state
}

// Length returns the number of apples eaten.
func (g *Game) Length() int {
	return g.length
}

// Update advances the game by one tick and repaints d.
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
	*g = *NewWithConfig(g.trail.Rows(), g.trail.Cols(), g.cfg)
}

func (g *Game) step(elapsed time.Duration, in core.Input, rng core.RandomSource) {
	g.moveTimer += elapsed

	g.steer(in)

	if g.apple.Col < 0 {
		g.placeApple(rng)
	}

	if g.moveTimer > g.moveRate {
		g.moveTimer -= g.moveRate
		g.move()
	}
}

// steer applies the first pressed direction in the order left, right, up,
// down, unless it would reverse the snake onto itself.
func (g *Game) steer(in core.Input) {
	want := g.dir
	switch {
	case in.Left():
		want = DirLeft
	case in.Right():
		want = DirRight
	case in.Up():
		want = DirUp
	case in.Down():
		want = DirDown
	}
	if !want.Opposite(g.dir) {
		g.dir = want
	}
}

// move ages the trail, advances the head and resolves collisions.
func (g *Game) move() {
	for r := 0; r < g.trail.Rows(); r++ {
		for c := 0; c < g.trail.Cols(); c++ {
			if age := g.trail.Get(r, c); age > 0 {
				g.trail.Set(r, c, age-1)
			}
		}
	}
	g.trail.Set(g.head.Row, g.head.Col, g.length)

	g.head = g.head.Add(g.dir.Delta())

	if !g.trail.In(g.head.Row, g.head.Col) {
		g.state = core.StateGameOver
		return
	}

	if g.head == g.apple {
		g.moveRate = max(g.cfg.MinInterval(), g.moveRate-g.cfg.Speedup())
		g.length++
		g.apple = noApple
	}

	if g.trail.Get(g.head.Row, g.head.Col) > 0 {
		g.state = core.StateGameOver
	}
}

// free reports whether an apple may be placed at (row, col).
func (g *Game) free(row, col int) bool {
	return g.trail.Get(row, col) == 0 && (core.Point{Row: row, Col: col}) != g.head
}

// placeApple samples random cells until one is free. After rows*cols*4
// misses it scans the grid from a random cell instead, so a crowded board
// cannot stall the tick. A board with no free cell leaves the apple unplaced.
func (g *Game) placeApple(rng core.RandomSource) {
	rows, cols := g.trail.Rows(), g.trail.Cols()

	for i := 0; i < rows*cols*4; i++ {
		col := core.Intn(rng, cols)
		row := core.Intn(rng, rows)
		if g.free(row, col) {
			g.apple = core.Point{Row: row, Col: col}
			return
		}
	}

	area := rows * cols
	start := core.Intn(rng, area)
	for i := 0; i < area; i++ {
		idx := (start + i) % area
		row, col := idx/cols, idx%cols
		if g.free(row, col) {
			g.apple = core.Point{Row: row, Col: col}
			return
		}
	}
}

func (g *Game) draw(d core.PixelDisplay) {
	switch g.state {
	case core.StateStart:
		core.DrawReady(d, "S")
		return
	case core.StateGameOver:
		core.DrawGameOver(d, g.length)
		return
	}

	core.Clear(d)
	d.SetPixel(g.head.Row, g.head.Col, core.On)
	if g.apple.Col >= 0 {
		d.SetPixel(g.apple.Row, g.apple.Col, core.On)
	}
	for r := 0; r < g.trail.Rows(); r++ {
		for c := 0; c < g.trail.Cols(); c++ {
			if g.trail.Get(r, c) > 0 {
				d.SetPixel(r, c, core.On)
			}
		}
	}
}
