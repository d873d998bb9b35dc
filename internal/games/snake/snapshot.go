package snake

import "github.com/vovakirdan/matrix-arcade/internal/core"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	State     core.GameState
	Length    int
	Head      core.Point
	Dir       Direction
	Apple     core.Point // Col < 0 while unplaced
	MoveRate  int64      // Current move interval in milliseconds
	MoveTimer int64      // Milliseconds accumulated toward the next move
	Body      int        // Cells with positive age
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	body := 0
	for r := 0; r < g.trail.Rows(); r++ {
		for c := 0; c < g.trail.Cols(); c++ {
			if g.trail.Get(r, c) > 0 {
				body++
			}
		}
	}
	return Snapshot{
		State:     g.state,
		Length:    g.length,
		Head:      g.head,
		Dir:       g.dir,
		Apple:     g.apple,
		MoveRate:  g.moveRate.Milliseconds(),
		MoveTimer: g.moveTimer.Milliseconds(),
		Body:      body,
	}
}
