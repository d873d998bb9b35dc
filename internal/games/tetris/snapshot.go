package tetris

import "github.com/vovakirdan/matrix-arcade/internal/core"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	State     core.GameState
	Score     int
	Lines     int  // Rows cleared so far
	HasPiece  bool // False until the first drop
	Piece     Piece
	DropTimer int64 // Milliseconds accumulated toward the next drop
	Board     string
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		State:     g.state,
		Score:     g.score,
		Lines:     g.lines,
		DropTimer: g.dropTimer.Milliseconds(),
		Board:     g.board.String(),
	}
	if g.current != nil {
		s.HasPiece = true
		s.Piece = *g.current
	}
	return s
}
