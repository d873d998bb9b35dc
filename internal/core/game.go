package core

import "time"

// GameState is the lifecycle phase shared by every game.
type GameState int

const (
	// StateStart shows a ready prompt and waits for action. A menu may
	// switch games only in this state.
	StateStart GameState = iota
	StatePlaying
	StateGameOver
)

// String returns a human-readable name for the state.
func (s GameState) String() string {
	switch s {
	case StateStart:
		return "Start"
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Game is the interface every arcade game implements.
//
// Update is called once per tick. It advances timers by elapsed, applies
// input, resolves any due logic step and repaints the whole visible state
// into d. It must not block or retain d, in or rng after returning.
//
// State returns the current phase without side effects.
type Game interface {
	Update(elapsed time.Duration, in Input, d PixelDisplay, rng RandomSource)
	State() GameState
}

// StateDelay is how long Start and GameOver screens ignore action.
const StateDelay = 1000 * time.Millisecond

// Phase tracks the Start and GameOver wait timer common to all games.
type Phase struct {
	wait time.Duration
}

// Advance adds elapsed to the wait timer and reports whether action should
// be honoured: the button is pressed and more than delay has passed.
// The timer is reset when it reports true.
func (p *Phase) Advance(elapsed, delay time.Duration, action bool) bool {
	p.wait += elapsed
	if action && p.wait > delay {
		p.wait = 0
		return true
	}
	return false
}

// Waited returns the time accumulated so far.
func (p *Phase) Waited() time.Duration { return p.wait }

// DrawReady paints the Start screen: "RDY" in the top-left corner and, when
// letter is not empty, the game's initial centred on the second text line.
func DrawReady(d PixelDisplay, letter string) {
	Clear(d)
	DrawText(d, 0, 0, "RDY")
	if letter != "" {
		DrawText(d, 8, d.Columns()/2-3, letter)
	}
}

// DrawGameOver paints the GameOver screen with the final value.
func DrawGameOver(d PixelDisplay, value int) {
	Clear(d)
	DrawText(d, 0, 0, "DEAD")
	DrawText(d, 8, 0, "=")
	DrawNumber(d, 8, 10, value)
}
