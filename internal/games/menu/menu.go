// Package menu composes several games behind a single core.Game.
//
// The menu always forwards the tick to the selected game. While that game
// sits on its Start screen, left and right switch to the neighbouring game
// and small arrows in the bottom corners hint that switching is possible.
// Switching only changes the index, so a game that is switched away from
// keeps its state until it is selected again.
package menu

import (
	"time"

	"github.com/vovakirdan/matrix-arcade/internal/core"
)

// Menu implements core.Game over an ordered list of games.
type Menu struct {
	games []core.Game
	index int
}

// New creates a menu over games with the first one selected.
// It panics if games is empty.
func New(games ...core.Game) *Menu {
	if len(games) == 0 {
		panic("menu: no games")
	}
	return &Menu{games: games}
}

// Index returns the position of the selected game.
func (m *Menu) Index() int {
	return m.index
}

// Len returns the number of games.
func (m *Menu) Len() int {
	return len(m.games)
}

// Current returns the selected game.
func (m *Menu) Current() core.Game {
	return m.games[m.index]
}

// State returns the selected game's state.
func (m *Menu) State() core.GameState {
	return m.Current().State()
}

// Update forwards the tick to the selected game, then handles switching
// when that game is on its Start screen.
func (m *Menu) Update(elapsed time.Duration, in core.Input, d core.PixelDisplay, rng core.RandomSource) {
	m.Current().Update(elapsed, in, d, rng)

	if m.Current().State() != core.StateStart {
		return
	}

	n := len(m.games)
	if in.Left() {
		m.index = (m.index + n - 1) % n
	}
	if in.Right() {
		m.index = (m.index + 1) % n
	}

	drawArrows(d)
}

// drawArrows draws a three-pixel chevron in each bottom corner.
func drawArrows(d core.PixelDisplay) {
	rows, cols := d.Rows(), d.Columns()

	d.SetPixel(rows-1, 1, core.On)
	d.SetPixel(rows-2, 0, core.On)
	d.SetPixel(rows-3, 1, core.On)

	d.SetPixel(rows-1, cols-2, core.On)
	d.SetPixel(rows-2, cols-1, core.On)
	d.SetPixel(rows-3, cols-2, core.On)
}
