// Package host drives a game one tick at a time. Every target (terminal,
// LED emulator, headless replay) feeds raw button state and measured
// elapsed time into a Session and flushes the resulting frame.
package host

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/matrix-arcade/internal/core"
)

// Recorder receives every tick's raw input so the session can be replayed.
type Recorder interface {
	Record(tick uint64, elapsed time.Duration, raw core.Buttons) error
}

// Step is one recorded tick: the elapsed time and the raw buttons held.
type Step struct {
	Elapsed time.Duration
	Buttons core.Buttons
}

// Options configures a Session.
type Options struct {
	Rows, Cols int
	Seed       int64
	Recorder   Recorder    // Optional
	Logger     *log.Logger // Optional; discards when nil
}

// Session owns everything that persists between ticks outside the game:
// the debouncer, the frame, the random source and the tick counter.
type Session struct {
	game  core.Game
	deb   core.Debouncer
	frame *core.Frame
	rng   core.RandomSource
	rec   Recorder
	log   *log.Logger

	ticks   uint64
	elapsed time.Duration
	state   core.GameState
}

// NewSession prepares game for play on a Rows x Cols frame.
func NewSession(game core.Game, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		game:  game,
		frame: core.NewFrame(opts.Rows, opts.Cols),
		rng:   core.NewRandom(opts.Seed),
		rec:   opts.Recorder,
		log:   logger,
		state: game.State(),
	}
}

// Tick runs one game tick. raw is the button state currently held; it is
// debounced here, exactly once per tick. A negative elapsed is treated as
// zero so time never runs backwards for the game.
//
// The returned error comes only from the Recorder; the tick itself has
// already been applied.
func (s *Session) Tick(elapsed time.Duration, raw core.Buttons) error {
	if elapsed < 0 {
		elapsed = 0
	}
	raw &= core.ButtonsMask

	s.deb.Update(raw)
	s.game.Update(elapsed, &s.deb, s.frame, s.rng)
	s.ticks++
	s.elapsed += elapsed

	if st := s.game.State(); st != s.state {
		s.log.Debug("state changed", "tick", s.ticks, "from", s.state, "to", st)
		s.state = st
	}

	if s.rec != nil {
		if err := s.rec.Record(s.ticks, elapsed, raw); err != nil {
			return fmt.Errorf("host: record tick %d: %w", s.ticks, err)
		}
	}
	return nil
}

// Run feeds steps through Tick in order.
func (s *Session) Run(steps []Step) error {
	for _, st := range steps {
		if err := s.Tick(st.Elapsed, st.Buttons); err != nil {
			return err
		}
	}
	return nil
}

// Frame returns the frame drawn by the last tick. Targets must not modify it.
func (s *Session) Frame() *core.Frame { return s.frame }

// Game returns the driven game.
func (s *Session) Game() core.Game { return s.game }

// State returns the game state after the last tick.
func (s *Session) State() core.GameState { return s.state }

// Ticks returns the number of ticks run.
func (s *Session) Ticks() uint64 { return s.ticks }

// Elapsed returns the total game time fed so far.
func (s *Session) Elapsed() time.Duration { return s.elapsed }
