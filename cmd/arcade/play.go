package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/matrix-arcade/internal/config"
	"github.com/vovakirdan/matrix-arcade/internal/core"
	"github.com/vovakirdan/matrix-arcade/internal/host"
	"github.com/vovakirdan/matrix-arcade/internal/logring"
	"github.com/vovakirdan/matrix-arcade/internal/platform/ledsim"
	"github.com/vovakirdan/matrix-arcade/internal/platform/tui"
	"github.com/vovakirdan/matrix-arcade/internal/storage"
)

// Display targets
const (
	targetTUI = "tui"
	targetLED = "led"
)

// Rows used by the title and help lines around the panel.
const tuiChromeRows = 3

var (
	flagTarget string
	flagRows   int
	flagCols   int
	flagRecord bool
	flagScale  int
)

var playCmd = &cobra.Command{
	Use:   "play [game|menu]",
	Short: "Play a game",
	Long: `Start playing the specified game, or the menu over every game listed
in the config when no game is given.

Controls:
  A/D or Left/Right  - Move / switch game on the start screen
  W or Up            - Rotate left (Tetris) / steer up (Snake)
  S or Down          - Soft drop (Tetris) / steer down (Snake)
  Space              - Start, restart, rotate right (Tetris)
  Ctrl+S             - Screenshot (terminal)
  C                  - Copy frame to clipboard (LED emulator)
  Esc/Q              - Quit

Difficulty options:
  easy   - Slower drops and moves, gentle snake speed-up
  normal - Config timings unchanged
  hard   - Faster drops and moves, steep snake speed-up
  fixed  - Snake keeps its starting speed

Examples:
  arcade play
  arcade play tetris --record
  arcade play snake --difficulty hard
  arcade play menu --target led --scale 12
  arcade play tetris --rows 42 --cols 16`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagTarget, "target", targetTUI, "Display target: tui, led")
	playCmd.Flags().IntVar(&flagRows, "rows", 0, "Display rows (default from config)")
	playCmd.Flags().IntVar(&flagCols, "cols", 0, "Display columns (default from config)")
	playCmd.Flags().BoolVar(&flagRecord, "record", false, "Record the session for replay")
	playCmd.Flags().IntVar(&flagScale, "scale", 0, "LED emulator window pixels per LED")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	gameID := MenuID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !knownGame(gameID) {
		return unknownGame(gameID)
	}

	rc := core.RuntimeConfig{
		Rows: cfg.Display.Rows,
		Cols: cfg.Display.Cols,
		Tick: cfg.Display.TickInterval(),
		Seed: seed(),
	}
	if flagRows > 0 {
		rc.Rows = flagRows
	}
	if flagCols > 0 {
		rc.Cols = flagCols
	}
	if err := rc.Validate(); err != nil {
		return err
	}

	switch flagTarget {
	case targetTUI:
		if err := checkFit(rc.Rows, rc.Cols); err != nil {
			return err
		}
	case targetLED:
		if !ledsim.Available {
			return ledsim.ErrUnavailable
		}
	default:
		return fmt.Errorf("unknown target %q (want %s or %s)", flagTarget, targetTUI, targetLED)
	}

	// The terminal owns the screen while playing, so logs go to a ring.
	ring := logring.New(cfg.Terminal.LogLines)
	logger := newLogger(os.Stderr)
	if flagTarget == targetTUI {
		logger = newLogger(ring)
	}

	game, err := buildGame(gameID, rc.Rows, rc.Cols, cfg)
	if err != nil {
		return err
	}

	opts := host.Options{
		Rows:   rc.Rows,
		Cols:   rc.Cols,
		Seed:   rc.Seed,
		Logger: logger,
	}

	var journal *storage.Journal
	if flagRecord {
		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		journal, err = newJournal(store, gameID, rc, cfg)
		if err != nil {
			return err
		}
		opts.Recorder = journal
	}

	logger.Info("starting", "game", gameID, "rows", rc.Rows, "cols", rc.Cols, "seed", rc.Seed, "target", flagTarget)
	sess := host.NewSession(game, opts)

	var runErr error
	switch flagTarget {
	case targetLED:
		runErr = ledsim.Run(sess, ledsim.Options{
			Title:  "matrix arcade - " + gameID,
			Scale:  flagScale,
			Tick:   rc.Tick,
			Logger: logger,
		})
	default:
		opts := terminalOptions(gameID, cfg, ring, logger)
		opts.Tick = rc.Tick
		runErr = tui.Run(sess, opts)
	}
	logger.Info("stopped", "ticks", sess.Ticks(), "state", sess.State())

	if journal != nil {
		if err := journal.Close(sess.State()); err != nil {
			logger.Error("could not finish recording", "err", err)
		} else {
			fmt.Printf("Recorded replay %d (%d ticks). Run 'arcade replay %d' to watch it.\n",
				journal.ID(), sess.Ticks(), journal.ID())
		}
	}

	if flagDebug && flagTarget == targetTUI {
		//nolint:errcheck // Best-effort dump, the session is over
		ring.Dump(os.Stderr)
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}

// newJournal starts a recorded session, storing the effective config so the
// replay runs with the same timings.
func newJournal(store *storage.Store, gameID string, rc core.RuntimeConfig, cfg config.Config) (*storage.Journal, error) {
	data, err := config.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return store.NewJournal(storage.Meta{
		GameID: gameID,
		Seed:   rc.Seed,
		Rows:   rc.Rows,
		Cols:   rc.Cols,
		Config: string(data),
	}, cfg.Storage.FlushEvery)
}

// checkFit fails when the terminal is too small for the display. An unknown
// terminal size is not an error.
func checkFit(rows, cols int) error {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return nil
	}
	pw, ph := tui.PanelSize(rows, cols)
	ph += tuiChromeRows
	if w < pw || h < ph {
		return fmt.Errorf("terminal is %dx%d but a %dx%d display needs %dx%d", w, h, rows, cols, pw, ph)
	}
	return nil
}
