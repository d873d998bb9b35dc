package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/matrix-arcade/internal/config"
	"github.com/vovakirdan/matrix-arcade/internal/host"
	"github.com/vovakirdan/matrix-arcade/internal/logring"
	"github.com/vovakirdan/matrix-arcade/internal/platform/tui"
	"github.com/vovakirdan/matrix-arcade/internal/storage"
)

var flagHeadless bool

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Play back a recorded session",
	Long: `Feed the recorded input of a session into a fresh game with the same
seed, size and config. The run is reproduced exactly.

Examples:
  arcade replay 3
  arcade replay 3 --headless`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagHeadless, "headless", false, "Print the final frame and state instead of playing")
}

func runReplay(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid replay id %q", args[0])
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	info, err := store.Session(id)
	if err != nil {
		return fmt.Errorf("replay %d: %w", id, err)
	}
	return playback(store, info, cfg, flagHeadless)
}

// playback replays a recorded session in the terminal, or headless.
func playback(store *storage.Store, info storage.SessionInfo, fallback config.Config, headless bool) error {
	cfg := fallback
	if info.Config != "" {
		parsed, err := config.Parse([]byte(info.Config))
		if err != nil {
			return fmt.Errorf("replay %d: stored config: %w", info.ID, err)
		}
		cfg = parsed
	}

	records, err := store.Ticks(info.ID)
	if err != nil {
		return err
	}
	steps := make([]host.Step, len(records))
	for i, r := range records {
		steps[i] = host.Step{Elapsed: r.Elapsed, Buttons: r.Buttons}
	}

	game, err := buildGame(info.GameID, info.Rows, info.Cols, cfg)
	if err != nil {
		return err
	}

	ring := logring.New(cfg.Terminal.LogLines)
	logger := newLogger(os.Stderr)
	if !headless {
		logger = newLogger(ring)
	}
	sess := host.NewSession(game, host.Options{
		Rows:   info.Rows,
		Cols:   info.Cols,
		Seed:   info.Seed,
		Logger: logger,
	})

	if headless {
		if err := sess.Run(steps); err != nil {
			return err
		}
		fmt.Println(sess.Frame().String())
		fmt.Printf("%s after %d ticks (%s)\n", sess.State(), sess.Ticks(), sess.Elapsed())
		if info.FinalState != "" && info.FinalState != sess.State().String() {
			logger.Warn("replay diverged", "recorded", info.FinalState, "replayed", sess.State())
		}
		return nil
	}

	opts := terminalOptions(fmt.Sprintf("%s #%d", info.GameID, info.ID), cfg, ring, logger)
	opts.Replay = steps
	err = tui.Run(sess, opts)
	if flagDebug {
		//nolint:errcheck // Best-effort dump
		ring.Dump(os.Stderr)
	}
	return err
}
