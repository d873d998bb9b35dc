package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/matrix-arcade/internal/config"
	"github.com/vovakirdan/matrix-arcade/internal/core"
	"github.com/vovakirdan/matrix-arcade/internal/games/menu"
	"github.com/vovakirdan/matrix-arcade/internal/logring"
	"github.com/vovakirdan/matrix-arcade/internal/platform/tui"
	"github.com/vovakirdan/matrix-arcade/internal/registry"
	"github.com/vovakirdan/matrix-arcade/internal/storage"
)

// MenuID selects the menu over every game listed in the config.
const MenuID = "menu"

// loadConfig loads the config and applies the difficulty flag.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.Config{}, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, cfg.Validate()
}

// newLogger creates the command logger. Debug output is only kept with --debug.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "arcade",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// seed returns the --seed flag, or a time based seed when it is zero.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// openStore opens the replay database named by --db or the config.
func openStore(cfg config.Config) (*storage.Store, error) {
	path := flagDBPath
	if path == "" {
		path = cfg.Storage.Path
	}
	return storage.Open(path)
}

// buildGame creates the game named id, or the menu when id is MenuID.
func buildGame(id string, rows, cols int, cfg config.Config) (core.Game, error) {
	if id != MenuID {
		return registry.Create(id, rows, cols, cfg)
	}
	games, err := registry.CreateAll(cfg.Games, rows, cols, cfg)
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return nil, fmt.Errorf("menu: no games configured")
	}
	return menu.New(games...), nil
}

// knownGame reports whether id can be passed to buildGame.
func knownGame(id string) bool {
	return id == MenuID || registry.Exists(id)
}

// unknownGame is the error for an id that is neither a game nor the menu.
func unknownGame(id string) error {
	fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
	return fmt.Errorf("unknown game %q", id)
}

// terminalOptions builds the game screen options from the config. With
// --debug the log tail is shown under the display from the start.
func terminalOptions(title string, cfg config.Config, ring *logring.Ring, logger *log.Logger) tui.Options {
	return tui.Options{
		Title:    title,
		Tick:     cfg.Display.TickInterval(),
		Hold:     cfg.Terminal.Hold(),
		Color:    cfg.Terminal.Color,
		Logs:     ring,
		ShowLogs: flagDebug,
		Logger:   logger,
	}
}
