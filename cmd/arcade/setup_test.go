package main

import (
	"testing"

	"github.com/vovakirdan/matrix-arcade/internal/config"
	"github.com/vovakirdan/matrix-arcade/internal/games/menu"
	"github.com/vovakirdan/matrix-arcade/internal/logring"
)

func TestTerminalOptionsDebugShowsLogs(t *testing.T) {
	defer func(old bool) { flagDebug = old }(flagDebug)
	cfg := config.Default()
	ring := logring.New(8)

	for _, debug := range []bool{false, true} {
		flagDebug = debug
		opts := terminalOptions("tetris", cfg, ring, newLogger(ring))
		if opts.ShowLogs != debug {
			t.Errorf("debug=%v: ShowLogs = %v, expected %v", debug, opts.ShowLogs, debug)
		}
		if opts.Logs != ring {
			t.Error("Logs should be the given ring")
		}
		if opts.Hold != cfg.Terminal.Hold() || opts.Color != cfg.Terminal.Color {
			t.Errorf("terminal settings not applied: %+v", opts)
		}
		if opts.Tick != cfg.Display.TickInterval() {
			t.Errorf("Tick = %v, expected %v", opts.Tick, cfg.Display.TickInterval())
		}
	}
}

func TestBuildGame(t *testing.T) {
	cfg := config.Default()

	g, err := buildGame(MenuID, 16, 42, cfg)
	if err != nil {
		t.Fatalf("buildGame(menu) failed: %v", err)
	}
	m, ok := g.(*menu.Menu)
	if !ok {
		t.Fatalf("buildGame(menu) = %T, expected *menu.Menu", g)
	}
	if m.Len() != len(cfg.Games) {
		t.Errorf("menu has %d games, expected %d", m.Len(), len(cfg.Games))
	}

	if _, err := buildGame("tetris", 16, 42, cfg); err != nil {
		t.Errorf("buildGame(tetris) failed: %v", err)
	}
	if _, err := buildGame("pacman", 16, 42, cfg); err == nil {
		t.Error("buildGame(pacman) should fail")
	}
	if knownGame("pacman") || !knownGame(MenuID) || !knownGame("snake") {
		t.Error("knownGame mismatch")
	}
}
