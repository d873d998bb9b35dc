// Package config provides YAML-based configuration loading and difficulty
// presets for the arcade.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config is the complete arcade configuration.
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	Games    []string       `yaml:"games"` // Menu order, by registry id
	Tetris   TetrisConfig   `yaml:"tetris"`
	Snake    SnakeConfig    `yaml:"snake"`
	Terminal TerminalConfig `yaml:"terminal"`
	Storage  StorageConfig  `yaml:"storage"`
}

// DisplayConfig defines the pixel grid and tick rate shared by all targets.
type DisplayConfig struct {
	Rows   int `yaml:"rows"`
	Cols   int `yaml:"cols"`
	TickMS int `yaml:"tick_ms"`
}

// TetrisConfig defines timing and rules for Tetris.
type TetrisConfig struct {
	DropIntervalMS int  `yaml:"drop_interval_ms"`
	StateDelayMS   int  `yaml:"state_delay_ms"`
	StrictFullRows bool `yaml:"strict_full_rows"` // Require every column, including the last
}

// SnakeConfig defines timing and speed progression for Snake.
type SnakeConfig struct {
	MoveIntervalMS int `yaml:"move_interval_ms"`
	SpeedupMS      int `yaml:"speedup_ms"` // Interval reduction per apple
	MinIntervalMS  int `yaml:"min_interval_ms"`
	StateDelayMS   int `yaml:"state_delay_ms"`
}

// TerminalConfig defines terminal target behaviour.
type TerminalConfig struct {
	HoldMS   int    `yaml:"hold_ms"`   // How long a key press counts as held
	Color    string `yaml:"color"`     // Lit pixel colour (lipgloss colour string)
	LogLines int    `yaml:"log_lines"` // Ring buffer capacity for debug log
}

// StorageConfig defines the replay journal.
type StorageConfig struct {
	Path       string `yaml:"path"`
	FlushEvery int    `yaml:"flush_every"` // Ticks buffered before a write
}

// TickInterval returns the display tick as a duration.
func (c DisplayConfig) TickInterval() time.Duration {
	return ms(c.TickMS)
}

// DropInterval returns the Tetris drop interval.
func (c TetrisConfig) DropInterval() time.Duration { return ms(c.DropIntervalMS) }

// StateDelay returns how long Start and GameOver ignore action.
func (c TetrisConfig) StateDelay() time.Duration { return ms(c.StateDelayMS) }

// MoveInterval returns the initial Snake move interval.
func (c SnakeConfig) MoveInterval() time.Duration { return ms(c.MoveIntervalMS) }

// Speedup returns the interval reduction applied per apple.
func (c SnakeConfig) Speedup() time.Duration { return ms(c.SpeedupMS) }

// MinInterval returns the fastest Snake move interval.
func (c SnakeConfig) MinInterval() time.Duration { return ms(c.MinIntervalMS) }

// StateDelay returns how long Start and GameOver ignore action.
func (c SnakeConfig) StateDelay() time.Duration { return ms(c.StateDelayMS) }

// Hold returns how long a terminal key press counts as held.
func (c TerminalConfig) Hold() time.Duration { return ms(c.HoldMS) }

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks that every value is usable.
func (c Config) Validate() error {
	switch {
	case c.Display.Rows <= 0 || c.Display.Cols <= 0:
		return fmt.Errorf("%w: display size %dx%d", ErrInvalid, c.Display.Rows, c.Display.Cols)
	case c.Display.TickMS <= 0:
		return fmt.Errorf("%w: display.tick_ms must be positive", ErrInvalid)
	case len(c.Games) == 0:
		return fmt.Errorf("%w: games list is empty", ErrInvalid)
	case c.Tetris.DropIntervalMS <= 0:
		return fmt.Errorf("%w: tetris.drop_interval_ms must be positive", ErrInvalid)
	case c.Snake.MoveIntervalMS <= 0 || c.Snake.MinIntervalMS <= 0:
		return fmt.Errorf("%w: snake intervals must be positive", ErrInvalid)
	case c.Snake.MinIntervalMS > c.Snake.MoveIntervalMS:
		return fmt.Errorf("%w: snake.min_interval_ms exceeds move_interval_ms", ErrInvalid)
	case c.Snake.SpeedupMS < 0 || c.Tetris.StateDelayMS < 0 || c.Snake.StateDelayMS < 0:
		return fmt.Errorf("%w: negative duration", ErrInvalid)
	case c.Terminal.HoldMS <= 0:
		return fmt.Errorf("%w: terminal.hold_ms must be positive", ErrInvalid)
	case c.Storage.FlushEvery <= 0:
		return fmt.Errorf("%w: storage.flush_every must be positive", ErrInvalid)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // Normal timings, no Snake speed-up
)

// ParsePreset converts a flag value to a preset. The empty string is normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyPreset adjusts game timings for a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Tetris.DropIntervalMS = 600
		cfg.Snake.MoveIntervalMS = 500
		cfg.Snake.SpeedupMS = 5
		cfg.Snake.MinIntervalMS = 100
	case DifficultyHard:
		cfg.Tetris.DropIntervalMS = 250
		cfg.Snake.MoveIntervalMS = 250
		cfg.Snake.SpeedupMS = 15
		cfg.Snake.MinIntervalMS = 40
	case DifficultyFixed:
		cfg.Snake.SpeedupMS = 0
	}
}
