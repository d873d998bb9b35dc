package config

import (
	_ "embed"
)

//go:embed defaults/arcade.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			Rows:   16,
			Cols:   42,
			TickMS: 10,
		},
		Games:  []string{"tetris", "snake"},
		Tetris: DefaultTetrisConfig(),
		Snake:  DefaultSnakeConfig(),
		Terminal: TerminalConfig{
			HoldMS:   150,
			Color:    "11",
			LogLines: 64,
		},
		Storage: StorageConfig{
			Path:       "~/.matrix-arcade/replays.db",
			FlushEvery: 256,
		},
	}
}

// DefaultTetrisConfig returns the default Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		DropIntervalMS: 400,
		StateDelayMS:   1000,
	}
}

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		MoveIntervalMS: 400,
		SpeedupMS:      10,
		MinIntervalMS:  50,
		StateDelayMS:   1000,
	}
}
