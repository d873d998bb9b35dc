package core

import (
	"fmt"
	"time"
)

// Default display extent shared by the terminal and LED targets.
const (
	DefaultRows = 16
	DefaultCols = 42
)

// RuntimeConfig describes how a target drives a game: the display extent,
// the tick interval and the RNG seed.
type RuntimeConfig struct {
	Rows int           // Pixel rows
	Cols int           // Pixel columns
	Tick time.Duration // Wall-clock interval between ticks
	Seed int64         // RNG seed; 0 means the target picks one
}

// DefaultConfig returns a RuntimeConfig with the standard 16x42 display.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Rows: DefaultRows,
		Cols: DefaultCols,
		Tick: 10 * time.Millisecond,
	}
}

// Validate reports a malformed configuration.
func (c RuntimeConfig) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("core: invalid display size %dx%d", c.Rows, c.Cols)
	}
	if c.Tick <= 0 {
		return fmt.Errorf("core: tick interval must be positive, got %s", c.Tick)
	}
	return nil
}
