// Package ledsim emulates the LED matrix panel in a desktop window.
//
// The window is built with ebiten and needs the `ebiten` build tag; without
// it Run reports ErrUnavailable so the rest of the arcade builds headless.
package ledsim

import (
	"errors"
	"image"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// ErrUnavailable is returned by Run in builds without the ebiten tag.
var ErrUnavailable = errors.New("ledsim: LED emulator not built in (rebuild with -tags ebiten)")

const (
	defaultScale = 16
	legendHeight = 20 // Pixels below the LEDs reserved for the legend
	legendFontH  = 13 // basicfont.Face7x13 line height
	legendInset  = 4
	minScale     = 3
)

// Legend lists the emulator keys.
const Legend = "WASD/arrows move  space action  C copy  Q quit"

// Options configures the emulator window.
type Options struct {
	Title  string
	Scale  int           // Window pixels per LED
	Tick   time.Duration // Update rate
	Logger *log.Logger   // Optional
}

func (o Options) withDefaults() Options {
	if o.Scale < minScale {
		o.Scale = defaultScale
	}
	if o.Tick <= 0 {
		o.Tick = 10 * time.Millisecond
	}
	if o.Title == "" {
		o.Title = "matrix arcade"
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// tps converts a tick interval to updates per second, at least one.
func tps(tick time.Duration) int {
	if tick <= 0 {
		return 1
	}
	n := int(time.Second / tick)
	if n < 1 {
		n = 1
	}
	return n
}

// screenSize returns the logical window size for a rows x cols panel.
func screenSize(rows, cols, scale int) (w, h int) {
	return cols * scale, rows*scale + legendHeight
}

// ledRect returns the lit area of the LED at (row, col), leaving a one
// pixel gap to the next LED.
func ledRect(row, col, scale int) image.Rectangle {
	x, y := col*scale, row*scale
	return image.Rect(x, y, x+scale-1, y+scale-1)
}

// legendOrigin returns the top-left corner of the legend text, inside the
// strip below the LEDs.
func legendOrigin(rows, scale int) (x, y float64) {
	return legendInset, float64(rows*scale + (legendHeight-legendFontH)/2)
}
