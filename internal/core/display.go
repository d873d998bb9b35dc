package core

import (
	"strconv"

	"github.com/vovakirdan/matrix-arcade/internal/font"
)

// Pixel is the state of one monochrome display cell.
type Pixel bool

const (
	Off Pixel = false
	On  Pixel = true
)

// String returns "on" or "off".
func (p Pixel) String() string {
	if p {
		return "on"
	}
	return "off"
}

// PixelDisplay is an addressable monochrome grid with a fixed extent.
// Games draw into it once per tick; targets flush it to real hardware.
//
// SetPixel must treat coordinates outside [0,Rows)x[0,Columns) consistently.
// Frame rejects them without effect.
type PixelDisplay interface {
	Rows() int
	Columns() int
	SetPixel(row, col int, p Pixel)
}

// Clear switches every pixel off.
func Clear(d PixelDisplay) {
	Fill(d, Off)
}

// Fill sets every pixel to p.
func Fill(d PixelDisplay, p Pixel) {
	rows, cols := d.Rows(), d.Columns()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			d.SetPixel(r, c, p)
		}
	}
}

// DrawText renders text with its top-left corner at (row, col) using the
// 5x9 font. Pixels falling outside the display are clipped. Only lit glyph
// bits are drawn; the background is left as is.
func DrawText(d PixelDisplay, row, col int, text string) {
	rows, cols := d.Rows(), d.Columns()
	for i := 0; i < len(text); i++ {
		glyph := font.Glyph(text[i])
		left := col + i*font.Width
		for gr, bits := range glyph {
			r := row + gr
			if r < 0 || r >= rows {
				continue
			}
			for gc := 0; gc < font.Width; gc++ {
				c := left + gc
				if bits&(1<<gc) == 0 || c < 0 || c >= cols {
					continue
				}
				d.SetPixel(r, c, On)
			}
		}
	}
}

// MaxNumber is the largest value DrawNumber renders exactly.
const MaxNumber = 100

var numberText [MaxNumber + 1]string

func init() {
	for i := range numberText {
		numberText[i] = strconv.Itoa(i)
	}
}

// NumberText returns the text DrawNumber renders for n: its decimal form for
// 0..MaxNumber and ">100" above that.
func NumberText(n int) string {
	if n < 0 {
		n = 0
	}
	if n > MaxNumber {
		return ">100"
	}
	return numberText[n]
}

// DrawNumber renders n at (row, col). Values above MaxNumber render as
// ">100"; negative values render as 0.
func DrawNumber(d PixelDisplay, row, col, n int) {
	DrawText(d, row, col, NumberText(n))
}
