// Package font holds the 5x9 monospace bitmap font used for on-grid text.
//
// Each glyph is Height bit-rows. Bit i of a row lights the pixel at column
// offset i from the left edge of the character cell.
package font

const (
	// Width is the horizontal advance of every character, in pixels.
	Width = 5
	// Height is the number of bit-rows per glyph.
	Height = 9
	// FirstChar is the first printable character in the table.
	FirstChar = 0x20
	// Count is the number of characters covered, FirstChar through '~'.
	Count = 95
)

// Glyph returns the bit-rows for ch. Characters outside the printable
// ASCII range render as a blank cell. The returned slice must not be modified.
func Glyph(ch byte) []byte {
	if ch < FirstChar || int(ch-FirstChar) >= Count {
		return glyphData[0:Height]
	}
	start := int(glyphIndex[ch-FirstChar])
	return glyphData[start : start+Height]
}

// Lit reports whether the glyph for ch has its pixel at (row, col) set.
func Lit(ch byte, row, col int) bool {
	if row < 0 || row >= Height || col < 0 || col >= Width {
		return false
	}
	return Glyph(ch)[row]&(1<<col) != 0
}
