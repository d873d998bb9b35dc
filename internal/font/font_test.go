package font

import "testing"

func TestGlyphLength(t *testing.T) {
	for ch := byte(0); ch < 0xff; ch++ {
		if got := len(Glyph(ch)); got != Height {
			t.Fatalf("len(Glyph(%#x)) = %d, expected %d", ch, got, Height)
		}
	}
}

func TestGlyphIndexInRange(t *testing.T) {
	for i, off := range glyphIndex {
		if int(off)+Height > len(glyphData) {
			t.Errorf("glyphIndex[%d] = %d overflows table of %d bytes", i, off, len(glyphData))
		}
	}
}

func TestBlankForUnprintable(t *testing.T) {
	for _, ch := range []byte{0x00, '\n', 0x7f, 0xc3} {
		for _, row := range Glyph(ch) {
			if row != 0 {
				t.Errorf("Glyph(%#x) has lit row %#x, expected blank", ch, row)
			}
		}
	}
}

func TestLitOrientation(t *testing.T) {
	// 'L' has its stem on the left and a bar along the bottom.
	if !Lit('L', 1, 1) {
		t.Error("expected stem of 'L' at column 1")
	}
	if Lit('L', 1, 4) {
		t.Error("unexpected pixel at top right of 'L'")
	}
	for col := 1; col <= 4; col++ {
		if !Lit('L', 6, col) {
			t.Errorf("expected bottom bar of 'L' at column %d", col)
		}
	}
}

func TestLitOutOfRange(t *testing.T) {
	if Lit('L', -1, 0) || Lit('L', Height, 0) || Lit('L', 0, Width) {
		t.Error("Lit outside the cell should be false")
	}
}
