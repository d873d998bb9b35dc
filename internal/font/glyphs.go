package font

// glyphData holds Height bytes per glyph, one byte per bit-row.
var glyphData = [...]byte{
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // space
	0x00, 0x04, 0x04, 0x04, 0x04, 0x00, 0x04, 0x00, 0x00, // !
	0x00, 0x04, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // '
	0x00, 0x15, 0x0E, 0x0E, 0x15, 0x00, 0x00, 0x00, 0x00, // *
	0x00, 0x00, 0x04, 0x04, 0x1F, 0x04, 0x04, 0x00, 0x00, // +
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x04, 0x04, 0x00, // ,
	0x00, 0x00, 0x00, 0x00, 0x06, 0x00, 0x00, 0x00, 0x00, // -
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x04, 0x00, 0x00, // .
	0x00, 0x08, 0x04, 0x04, 0x06, 0x02, 0x02, 0x01, 0x00, // /
	0x00, 0x0C, 0x12, 0x16, 0x12, 0x12, 0x0C, 0x00, 0x00, // 0
	0x00, 0x06, 0x04, 0x04, 0x04, 0x04, 0x0E, 0x00, 0x00, // 1
	0x00, 0x0E, 0x10, 0x10, 0x08, 0x04, 0x1E, 0x00, 0x00, // 2
	0x00, 0x0E, 0x10, 0x10, 0x0C, 0x10, 0x1E, 0x00, 0x00, // 3
	0x00, 0x08, 0x0C, 0x0C, 0x0A, 0x1E, 0x08, 0x00, 0x00, // 4
	0x00, 0x1E, 0x02, 0x0E, 0x10, 0x10, 0x0E, 0x00, 0x00, // 5
	0x00, 0x1C, 0x06, 0x02, 0x1E, 0x12, 0x1C, 0x00, 0x00, // 6
	0x00, 0x1E, 0x10, 0x08, 0x08, 0x08, 0x04, 0x00, 0x00, // 7
	0x00, 0x0C, 0x12, 0x12, 0x0C, 0x12, 0x1E, 0x00, 0x00, // 8
	0x00, 0x0E, 0x12, 0x1E, 0x10, 0x18, 0x0E, 0x00, 0x00, // 9
	0x00, 0x00, 0x00, 0x04, 0x00, 0x00, 0x04, 0x00, 0x00, // :
	0x00, 0x00, 0x00, 0x04, 0x00, 0x00, 0x04, 0x04, 0x00, // ;
	0x00, 0x00, 0x00, 0x10, 0x0E, 0x06, 0x18, 0x00, 0x00, // <
	0x00, 0x00, 0x00, 0x0F, 0x00, 0x0F, 0x00, 0x00, 0x00, // =
	0x00, 0x00, 0x00, 0x02, 0x1C, 0x18, 0x06, 0x00, 0x00, // >
	0x00, 0x0E, 0x0C, 0x04, 0x04, 0x00, 0x04, 0x00, 0x00, // ?
	0x00, 0x00, 0x0C, 0x12, 0x1A, 0x1A, 0x02, 0x0C, 0x00, // @
	0x00, 0x0C, 0x0C, 0x0C, 0x0C, 0x1E, 0x12, 0x00, 0x00, // A
	0x00, 0x0E, 0x12, 0x12, 0x0E, 0x12, 0x1E, 0x00, 0x00, // B
	0x00, 0x1C, 0x02, 0x02, 0x02, 0x02, 0x1C, 0x00, 0x00, // C
	0x00, 0x0E, 0x12, 0x12, 0x12, 0x12, 0x0E, 0x00, 0x00, // D
	0x00, 0x1E, 0x02, 0x02, 0x1E, 0x02, 0x1E, 0x00, 0x00, // E
	0x00, 0x1E, 0x02, 0x02, 0x1E, 0x02, 0x02, 0x00, 0x00, // F
	0x00, 0x1C, 0x02, 0x02, 0x1A, 0x12, 0x1C, 0x00, 0x00, // G
	0x00, 0x12, 0x12, 0x12, 0x1E, 0x12, 0x12, 0x00, 0x00, // H
	0x00, 0x0E, 0x04, 0x04, 0x04, 0x04, 0x0E, 0x00, 0x00, // I
	0x00, 0x0C, 0x08, 0x08, 0x08, 0x08, 0x0E, 0x00, 0x00, // J
	0x00, 0x12, 0x0A, 0x06, 0x0A, 0x0A, 0x12, 0x00, 0x00, // K
	0x00, 0x02, 0x02, 0x02, 0x02, 0x02, 0x1E, 0x00, 0x00, // L
	0x00, 0x12, 0x1E, 0x1E, 0x1E, 0x12, 0x12, 0x00, 0x00, // M
	0x00, 0x12, 0x16, 0x16, 0x1A, 0x1A, 0x12, 0x00, 0x00, // N
	0x00, 0x0C, 0x12, 0x12, 0x12, 0x12, 0x0C, 0x00, 0x00, // O
	0x00, 0x1E, 0x12, 0x1E, 0x02, 0x02, 0x02, 0x00, 0x00, // P
	0x00, 0x0C, 0x12, 0x12, 0x12, 0x12, 0x0C, 0x10, 0x00, // Q
	0x00, 0x1E, 0x12, 0x0E, 0x1A, 0x12, 0x02, 0x00, 0x00, // R
	0x00, 0x1C, 0x02, 0x0E, 0x18, 0x10, 0x1E, 0x00, 0x00, // S
	0x00, 0x1F, 0x04, 0x04, 0x04, 0x04, 0x04, 0x00, 0x00, // T
	0x00, 0x12, 0x12, 0x12, 0x12, 0x12, 0x0C, 0x00, 0x00, // U
	0x00, 0x12, 0x12, 0x0C, 0x0C, 0x0C, 0x0C, 0x00, 0x00, // V
	0x00, 0x11, 0x11, 0x15, 0x0A, 0x0A, 0x0A, 0x00, 0x00, // W
	0x00, 0x12, 0x0C, 0x0C, 0x0C, 0x0C, 0x12, 0x00, 0x00, // X
	0x00, 0x11, 0x0A, 0x04, 0x04, 0x04, 0x04, 0x00, 0x00, // Y
	0x00, 0x1E, 0x08, 0x08, 0x04, 0x04, 0x1E, 0x00, 0x00, // Z
	0x00, 0x01, 0x02, 0x02, 0x06, 0x04, 0x04, 0x08, 0x00, // \
	0x00, 0x06, 0x09, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // ^
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x1F, // _
	0x00, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // `
	0x00, 0x00, 0x00, 0x1E, 0x1E, 0x12, 0x1E, 0x00, 0x00, // a
	0x02, 0x02, 0x02, 0x0E, 0x12, 0x12, 0x0E, 0x00, 0x00, // b
	0x00, 0x00, 0x00, 0x0C, 0x02, 0x02, 0x0C, 0x00, 0x00, // c
	0x10, 0x10, 0x10, 0x1C, 0x12, 0x12, 0x1C, 0x00, 0x00, // d
	0x00, 0x00, 0x00, 0x1C, 0x1E, 0x02, 0x1C, 0x00, 0x00, // e
	0x18, 0x04, 0x04, 0x1E, 0x04, 0x04, 0x04, 0x00, 0x00, // f
	0x00, 0x00, 0x00, 0x1C, 0x12, 0x12, 0x1C, 0x10, 0x0E, // g
	0x02, 0x02, 0x02, 0x1E, 0x12, 0x12, 0x12, 0x00, 0x00, // h
	0x04, 0x00, 0x00, 0x06, 0x04, 0x04, 0x0E, 0x00, 0x00, // i
	0x04, 0x00, 0x00, 0x06, 0x04, 0x04, 0x04, 0x04, 0x07, // j
	0x02, 0x02, 0x02, 0x1A, 0x0E, 0x0E, 0x1A, 0x00, 0x00, // k
	0x06, 0x04, 0x04, 0x04, 0x04, 0x04, 0x1C, 0x00, 0x00, // l
	0x00, 0x00, 0x00, 0x1E, 0x0A, 0x0A, 0x0A, 0x00, 0x00, // m
	0x00, 0x00, 0x00, 0x1E, 0x12, 0x12, 0x12, 0x00, 0x00, // n
	0x00, 0x00, 0x00, 0x0C, 0x12, 0x12, 0x0C, 0x00, 0x00, // o
	0x00, 0x00, 0x00, 0x0E, 0x12, 0x12, 0x0E, 0x02, 0x02, // p
	0x00, 0x00, 0x00, 0x1C, 0x12, 0x12, 0x1C, 0x10, 0x10, // q
	0x00, 0x00, 0x00, 0x0E, 0x02, 0x02, 0x02, 0x00, 0x00, // r
	0x00, 0x00, 0x00, 0x1E, 0x0E, 0x10, 0x1E, 0x00, 0x00, // s
	0x00, 0x00, 0x04, 0x1E, 0x04, 0x04, 0x1C, 0x00, 0x00, // t
	0x00, 0x00, 0x00, 0x12, 0x12, 0x12, 0x1E, 0x00, 0x00, // u
	0x00, 0x00, 0x00, 0x12, 0x0C, 0x0C, 0x0C, 0x00, 0x00, // v
	0x00, 0x00, 0x00, 0x11, 0x15, 0x0E, 0x0A, 0x00, 0x00, // w
	0x00, 0x00, 0x00, 0x1E, 0x0C, 0x0C, 0x1E, 0x00, 0x00, // x
	0x00, 0x00, 0x00, 0x12, 0x0C, 0x0C, 0x04, 0x04, 0x06, // y
	0x00, 0x00, 0x00, 0x1E, 0x0C, 0x04, 0x1E, 0x00, 0x00, // z
	0x0C, 0x04, 0x04, 0x02, 0x04, 0x04, 0x0C, 0x00, 0x00, // {
	0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x00, // |
	0x06, 0x04, 0x04, 0x08, 0x04, 0x04, 0x06, 0x00, 0x00, // }
	0x00, 0x00, 0x00, 0x00, 0x1E, 0x00, 0x00, 0x00, 0x00, // ~
}

// glyphIndex maps ch-FirstChar to the offset of its glyph in glyphData.
// Characters without a drawing share the blank glyph at offset 0.
var glyphIndex = [Count]uint16{
	0, 9, 0, 0, 0, 0, 0, 18, 0, 0, 27, 36,
	45, 54, 63, 72, 81, 90, 99, 108, 117, 126, 135, 144,
	153, 162, 171, 180, 189, 198, 207, 216, 225, 234, 243, 252,
	261, 270, 279, 288, 297, 306, 315, 324, 333, 342, 351, 360,
	369, 378, 387, 396, 405, 414, 423, 432, 441, 450, 459, 0,
	468, 0, 477, 486, 495, 504, 513, 522, 531, 540, 549, 558,
	567, 576, 585, 594, 603, 612, 621, 630, 639, 648, 657, 666,
	675, 684, 693, 702, 711, 720, 729, 738, 747, 756, 765,
}
