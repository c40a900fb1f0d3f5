package paint

// Font supplies fixed-cell glyph bitmaps. Each glyph is Height rows of one
// byte; the leftmost pixel of a row is the most significant bit.
type Font interface {
	Width() int
	Height() int
	HasChar(r rune) bool
	CharOffset(r rune) int
	DataAt(i int) byte
}

// DrawCharAt blits the glyph for r with its top-left corner at (x, y). Only
// set glyph bits are drawn; characters the font lacks are skipped.
func (c *Canvas) DrawCharAt(x, y int, r rune, font Font, col Color) {
	if !font.HasChar(r) {
		return
	}

	offset := font.CharOffset(r)
	w, h := font.Width(), font.Height()
	for row := 0; row < h; row++ {
		bits := font.DataAt(offset + row)
		for column := 0; column < w; column++ {
			if bits&(0x80>>column) != 0 {
				c.DrawPixel(x+column, y+row, col)
			}
		}
	}
}

// DrawStringAt draws text on one line, advancing exactly one glyph width per
// character. There is no wrapping or kerning.
func (c *Canvas) DrawStringAt(x, y int, text string, font Font, col Color) {
	cursor := x
	for _, r := range text {
		c.DrawCharAt(cursor, y, r, font, col)
		cursor += font.Width()
	}
}
