// Package fonts provides fixed-cell bitmap fonts for paint.Canvas.
//
// A font table covers the printable ASCII range, space through tilde. Each
// glyph occupies Height consecutive bytes, one per row, with the leftmost
// pixel in the most significant bit.
package fonts

import (
	"fmt"
	"image/color"
	"sync"

	"golang.org/x/image/font/basicfont"
)

const (
	firstChar = ' '
	lastChar  = '~'
	numChars  = lastChar - firstChar + 1
)

// Font is an immutable glyph table. It is safe for concurrent use.
type Font struct {
	data   []byte
	width  int
	height int
}

// New wraps a glyph table of width x height cells. width must not exceed 8
// and data must hold height bytes for every character from ' ' to '~'.
func New(width, height int, data []byte) (*Font, error) {
	if width <= 0 || width > 8 {
		return nil, fmt.Errorf("glyph width %d out of range 1..8", width)
	}
	if height <= 0 {
		return nil, fmt.Errorf("glyph height %d must be positive", height)
	}
	if want := numChars * height; len(data) < want {
		return nil, fmt.Errorf("font table has %d bytes; need %d", len(data), want)
	}
	return &Font{data: data, width: width, height: height}, nil
}

// Width returns the glyph cell width, which is also the text advance.
func (f *Font) Width() int { return f.width }

// Height returns the glyph cell height.
func (f *Font) Height() int { return f.height }

// HasChar reports whether r is in the table.
func (f *Font) HasChar(r rune) bool {
	return r >= firstChar && r <= lastChar
}

// CharOffset returns the index of the first row of r, or 0 if r is not
// supported.
func (f *Font) CharOffset(r rune) int {
	if !f.HasChar(r) {
		return 0
	}
	return int(r-firstChar) * f.height
}

// DataAt returns table byte i, or 0 past the end of the table.
func (f *Font) DataAt(i int) byte {
	if i < 0 || i >= len(f.data) {
		return 0
	}
	return f.data[i]
}

// TextWidth returns the pixel width of s on one line.
func (f *Font) TextWidth(s string) int {
	n := 0
	for range s {
		n++
	}
	return n * f.width
}

// FromFace packs the ASCII glyphs of a basicfont face into a table. The cell
// is Advance wide and Ascent+Descent tall.
func FromFace(face *basicfont.Face) (*Font, error) {
	w, h := face.Advance, face.Ascent+face.Descent
	if w > 8 {
		return nil, fmt.Errorf("face advance %d does not fit in one byte", w)
	}

	data := make([]byte, numChars*h)
	mb := face.Mask.Bounds()
	for r := rune(firstChar); r <= lastChar; r++ {
		index, ok := faceIndex(face, r)
		if !ok {
			continue
		}
		base := int(r-firstChar) * h
		for row := 0; row < h; row++ {
			var bits byte
			for col := 0; col < face.Width; col++ {
				x := col + face.Left
				if x < 0 || x >= w {
					continue
				}
				a := color.AlphaModel.Convert(face.Mask.At(mb.Min.X+col, mb.Min.Y+index*h+row)).(color.Alpha)
				if a.A >= 0x80 {
					bits |= 0x80 >> x
				}
			}
			data[base+row] = bits
		}
	}
	return New(w, h, data)
}

func faceIndex(face *basicfont.Face, r rune) (int, bool) {
	for _, rng := range face.Ranges {
		if r >= rng.Low && r < rng.High {
			return int(r-rng.Low) + rng.Offset, true
		}
	}
	return 0, false
}

// Basic returns the 7x13 face from golang.org/x/image, packed once on first
// use and shared for the life of the process.
var Basic = sync.OnceValue(func() *Font {
	f, err := FromFace(basicfont.Face7x13)
	if err != nil {
		panic(fmt.Sprintf("fonts: packing basic face: %v", err))
	}
	return f
})
