// Package display moves canvas frames onto host screens: RGBA textures for a
// GPU window, half-block cells for a terminal, and pointer input back into
// logical taps.
package display

import "github.com/OpticalFlyer/inkui/paint"

// Ink colors used when expanding a frame. Colored pixels are ink, the rest
// is paper.
var (
	Ink   = [4]byte{0x10, 0x10, 0x10, 0xff}
	Paper = [4]byte{0xf4, 0xf1, 0xe8, 0xff}
)

// RGBA expands the physical buffer of c into 4 bytes per pixel, row-major,
// the layout ebiten.Image.WritePixels expects.
func RGBA(c *paint.Canvas) []byte {
	return RGBAInto(nil, c)
}

// RGBAInto is RGBA writing into dst, which is reused when it is large
// enough.
func RGBAInto(dst []byte, c *paint.Canvas) []byte {
	w, h := c.Width(), c.Height()
	n := 4 * w * h
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]

	i := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px := Paper
			if c.PhysicalPixel(x, y) == paint.Colored {
				px = Ink
			}
			copy(dst[i:i+4], px[:])
			i += 4
		}
	}
	return dst
}
