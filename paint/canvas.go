// Package paint implements a packed monochrome frame buffer with
// rotation-aware drawing primitives.
//
// Pixels are stored row-major, one bit per pixel, most significant bit first.
// A set bit is background (Uncolored) and a cleared bit is foreground
// (Colored), which is what most e-paper controllers expect on the wire.
package paint

import (
	"image"
	"image/color"
)

// Color is the state of a single pixel.
type Color bool

const (
	Colored   Color = true
	Uncolored Color = false
)

// Inverse returns the opposite color.
func (c Color) Inverse() Color {
	return !c
}

// fill returns the byte value that paints 8 pixels with c.
func (c Color) fill() byte {
	if c == Colored {
		return 0x00
	}
	return 0xFF
}

// Palette maps the two pixel states to standard colors: index 0 is the
// foreground, index 1 the background.
var Palette = color.Palette{color.Black, color.White}

var _ image.Image = (*Canvas)(nil)

// Canvas owns a packed pixel buffer and the rotation used to address it.
// A Canvas is not safe for concurrent use.
type Canvas struct {
	image  []byte
	width  int
	height int
	rotate Rotation

	clip    image.Rectangle
	clipped bool
}

// New allocates a width x height canvas cleared to the background. width
// should be a multiple of 8.
func New(width, height int) *Canvas {
	c := &Canvas{
		image:  make([]byte, width*height/8),
		width:  width,
		height: height,
	}
	c.Clear(Uncolored)
	return c
}

// WithBuffer wraps caller-owned storage. The buffer is neither copied nor
// checked against the dimensions; writes past its end are dropped.
func WithBuffer(buf []byte, width, height int) *Canvas {
	return &Canvas{
		image:  buf,
		width:  width,
		height: height,
	}
}

// Clear fills every byte of the buffer with c.
func (c *Canvas) Clear(col Color) {
	v := col.fill()
	for i := range c.image {
		c.image[i] = v
	}
}

// Width returns the physical buffer width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the physical buffer height in pixels.
func (c *Canvas) Height() int { return c.height }

// SetRotation changes the logical-to-physical mapping for later draws.
func (c *Canvas) SetRotation(r Rotation) { c.rotate = r }

// Rotation returns the current rotation mode.
func (c *Canvas) Rotation() Rotation { return c.rotate }

// Image returns the packed buffer. Callers must treat it as read-only.
func (c *Canvas) Image() []byte { return c.image }

// DrawableSize returns the logical drawing area, which is the buffer size
// with width and height swapped for quarter turns.
func (c *Canvas) DrawableSize() (width, height int) {
	if c.rotate.swapsAxes() {
		return c.height, c.width
	}
	return c.width, c.height
}

// ToLogical maps a physical buffer coordinate, such as a touch position
// reported by the panel, to the logical coordinate space used by drawing.
func (c *Canvas) ToLogical(px, py int) (x, y int) {
	return c.rotate.Inverse(px, py, c.width, c.height)
}

// SetClip restricts subsequent draws to r in logical coordinates.
func (c *Canvas) SetClip(r image.Rectangle) {
	c.clip = r
	c.clipped = true
}

// ClearClip removes the clip rectangle.
func (c *Canvas) ClearClip() {
	c.clip = image.Rectangle{}
	c.clipped = false
}

// DrawPixel sets the logical pixel (x, y). Coordinates that fall outside the
// buffer after rotation, or outside the clip, are silently dropped.
func (c *Canvas) DrawPixel(x, y int, col Color) {
	if c.clipped && !image.Pt(x, y).In(c.clip) {
		return
	}
	px, py := c.rotate.Transform(x, y, c.width, c.height)
	c.drawAbsolutePixel(px, py, col)
}

// Pixel reads back the logical pixel (x, y). Out of range reads report the
// background.
func (c *Canvas) Pixel(x, y int) Color {
	px, py := c.rotate.Transform(x, y, c.width, c.height)
	return c.absolutePixel(px, py)
}

// PhysicalPixel reads the buffer at (x, y) without applying rotation.
func (c *Canvas) PhysicalPixel(x, y int) Color {
	return c.absolutePixel(x, y)
}

func (c *Canvas) addr(x, y int) (int, byte, bool) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return 0, 0, false
	}
	addr := x/8 + y*(c.width/8)
	if addr >= len(c.image) {
		return 0, 0, false
	}
	return addr, 0x80 >> (x % 8), true
}

func (c *Canvas) drawAbsolutePixel(x, y int, col Color) {
	addr, mask, ok := c.addr(x, y)
	if !ok {
		return
	}
	if col == Colored {
		c.image[addr] &^= mask
	} else {
		c.image[addr] |= mask
	}
}

func (c *Canvas) absolutePixel(x, y int) Color {
	addr, mask, ok := c.addr(x, y)
	if !ok {
		return Uncolored
	}
	return Color(c.image[addr]&mask == 0)
}

// ColorModel implements image.Image.
func (c *Canvas) ColorModel() color.Model { return Palette }

// Bounds implements image.Image over the physical buffer.
func (c *Canvas) Bounds() image.Rectangle { return image.Rect(0, 0, c.width, c.height) }

// At implements image.Image. Coordinates are physical, not logical.
func (c *Canvas) At(x, y int) color.Color {
	if c.absolutePixel(x, y) == Colored {
		return Palette[0]
	}
	return Palette[1]
}
