package ui

import "github.com/OpticalFlyer/inkui/paint"

var _ Component = (*Divider)(nil)

// Divider is a solid bar, typically a thin rule between sections.
type Divider struct {
	widget
}

// NewDivider creates a divider. Pass 0 for the size along a Layout's main
// axis to make it flexible.
func NewDivider(x, y, width, height int) *Divider {
	return &Divider{widget{bounds: Rect{X: x, Y: y, Width: width, Height: height}}}
}

func (d *Divider) Render(c *paint.Canvas) error {
	if d.bounds.Width <= 0 || d.bounds.Height <= 0 {
		return nil
	}
	x0, y0, x1, y1 := corners(d.bounds)
	c.DrawFilledRectangle(x0, y0, x1, y1, paint.Colored)
	return nil
}
