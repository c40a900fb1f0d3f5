package ui

import "github.com/OpticalFlyer/inkui/paint"

// Controller owns the root components of a screen.
type Controller struct {
	roots []Component
}

// NewController creates a controller with no roots.
func NewController() *Controller {
	return &Controller{
		roots: make([]Component, 0),
	}
}

// AddRoot appends a root. Later roots paint over earlier ones but are
// offered taps after them.
func (c *Controller) AddRoot(root Component) {
	c.roots = append(c.roots, root)
}

// Roots returns the roots in insertion order.
func (c *Controller) Roots() []Component {
	return append([]Component(nil), c.roots...)
}

// Render clears the canvas to the background and paints every root.
func (c *Controller) Render(canvas *paint.Canvas) error {
	canvas.Clear(paint.Uncolored)
	for _, root := range c.roots {
		if err := root.Render(canvas); err != nil {
			return err
		}
	}
	return nil
}

// HandleTap offers the tap to each root in order.
func (c *Controller) HandleTap(x, y int) bool {
	for _, root := range c.roots {
		if root.HandleTap(x, y) {
			return true
		}
	}
	return false
}

// Update ticks each root and returns the first error.
func (c *Controller) Update() error {
	for _, root := range c.roots {
		if err := root.Update(); err != nil {
			return err
		}
	}
	return nil
}

// Resize gives every root the full screen.
func (c *Controller) Resize(width, height int) {
	for _, root := range c.roots {
		root.SetPosition(0, 0)
		root.SetSize(width, height)
	}
}
