// Package ui implements a retained component tree for 1-bit displays.
//
// A tree is built once from Layouts and leaf widgets and then mutated in
// place. Structural changes reflow synchronously, rendering paints every node
// depth-first into one paint.Canvas, and taps and update ticks walk the tree
// in insertion order.
package ui

import "github.com/OpticalFlyer/inkui/paint"

// Component is a node of the UI tree. All coordinates are logical canvas
// pixels.
type Component interface {
	Bounds() Rect
	SetPosition(x, y int)
	SetSize(width, height int)
	Render(c *paint.Canvas) error
	// HandleTap reports whether the component claimed the tap at (x, y).
	HandleTap(x, y int) bool
	Update() error
}

// Container is a Component that owns an ordered list of children.
type Container interface {
	Component
	AddChild(child Component)
	RemoveChild(child Component) bool
	Children() []Component
}

// Rect is an axis-aligned rectangle. A width or height of zero or less is
// unresolved and only meaningful on a Layout's main axis before reflow.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether (x, y) lies inside r. The right and bottom edges
// are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// widget holds the geometry shared by leaf components.
type widget struct {
	bounds Rect
}

func (w *widget) Bounds() Rect { return w.bounds }

func (w *widget) SetPosition(x, y int) {
	w.bounds.X = x
	w.bounds.Y = y
}

func (w *widget) SetSize(width, height int) {
	w.bounds.Width = width
	w.bounds.Height = height
}

// HandleTap is a plain hit test with no side effects.
func (w *widget) HandleTap(x, y int) bool {
	return w.bounds.Contains(x, y)
}

func (w *widget) Update() error { return nil }

// corners returns the inclusive corner coordinates of r for the canvas
// rectangle primitives.
func corners(r Rect) (x0, y0, x1, y1 int) {
	return r.X, r.Y, r.X + r.Width - 1, r.Y + r.Height - 1
}
