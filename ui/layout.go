package ui

import "github.com/OpticalFlyer/inkui/paint"

// Orientation is the main axis along which a Layout places its children.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

const (
	defaultSpacing = 5
	defaultPadding = 5
)

var _ Container = (*Layout)(nil)

type slot struct {
	c Component
	// flex is set when the child had no main-axis size when it was added.
	flex bool
}

// Layout is a Container that stacks children along one axis.
//
// Children with a main-axis size of zero or less when added are flexible and
// share whatever space the fixed children leave. Every child is stretched to
// the container's cross-axis size minus padding. Any structural change
// reflows synchronously.
type Layout struct {
	bounds      Rect
	children    []slot
	orientation Orientation
	spacing     int
	padding     int
}

// NewLayout creates an empty layout with 5 pixels of spacing and padding.
func NewLayout(x, y, width, height int, orientation Orientation) *Layout {
	return &Layout{
		bounds:      Rect{X: x, Y: y, Width: width, Height: height},
		orientation: orientation,
		spacing:     defaultSpacing,
		padding:     defaultPadding,
	}
}

// Add appends child to l and returns it with its concrete type, so callers
// keep a typed handle for later mutation.
func Add[T Component](l *Layout, child T) T {
	l.AddChild(child)
	return child
}

func (l *Layout) Orientation() Orientation { return l.orientation }
func (l *Layout) Spacing() int             { return l.spacing }
func (l *Layout) Padding() int             { return l.padding }

func (l *Layout) SetSpacing(spacing int) {
	l.spacing = spacing
	l.reflow()
}

func (l *Layout) SetPadding(padding int) {
	l.padding = padding
	l.reflow()
}

// AddChild appends child and reflows. The layout takes ownership of child;
// it must not be added to another container.
func (l *Layout) AddChild(child Component) {
	l.children = append(l.children, slot{
		c:    child,
		flex: l.mainSize(child.Bounds()) <= 0,
	})
	l.reflow()
}

// RemoveChild detaches child and reflows. It reports whether child was found.
func (l *Layout) RemoveChild(child Component) bool {
	for i, s := range l.children {
		if s.c == child {
			l.children = append(l.children[:i], l.children[i+1:]...)
			l.reflow()
			return true
		}
	}
	return false
}

// Children returns the children in insertion order.
func (l *Layout) Children() []Component {
	out := make([]Component, len(l.children))
	for i, s := range l.children {
		out[i] = s.c
	}
	return out
}

// Child returns the i-th child, or nil if i is out of range.
func (l *Layout) Child(i int) Component {
	if i < 0 || i >= len(l.children) {
		return nil
	}
	return l.children[i].c
}

// Len returns the number of children.
func (l *Layout) Len() int { return len(l.children) }

func (l *Layout) mainSize(r Rect) int {
	if l.orientation == Horizontal {
		return r.Width
	}
	return r.Height
}

func (l *Layout) crossSize(r Rect) int {
	if l.orientation == Horizontal {
		return r.Height
	}
	return r.Width
}

// reflow assigns final bounds to every child.
//
// The space left after padding, spacing and fixed children is divided
// evenly between flexible children; the integer remainder is dropped. When
// fixed children overflow the container, flexible children get zero.
func (l *Layout) reflow() {
	n := len(l.children)

	available := l.mainSize(l.bounds) - 2*l.padding
	if n > 0 {
		available -= l.spacing * (n - 1)
	}

	fixed, flexCount := 0, 0
	for _, s := range l.children {
		if s.flex {
			flexCount++
		} else {
			fixed += l.mainSize(s.c.Bounds())
		}
	}

	flexSize := 0
	if flexCount > 0 {
		flexSize = max((available-fixed)/flexCount, 0)
	}
	cross := max(l.crossSize(l.bounds)-2*l.padding, 0)

	offset := l.padding
	for _, s := range l.children {
		size := flexSize
		if !s.flex {
			size = l.mainSize(s.c.Bounds())
		}

		if l.orientation == Horizontal {
			s.c.SetPosition(l.bounds.X+offset, l.bounds.Y+l.padding)
			s.c.SetSize(size, cross)
		} else {
			s.c.SetPosition(l.bounds.X+l.padding, l.bounds.Y+offset)
			s.c.SetSize(cross, size)
		}

		offset += size + l.spacing
	}
}

func (l *Layout) Bounds() Rect { return l.bounds }

// SetPosition moves the layout and shifts every child by the same delta
// without reflowing.
func (l *Layout) SetPosition(x, y int) {
	dx, dy := x-l.bounds.X, y-l.bounds.Y
	l.bounds.X = x
	l.bounds.Y = y

	for _, s := range l.children {
		b := s.c.Bounds()
		s.c.SetPosition(b.X+dx, b.Y+dy)
	}
}

// SetSize resizes the layout and reflows its children.
func (l *Layout) SetSize(width, height int) {
	l.bounds.Width = width
	l.bounds.Height = height
	l.reflow()
}

// Render paints the children in order. The layout itself draws nothing.
func (l *Layout) Render(c *paint.Canvas) error {
	for _, s := range l.children {
		if err := s.c.Render(c); err != nil {
			return err
		}
	}
	return nil
}

// HandleTap offers the tap to each child in insertion order and stops at the
// first that claims it. If none does, it reports whether the tap is inside
// the layout.
func (l *Layout) HandleTap(x, y int) bool {
	for _, s := range l.children {
		if s.c.HandleTap(x, y) {
			return true
		}
	}
	return l.bounds.Contains(x, y)
}

// Update ticks every child in order and returns the first error, leaving the
// remaining children untouched.
func (l *Layout) Update() error {
	for _, s := range l.children {
		if err := s.c.Update(); err != nil {
			return err
		}
	}
	return nil
}
