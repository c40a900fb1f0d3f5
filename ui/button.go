package ui

import "github.com/OpticalFlyer/inkui/paint"

var _ Component = (*Button)(nil)

// Button is a bordered, tappable text label.
//
// The callback runs synchronously inside HandleTap. Code that must hand the
// event to another goroutine should do so from the callback, for example by
// sending on a channel.
type Button struct {
	widget
	label   string
	font    paint.Font
	onClick func() error
	onError func(error)

	isPressed bool
	isEnabled bool
}

// NewButton creates an enabled button with no callback.
func NewButton(x, y, width, height int, label string, font paint.Font) *Button {
	return &Button{
		widget:    widget{bounds: Rect{X: x, Y: y, Width: width, Height: height}},
		label:     label,
		font:      font,
		isEnabled: true,
	}
}

// SetOnClick replaces the tap callback. A nil fn removes it.
func (b *Button) SetOnClick(fn func() error) { b.onClick = fn }

// SetOnError installs a handler for callback errors. Without one, callback
// errors are dropped.
func (b *Button) SetOnError(fn func(error)) { b.onError = fn }

func (b *Button) SetEnabled(enabled bool) { b.isEnabled = enabled }
func (b *Button) Enabled() bool           { return b.isEnabled }

func (b *Button) SetLabel(label string) { b.label = label }
func (b *Button) Label() string         { return b.label }

// Pressed reports the transient pressed state. It is only true while the
// callback is running.
func (b *Button) Pressed() bool { return b.isPressed }

// Render fills the background, outlines the border and centres the label.
// Pressed buttons are drawn inverted. A disabled button uses the normal
// palette.
func (b *Button) Render(c *paint.Canvas) error {
	bg, fg := paint.Uncolored, paint.Colored
	if b.isEnabled && b.isPressed {
		bg, fg = paint.Colored, paint.Uncolored
	}

	x0, y0, x1, y1 := corners(b.bounds)
	c.DrawFilledRectangle(x0, y0, x1, y1, bg)
	c.DrawRectangle(x0, y0, x1, y1, paint.Colored)

	x, y := textOrigin(b.bounds, b.font, b.label, AlignCenter)
	c.DrawStringAt(x, y, b.label, b.font, fg)
	return nil
}

// HandleTap runs the callback when the button is enabled and (x, y) is
// inside it. The pressed flag is set for the duration of the callback only.
func (b *Button) HandleTap(x, y int) bool {
	if !b.isEnabled || !b.bounds.Contains(x, y) {
		return false
	}

	b.isPressed = true
	if b.onClick != nil {
		if err := b.onClick(); err != nil && b.onError != nil {
			b.onError(err)
		}
	}
	b.isPressed = false

	return true
}
