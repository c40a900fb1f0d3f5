package ui

import (
	"unicode/utf8"

	"github.com/OpticalFlyer/inkui/paint"
)

// Alignment positions text horizontally inside its bounds.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

var _ Component = (*Label)(nil)

// Label draws a single line of text.
type Label struct {
	widget
	text  string
	font  paint.Font
	align Alignment
	color paint.Color
}

// NewLabel creates a left-aligned label drawn in the foreground color.
func NewLabel(x, y, width, height int, text string, font paint.Font) *Label {
	return &Label{
		widget: widget{bounds: Rect{X: x, Y: y, Width: width, Height: height}},
		text:   text,
		font:   font,
		color:  paint.Colored,
	}
}

func (l *Label) SetText(text string) { l.text = text }
func (l *Label) Text() string        { return l.text }

func (l *Label) SetAlignment(a Alignment) { l.align = a }
func (l *Label) Alignment() Alignment     { return l.align }

// SetColor selects the text color, e.g. Uncolored for text on a dark fill.
func (l *Label) SetColor(c paint.Color) { l.color = c }

func (l *Label) Render(c *paint.Canvas) error {
	x, y := textOrigin(l.bounds, l.font, l.text, l.align)
	c.DrawStringAt(x, y, l.text, l.font, l.color)
	return nil
}

// textOrigin returns where a line of text starts inside bounds. Text width
// is the glyph width times the character count; it is centred vertically.
func textOrigin(bounds Rect, font paint.Font, text string, align Alignment) (int, int) {
	textWidth := font.Width() * utf8.RuneCountInString(text)

	x := bounds.X
	switch align {
	case AlignCenter:
		x = bounds.X + (bounds.Width-textWidth)/2
	case AlignRight:
		x = bounds.X + bounds.Width - textWidth
	}
	y := bounds.Y + (bounds.Height-font.Height())/2
	return x, y
}
