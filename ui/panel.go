package ui

import "github.com/OpticalFlyer/inkui/paint"

const (
	// titleInset is the gap between the title bar edge and its text.
	titleInset = 2
	// panelInset separates the border from the content area.
	panelInset = 2
)

var _ Component = (*Panel)(nil)

// Panel frames a single content component under an inverted title bar.
// The content is always sized to the area inside the frame.
type Panel struct {
	bounds  Rect
	title   string
	font    paint.Font
	content Component
}

// NewPanel creates an empty panel.
func NewPanel(x, y, width, height int, title string, font paint.Font) *Panel {
	return &Panel{
		bounds: Rect{X: x, Y: y, Width: width, Height: height},
		title:  title,
		font:   font,
	}
}

func (p *Panel) SetTitle(title string) { p.title = title }
func (p *Panel) Title() string         { return p.title }

// SetContent replaces the content and fits it to the panel.
func (p *Panel) SetContent(c Component) {
	p.content = c
	p.layoutContent()
}

// Content returns the current content, or nil.
func (p *Panel) Content() Component { return p.content }

func (p *Panel) titleBarHeight() int {
	return p.font.Height() + 2*titleInset
}

// contentRect is the area inside the border and below the title bar.
func (p *Panel) contentRect() Rect {
	top := p.titleBarHeight() + panelInset
	return Rect{
		X:      p.bounds.X + panelInset,
		Y:      p.bounds.Y + top,
		Width:  max(p.bounds.Width-2*panelInset, 0),
		Height: max(p.bounds.Height-top-panelInset, 0),
	}
}

func (p *Panel) layoutContent() {
	if p.content == nil {
		return
	}
	r := p.contentRect()
	p.content.SetPosition(r.X, r.Y)
	p.content.SetSize(r.Width, r.Height)
}

func (p *Panel) Bounds() Rect { return p.bounds }

func (p *Panel) SetPosition(x, y int) {
	dx, dy := x-p.bounds.X, y-p.bounds.Y
	p.bounds.X = x
	p.bounds.Y = y
	if p.content != nil {
		b := p.content.Bounds()
		p.content.SetPosition(b.X+dx, b.Y+dy)
	}
}

func (p *Panel) SetSize(width, height int) {
	p.bounds.Width = width
	p.bounds.Height = height
	p.layoutContent()
}

func (p *Panel) Render(c *paint.Canvas) error {
	x0, y0, x1, y1 := corners(p.bounds)
	c.DrawFilledRectangle(x0, y0, x1, y1, paint.Uncolored)
	c.DrawRectangle(x0, y0, x1, y1, paint.Colored)
	c.DrawFilledRectangle(x0, y0, x1, y0+p.titleBarHeight()-1, paint.Colored)
	c.DrawStringAt(x0+titleInset, y0+titleInset, p.title, p.font, paint.Uncolored)

	if p.content == nil {
		return nil
	}
	return p.content.Render(c)
}

// HandleTap forwards to the content first, then falls back to a hit test
// of the frame.
func (p *Panel) HandleTap(x, y int) bool {
	if p.content != nil && p.content.HandleTap(x, y) {
		return true
	}
	return p.bounds.Contains(x, y)
}

func (p *Panel) Update() error {
	if p.content == nil {
		return nil
	}
	return p.content.Update()
}
