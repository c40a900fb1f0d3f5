package ui

import (
	"image"

	"github.com/OpticalFlyer/inkui/paint"
	"github.com/OpticalFlyer/inkui/proj"
	"github.com/OpticalFlyer/inkui/shape"
)

const markerRadius = 2

var _ Component = (*MapView)(nil)

// MapView draws vector outlines through a Web Mercator viewport. Drawing is
// clipped to the widget bounds. A tap zooms in one level around the tapped
// point.
type MapView struct {
	widget
	viewport *proj.Viewport
	outline  *shape.Outline

	marker    shape.Point
	hasMarker bool
}

// NewMapView creates a map centred on (lat, lon) at zoom.
func NewMapView(x, y, width, height int, lat, lon float64, zoom int) *MapView {
	return &MapView{
		widget:   widget{bounds: Rect{X: x, Y: y, Width: width, Height: height}},
		viewport: proj.NewViewport(max(width, 0), max(height, 0), lat, lon, zoom),
	}
}

// Viewport exposes the projection state for panning and zooming.
func (m *MapView) Viewport() *proj.Viewport { return m.viewport }

// SetOutline replaces the drawn geometry.
func (m *MapView) SetOutline(o *shape.Outline) { m.outline = o }

// FitOutline zooms and centres the viewport on the outline's bounds.
func (m *MapView) FitOutline() {
	if m.outline == nil || m.outline.Box.Empty() {
		return
	}
	b := m.outline.Box
	m.viewport.Fit(b.MinLat, b.MinLon, b.MaxLat, b.MaxLon)
}

// SetMarker places a dot at (lat, lon).
func (m *MapView) SetMarker(lat, lon float64) {
	m.marker = shape.Point{Lon: lon, Lat: lat}
	m.hasMarker = true
}

// ClearMarker removes the dot.
func (m *MapView) ClearMarker() { m.hasMarker = false }

func (m *MapView) SetSize(width, height int) {
	m.widget.SetSize(width, height)
	m.viewport.Resize(max(width, 0), max(height, 0))
}

func (m *MapView) toCanvas(p shape.Point) image.Point {
	x, y := m.viewport.ToScreen(p.Lat, p.Lon)
	return image.Pt(m.bounds.X+x, m.bounds.Y+y)
}

func (m *MapView) Render(c *paint.Canvas) error {
	if m.bounds.Width <= 0 || m.bounds.Height <= 0 {
		return nil
	}
	c.SetClip(image.Rect(m.bounds.X, m.bounds.Y, m.bounds.X+m.bounds.Width, m.bounds.Y+m.bounds.Height))
	defer c.ClearClip()

	if m.outline != nil {
		var pts []image.Point
		for _, path := range m.outline.Paths {
			pts = pts[:0]
			for _, p := range path.Points {
				pts = append(pts, m.toCanvas(p))
			}
			c.DrawPolyline(pts, path.Closed, paint.Colored)
		}
	}

	if m.hasMarker {
		p := m.toCanvas(m.marker)
		c.DrawFilledCircle(p.X, p.Y, markerRadius, paint.Colored)
	}

	x0, y0, x1, y1 := corners(m.bounds)
	c.DrawRectangle(x0, y0, x1, y1, paint.Colored)
	return nil
}

// HandleTap zooms in around the tap if it falls inside the map.
func (m *MapView) HandleTap(x, y int) bool {
	if !m.bounds.Contains(x, y) {
		return false
	}
	m.viewport.ZoomAtPoint(true, float64(x-m.bounds.X), float64(y-m.bounds.Y))
	return true
}
