package proj

import "math"

// Viewport is a pixel window of Width x Height centred on a geographic
// point at an integer zoom level.
type Viewport struct {
	CenterLat float64
	CenterLon float64
	Zoom      int
	Width     int
	Height    int
}

// NewViewport creates a viewport of the given pixel size.
func NewViewport(width, height int, lat, lon float64, zoom int) *Viewport {
	return &Viewport{
		CenterLat: lat,
		CenterLon: lon,
		Zoom:      clampZoom(zoom),
		Width:     width,
		Height:    height,
	}
}

// Resize changes the pixel size, keeping the centre.
func (v *Viewport) Resize(width, height int) {
	v.Width = width
	v.Height = height
}

// ToScreen converts a geographic point to viewport pixels, with (0, 0) at
// the top-left corner.
func (v *Viewport) ToScreen(lat, lon float64) (x, y int) {
	cx, cy := Project(v.CenterLat, v.CenterLon, v.Zoom)
	px, py := Project(lat, lon, v.Zoom)
	x = int(math.Floor(px - cx + float64(v.Width)/2))
	y = int(math.Floor(py - cy + float64(v.Height)/2))
	return x, y
}

// ToWorld converts viewport pixels to world pixels at the current zoom.
func (v *Viewport) ToWorld(sx, sy float64) (wx, wy float64) {
	cx, cy := Project(v.CenterLat, v.CenterLon, v.Zoom)
	return cx + sx - float64(v.Width)/2, cy + sy - float64(v.Height)/2
}

// PanDirection is a direction the view can be moved in.
type PanDirection int

const (
	PanLeft PanDirection = iota
	PanRight
	PanUp
	PanDown
)

// PanStep is how far Pan moves the view, in pixels.
const PanStep = 16

// Pan moves the view one step in dir.
func (v *Viewport) Pan(dir PanDirection) {
	switch dir {
	case PanLeft:
		v.PanBy(PanStep, 0)
	case PanRight:
		v.PanBy(-PanStep, 0)
	case PanUp:
		v.PanBy(0, PanStep)
	case PanDown:
		v.PanBy(0, -PanStep)
	}
}

// PanBy moves the map by pixel offsets. Positive dx moves the map content
// right, so the view looks further west.
func (v *Viewport) PanBy(dx, dy float64) {
	cx, cy := Project(v.CenterLat, v.CenterLon, v.Zoom)
	n := WorldSize(v.Zoom)

	cx = math.Max(0, math.Min(n, cx-dx))
	cy = math.Max(0, math.Min(n, cy-dy))

	v.CenterLat, v.CenterLon = Unproject(cx, cy, v.Zoom)
}

// ZoomIn increases the zoom level if not already at MaxZoom.
func (v *Viewport) ZoomIn() {
	if v.Zoom < MaxZoom {
		v.Zoom++
	}
}

// ZoomOut decreases the zoom level if not already at zero.
func (v *Viewport) ZoomOut() {
	if v.Zoom > 0 {
		v.Zoom--
	}
}

// ZoomAtPoint changes zoom by one level while keeping the geographic point
// under viewport pixel (sx, sy) in place. It does nothing at the zoom limits
// or when the point lies outside the world.
func (v *Viewport) ZoomAtPoint(zoomIn bool, sx, sy float64) {
	if (zoomIn && v.Zoom >= MaxZoom) || (!zoomIn && v.Zoom <= 0) {
		return
	}

	wx, wy := v.ToWorld(sx, sy)
	n := WorldSize(v.Zoom)
	if wx < 0 || wx > n || wy < 0 || wy > n {
		return
	}

	scale := 0.5
	if zoomIn {
		v.Zoom++
		scale = 2
	} else {
		v.Zoom--
	}

	cx := wx*scale - (sx - float64(v.Width)/2)
	cy := wy*scale - (sy - float64(v.Height)/2)
	lat, lon := Unproject(cx, cy, v.Zoom)

	v.CenterLon = math.Max(-180.0, math.Min(180.0, lon))
	v.CenterLat = math.Max(minLat, math.Min(maxLat, lat))
}

// Fit centres the viewport on the box and picks the deepest zoom at which
// the whole box is visible.
func (v *Viewport) Fit(minLat, minLon, maxLat, maxLon float64) {
	x0, y0 := Project(maxLat, minLon, 0)
	x1, y1 := Project(minLat, maxLon, 0)
	v.CenterLat, v.CenterLon = Unproject((x0+x1)/2, (y0+y1)/2, 0)

	v.Zoom = 0
	for z := MaxZoom; z > 0; z-- {
		scale := WorldSize(z) / WorldSize(0)
		if (x1-x0)*scale <= float64(v.Width) && (y1-y0)*scale <= float64(v.Height) {
			v.Zoom = z
			return
		}
	}
}
