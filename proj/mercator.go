// Package proj converts WGS84 coordinates to Web Mercator pixel space and
// keeps a pixel viewport over it for map widgets.
package proj

import "math"

const (
	// TileSize is the width of one map tile in world pixels.
	TileSize = 256
	// MaxZoom is the deepest zoom level a Viewport accepts.
	MaxZoom = 19

	maxLat   = 85.0511 // arctan(sinh(π)) in degrees
	minLat   = -maxLat
	degToRad = math.Pi / 180.0
	radToDeg = 180.0 / math.Pi
)

// worldSize holds the width of the world in pixels for zoom levels 0-19.
var worldSize [MaxZoom + 1]float64

func init() {
	for z := range worldSize {
		worldSize[z] = float64(TileSize) * float64(uint(1)<<uint(z))
	}
}

// WorldSize returns the world width and height in pixels at zoom.
func WorldSize(zoom int) float64 {
	return worldSize[clampZoom(zoom)]
}

// Project converts latitude and longitude in degrees to world pixel
// coordinates at zoom. Latitude is clamped to the Mercator limits.
func Project(lat, lon float64, zoom int) (x, y float64) {
	n := WorldSize(zoom)
	x = (lon + 180.0) * (n / 360.0)

	if lat >= maxLat {
		return x, 0
	}
	if lat <= minLat {
		return x, n
	}

	sinLat := math.Sin(lat * degToRad)
	y = n * (0.5 - 0.25*math.Log((1.0+sinLat)/(1.0-sinLat))/math.Pi)
	return x, y
}

// Unproject converts world pixel coordinates at zoom back to latitude and
// longitude in degrees.
func Unproject(x, y float64, zoom int) (lat, lon float64) {
	n := WorldSize(zoom)
	lon = x/n*360.0 - 180.0
	lat = math.Atan(math.Sinh(math.Pi*(1-2*y/n))) * radToDeg
	return lat, lon
}

func clampZoom(zoom int) int {
	return max(0, min(MaxZoom, zoom))
}
