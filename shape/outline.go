// Package shape loads vector outlines, such as coastlines or region borders,
// from ESRI shapefiles for drawing on a map widget.
package shape

import (
	"fmt"
	"math"

	"github.com/jonas-p/go-shp"
)

// Point is a geographic coordinate in degrees.
type Point struct {
	Lon, Lat float64
}

// Path is one connected part of a shape. Closed paths come from polygons
// and should be drawn back to their first point.
type Path struct {
	Points []Point
	Closed bool
}

// Box is a geographic bounding box.
type Box struct {
	MinLon, MinLat float64
	MaxLon, MaxLat float64
}

// Empty reports whether the box holds no points.
func (b Box) Empty() bool {
	return b.MinLon > b.MaxLon || b.MinLat > b.MaxLat
}

func emptyBox() Box {
	return Box{
		MinLon: math.Inf(1), MinLat: math.Inf(1),
		MaxLon: math.Inf(-1), MaxLat: math.Inf(-1),
	}
}

func (b *Box) extend(p Point) {
	b.MinLon = math.Min(b.MinLon, p.Lon)
	b.MinLat = math.Min(b.MinLat, p.Lat)
	b.MaxLon = math.Max(b.MaxLon, p.Lon)
	b.MaxLat = math.Max(b.MaxLat, p.Lat)
}

// Outline is a set of paths with their combined bounds.
type Outline struct {
	Paths []Path
	Box   Box
	// Skipped counts records whose geometry type is not drawable.
	Skipped int
}

// NewOutline returns an empty outline.
func NewOutline() *Outline {
	return &Outline{Box: emptyBox()}
}

// AddPath appends a path and grows the bounds.
func (o *Outline) AddPath(p Path) {
	if len(p.Points) == 0 {
		return
	}
	for _, pt := range p.Points {
		o.Box.extend(pt)
	}
	o.Paths = append(o.Paths, p)
}

// Load reads every record of the shapefile at path. The file must use
// geographic coordinates (longitude as X, latitude as Y).
func Load(path string) (*Outline, error) {
	r, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening shapefile %s: %w", path, err)
	}
	defer r.Close()

	o := NewOutline()
	for r.Next() {
		_, s := r.Shape()
		o.add(s)
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("reading shapefile %s: %w", path, err)
	}
	return o, nil
}

func (o *Outline) add(s shp.Shape) {
	switch s := s.(type) {
	case *shp.PolyLine:
		o.addParts(s.Parts, s.Points, false)
	case *shp.Polygon:
		o.addParts(s.Parts, s.Points, true)
	case *shp.PolyLineZ:
		o.addParts(s.Parts, s.Points, false)
	case *shp.PolygonZ:
		o.addParts(s.Parts, s.Points, true)
	case *shp.Point:
		o.AddPath(Path{Points: []Point{{Lon: s.X, Lat: s.Y}}})
	default:
		o.Skipped++
	}
}

func (o *Outline) addParts(parts []int32, points []shp.Point, closed bool) {
	for i, start := range parts {
		end := int32(len(points))
		if i+1 < len(parts) {
			end = parts[i+1]
		}
		if start < 0 || start >= end || int(end) > len(points) {
			continue
		}

		path := Path{Points: make([]Point, 0, end-start), Closed: closed}
		for _, p := range points[start:end] {
			path.Points = append(path.Points, Point{Lon: p.X, Lat: p.Y})
		}
		o.AddPath(path)
	}
}
