package proj

import (
	"math"
	"testing"
)

func TestProject(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		zoom     int
		wantX    float64
		wantY    float64
	}{
		{
			name:  "Center of map at zoom 1",
			lat:   0,
			lon:   0,
			zoom:  1,
			wantX: 256,
			wantY: 256,
		},
		{
			name:  "Top-left corner at zoom 1",
			lat:   maxLat,
			lon:   -180,
			zoom:  1,
			wantX: 0,
			wantY: 0,
		},
		{
			name:  "Bottom-right corner at zoom 1",
			lat:   minLat,
			lon:   180,
			zoom:  1,
			wantX: 512,
			wantY: 512,
		},
		{
			name:  "Quarter turn east at zoom 0",
			lat:   0,
			lon:   90,
			zoom:  0,
			wantX: 192,
			wantY: 128,
		},
		{
			name:  "Latitude beyond the limit clamps",
			lat:   89,
			lon:   0,
			zoom:  2,
			wantX: 512,
			wantY: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotX, gotY := Project(tt.lat, tt.lon, tt.zoom)
			if math.Abs(gotX-tt.wantX) > 1e-6 || math.Abs(gotY-tt.wantY) > 1e-6 {
				t.Errorf("got (%f, %f); want (%f, %f)",
					gotX, gotY, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestUnprojectRoundTrip(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{37.7749, -122.4194},
		{-33.8688, 151.2093},
		{60, 10},
	}
	for _, p := range points {
		for zoom := 0; zoom <= MaxZoom; zoom += 5 {
			x, y := Project(p[0], p[1], zoom)
			lat, lon := Unproject(x, y, zoom)
			if math.Abs(lat-p[0]) > 1e-9 || math.Abs(lon-p[1]) > 1e-9 {
				t.Errorf("zoom %d: (%f, %f) came back as (%f, %f)", zoom, p[0], p[1], lat, lon)
			}
		}
	}
}

func TestWorldSizeClamps(t *testing.T) {
	if WorldSize(-3) != TileSize {
		t.Errorf("WorldSize(-3) = %f", WorldSize(-3))
	}
	if WorldSize(40) != WorldSize(MaxZoom) {
		t.Errorf("WorldSize(40) = %f", WorldSize(40))
	}
}

func BenchmarkProject(b *testing.B) {
	coords := [][3]float64{
		{0, 0, 1},
		{maxLat, 180, 10},
		{minLat, -180, 15},
		{45.12345, -122.67890, 12},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, c := range coords {
			Project(c[0], c[1], int(c[2]))
		}
	}
}
