package ui

import (
	"testing"

	"github.com/OpticalFlyer/inkui/paint"
)

// blockFont draws every printable character as a solid cell.
type blockFont struct {
	w, h int
}

func (f blockFont) Width() int            { return f.w }
func (f blockFont) Height() int           { return f.h }
func (f blockFont) HasChar(r rune) bool   { return r > ' ' && r <= '~' }
func (f blockFont) CharOffset(r rune) int { return 0 }
func (f blockFont) DataAt(i int) byte     { return 0xFF }

var testFont = blockFont{w: 7, h: 10}

// stub records the calls it receives.
type stub struct {
	widget
	claim   bool
	err     error
	taps    int
	updates int
	renders int
}

func newStub(width, height int) *stub {
	return &stub{widget: widget{bounds: Rect{Width: width, Height: height}}}
}

func (s *stub) Render(*paint.Canvas) error {
	s.renders++
	return s.err
}

func (s *stub) HandleTap(x, y int) bool {
	s.taps++
	return s.claim
}

func (s *stub) Update() error {
	s.updates++
	return s.err
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"top-left corner", 10, 20, true},
		{"inside", 25, 35, true},
		{"last column", 39, 59, true},
		{"right edge is exclusive", 40, 30, false},
		{"bottom edge is exclusive", 20, 60, false},
		{"left of rect", 9, 30, false},
		{"above rect", 20, 19, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v; want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}

	if (Rect{Width: 0, Height: 10}).Contains(0, 0) {
		t.Error("empty rect contains a point")
	}
}

func TestDivider(t *testing.T) {
	c := paint.New(16, 8)
	d := NewDivider(2, 3, 10, 2)
	if err := d.Render(c); err != nil {
		t.Fatalf("Render: %v", err)
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 16; x++ {
			want := paint.Uncolored
			if x >= 2 && x < 12 && y >= 3 && y < 5 {
				want = paint.Colored
			}
			if got := c.Pixel(x, y); got != want {
				t.Fatalf("pixel (%d, %d) = %v; want %v", x, y, got, want)
			}
		}
	}

	c.Clear(paint.Uncolored)
	NewDivider(2, 3, 0, 2).Render(c)
	if c.Pixel(2, 3) != paint.Uncolored {
		t.Error("zero-width divider drew pixels")
	}
}
