package ui

import (
	"errors"
	"testing"

	"github.com/OpticalFlyer/inkui/paint"
)

func TestButtonHandleTap(t *testing.T) {
	errBoom := errors.New("boom")

	tests := []struct {
		name      string
		enabled   bool
		x, y      int
		result    error
		wantClaim bool
		wantCalls int
	}{
		{"inside", true, 5, 5, nil, true, 1},
		{"callback error is dropped", true, 5, 5, errBoom, true, 1},
		{"outside", true, 50, 5, nil, false, 0},
		{"disabled", false, 5, 5, nil, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewButton(0, 0, 40, 20, "OK", testFont)
			b.SetEnabled(tt.enabled)

			calls := 0
			b.SetOnClick(func() error {
				calls++
				if !b.Pressed() {
					t.Error("button not pressed during callback")
				}
				return tt.result
			})

			if got := b.HandleTap(tt.x, tt.y); got != tt.wantClaim {
				t.Errorf("HandleTap = %v; want %v", got, tt.wantClaim)
			}
			if calls != tt.wantCalls {
				t.Errorf("callback ran %d times; want %d", calls, tt.wantCalls)
			}
			if b.Pressed() {
				t.Error("button still pressed after tap")
			}
		})
	}
}

func TestButtonWithoutCallback(t *testing.T) {
	b := NewButton(0, 0, 40, 20, "OK", testFont)
	if !b.HandleTap(1, 1) {
		t.Error("tap on button without callback not claimed")
	}
}

func TestButtonOnError(t *testing.T) {
	errBoom := errors.New("boom")
	b := NewButton(0, 0, 40, 20, "OK", testFont)
	b.SetOnClick(func() error { return errBoom })

	var got error
	b.SetOnError(func(err error) { got = err })
	b.HandleTap(1, 1)
	if !errors.Is(got, errBoom) {
		t.Errorf("OnError got %v; want %v", got, errBoom)
	}
}

func TestButtonRender(t *testing.T) {
	// A label with no drawable glyphs leaves the fill visible at (5, 5).
	tests := []struct {
		name    string
		enabled bool
		pressed bool
		wantBg  paint.Color
	}{
		{"normal", true, false, paint.Uncolored},
		{"pressed", true, true, paint.Colored},
		{"disabled", false, false, paint.Uncolored},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := paint.New(48, 24)
			b := NewButton(0, 0, 40, 20, " ", testFont)
			b.SetEnabled(tt.enabled)
			b.isPressed = tt.pressed

			if err := b.Render(c); err != nil {
				t.Fatalf("Render: %v", err)
			}
			if got := c.Pixel(5, 5); got != tt.wantBg {
				t.Errorf("background = %v; want %v", got, tt.wantBg)
			}
			for _, p := range [][2]int{{0, 0}, {39, 0}, {0, 19}, {39, 19}} {
				if c.Pixel(p[0], p[1]) != paint.Colored {
					t.Errorf("border pixel %v not drawn", p)
				}
			}
			if c.Pixel(40, 20) != paint.Uncolored {
				t.Error("render spilled outside bounds")
			}
		})
	}
}

func TestButtonRenderFromCallback(t *testing.T) {
	c := paint.New(48, 24)
	b := NewButton(0, 0, 40, 20, "A", testFont)
	b.SetOnClick(func() error { return b.Render(c) })
	b.HandleTap(1, 1)

	// Pressed: inverted fill and the glyph drawn in the background color.
	x, y := textOrigin(b.Bounds(), testFont, "A", AlignCenter)
	if c.Pixel(2, 2) != paint.Colored {
		t.Error("pressed fill not inverted")
	}
	if c.Pixel(x, y) != paint.Uncolored {
		t.Error("pressed label not inverted")
	}
}
