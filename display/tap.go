package display

import (
	"image"
	"math"
)

// DefaultSlop is how far, in screen pixels, a pointer may travel between
// press and release and still count as a tap.
const DefaultSlop = 8

type press struct {
	start     image.Point
	cancelled bool
}

// TapTracker turns pointer press and release pairs into taps. K identifies a
// pointer, such as a touch id or a mouse button.
//
// A pointer that drifts further than the slop is no longer a tap, and so is
// every pointer that was down while another one was pressed. There is no
// gesture support beyond that.
type TapTracker[K comparable] struct {
	slop    float64
	pressed map[K]*press
}

// NewTapTracker creates a tracker with the given slop radius.
func NewTapTracker[K comparable](slop float64) *TapTracker[K] {
	return &TapTracker[K]{
		slop:    slop,
		pressed: make(map[K]*press),
	}
}

// Press records pointer id going down at (x, y).
func (t *TapTracker[K]) Press(id K, x, y int) {
	p := &press{start: image.Pt(x, y)}
	if len(t.pressed) > 0 {
		p.cancelled = true
		for _, other := range t.pressed {
			other.cancelled = true
		}
	}
	t.pressed[id] = p
}

// Move records pointer id at (x, y) while it is down.
func (t *TapTracker[K]) Move(id K, x, y int) {
	p, ok := t.pressed[id]
	if !ok {
		return
	}
	if distance(p.start, image.Pt(x, y)) > t.slop {
		p.cancelled = true
	}
}

// Release records pointer id going up at (x, y). It returns the press
// position and true when the pair forms a tap.
func (t *TapTracker[K]) Release(id K, x, y int) (image.Point, bool) {
	p, ok := t.pressed[id]
	if !ok {
		return image.Point{}, false
	}
	delete(t.pressed, id)

	if p.cancelled || distance(p.start, image.Pt(x, y)) > t.slop {
		return image.Point{}, false
	}
	return p.start, true
}

// Forget drops pointers for which keep returns false, e.g. touches that
// vanished without a release event.
func (t *TapTracker[K]) Forget(keep func(K) bool) {
	for id := range t.pressed {
		if !keep(id) {
			delete(t.pressed, id)
		}
	}
}

// Down returns the number of pointers currently pressed.
func (t *TapTracker[K]) Down() int { return len(t.pressed) }

func distance(a, b image.Point) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	return math.Sqrt(dx*dx + dy*dy)
}
