package paint

import "fmt"

// Rotation selects how logical drawing coordinates map onto the physical
// buffer. It never changes the buffer dimensions.
type Rotation uint8

const (
	Rotate0 Rotation = iota
	Rotate90
	Rotate180
	Rotate270
)

// RotationFromDegrees converts 0, 90, 180 or 270 to a Rotation.
func RotationFromDegrees(deg int) (Rotation, error) {
	switch deg {
	case 0:
		return Rotate0, nil
	case 90:
		return Rotate90, nil
	case 180:
		return Rotate180, nil
	case 270:
		return Rotate270, nil
	}
	return Rotate0, fmt.Errorf("unsupported rotation %d degrees", deg)
}

// Degrees returns the clockwise rotation angle.
func (r Rotation) Degrees() int {
	switch r {
	case Rotate90:
		return 90
	case Rotate180:
		return 180
	case Rotate270:
		return 270
	}
	return 0
}

func (r Rotation) String() string {
	return fmt.Sprintf("%d°", r.Degrees())
}

// Transform maps a logical point to physical buffer coordinates for a buffer
// of width w and height h. Unknown modes behave like Rotate0.
func (r Rotation) Transform(x, y, w, h int) (int, int) {
	switch r {
	case Rotate90:
		return w - y - 1, x
	case Rotate180:
		return w - x - 1, h - y - 1
	case Rotate270:
		return y, h - x - 1
	}
	return x, y
}

// Inverse maps physical buffer coordinates back to the logical point that
// Transform would have placed there.
func (r Rotation) Inverse(px, py, w, h int) (int, int) {
	switch r {
	case Rotate90:
		return py, w - px - 1
	case Rotate180:
		return w - px - 1, h - py - 1
	case Rotate270:
		return h - py - 1, px
	}
	return px, py
}

// swapsAxes reports whether logical width runs along the physical height.
func (r Rotation) swapsAxes() bool {
	return r == Rotate90 || r == Rotate270
}
