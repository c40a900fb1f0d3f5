package paint

import "image"

// DrawLine draws from (x0, y0) to (x1, y1) inclusive using Bresenham's
// algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, col Color) {
	steep := abs(y1-y0) > abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := abs(y1 - y0)
	err := dx / 2
	yStep := -1
	if y0 < y1 {
		yStep = 1
	}

	y := y0
	for x := x0; x <= x1; x++ {
		if steep {
			c.DrawPixel(y, x, col)
		} else {
			c.DrawPixel(x, y, col)
		}
		err -= dy
		if err < 0 {
			y += yStep
			err += dx
		}
	}
}

// DrawHorizontalLine draws width pixels to the right of (x, y).
func (c *Canvas) DrawHorizontalLine(x, y, width int, col Color) {
	for i := 0; i < width; i++ {
		c.DrawPixel(x+i, y, col)
	}
}

// DrawVerticalLine draws height pixels below (x, y).
func (c *Canvas) DrawVerticalLine(x, y, height int, col Color) {
	for i := 0; i < height; i++ {
		c.DrawPixel(x, y+i, col)
	}
}

// DrawRectangle outlines the rectangle with corners (x0, y0) and (x1, y1),
// both inclusive, in any order.
func (c *Canvas) DrawRectangle(x0, y0, x1, y1 int, col Color) {
	minX, maxX := min(x0, x1), max(x0, x1)
	minY, maxY := min(y0, y1), max(y0, y1)

	c.DrawHorizontalLine(minX, minY, maxX-minX+1, col)
	c.DrawHorizontalLine(minX, maxY, maxX-minX+1, col)
	c.DrawVerticalLine(minX, minY, maxY-minY+1, col)
	c.DrawVerticalLine(maxX, minY, maxY-minY+1, col)
}

// DrawFilledRectangle fills the rectangle with corners (x0, y0) and (x1, y1),
// both inclusive, in any order.
func (c *Canvas) DrawFilledRectangle(x0, y0, x1, y1 int, col Color) {
	minX, maxX := min(x0, x1), max(x0, x1)
	minY, maxY := min(y0, y1), max(y0, y1)

	for y := minY; y <= maxY; y++ {
		c.DrawHorizontalLine(minX, y, maxX-minX+1, col)
	}
}

// DrawCircle outlines a circle centred on (x, y) with the midpoint
// algorithm, plotting the four symmetric points of each step.
func (c *Canvas) DrawCircle(x, y, radius int, col Color) {
	xPos := -radius
	yPos := 0
	err := 2 - 2*radius

	for {
		c.DrawPixel(x-xPos, y+yPos, col)
		c.DrawPixel(x+xPos, y+yPos, col)
		c.DrawPixel(x+xPos, y-yPos, col)
		c.DrawPixel(x-xPos, y-yPos, col)

		xPos, yPos, err = circleStep(xPos, yPos, err)
		if xPos > 0 {
			break
		}
	}
}

// DrawFilledCircle fills a circle centred on (x, y), drawing one horizontal
// span above and one below the centre per step.
func (c *Canvas) DrawFilledCircle(x, y, radius int, col Color) {
	xPos := -radius
	yPos := 0
	err := 2 - 2*radius

	for xPos <= 0 {
		c.DrawHorizontalLine(x+xPos, y-yPos, -2*xPos+1, col)
		c.DrawHorizontalLine(x+xPos, y+yPos, -2*xPos+1, col)
		xPos, yPos, err = circleStep(xPos, yPos, err)
	}
}

// circleStep advances the midpoint error term by one step. x runs from
// -radius up to 0 while y runs from 0 up to radius.
func circleStep(xPos, yPos, err int) (int, int, int) {
	e2 := err
	if e2 <= yPos {
		yPos++
		err += yPos*2 + 1
		if -xPos == yPos && e2 <= xPos {
			e2 = 0
		}
	}
	if e2 > xPos {
		xPos++
		err += xPos*2 + 1
	}
	return xPos, yPos, err
}

// DrawPolyline connects consecutive points with lines, and the last point
// back to the first when closed is set.
func (c *Canvas) DrawPolyline(points []image.Point, closed bool, col Color) {
	if len(points) == 1 {
		c.DrawPixel(points[0].X, points[0].Y, col)
		return
	}
	for i := 1; i < len(points); i++ {
		c.DrawLine(points[i-1].X, points[i-1].Y, points[i].X, points[i].Y, col)
	}
	if closed && len(points) > 2 {
		last := points[len(points)-1]
		c.DrawLine(last.X, last.Y, points[0].X, points[0].Y, col)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
