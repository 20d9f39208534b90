package bmpr

// DrawLine draws a straight line from (x1, y1) to (x2, y2) using the
// integer digital-line (Bresenham) algorithm. Both endpoints are plotted;
// a zero-length line paints its single pixel. Pixels outside the canvas
// are clipped.
func (c *Canvas) DrawLine(x1, y1, x2, y2 int, col Color) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := stepSign(x1, x2)
	sy := stepSign(y1, y2)

	e := dx - dy
	x, y := x1, y1

	for {
		c.SetSafe(x, y, col)
		if x == x2 && y == y2 {
			return
		}
		e2 := 2 * e
		if e2 > -dy {
			e -= dy
			x += sx
		}
		if e2 < dx {
			e += dx
			y += sy
		}
	}
}

// DrawLineThick draws a line like DrawLine, but at each step paints a
// thickness×thickness square centered on the stepped point (the square is
// offset by -thickness/2 on each axis, integer division). A thickness
// below 1 is clamped to 1.
func (c *Canvas) DrawLineThick(x1, y1, x2, y2, thickness int, col Color) {
	if thickness < 1 {
		thickness = 1
	}

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := stepSign(x1, x2)
	sy := stepSign(y1, y2)

	e := dx - dy
	x, y := x1, y1
	off := thickness / 2

	for {
		for j := 0; j < thickness; j++ {
			for i := 0; i < thickness; i++ {
				c.SetSafe(x+i-off, y+j-off, col)
			}
		}
		if x == x2 && y == y2 {
			return
		}
		e2 := 2 * e
		if e2 > -dy {
			e -= dy
			x += sx
		}
		if e2 < dx {
			e += dx
			y += sy
		}
	}
}

func stepSign(from, to int) int {
	if from < to {
		return 1
	}
	return -1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
