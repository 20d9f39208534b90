package bmpr

// FillCircle fills the disc of radius r centered at (x, y). The disc test
// is dx²+dy² < r²+r, a slightly enlarged radius that produces a visually
// fuller disc than the exact bound.
func (c *Canvas) FillCircle(x, y, r int, col Color) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy < r*r+r {
				c.SetSafe(x+dx, y+dy, col)
			}
		}
	}
}

// FillCircleInverse fills the square bounding box of the circle except the
// disc itself: every point of [-r,r]×[-r,r] with dx²+dy² >= r²+r, the exact
// complement of FillCircle over the same box.
func (c *Canvas) FillCircleInverse(x, y, r int, col Color) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy >= r*r+r {
				c.SetSafe(x+dx, y+dy, col)
			}
		}
	}
}

// DrawCircle draws the outline of the circle of radius r centered at (x, y)
// using the midpoint circle algorithm: one octant is walked and the other
// seven follow by symmetry.
func (c *Canvas) DrawCircle(x, y, r int, col Color) {
	cx, cy := 0, r
	d := 3 - 2*r
	for cx <= cy {
		c.plotOctants(x, y, cx, cy, col)
		if d < 0 {
			d += 4*cx + 6
		} else {
			d += 4*(cx-cy) + 10
			cy--
		}
		cx++
	}
}

// plotOctants plots the 8-way symmetric reflections of the octant point
// (dx, dy) around the center (x, y).
func (c *Canvas) plotOctants(x, y, dx, dy int, col Color) {
	c.SetSafe(x+dx, y+dy, col)
	c.SetSafe(x-dx, y+dy, col)
	c.SetSafe(x+dx, y-dy, col)
	c.SetSafe(x-dx, y-dy, col)
	c.SetSafe(x+dy, y+dx, col)
	c.SetSafe(x-dy, y+dx, col)
	c.SetSafe(x+dy, y-dx, col)
	c.SetSafe(x-dy, y-dx, col)
}
