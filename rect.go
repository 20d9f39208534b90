package bmpr

// FillRectangle fills the w×h region whose top-left corner is (x, y),
// covering [x, x+w) × [y, y+h).
func (c *Canvas) FillRectangle(x, y, w, h int, col Color) {
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			c.SetSafe(i, j, col)
		}
	}
}

// DrawRectangle draws the border of the region with top-left corner (x, y).
// The border is inclusive on all sides: both the y and y+h rows and the
// x and x+w columns are drawn, so the outline is one pixel wider and taller
// than the w×h region FillRectangle would cover.
func (c *Canvas) DrawRectangle(x, y, w, h int, col Color) {
	for i := x; i <= x+w; i++ {
		c.SetSafe(i, y, col)
		c.SetSafe(i, y+h, col)
	}
	for j := y; j <= y+h; j++ {
		c.SetSafe(x, j, col)
		c.SetSafe(x+w, j, col)
	}
}
